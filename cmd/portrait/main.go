package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/kdduha/apple-portrait/backend/internal/client"
	"github.com/kdduha/apple-portrait/backend/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("portrait", flag.ContinueOnError)
	server := fs.String("server", "http://localhost:8080", "base URL of the portrait server")
	file := fs.String("file", "", "photo to upload")
	out := fs.String("out", "", "write the generated image to this path")
	timeout := fs.Duration("timeout", 2*time.Minute, "request timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logger.New("development", "info")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	view := newTerminalView(stdout)
	state := client.NewState()
	toast := client.NewToast(view, 0)
	defer toast.Stop()

	upload := client.NewUploadController(state, view.preview(), view, nil)
	result := client.NewResultController(state, client.NewAPI(*server, *timeout), view, view, toast, log)

	if *file != "" {
		photo, err := readPhoto(*file)
		if err != nil {
			log.Error().Err(err).Msg("read photo")
			return 1
		}
		upload.Select(photo)
		upload.Wait()
	}

	if err := result.Generate(ctx); err != nil {
		return 1
	}

	if *out != "" {
		if err := writeResult(*out, state.Snapshot().ImageSrc); err != nil {
			log.Error().Err(err).Msg("write result")
			return 1
		}
		fmt.Fprintf(stdout, "saved to %s\n", *out)
	}
	return 0
}

func readPhoto(path string) (*client.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &client.File{
		Name:        filepath.Base(path),
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

// writeResult stores a data URI as bytes and a URL as a one line text file.
func writeResult(path, src string) error {
	if src == "" {
		return errors.New("no image")
	}
	if !strings.HasPrefix(src, "data:") {
		return os.WriteFile(path, []byte(src+"\n"), 0o644)
	}

	_, payload, ok := strings.Cut(src, ";base64,")
	if !ok {
		return fmt.Errorf("unsupported data uri")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
