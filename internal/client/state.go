package client

import (
	"errors"
	"sync"
)

var (
	ErrNoFile   = errors.New(msgUploadFirst)
	ErrInFlight = errors.New("generation already in progress")
)

type UIState int

const (
	Idle UIState = iota
	PreviewOnly
	Loading
	Success
	Error
)

func (s UIState) String() string {
	switch s {
	case Idle:
		return "idle"
	case PreviewOnly:
		return "preview_only"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// File is a photo picked by the user.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// State is shared by the upload and result controllers. At most one file is
// current; every selection bumps seq so stale preview reads can be dropped.
// Selections made while a request is running leave the state in Loading.
type State struct {
	mu       sync.Mutex
	file     *File
	seq      uint64
	ui       UIState
	imageSrc string
	errMsg   string
}

func NewState() *State {
	return &State{}
}

type Snapshot struct {
	UI       UIState
	File     *File
	ImageSrc string
	Err      string
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{UI: s.ui, File: s.file, ImageSrc: s.imageSrc, Err: s.errMsg}
}

func (s *State) File() *File {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file
}

func (s *State) selectFile(f *File) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.file = f
	if s.ui == Loading {
		return s.seq
	}
	s.imageSrc, s.errMsg = "", ""
	if f == nil {
		s.ui = Idle
	} else {
		s.ui = PreviewOnly
	}
	return s.seq
}

// beginLoading moves to Loading and hands out the current file.
func (s *State) beginLoading() (*File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil, ErrNoFile
	}
	if s.ui == Loading {
		return nil, ErrInFlight
	}
	s.ui = Loading
	s.imageSrc, s.errMsg = "", ""
	return s.file, nil
}

func (s *State) succeed(src string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui = Success
	s.imageSrc = src
}

func (s *State) fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui = Error
	s.errMsg = msg
}
