// Package imageref normalizes the image references returned by generation
// providers and by the generate endpoint. Both the server and the client use
// it, so the field priority lives in exactly one place.
package imageref

import (
	"encoding/base64"
	"strings"
)

type Kind int

const (
	URL Kind = iota + 1
	DataURI
	Base64
)

func (k Kind) String() string {
	switch k {
	case URL:
		return "url"
	case DataURI:
		return "data_uri"
	case Base64:
		return "base64"
	default:
		return "unknown"
	}
}

const (
	dataPrefix   = "data:"
	httpPrefix   = "http"
	pngDataImage = "data:image/png;base64,"
)

// Field names in priority order. Every name in a tier is checked before the
// next tier is looked at. imageDataUrl is only produced by the generate
// endpoint, so providers never get it.
var (
	providerURLFields = []string{"image_url", "imageUrl"}
	endpointURLFields = []string{"imageUrl", "imageDataUrl", "image_url"}
	base64Fields      = []string{"image_base64", "imageBase64"}
	outputField       = "output"
)

// Ref is a single image reference. Exactly one Kind is set per value.
type Ref struct {
	Kind  Kind
	Value string
}

// FromFields picks the image reference out of a decoded provider response.
// Priority: url fields, then base64 fields, then the first element of a
// non-empty "output" array. Later tiers are ignored once one matches.
func FromFields(fields map[string]any) (Ref, bool) {
	return fromFields(fields, providerURLFields)
}

// FromResponse is FromFields for generate endpoint responses, which may also
// carry imageDataUrl.
func FromResponse(fields map[string]any) (Ref, bool) {
	return fromFields(fields, endpointURLFields)
}

func fromFields(fields map[string]any, urlFields []string) (Ref, bool) {
	if v, ok := firstString(fields, urlFields); ok {
		return linkRef(v), true
	}
	if v, ok := firstString(fields, base64Fields); ok {
		if strings.HasPrefix(v, dataPrefix) {
			return Ref{Kind: DataURI, Value: v}, true
		}
		return Ref{Kind: Base64, Value: v}, true
	}
	if out, ok := fields[outputField].([]any); ok && len(out) > 0 {
		if v, ok := out[0].(string); ok && v != "" {
			return linkRef(v), true
		}
	}
	return Ref{}, false
}

// EncodeBytes wraps a raw image body into a base64 reference.
func EncodeBytes(raw []byte) Ref {
	return Ref{Kind: Base64, Value: base64.StdEncoding.EncodeToString(raw)}
}

// Src returns a value an <img> can render: data URIs and absolute URLs pass
// through, anything else is treated as raw base64 PNG.
func (r Ref) Src() string {
	if strings.HasPrefix(r.Value, dataPrefix) || strings.HasPrefix(r.Value, httpPrefix) {
		return r.Value
	}
	return pngDataImage + r.Value
}

// DataURI returns the reference as a data URI. URLs are returned unchanged.
func (r Ref) DataURI() string {
	if r.Kind == Base64 {
		return pngDataImage + r.Value
	}
	return r.Value
}

func linkRef(v string) Ref {
	if strings.HasPrefix(v, dataPrefix) {
		return Ref{Kind: DataURI, Value: v}
	}
	return Ref{Kind: URL, Value: v}
}

func firstString(fields map[string]any, names []string) (string, bool) {
	for _, name := range names {
		if v, ok := fields[name].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
