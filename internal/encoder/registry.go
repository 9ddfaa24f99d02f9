package encoder

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Registry maps format names to encoders.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry with the PNG and JPEG encoders. PNG output
// carries the given DPI.
func NewRegistry(dpi int) *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}
	for _, enc := range []Encoder{
		&PNGEncoder{DPI: dpi},
		&JPEGEncoder{},
	} {
		r.encoders[enc.Format()] = enc
	}
	return r
}

// Get returns an encoder for the given format, or nil if unknown.
// "jpg" is accepted as an alias of "jpeg".
func (r *Registry) Get(format string) Encoder {
	format = strings.ToLower(format)
	if format == "jpg" {
		format = "jpeg"
	}
	return r.encoders[format]
}

// ForPath picks an encoder from a file extension.
func (r *Registry) ForPath(path string) (Encoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("no extension in %q", path)
	}
	enc := r.Get(ext)
	if enc == nil {
		return nil, fmt.Errorf("unsupported output format %q (want png or jpeg)", ext)
	}
	return enc, nil
}

// Available returns the format names in priority order.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range []string{"png", "jpeg"} {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	return fmt.Sprintf("encoders: %s", strings.Join(r.Available(), ", "))
}
