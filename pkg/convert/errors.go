package convert

import (
	"errors"
	"fmt"
)

// Geometry failure sentinels. The message text is stable; asset tooling
// matches on it when reporting why a model failed to decode.
var (
	ErrNoVisualScene    = errors.New("No visual scene found")
	ErrNoGeometry       = errors.New("No geometry found")
	ErrNoPositionSource = errors.New("No position source found")
	ErrNoTriangles      = errors.New("No triangles found")
	ErrNoPositionInput  = errors.New("No position input found")
	ErrMalformedData    = errors.New("malformed data")
)

// Kind classifies which stage of the pipeline a conversion failed in.
type Kind int

const (
	// KindIO covers byte-level failures: unreadable files, non-UTF-8 input.
	KindIO Kind = iota
	// KindParse covers malformed document structure.
	KindParse
	// KindGeometry covers documents that parse but cannot be decoded
	// into a mesh.
	KindGeometry
)

// String returns the short name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	case KindGeometry:
		return "geometry"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a conversion failure tagged with the stage it came from.
type Error struct {
	Kind Kind
	Err  error
}

// Error returns the kind-prefixed failure text.
func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the failure text without the kind prefix.
func (e *Error) Message() string {
	return e.Err.Error()
}

func ioError(err error) *Error {
	return &Error{Kind: KindIO, Err: err}
}

func parseError(err error) *Error {
	return &Error{Kind: KindParse, Err: err}
}

func geometryError(err error) *Error {
	return &Error{Kind: KindGeometry, Err: err}
}
