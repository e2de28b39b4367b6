package marshal

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a DecodeError.
type ErrorKind int

const (
	// NotADictionary means the buffer does not start with '{'.
	NotADictionary ErrorKind = iota + 1
	// UnexpectedTag means a key tag was not 's' or a value tag was neither 's' nor 'i'.
	UnexpectedTag
	// TruncatedStream means a length, integer or string ran past the end of the buffer.
	TruncatedStream
)

func (k ErrorKind) String() string {
	switch k {
	case NotADictionary:
		return "not a dictionary"
	case UnexpectedTag:
		return "unexpected tag"
	case TruncatedStream:
		return "truncated stream"
	}
	return "unknown"
}

// PairPos tells whether a tag was read for the key or the value of a pair.
type PairPos int

const (
	PosKey PairPos = iota + 1
	PosValue
)

func (p PairPos) String() string {
	switch p {
	case PosKey:
		return "key"
	case PosValue:
		return "value"
	}
	return ""
}

var (
	ErrNotADictionary  = errors.New("not a dictionary")
	ErrUnexpectedTag   = errors.New("unexpected tag")
	ErrTruncatedStream = errors.New("truncated stream")
)

// DecodeError is returned for any malformed or unsupported input.
type DecodeError struct {
	Kind ErrorKind
	// Tag and Pos are set for UnexpectedTag.
	Tag byte
	Pos PairPos
	// Offset is the position in the buffer where the problem was found.
	Offset int
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case UnexpectedTag:
		want := "'s'"
		if e.Pos == PosValue {
			want = "'s' or 'i'"
		}
		return fmt.Sprintf("marshal: expected %v for %v at offset %d, got %d", want, e.Pos, e.Offset, e.Tag)
	case TruncatedStream:
		return fmt.Sprintf("marshal: truncated stream at offset %d", e.Offset)
	}
	return fmt.Sprintf("marshal: %v at offset %d", e.Kind, e.Offset)
}

// Is makes errors.Is match the sentinel of the same kind.
func (e *DecodeError) Is(target error) bool {
	switch target {
	case ErrNotADictionary:
		return e.Kind == NotADictionary
	case ErrUnexpectedTag:
		return e.Kind == UnexpectedTag
	case ErrTruncatedStream:
		return e.Kind == TruncatedStream
	}
	return false
}
