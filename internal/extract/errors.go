package extract

import (
	"errors"
	"fmt"
)

// ErrorKind classifies how extraction failed.
type ErrorKind int

const (
	// KindNone means the error is not an extraction error.
	KindNone ErrorKind = iota
	// KindNoPayload means no bracketed structure was detectable in the text.
	KindNoPayload
	// KindMalformed means a bracketed span was found but did not parse.
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindNoPayload:
		return "no_payload"
	case KindMalformed:
		return "malformed_payload"
	default:
		return "none"
	}
}

// Error is a classified extraction failure. Raw retains the full oracle text
// for diagnostics; it is never surfaced to end users.
type Error struct {
	Kind ErrorKind
	Raw  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("extract: %s: %v", e.Kind, e.err)
	}
	return fmt.Sprintf("extract: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.err }

// Kind reports the extraction failure class of err, or KindNone when err is
// not an extraction error.
func Kind(err error) ErrorKind {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return KindNone
}

func noPayload(raw string) *Error {
	return &Error{Kind: KindNoPayload, Raw: raw}
}

func malformed(raw string, cause error) *Error {
	return &Error{Kind: KindMalformed, Raw: raw, err: cause}
}
