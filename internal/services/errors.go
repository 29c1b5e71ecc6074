package services

import (
	"errors"
	"fmt"
)

var (
	ErrExtraction    = errors.New("failed to extract text from document")
	ErrValidation    = errors.New("invalid evaluation request")
	ErrService       = errors.New("model service call failed")
	ErrNormalization = errors.New("failed to parse model response")
)

// Kind names used in API error responses.
const (
	KindExtraction    = "extraction"
	KindValidation    = "validation"
	KindService       = "service"
	KindNormalization = "normalization"
	KindInternal      = "internal"
)

// KindOf classifies err into one of the evaluation error kinds.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrExtraction):
		return KindExtraction
	case errors.Is(err, ErrService):
		return KindService
	case errors.Is(err, ErrNormalization):
		return KindNormalization
	default:
		return KindInternal
	}
}

// ReplyError carries the raw model reply alongside a normalization failure so
// callers can show what the model actually returned.
type ReplyError struct {
	Raw string
	Err error
}

func (e *ReplyError) Error() string {
	return fmt.Sprintf("%v (raw reply: %d characters)", e.Err, len(e.Raw))
}

func (e *ReplyError) Unwrap() error {
	return e.Err
}

// RawReply returns the model reply attached to err, if any.
func RawReply(err error) (string, bool) {
	var replyErr *ReplyError
	if errors.As(err, &replyErr) {
		return replyErr.Raw, true
	}
	return "", false
}
