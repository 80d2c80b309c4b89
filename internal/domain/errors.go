package domain

import "errors"

var (
	ErrExpectationFailed = errors.New("expectation failed")
	ErrInvalidScript     = errors.New("invalid replay script")
	ErrSoundUnavailable  = errors.New("sound resource unavailable")
	ErrUnknownEvent      = errors.New("unknown event")
	ErrUnsupportedSound  = errors.New("unsupported sound format")
)
