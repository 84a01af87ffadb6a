package models

import "github.com/pkg/errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrKeyNotFound      = errors.New("key not found")
)
