package store

import "github.com/pkg/errors"

// ErrKeyNotFound for missing key.
var ErrKeyNotFound = errors.New("KeyNotFound")
