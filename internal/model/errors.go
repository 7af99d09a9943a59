package model

import "github.com/pkg/errors"

var (
	// ErrEmptyDirectory is returned when navigation reaches a directory with no entries.
	ErrEmptyDirectory = errors.New("directory is empty")
	// ErrNotText is returned when a file is not valid UTF-8 text.
	ErrNotText = errors.New("file is not valid UTF-8 text")
)
