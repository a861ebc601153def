package domain

import "errors"

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrNoSections      = errors.New("no sections available")
)
