package models

import "errors"

var (
	ErrNotFound             = errors.New("property not found")
	ErrInvalidRecord        = errors.New("invalid property record")
	ErrInvalidCriteriaValue = errors.New("invalid criteria value")
	ErrInvalidViewMode      = errors.New("invalid view mode")
	ErrStorageUnavailable   = errors.New("storage unavailable, changes kept in memory only")
)
