package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoExportDestination = errors.New("no export destination was given")
)
