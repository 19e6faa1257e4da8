package client

import "errors"

var ErrUnknownExportFormat = errors.New("unknown export format")
