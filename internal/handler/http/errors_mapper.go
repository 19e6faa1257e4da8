package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody: http.StatusBadRequest,

	service.ErrInvalidDataProvided:           http.StatusBadRequest,
	service.ErrUnsupportedExportFormat:       http.StatusBadRequest,
	service.ErrValidationNoExportDestination: http.StatusBadRequest,

	store.ErrInvalidID:        http.StatusBadRequest,
	store.ErrNotFound:         http.StatusNotFound,
	store.ErrDecode:           http.StatusInternalServerError,
	store.ErrNotADirectory:    http.StatusInternalServerError,
	store.ErrPermissionDenied: http.StatusInternalServerError,
	store.ErrIO:               http.StatusInternalServerError,

	crypto.ErrCrypto: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
