package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
)

// getServerVersion answers GET /api/version/ with the build version as plain
// text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())
	logger.FromRequest(r).Debug().Str("func", "*Handler.getServerVersion").Str("version", serverVersion).Send()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(serverVersion))
}
