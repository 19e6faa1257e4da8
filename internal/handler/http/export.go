package http

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/internal/utils"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// exportEntries answers POST /api/export. The journal is written to the
// configured export path, with the extension adjusted to the format, and
// the resulting file is served as an attachment.
func (h *Handler) exportEntries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	format, ok := models.ParseExportFormat(r.URL.Query().Get("format"))
	if !ok {
		log.Error().Str("func", "*Handler.exportEntries").Str("format", r.URL.Query().Get("format")).Msg("unsupported export format")
		http.Error(w, service.ErrUnsupportedExportFormat.Error(), http.StatusBadRequest)
		return
	}

	destination := format.Destination(h.exportPath)
	if err := h.services.JournalService.Export(r.Context(), destination, format); err != nil {
		log.Err(err).Str("func", "*Handler.exportEntries").Msg("error exporting journal")
		http.Error(w, "error exporting journal", statusFromError(err))
		return
	}

	file, err := os.Open(destination)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportEntries").Msg("error opening export file")
		http.Error(w, "error opening export file", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportEntries").Msg("error reading export file info")
		http.Error(w, "error opening export file", http.StatusInternalServerError)
		return
	}

	name := filepath.Base(destination)
	w.Header().Set("Content-Type", contentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeContent(w, r, name, info.ModTime(), file)
}

// renderEntries answers GET /api/export with the rendered journal in the
// response body; nothing is written on the server.
func (h *Handler) renderEntries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	format, ok := models.ParseExportFormat(r.URL.Query().Get("format"))
	if !ok {
		log.Error().Str("func", "*Handler.renderEntries").Str("format", r.URL.Query().Get("format")).Msg("unsupported export format")
		http.Error(w, service.ErrUnsupportedExportFormat.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.services.JournalService.Render(r.Context(), format)
	if err != nil {
		log.Err(err).Str("func", "*Handler.renderEntries").Msg("error rendering journal")
		http.Error(w, "error rendering journal", statusFromError(err))
		return
	}

	utils.WriteDocument(w, contentType(format), data)
}

func contentType(format models.ExportFormat) string {
	if format == models.ExportHTML {
		return "text/html; charset=utf-8"
	}
	return "text/markdown; charset=utf-8"
}
