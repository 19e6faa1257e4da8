package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/utils"
	"github.com/MKhiriev/go-journal-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Create implements [ServerAdapter]. It POSTs the entry to POST /api/entry
// and returns the id from the response body.
func (h *httpServerAdapter) Create(ctx context.Context, req models.JournalRequest) (string, error) {
	var created models.IDResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/entry")
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("func", "httpServerAdapter.Create").Str("id", created.ID).Msg("entry created")
	return created.ID, nil
}

// Get implements [ServerAdapter] via GET /api/entry/{id}.
func (h *httpServerAdapter) Get(ctx context.Context, id string) (models.Journal, error) {
	var record models.Journal

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&record).
		Get("/api/entry/{id}")
	if err != nil {
		return models.Journal{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Journal{}, err
	}

	return record, nil
}

// List implements [ServerAdapter] via GET /api/entries. The tag query
// parameter is sent only when filter.Tag is set, so an empty tag is still a
// filter.
func (h *httpServerAdapter) List(ctx context.Context, filter models.ListFilter) ([]models.Journal, error) {
	var records []models.Journal

	req := h.client.R().
		SetContext(ctx).
		SetResult(&records)
	if filter.Tag != nil {
		req.SetQueryParam("tag", *filter.Tag)
	}

	resp, err := req.Get("/api/entries")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

// Update implements [ServerAdapter] via PUT /api/entry/{id}.
func (h *httpServerAdapter) Update(ctx context.Context, id string, req models.JournalRequest) (models.Journal, error) {
	var record models.Journal

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&record).
		Put("/api/entry/{id}")
	if err != nil {
		return models.Journal{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Journal{}, err
	}

	return record, nil
}

// Delete implements [ServerAdapter] via DELETE /api/entry/{id}.
func (h *httpServerAdapter) Delete(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/api/entry/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// Export implements [ServerAdapter] via POST /api/export.
func (h *httpServerAdapter) Export(ctx context.Context, format models.ExportFormat) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("format", string(format)).
		Post("/api/export")
	if err != nil {
		return nil, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Render implements [ServerAdapter] via GET /api/export.
func (h *httpServerAdapter) Render(ctx context.Context, format models.ExportFormat) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("format", string(format)).
		Get("/api/export")
	if err != nil {
		return nil, fmt.Errorf("render request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// GetVersion implements [ServerAdapter] via GET /api/version/.
func (h *httpServerAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
