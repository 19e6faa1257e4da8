// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/store"
	"github.com/MKhiriev/go-journal-keeper/models"
)

type journalService struct {
	envelopes store.EnvelopeStore
	scanner   store.Scanner
	codec     crypto.Codec
	ids       IDGenerator

	logger *logger.Logger
}

// NewJournalService wires the record API over the envelope store and the
// directory scanner. codec must be the same codec the scanner was built with.
func NewJournalService(storages *store.Storages, codec crypto.Codec, ids IDGenerator, logger *logger.Logger) JournalService {
	return &journalService{
		envelopes: storages.Envelopes,
		scanner:   storages.Scanner,
		codec:     codec,
		ids:       ids,
		logger:    logger,
	}
}

func (j *journalService) Create(ctx context.Context, req models.JournalRequest) (string, error) {
	log := logger.FromContextOr(ctx, j.logger)

	record := newRecord(j.ids.Generate(), req)
	if err := j.save(ctx, record); err != nil {
		log.Err(err).Str("func", "journalService.Create").Msg("failed to create journal record")
		return "", fmt.Errorf("create journal record: %w", err)
	}

	log.Info().Str("func", "journalService.Create").Str("id", record.ID).Msg("journal record created")
	return record.ID, nil
}

func (j *journalService) Get(ctx context.Context, id string) (models.Journal, error) {
	record, err := j.load(ctx, id)
	if err != nil {
		return models.Journal{}, fmt.Errorf("get journal record %s: %w", id, err)
	}

	return record, nil
}

func (j *journalService) List(ctx context.Context, filter models.ListFilter) ([]models.Journal, error) {
	records, err := j.scanner.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journal records: %w", err)
	}

	if filter.Tag != nil {
		return store.FilterByTag(records, *filter.Tag), nil
	}

	return records, nil
}

func (j *journalService) Update(ctx context.Context, id string, req models.JournalRequest) (models.Journal, error) {
	log := logger.FromContextOr(ctx, j.logger)

	// the current envelope must exist and open under this key
	if _, err := j.load(ctx, id); err != nil {
		return models.Journal{}, fmt.Errorf("update journal record %s: %w", id, err)
	}

	record := newRecord(id, req)
	if err := j.save(ctx, record); err != nil {
		log.Err(err).Str("func", "journalService.Update").Str("id", id).Msg("failed to update journal record")
		return models.Journal{}, fmt.Errorf("update journal record %s: %w", id, err)
	}

	log.Info().Str("func", "journalService.Update").Str("id", id).Msg("journal record updated")
	return record, nil
}

func (j *journalService) Delete(ctx context.Context, id string) error {
	if err := j.envelopes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete journal record %s: %w", id, err)
	}

	logger.FromContextOr(ctx, j.logger).Info().Str("func", "journalService.Delete").Str("id", id).Msg("journal record deleted")
	return nil
}

func (j *journalService) Export(ctx context.Context, destination string, format models.ExportFormat) error {
	log := logger.FromContextOr(ctx, j.logger)

	data, err := j.Render(ctx, format)
	if err != nil {
		return err
	}

	if err = store.WriteFileAtomic(destination, data); err != nil {
		log.Err(err).
			Str("func", "journalService.Export").
			Str("destination", destination).
			Msg("failed to write export file")
		return fmt.Errorf("export journal: %w", err)
	}

	log.Info().
		Str("func", "journalService.Export").
		Str("destination", destination).
		Str("format", string(format)).
		Int("bytes", len(data)).
		Msg("journal exported")
	return nil
}

func (j *journalService) Render(ctx context.Context, format models.ExportFormat) ([]byte, error) {
	records, err := j.List(ctx, models.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("export journal: %w", err)
	}

	return renderExport(records, format)
}

func (j *journalService) save(ctx context.Context, record models.Journal) error {
	text, err := store.EncodeJournal(record)
	if err != nil {
		return err
	}

	content, nonce, err := j.codec.Seal(text)
	if err != nil {
		return err
	}

	return j.envelopes.Write(ctx, record.ID, models.Envelope{Content: content, Nonce: nonce})
}

func (j *journalService) load(ctx context.Context, id string) (models.Journal, error) {
	envelope, err := j.envelopes.Read(ctx, id)
	if err != nil {
		return models.Journal{}, err
	}

	text, err := j.codec.Open(envelope.Content, envelope.Nonce)
	if err != nil {
		return models.Journal{}, err
	}

	record, err := store.DecodeJournal(text)
	if err != nil {
		return models.Journal{}, err
	}

	if err = store.CheckRecordID(record, id); err != nil {
		return models.Journal{}, err
	}

	return record, nil
}

func newRecord(id string, req models.JournalRequest) models.Journal {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.Journal{
		ID:    id,
		Title: req.Title,
		Body:  req.Body,
		Tags:  tags,
	}
}
