package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	app_errors "multi-ai/backend/internal/errors"
	"multi-ai/backend/internal/model"
	"multi-ai/backend/internal/repository"
)

// BundleVersion is written into every export.
const BundleVersion = "1.0.0"

// ImportSummary counts the records written by an import.
type ImportSummary struct {
	Conversations int `json:"conversations"`
	Folders       int `json:"folders"`
	Templates     int `json:"templates"`
}

// DataService exports and imports the workspace as a single JSON bundle.
type DataService struct {
	ws *Workspace
}

func NewDataService(ws *Workspace) *DataService {
	return &DataService{ws: ws}
}

// ExportAll bundles every conversation, folder and template.
func (s *DataService) ExportAll(ctx context.Context) (*model.Bundle, error) {
	data := &model.BundleData{}
	err := s.ws.repo.View(ctx, func(tx repository.Tx) error {
		var err error
		if data.Conversations, err = repository.ListJSON[model.Conversation](ctx, tx, repository.Conversations); err != nil {
			return err
		}
		if data.Folders, err = repository.ListJSON[model.Folder](ctx, tx, repository.Folders); err != nil {
			return err
		}
		data.Templates, err = repository.ListJSON[model.Template](ctx, tx, repository.Templates)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not export data: %w", err)
	}
	return s.bundle(data), nil
}

// ExportSelected bundles only the listed conversations; unknown ids are
// skipped. Folders and templates are exported empty.
func (s *DataService) ExportSelected(ctx context.Context, ids []string) (*model.Bundle, error) {
	data := &model.BundleData{
		Conversations: make(map[string]*model.Conversation, len(ids)),
		Folders:       map[string]*model.Folder{},
		Templates:     map[string]*model.Template{},
	}
	err := s.ws.repo.View(ctx, func(tx repository.Tx) error {
		for _, id := range ids {
			conv, err := getConversation(ctx, tx, id)
			if isNotFound(err) {
				continue
			}
			if err != nil {
				return err
			}
			data.Conversations[id] = conv
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not export conversations: %w", err)
	}
	return s.bundle(data), nil
}

func (s *DataService) bundle(data *model.BundleData) *model.Bundle {
	return &model.Bundle{
		Version:    BundleVersion,
		ExportedAt: s.ws.timestamp(),
		Data:       data,
	}
}

// DecodeBundle parses raw export JSON. A bundle without a data section is
// rejected as a validation failure.
func DecodeBundle(raw []byte) (*model.Bundle, error) {
	var b model.Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("%w: import file is not a valid export: %v", app_errors.ErrValidation, err)
	}
	if b.Data == nil {
		return nil, fmt.Errorf("%w: import file has no data section", app_errors.ErrValidation)
	}
	return &b, nil
}

// Import merges raw export JSON into the store. Each imported record replaces
// the record with the same id; everything else is left alone. Null records and
// records whose id differs from their key are skipped. Nothing is
// written when the bundle is invalid or any write fails.
func (s *DataService) Import(ctx context.Context, raw []byte) (*ImportSummary, error) {
	b, err := DecodeBundle(raw)
	if err != nil {
		return nil, err
	}

	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	var summary *ImportSummary
	skipped := 0
	err = s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		summary, skipped = &ImportSummary{}, 0
		for key, c := range b.Data.Conversations {
			if c == nil || !matchesKey(key, &c.ID) {
				skipped++
				continue
			}
			if err := repository.PutJSON(ctx, tx, repository.Conversations, key, c); err != nil {
				return err
			}
			summary.Conversations++
		}
		for key, f := range b.Data.Folders {
			if f == nil || !matchesKey(key, &f.ID) {
				skipped++
				continue
			}
			if err := repository.PutJSON(ctx, tx, repository.Folders, key, f); err != nil {
				return err
			}
			summary.Folders++
		}
		for key, t := range b.Data.Templates {
			if t == nil || !matchesKey(key, &t.ID) {
				skipped++
				continue
			}
			if err := repository.PutJSON(ctx, tx, repository.Templates, key, t); err != nil {
				return err
			}
			summary.Templates++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not import data: %w", err)
	}

	slog.InfoContext(ctx, "Imported data",
		"conversations", summary.Conversations,
		"folders", summary.Folders,
		"templates", summary.Templates,
		"skipped", skipped,
	)
	s.ws.publish(ctx, nil, false)
	return summary, nil
}

// matchesKey reports whether a record can be stored under key. A record
// without an id takes the key as its id.
func matchesKey(key string, id *string) bool {
	if key == "" {
		return false
	}
	if *id == "" {
		*id = key
	}
	return *id == key
}
