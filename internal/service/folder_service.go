package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	app_errors "multi-ai/backend/internal/errors"
	"multi-ai/backend/internal/model"
	"multi-ai/backend/internal/repository"
)

// FolderService manages folders. Folders never own conversations: deleting
// one moves its conversations back to "no folder".
type FolderService struct {
	ws *Workspace
}

func NewFolderService(ws *Workspace) *FolderService {
	return &FolderService{ws: ws}
}

func getFolder(ctx context.Context, tx repository.Tx, id string) (*model.Folder, error) {
	f, err := repository.GetJSON[model.Folder](ctx, tx, repository.Folders, id)
	if err != nil {
		return nil, notFound(err, "folder", id)
	}
	return f, nil
}

// Create adds a folder after every existing one. Its order is the current
// time in milliseconds, or one past the highest order if that is larger.
func (s *FolderService) Create(ctx context.Context, name string) (*model.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: folder name cannot be empty", app_errors.ErrValidation)
	}

	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	now := s.ws.timestamp()
	folder := &model.Folder{
		ID:        newID(prefixFolder),
		Name:      name,
		CreatedAt: now,
	}

	err := s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		existing, err := repository.ListJSON[model.Folder](ctx, tx, repository.Folders)
		if err != nil {
			return err
		}
		order := now.UnixMilli()
		for _, f := range existing {
			if f.Order >= order {
				order = f.Order + 1
			}
		}
		folder.Order = order
		return repository.PutJSON(ctx, tx, repository.Folders, folder.ID, folder)
	})
	if err != nil {
		return nil, fmt.Errorf("could not create folder: %w", err)
	}

	slog.InfoContext(ctx, "Created folder", "folder_id", folder.ID)
	s.ws.publish(ctx, nil, false)
	return folder, nil
}

func (s *FolderService) Rename(ctx context.Context, id, name string) (*model.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: folder name cannot be empty", app_errors.ErrValidation)
	}

	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	var folder *model.Folder
	err := s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		var err error
		folder, err = getFolder(ctx, tx, id)
		if err != nil {
			return err
		}
		folder.Name = name
		return repository.PutJSON(ctx, tx, repository.Folders, folder.ID, folder)
	})
	if err != nil {
		return nil, err
	}

	s.ws.publish(ctx, nil, false)
	return folder, nil
}

// Delete removes the folder and, in the same transaction, moves every
// conversation that referenced it to no folder.
func (s *FolderService) Delete(ctx context.Context, id string) error {
	s.ws.mu.Lock()
	defer s.ws.mu.Unlock()

	moved := 0
	err := s.ws.repo.Update(ctx, func(tx repository.Tx) error {
		moved = 0
		if _, err := getFolder(ctx, tx, id); err != nil {
			return err
		}
		convs, err := repository.ListJSON[model.Conversation](ctx, tx, repository.Conversations)
		if err != nil {
			return err
		}
		for _, c := range convs {
			if !c.InFolder(id) {
				continue
			}
			c.FolderID = nil
			c.UpdatedAt = s.ws.touch(c.UpdatedAt)
			if err := putConversation(ctx, tx, c); err != nil {
				return err
			}
			moved++
		}
		return tx.Delete(ctx, repository.Folders, id)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Deleted folder", "folder_id", id, "conversations_moved", moved)
	s.ws.publish(ctx, nil, false)
	return nil
}

// List returns folders in display order.
func (s *FolderService) List(ctx context.Context) ([]*model.Folder, error) {
	var out []*model.Folder
	err := s.ws.repo.View(ctx, func(tx repository.Tx) error {
		all, err := repository.ListJSON[model.Folder](ctx, tx, repository.Folders)
		if err != nil {
			return err
		}
		out = make([]*model.Folder, 0, len(all))
		for _, f := range all {
			out = append(out, f)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not list folders: %w", err)
	}
	sortByOrder(out)
	return out, nil
}
