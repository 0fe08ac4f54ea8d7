package service

import (
	"context"

	"journal/internal/model"
	"journal/internal/repo"
)

type EntryInput struct {
	Title    string
	Notes    string
	PhotoURL string
}

type EntryService struct {
	entries *repo.EntryRepo
}

func NewEntryService(entries *repo.EntryRepo) *EntryService {
	return &EntryService{entries: entries}
}

func (s *EntryService) List(ctx context.Context, userID int64) ([]*model.Entry, error) {
	return s.entries.ListByUser(ctx, userID)
}

func (s *EntryService) Get(ctx context.Context, userID, entryID int64) (*model.Entry, error) {
	return s.entries.GetByID(ctx, userID, entryID)
}

// Create takes the owner from the verified session, never from client input.
func (s *EntryService) Create(ctx context.Context, userID int64, in EntryInput) (*model.Entry, error) {
	entry := &model.Entry{
		Title:    in.Title,
		Notes:    in.Notes,
		PhotoURL: in.PhotoURL,
		UserID:   userID,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *EntryService) Update(ctx context.Context, userID, entryID int64, in EntryInput) (*model.Entry, error) {
	entry := &model.Entry{
		EntryID:  entryID,
		Title:    in.Title,
		Notes:    in.Notes,
		PhotoURL: in.PhotoURL,
		UserID:   userID,
	}
	if err := s.entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *EntryService) Delete(ctx context.Context, userID, entryID int64) error {
	return s.entries.Delete(ctx, userID, entryID)
}
