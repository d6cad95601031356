package journal

import (
	"context"
	"fmt"
	"time"

	journalRepo "mindwell/database/repository/journal"
	"mindwell/models"

	"github.com/google/uuid"
)

// JournalService owns mood/journal entry CRUD, scoped to the entry owner.
type JournalService interface {
	Create(ctx context.Context, userID string, in EntryInput) (*models.JournalEntry, error)
	List(ctx context.Context, userID string, limit, offset int64) ([]models.JournalEntry, error)
	Update(ctx context.Context, userID, entryID string, in EntryInput) (*models.JournalEntry, error)
	Delete(ctx context.Context, userID, entryID string) error
}

// EntryInput is the user-editable portion of a journal entry.
type EntryInput struct {
	Date string `json:"date"`
	Mood int    `json:"mood"`
	Note string `json:"note"`
}

// DefaultJournalService is the production implementation.
type DefaultJournalService struct {
	Repo journalRepo.JournalRepository
}

const maxPageSize = 100

func validateInput(in EntryInput) error {
	if in.Date == "" {
		return fmt.Errorf("missing entry date")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("invalid entry date %q: %w", in.Date, err)
	}
	if in.Mood < 1 || in.Mood > 5 {
		return fmt.Errorf("mood must be between 1 and 5, got %d", in.Mood)
	}
	return nil
}

func (s *DefaultJournalService) Create(ctx context.Context, userID string, in EntryInput) (*models.JournalEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("missing user ID")
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	now := time.Now()
	entry := &models.JournalEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      in.Date,
		Mood:      in.Mood,
		Note:      in.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *DefaultJournalService) List(ctx context.Context, userID string, limit, offset int64) ([]models.JournalEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("missing user ID")
	}
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *DefaultJournalService) Update(ctx context.Context, userID, entryID string, in EntryInput) (*models.JournalEntry, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	entry, err := s.Repo.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	entry.Date = in.Date
	entry.Mood = in.Mood
	entry.Note = in.Note
	entry.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *DefaultJournalService) Delete(ctx context.Context, userID, entryID string) error {
	if userID == "" || entryID == "" {
		return fmt.Errorf("missing user or entry ID")
	}
	return s.Repo.Delete(ctx, userID, entryID)
}
