package journal

import (
	"context"
	"fmt"
	"testing"

	"mindwell/models"
)

type memJournalRepo struct {
	entries map[string]*models.JournalEntry
}

func newMemJournalRepo() *memJournalRepo {
	return &memJournalRepo{entries: map[string]*models.JournalEntry{}}
}

func (r *memJournalRepo) Create(ctx context.Context, entry *models.JournalEntry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *memJournalRepo) GetByID(ctx context.Context, userID, id string) (*models.JournalEntry, error) {
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, fmt.Errorf("journal entry not found")
	}
	copied := *e
	return &copied, nil
}

func (r *memJournalRepo) ListByUser(ctx context.Context, userID string, limit, offset int64) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memJournalRepo) Update(ctx context.Context, entry *models.JournalEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return fmt.Errorf("journal entry not found")
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *memJournalRepo) Delete(ctx context.Context, userID, id string) error {
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return fmt.Errorf("journal entry not found")
	}
	delete(r.entries, id)
	return nil
}

func TestJournalCreateAndList(t *testing.T) {
	repo := newMemJournalRepo()
	svc := &DefaultJournalService{Repo: repo}
	ctx := context.Background()

	entry, err := svc.Create(ctx, "user-1", EntryInput{Date: "2026-08-30", Mood: 4, Note: "slept well"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if entry.ID == "" {
		t.Error("expected a generated entry ID")
	}
	if entry.CreatedAt.IsZero() || entry.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	entries, err := svc.List(ctx, "user-1", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	other, err := svc.List(ctx, "user-2", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(other) != 0 {
		t.Error("entries must be scoped to their owner")
	}
}

func TestJournalCreateValidation(t *testing.T) {
	svc := &DefaultJournalService{Repo: newMemJournalRepo()}
	ctx := context.Background()

	cases := []EntryInput{
		{Date: "", Mood: 3},
		{Date: "yesterday", Mood: 3},
		{Date: "2026-08-30", Mood: 0},
		{Date: "2026-08-30", Mood: 6},
	}
	for _, in := range cases {
		if _, err := svc.Create(ctx, "user-1", in); err == nil {
			t.Errorf("input %+v: expected validation error", in)
		}
	}
	if _, err := svc.Create(ctx, "", EntryInput{Date: "2026-08-30", Mood: 3}); err == nil {
		t.Error("expected error for missing user ID")
	}
}

func TestJournalUpdate(t *testing.T) {
	repo := newMemJournalRepo()
	svc := &DefaultJournalService{Repo: repo}
	ctx := context.Background()

	entry, err := svc.Create(ctx, "user-1", EntryInput{Date: "2026-08-30", Mood: 2, Note: "rough day"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, "user-1", entry.ID, EntryInput{Date: "2026-08-30", Mood: 4, Note: "better after a walk"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Mood != 4 || updated.Note != "better after a walk" {
		t.Errorf("update not applied: %+v", updated)
	}

	// Another user cannot touch the entry.
	if _, err := svc.Update(ctx, "user-2", entry.ID, EntryInput{Date: "2026-08-30", Mood: 1}); err == nil {
		t.Error("expected error updating another user's entry")
	}
}

func TestJournalDelete(t *testing.T) {
	repo := newMemJournalRepo()
	svc := &DefaultJournalService{Repo: repo}
	ctx := context.Background()

	entry, err := svc.Create(ctx, "user-1", EntryInput{Date: "2026-08-30", Mood: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, "user-2", entry.ID); err == nil {
		t.Error("expected error deleting another user's entry")
	}
	if err := svc.Delete(ctx, "user-1", entry.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	entries, _ := svc.List(ctx, "user-1", 10, 0)
	if len(entries) != 0 {
		t.Error("entry should be gone after delete")
	}
}
