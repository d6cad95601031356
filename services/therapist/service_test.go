package therapist

import (
	"context"
	"fmt"
	"testing"

	"mindwell/models"
)

type memTherapistRepo struct {
	profiles []models.Therapist

	lastLimit  int64
	lastOffset int64
}

func (r *memTherapistRepo) GetByID(ctx context.Context, id string) (*models.Therapist, error) {
	for _, t := range r.profiles {
		if t.ID == id {
			copied := t
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("therapist not found")
}

func (r *memTherapistRepo) List(ctx context.Context, limit, offset int64) ([]models.Therapist, error) {
	r.lastLimit = limit
	r.lastOffset = offset
	return r.profiles, nil
}

func TestTherapistGetByID(t *testing.T) {
	repo := &memTherapistRepo{profiles: []models.Therapist{
		{ID: "therapist-1", Name: "Dana Okafor", Title: "Clinical Psychologist"},
	}}
	svc := &DefaultTherapistService{Repo: repo}
	ctx := context.Background()

	got, err := svc.GetByID(ctx, "therapist-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Dana Okafor" {
		t.Errorf("name = %q, want Dana Okafor", got.Name)
	}

	if _, err := svc.GetByID(ctx, ""); err == nil {
		t.Error("expected error for empty ID")
	}
	if _, err := svc.GetByID(ctx, "nobody"); err == nil {
		t.Error("expected error for unknown ID")
	}
}

func TestTherapistListClampsPaging(t *testing.T) {
	repo := &memTherapistRepo{}
	svc := &DefaultTherapistService{Repo: repo}
	ctx := context.Background()

	if _, err := svc.List(ctx, 0, -5); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastLimit != maxPageSize {
		t.Errorf("limit = %d, want clamped to %d", repo.lastLimit, maxPageSize)
	}
	if repo.lastOffset != 0 {
		t.Errorf("offset = %d, want clamped to 0", repo.lastOffset)
	}

	if _, err := svc.List(ctx, 500, 10); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastLimit != maxPageSize {
		t.Errorf("oversized limit = %d, want clamped to %d", repo.lastLimit, maxPageSize)
	}
	if repo.lastOffset != 10 {
		t.Errorf("offset = %d, want 10", repo.lastOffset)
	}
}
