package therapist

import (
	"context"
	"fmt"

	therapistRepo "mindwell/database/repository/therapist"
	"mindwell/models"
)

// TherapistService exposes profile browsing.
type TherapistService interface {
	GetByID(ctx context.Context, id string) (*models.Therapist, error)
	List(ctx context.Context, limit, offset int64) ([]models.Therapist, error)
}

// DefaultTherapistService is the production implementation.
type DefaultTherapistService struct {
	Repo therapistRepo.TherapistRepository
}

const maxPageSize = 50

func (s *DefaultTherapistService) GetByID(ctx context.Context, id string) (*models.Therapist, error) {
	if id == "" {
		return nil, fmt.Errorf("missing therapist ID")
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultTherapistService) List(ctx context.Context, limit, offset int64) ([]models.Therapist, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.List(ctx, limit, offset)
}
