package therapistRepo

import (
	"context"

	"mindwell/database"
	"mindwell/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TherapistRepository provides read access to therapist profiles.
type TherapistRepository interface {
	GetByID(ctx context.Context, id string) (*models.Therapist, error)
	List(ctx context.Context, limit, offset int64) ([]models.Therapist, error)
}

type mongoTherapistRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapistRepo returns a repository backed by the "therapists"
// collection.
func NewMongoTherapistRepo() TherapistRepository {
	return &mongoTherapistRepo{coll: database.Collection("therapists")}
}
