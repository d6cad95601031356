package journalRepo

import (
	"context"

	"mindwell/database"
	"mindwell/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// JournalRepository persists mood/journal entries.
type JournalRepository interface {
	Create(ctx context.Context, entry *models.JournalEntry) error
	GetByID(ctx context.Context, userID, id string) (*models.JournalEntry, error)
	ListByUser(ctx context.Context, userID string, limit, offset int64) ([]models.JournalEntry, error)
	Update(ctx context.Context, entry *models.JournalEntry) error
	Delete(ctx context.Context, userID, id string) error
}

type mongoJournalRepo struct {
	coll *mongo.Collection
}

// NewMongoJournalRepo returns a repository backed by the "journal_entries"
// collection.
func NewMongoJournalRepo() JournalRepository {
	return &mongoJournalRepo{coll: database.Collection("journal_entries")}
}
