package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-walker/domain"
	"github.com/beka-birhanu/vinom-walker/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	saveTimeout  = time.Second
	queryTimeout = 2 * time.Second
)

var _ i.SolutionRepo = &SolutionRepo{}

// SolutionRepo handles the persistence of solved mazes.
type SolutionRepo struct {
	collection *mongo.Collection
}

// NewSolutionRepo creates a new SolutionRepo with the given MongoDB client, database name, and collection name.
func NewSolutionRepo(client *mongo.Client, dbName, collectionName string) *SolutionRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &SolutionRepo{
		collection: collection,
	}
}

// Save inserts or updates a solution in the repository.
func (r *SolutionRepo) Save(ctx context.Context, s *dmn.Solution) error {
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	filter := bson.M{"_id": s.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, filter, s, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByID retrieves a solution by its ID.
// Returns dmn.ErrSolutionNotFound if there is none.
func (r *SolutionRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Solution, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	var s dmn.Solution
	if err := r.collection.FindOne(ctx, filter).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrSolutionNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &s, nil
}
