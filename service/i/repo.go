package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-walker/domain"
	"github.com/google/uuid"
)

// SolutionRepo defines the interface for solution persistence operations.
type SolutionRepo interface {
	// Save inserts or updates a solution in the repository.
	Save(ctx context.Context, s *dmn.Solution) error

	// ByID retrieves a solution by its unique ID.
	// Returns an error if the solution is not found or in case of an unexpected error.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Solution, error)
}
