package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-walker/domain"
	"github.com/google/uuid"
)

// Solver runs the wall follower on submitted mazes.
type Solver interface {
	// Solve parses a text descriptor and walks it. maxSteps <= 0 selects the
	// solver's default budget. An unsolved walk returns the solution together
	// with an error.
	Solve(ctx context.Context, descriptor string, maxSteps int) (*dmn.Solution, error)

	// ByID returns a previously computed solution.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Solution, error)

	// Recent returns up to limit IDs of the newest stored solutions and the
	// number of IDs held.
	Recent(ctx context.Context, limit int) ([]uuid.UUID, int64, error)

	// Generate returns the text descriptor of a random perfect maze.
	Generate(width, height int, seed int64) (string, error)
}
