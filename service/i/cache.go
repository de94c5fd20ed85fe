package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-walker/domain"
)

// SolutionCache keeps recently solved mazes keyed by descriptor digest.
type SolutionCache interface {
	// Get returns the cached solution for digest or an error on a miss.
	Get(ctx context.Context, digest string) (*dmn.Solution, error)

	// Set stores s under digest.
	Set(ctx context.Context, digest string, s *dmn.Solution) error

	// Lock serializes work on digest across instances. The returned
	// function releases the lock.
	Lock(ctx context.Context, digest string) (func(), error)
}
