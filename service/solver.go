package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	dmn "github.com/beka-birhanu/vinom-walker/domain"
	"github.com/beka-birhanu/vinom-walker/loader"
	"github.com/beka-birhanu/vinom-walker/maze"
	"github.com/beka-birhanu/vinom-walker/service/i"
	"github.com/beka-birhanu/vinom-walker/walker"
	"github.com/google/uuid"
)

var (
	ErrUnsolved       = errors.New("maze not solved by the wall follower")
	ErrMissingRepo    = errors.New("solution repository is required")
	ErrMissingLogger  = errors.New("logger is required")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNoRecent       = errors.New("recent solutions are not tracked")
)

var _ i.Solver = &MazeSolver{}

// Config carries the dependencies of a MazeSolver. Cache and Recent are optional.
type Config struct {
	Repo     i.SolutionRepo
	Cache    i.SolutionCache
	Recent   i.RecentSolutions
	Logger   i.Logger
	MaxSteps int // Default step budget, <= 0 bounds walks by the maze's state space
}

// MazeSolver parses submitted descriptors, walks them and keeps the results.
type MazeSolver struct {
	repo     i.SolutionRepo
	cache    i.SolutionCache
	recent   i.RecentSolutions
	logger   i.Logger
	maxSteps int
}

// NewSolver creates a MazeSolver from c.
func NewSolver(c *Config) (*MazeSolver, error) {
	if c.Repo == nil {
		return nil, ErrMissingRepo
	}
	if c.Logger == nil {
		return nil, ErrMissingLogger
	}
	return &MazeSolver{
		repo:     c.Repo,
		cache:    c.Cache,
		recent:   c.Recent,
		logger:   c.Logger,
		maxSteps: c.MaxSteps,
	}, nil
}

// Solve implements i.Solver.
func (s *MazeSolver) Solve(ctx context.Context, descriptor string, maxSteps int) (*dmn.Solution, error) {
	d, err := loader.Parse(strings.NewReader(descriptor))
	if err != nil {
		s.logger.Warning(fmt.Sprintf("rejected maze: %s", err))
		return nil, err
	}

	budget := s.budget(d, maxSteps)
	digest := Digest(descriptor, budget)

	if s.cache != nil {
		unlock, err := s.cache.Lock(ctx, digest)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("obtaining solve lock for %s: %s", digest, err))
		} else {
			defer unlock()
		}

		if cached, err := s.cache.Get(ctx, digest); err == nil {
			s.logger.Info(fmt.Sprintf("cache hit for maze %s: solution %s", digest, cached.ID))
			return cached, unsolvedErr(cached)
		}
	}

	sol, err := Walk(d, &walker.Options{MaxSteps: budget})
	if err != nil {
		s.logger.Error(fmt.Sprintf("walking maze %s: %s", digest, err))
		return nil, err
	}
	sol.ID = uuid.New()
	sol.Digest = digest
	sol.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, sol); err != nil {
		s.logger.Error(fmt.Sprintf("saving solution %s: %s", sol.ID, err))
		return nil, fmt.Errorf("saving solution: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, digest, sol); err != nil {
			s.logger.Warning(fmt.Sprintf("caching solution %s: %s", sol.ID, err))
		}
	}
	if s.recent != nil {
		if err := s.recent.Record(ctx, sol.ID, sol.CreatedAt); err != nil {
			s.logger.Warning(fmt.Sprintf("indexing solution %s: %s", sol.ID, err))
		}
	}

	if sol.Solved {
		s.logger.Info(fmt.Sprintf("solved %dx%d maze in %d steps: solution %s", sol.Rows, sol.Columns, sol.Steps, sol.ID))
	} else {
		s.logger.Info(fmt.Sprintf("gave up on %dx%d maze after %d steps: solution %s", sol.Rows, sol.Columns, sol.Steps, sol.ID))
	}
	return sol, unsolvedErr(sol)
}

// ByID implements i.Solver.
func (s *MazeSolver) ByID(ctx context.Context, id uuid.UUID) (*dmn.Solution, error) {
	return s.repo.ByID(ctx, id)
}

// Recent implements i.Solver.
func (s *MazeSolver) Recent(ctx context.Context, limit int) ([]uuid.UUID, int64, error) {
	if s.recent == nil {
		return nil, 0, ErrNoRecent
	}
	ids, err := s.recent.Latest(ctx, int64(limit))
	if err != nil {
		return nil, 0, err
	}
	total, err := s.recent.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

// Generate implements i.Solver.
func (s *MazeSolver) Generate(width, height int, seed int64) (string, error) {
	d, err := maze.Generate(width, height, seed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	var b strings.Builder
	if err := loader.Format(&b, d); err != nil {
		return "", err
	}
	return b.String(), nil
}

// budget picks the step budget for d: the request's, then the solver's,
// then the number of walker states on d.
func (s *MazeSolver) budget(d *maze.Descriptor, maxSteps int) int {
	if maxSteps > 0 {
		return maxSteps
	}
	if s.maxSteps > 0 {
		return s.maxSteps
	}
	return d.Rows * d.Columns * len(maze.Directions)
}

// Walk builds a grid from d, renders it, runs the wall follower with opts
// and renders the result. A walk that stops short of the exit yields an
// unsolved solution, not an error.
func Walk(d *maze.Descriptor, opts *walker.Options) (*dmn.Solution, error) {
	g, err := maze.New(d)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &walker.Options{}
	}

	sol := &dmn.Solution{
		Rows:     d.Rows,
		Columns:  d.Columns,
		Entry:    d.Entry,
		Exit:     d.Exit,
		MaxSteps: opts.MaxSteps,
		Unsolved: g.Lines(),
	}

	res, err := walker.New(g, opts).Solve(d.Entry, d.Exit)
	switch {
	case err == nil:
		sol.Solved = true
	case errors.Is(err, walker.ErrStepBudgetExhausted), errors.Is(err, walker.ErrTrapped):
		sol.Reason = err.Error()
	default:
		return nil, err
	}
	sol.Steps = res.Steps
	sol.Path = g.Lines()
	return sol, nil
}

// Digest identifies a descriptor walked under a step budget.
func Digest(descriptor string, maxSteps int) string {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(maxSteps)))
	h.Write([]byte{'\n'})
	h.Write([]byte(descriptor))
	return hex.EncodeToString(h.Sum(nil))
}

func unsolvedErr(s *dmn.Solution) error {
	if s.Solved {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsolved, s.Reason)
}
