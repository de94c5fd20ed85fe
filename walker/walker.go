// Package walker solves mazes with the right-hand wall-following rule.
//
// At every cell the walker prefers turning right, then going straight, then
// turning left and finally turning around, and advances exactly one cell.
// The rule does not look for the shortest path, and on mazes where it
// cannot reach the exit it walks forever unless a step budget is set.
package walker

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-walker/maze"
)

// InitialHeading is the direction the walker faces on the entry cell.
const InitialHeading = maze.South

var (
	ErrStepBudgetExhausted = errors.New("exit not reached within the step budget")
	ErrTrapped             = errors.New("walker is walled in on all four sides")
)

// Rule identifies which branch of the wall-following rule chose a step.
type Rule uint8

const (
	TurnRight Rule = iota
	Straight
	TurnLeft
	TurnAround
)

// String returns the name of the rule.
func (r Rule) String() string {
	switch r {
	case TurnRight:
		return "right"
	case Straight:
		return "straight"
	case TurnLeft:
		return "left"
	case TurnAround:
		return "around"
	default:
		return "unknown"
	}
}

// State is the walker's position and heading.
type State struct {
	Position maze.Position
	Heading  maze.Direction
}

// StepFunc observes a transition. step counts from 1.
type StepFunc func(step int, from, to State, rule Rule)

// Options tunes a Walker.
type Options struct {
	// MaxSteps bounds the number of steps. Zero or less walks without a
	// bound, which never returns on mazes the rule cannot solve.
	MaxSteps int
	// OnStep, when set, is called after every step.
	OnStep StepFunc
}

// Result reports how a walk ended.
type Result struct {
	Steps int   // Number of cells advanced
	Final State // Where the walker stopped
}

// Walker runs the wall follower over a grid, marking visited cells.
type Walker struct {
	grid *maze.Grid
	opts Options
}

// New returns a walker for g. A nil opts walks without a step budget.
func New(g *maze.Grid, opts *Options) *Walker {
	w := &Walker{grid: g}
	if opts != nil {
		w.opts = *opts
	}
	return w
}

// Solve walks from entry until it stands on exit, marking every cell it
// stands on as Visited, the exit included.
//
// With a step budget the walk stops with ErrStepBudgetExhausted once the
// budget is spent. A walker that starts enclosed by walls on all four sides
// stops with ErrTrapped. The returned result is valid in both cases.
func (w *Walker) Solve(entry, exit maze.Position) (*Result, error) {
	if !w.grid.InBounds(entry) {
		return nil, fmt.Errorf("%w: entry %v", maze.ErrPositionOutOfBounds, entry)
	}
	if !w.grid.InBounds(exit) {
		return nil, fmt.Errorf("%w: exit %v", maze.ErrPositionOutOfBounds, exit)
	}

	state := State{Position: entry, Heading: InitialHeading}
	steps := 0
	for state.Position != exit {
		w.grid.MarkVisited(state.Position)
		if w.opts.MaxSteps > 0 && steps >= w.opts.MaxSteps {
			return &Result{Steps: steps, Final: state}, fmt.Errorf("%w: gave up after %d steps at %v", ErrStepBudgetExhausted, steps, state.Position)
		}

		next, rule := w.decide(state)
		if w.grid.IsWall(next.Position) {
			return &Result{Steps: steps, Final: state}, fmt.Errorf("%w: at %v", ErrTrapped, state.Position)
		}

		steps++
		if w.opts.OnStep != nil {
			w.opts.OnStep(steps, state, next, rule)
		}
		state = next
	}
	w.grid.MarkVisited(state.Position)

	return &Result{Steps: steps, Final: state}, nil
}

// decide applies the wall-following rule to s and returns the next state.
// Turning around is chosen without looking, so the returned position may be
// a wall when the walker is enclosed.
func (w *Walker) decide(s State) (State, Rule) {
	pos, dir := s.Position, s.Heading

	switch {
	case !w.grid.IsWallAhead(pos, dir.TurnRight()):
		dir = dir.TurnRight()
		return State{Position: pos.Step(dir), Heading: dir}, TurnRight
	case !w.grid.IsWallAhead(pos, dir):
		return State{Position: pos.Step(dir), Heading: dir}, Straight
	case !w.grid.IsWallAhead(pos, dir.TurnLeft()):
		dir = dir.TurnLeft()
		return State{Position: pos.Step(dir), Heading: dir}, TurnLeft
	default:
		dir = dir.TurnLeft().TurnLeft()
		return State{Position: pos.Step(dir), Heading: dir}, TurnAround
	}
}

// StateSpace returns the number of distinct walker states on g. A walk
// longer than this has revisited a state and will never reach the exit.
func StateSpace(g *maze.Grid) int {
	return g.Rows() * g.Columns() * len(maze.Directions)
}
