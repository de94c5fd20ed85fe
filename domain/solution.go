// Package domain holds the records the solver service persists and serves.
package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-walker/maze"
	"github.com/google/uuid"
)

// Solution is the outcome of running the wall follower over one maze.
// Digest identifies the descriptor text and step budget it was computed
// from; Unsolved and Path hold the renderings before and after the walk.
type Solution struct {
	ID        uuid.UUID     `bson:"_id" json:"id" yaml:"id"`
	Digest    string        `bson:"digest" json:"digest" yaml:"digest"`
	Rows      int           `bson:"rows" json:"rows" yaml:"rows"`
	Columns   int           `bson:"columns" json:"columns" yaml:"columns"`
	Entry     maze.Position `bson:"entry" json:"entry" yaml:"entry"`
	Exit      maze.Position `bson:"exit" json:"exit" yaml:"exit"`
	MaxSteps  int           `bson:"maxSteps" json:"max_steps" yaml:"max_steps"`
	Steps     int           `bson:"steps" json:"steps" yaml:"steps"`
	Solved    bool          `bson:"solved" json:"solved" yaml:"solved"`
	Reason    string        `bson:"reason,omitempty" json:"reason,omitempty" yaml:"reason,omitempty"`
	Unsolved  []string      `bson:"unsolved" json:"unsolved" yaml:"unsolved"`
	Path      []string      `bson:"path" json:"path" yaml:"path"`
	CreatedAt time.Time     `bson:"createdAt" json:"created_at" yaml:"created_at"`
}

// ErrSolutionNotFound is returned by repositories for unknown solution IDs.
var ErrSolutionNotFound = errors.New("solution not found")
