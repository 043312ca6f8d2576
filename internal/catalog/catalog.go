package catalog

import (
	"fmt"

	"github.com/2beens/legday/internal/apierr"

	"go.uber.org/multierr"
)

var ErrSplitNotFound = fmt.Errorf("split %w", apierr.ErrNotFound)

type Body struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Exercise struct {
	ID     int    `json:"id" yaml:"id"`
	BodyID int    `json:"bodyId" yaml:"bodyId"`
	Name   string `json:"name" yaml:"name"`
	// SplitID is nil for exercises not scoped to any split.
	SplitID *int `json:"splitId" yaml:"splitId"`
}

type Program struct {
	ID   int    `json:"id" yaml:"id"`
	Day  int    `json:"day" yaml:"day"`
	Name string `json:"name" yaml:"name"`
}

type Split struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	ProgramID *int   `json:"programId" yaml:"programId"`
}

// Train says that a body part is trained on a split.
type Train struct {
	ID      int `json:"id" yaml:"id"`
	SplitID int `json:"splitId" yaml:"splitId"`
	BodyID  int `json:"bodyId" yaml:"bodyId"`
}

// Catalog is the full set of selectable options. A nil Trains means the
// split to body relation is not modeled and has to be derived from exercises.
type Catalog struct {
	Bodies    []Body     `json:"bodies"`
	Exercises []Exercise `json:"exercises"`
	Trains    []Train    `json:"trains"`
}

func (c Catalog) Body(id int) (Body, bool) {
	for _, b := range c.Bodies {
		if b.ID == id {
			return b, true
		}
	}
	return Body{}, false
}

func (c Catalog) Exercise(id int) (Exercise, bool) {
	for _, e := range c.Exercises {
		if e.ID == id {
			return e, true
		}
	}
	return Exercise{}, false
}

// Validate checks the references between catalog entries.
func (c Catalog) Validate() error {
	bodies := make(map[int]struct{}, len(c.Bodies))
	for _, b := range c.Bodies {
		if _, ok := bodies[b.ID]; ok {
			return fmt.Errorf("duplicate body id %d", b.ID)
		}
		bodies[b.ID] = struct{}{}
	}

	var err error
	for _, e := range c.Exercises {
		if _, ok := bodies[e.BodyID]; !ok {
			err = multierr.Append(err, fmt.Errorf("exercise %d [%s] references unknown body %d", e.ID, e.Name, e.BodyID))
		}
	}
	for _, t := range c.Trains {
		if _, ok := bodies[t.BodyID]; !ok {
			err = multierr.Append(err, fmt.Errorf("train %d references unknown body %d", t.ID, t.BodyID))
		}
	}
	return err
}
