// Package selection narrows the catalog as the user picks a split, a body
// part and an exercise. Everything here is a pure function of the catalog
// and the current selection.
package selection

import (
	"github.com/2beens/legday/internal/catalog"
)

// AllBodiesID marks the "All" body entry, it never names a real body.
const AllBodiesID = 0

var AllBodies = catalog.Body{ID: AllBodiesID, Name: "All"}

type Options struct {
	// IncludeUnscopedExercises lets exercises without a split show up in
	// every split filtered view.
	IncludeUnscopedExercises bool
	// BodyFacet prepends the AllBodies entry to the body list.
	BodyFacet bool
}

// Selection holds the user's current picks, 0 means nothing is picked.
type Selection struct {
	SplitID    int `json:"splitId"`
	BodyID     int `json:"bodyId"`
	ExerciseID int `json:"exerciseId"`
}

type Result struct {
	Selection Selection          `json:"selection"`
	Bodies    []catalog.Body     `json:"bodies"`
	Exercises []catalog.Exercise `json:"exercises"`
}

// FilterBodies returns the bodies trained on the split, or all bodies when
// no split is picked. Trains decide when the catalog has them, otherwise a
// body counts when it has an exercise in the split.
func FilterBodies(c catalog.Catalog, splitID int, opts Options) []catalog.Body {
	bodies := make([]catalog.Body, 0, len(c.Bodies)+1)
	if opts.BodyFacet {
		bodies = append(bodies, AllBodies)
	}

	if splitID == 0 {
		return append(bodies, c.Bodies...)
	}

	inSplit := make(map[int]struct{})
	if c.Trains != nil {
		for _, t := range c.Trains {
			if t.SplitID == splitID {
				inSplit[t.BodyID] = struct{}{}
			}
		}
	} else {
		for _, e := range c.Exercises {
			if inSplitScope(e, splitID, opts) {
				inSplit[e.BodyID] = struct{}{}
			}
		}
	}

	for _, b := range c.Bodies {
		if _, ok := inSplit[b.ID]; ok {
			bodies = append(bodies, b)
		}
	}
	return bodies
}

// FilterExercises returns exercises matching every supplied constraint.
// Body 0 is "All" and split 0 is no split.
func FilterExercises(c catalog.Catalog, bodyID, splitID int, opts Options) []catalog.Exercise {
	exercises := make([]catalog.Exercise, 0, len(c.Exercises))
	for _, e := range c.Exercises {
		if bodyID != AllBodiesID && e.BodyID != bodyID {
			continue
		}
		if splitID != 0 && !inSplitScope(e, splitID, opts) {
			continue
		}
		exercises = append(exercises, e)
	}
	return exercises
}

// ResolveBodyFromExercise returns the body of the exercise, false when the
// exercise is not in the catalog.
func ResolveBodyFromExercise(c catalog.Catalog, exerciseID int) (int, bool) {
	e, ok := c.Exercise(exerciseID)
	if !ok {
		return 0, false
	}
	return e.BodyID, true
}

func inSplitScope(e catalog.Exercise, splitID int, opts Options) bool {
	if e.SplitID == nil {
		return opts.IncludeUnscopedExercises
	}
	return *e.SplitID == splitID
}

func containsBody(bodies []catalog.Body, id int) bool {
	for _, b := range bodies {
		if b.ID == id {
			return true
		}
	}
	return false
}

func containsExercise(exercises []catalog.Exercise, id int) bool {
	for _, e := range exercises {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Engine recomputes the option lists for a selection.
type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	return &Engine{
		opts: opts,
	}
}

func (e *Engine) Options() Options {
	return e.opts
}

// Resolve returns the option lists for sel together with the selection
// made consistent with them: a picked exercise forces its body, and picks
// that fell out of their list are cleared.
func (e *Engine) Resolve(c catalog.Catalog, sel Selection) Result {
	return Resolve(c, sel, e.opts)
}

func Resolve(c catalog.Catalog, sel Selection, opts Options) Result {
	if sel.ExerciseID != 0 {
		if bodyID, ok := ResolveBodyFromExercise(c, sel.ExerciseID); ok {
			sel.BodyID = bodyID
		} else {
			sel.ExerciseID = 0
		}
	}

	bodies := FilterBodies(c, sel.SplitID, opts)
	if sel.BodyID != AllBodiesID && !containsBody(bodies, sel.BodyID) {
		sel.BodyID = AllBodiesID
		sel.ExerciseID = 0
	}

	exercises := FilterExercises(c, sel.BodyID, sel.SplitID, opts)
	if sel.ExerciseID != 0 && !containsExercise(exercises, sel.ExerciseID) {
		sel.ExerciseID = 0
	}

	return Result{
		Selection: sel,
		Bodies:    bodies,
		Exercises: exercises,
	}
}
