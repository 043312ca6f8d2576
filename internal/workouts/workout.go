package workouts

import (
	"fmt"

	"github.com/2beens/legday/internal/apierr"
	"github.com/2beens/legday/internal/units"
)

var (
	ErrWorkoutNotFound = fmt.Errorf("workout %w", apierr.ErrNotFound)
	ErrSetNotFound     = fmt.Errorf("set %w", apierr.ErrNotFound)
)

const (
	DefaultRPE = 8
	MinRPE     = 1
	MaxRPE     = 10
)

// Workout is one exercise logged on a day.
type Workout struct {
	ID           int     `json:"id"`
	DateID       int     `json:"dateId"`
	ExerciseID   int     `json:"exerciseId"`
	ExerciseName string  `json:"exerciseName,omitempty"`
	BodyID       int     `json:"bodyId,omitempty"`
	Weight       float64 `json:"weight"`
	RPE          float64 `json:"rpe"`
	Description  string  `json:"description"`
}

// Set keeps the metric it was recorded in for good.
type Set struct {
	ID        int          `json:"id"`
	WorkoutID int          `json:"workoutId"`
	Reps      int          `json:"reps"`
	Weights   float64      `json:"weights"`
	Metric    units.Metric `json:"metric"`
}

// SetView is a stored set plus its weight in the requested display metric.
type SetView struct {
	Set
	DisplayWeights float64      `json:"displayWeights"`
	DisplayMetric  units.Metric `json:"displayMetric"`
}

type RecordWorkoutRequest struct {
	DateID      int      `json:"dateId"`
	BodyID      int      `json:"bodyId"`
	ExerciseID  int      `json:"exerciseId"`
	RPE         *float64 `json:"rpe"`
	Weight      float64  `json:"weight"`
	Description string   `json:"description"`
}

type RecordSetRequest struct {
	Reps    int     `json:"reps"`
	Weights float64 `json:"weights"`
	Metric  string  `json:"metric"`
}
