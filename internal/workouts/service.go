package workouts

import (
	"context"
	"fmt"

	"github.com/2beens/legday/internal/catalog"
	"github.com/2beens/legday/internal/days"
	"github.com/2beens/legday/internal/preferences"
	"github.com/2beens/legday/internal/selection"
	"github.com/2beens/legday/internal/telemetry/metrics"
	"github.com/2beens/legday/internal/telemetry/tracing"
	"github.com/2beens/legday/internal/units"
	"github.com/2beens/legday/internal/validation"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

const maxDescriptionLen = 255

type workoutsRepo interface {
	AddWorkout(ctx context.Context, workout Workout) (*Workout, error)
	GetWorkout(ctx context.Context, userID string, id int) (*Workout, error)
	ListWorkouts(ctx context.Context, userID string, dateID int) ([]Workout, error)
	AddSet(ctx context.Context, set Set) (*Set, error)
	ListSets(ctx context.Context, workoutID int) ([]Set, error)
	LatestSet(ctx context.Context, userID string, exerciseID int) (*Set, error)
}

type dayReader interface {
	GetDay(ctx context.Context, userID string, dayID int) (*days.DayWithSplit, error)
}

type catalogSource interface {
	GetCatalog(ctx context.Context) (catalog.Catalog, error)
}

type preferencesReader interface {
	Get(ctx context.Context, userID string) (preferences.Preferences, error)
}

type Service struct {
	repo    workoutsRepo
	days    dayReader
	catalog catalogSource
	prefs   preferencesReader
	opts    selection.Options
	metrics *metrics.Manager
}

func NewService(
	repo workoutsRepo,
	dayRepo dayReader,
	catalogSrc catalogSource,
	prefs preferencesReader,
	opts selection.Options,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:    repo,
		days:    dayRepo,
		catalog: catalogSrc,
		prefs:   prefs,
		opts:    opts,
		metrics: metricsManager,
	}
}

// RecordWorkout logs an exercise on one of the user's days. Every missing
// or inconsistent field is reported, nothing is filled in except the RPE.
func (s *Service) RecordWorkout(ctx context.Context, userID string, req RecordWorkoutRequest) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.service.recordWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rpe := float64(DefaultRPE)
	if req.RPE != nil {
		rpe = *req.RPE
	}

	var errs validation.Errors
	errs.Check(req.DateID > 0, "dateId", "please select a day")
	errs.Check(req.BodyID > 0, "bodyId", "please select a body part")
	errs.Check(req.ExerciseID > 0, "exerciseId", "please select an exercise")
	errs.Check(rpe >= MinRPE && rpe <= MaxRPE, "rpe", fmt.Sprintf("rpe must be between %d and %d", MinRPE, MaxRPE))
	errs.Check(units.ValidWeight(req.Weight), "weight", units.ErrInvalidWeight.Error())
	errs.Check(len(req.Description) <= maxDescriptionLen, "description", fmt.Sprintf("description is longer than %d characters", maxDescriptionLen))
	if err := errs.Err(); err != nil {
		return nil, err
	}

	day, err := s.days.GetDay(ctx, userID, req.DateID)
	if err != nil {
		return nil, fmt.Errorf("get day %d: %w", req.DateID, err)
	}

	c, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}

	exercise, ok := c.Exercise(req.ExerciseID)
	switch {
	case !ok:
		errs.Add("exerciseId", "unknown exercise")
	case exercise.BodyID != req.BodyID:
		errs.Add("exerciseId", "exercise does not belong to the selected body part")
	case day.SplitID != nil && !inSplit(c, exercise, *day.SplitID, s.opts):
		errs.Add("exerciseId", "exercise is not part of the day's split")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	workout, err := s.repo.AddWorkout(ctx, Workout{
		DateID:      req.DateID,
		ExerciseID:  req.ExerciseID,
		Weight:      req.Weight,
		RPE:         rpe,
		Description: req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}
	workout.ExerciseName = exercise.Name
	workout.BodyID = exercise.BodyID

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	if s.metrics != nil {
		s.metrics.CounterWorkouts.Inc()
	}

	return workout, nil
}

func inSplit(c catalog.Catalog, exercise catalog.Exercise, splitID int, opts selection.Options) bool {
	for _, e := range selection.FilterExercises(c, exercise.BodyID, splitID, opts) {
		if e.ID == exercise.ID {
			return true
		}
	}
	return false
}

// ListWorkouts returns the workouts of one of the user's days.
func (s *Service) ListWorkouts(ctx context.Context, userID string, dateID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.service.listWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.days.GetDay(ctx, userID, dateID); err != nil {
		return nil, fmt.Errorf("get day %d: %w", dateID, err)
	}
	return s.repo.ListWorkouts(ctx, userID, dateID)
}

// RecordSet stores the set in the metric it was entered in.
func (s *Service) RecordSet(ctx context.Context, userID string, workoutID int, req RecordSetRequest) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.service.recordSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var errs validation.Errors
	errs.Check(req.Reps >= 1, "reps", "reps must be at least 1")
	errs.Check(units.ValidWeight(req.Weights), "weights", units.ErrInvalidWeight.Error())
	metric, mErr := units.ParseMetric(req.Metric)
	errs.Check(mErr == nil, "metric", units.ErrUnknownMetric.Error())
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetWorkout(ctx, userID, workoutID); err != nil {
		return nil, fmt.Errorf("get workout %d: %w", workoutID, err)
	}

	set, err := s.repo.AddSet(ctx, Set{
		WorkoutID: workoutID,
		Reps:      req.Reps,
		Weights:   req.Weights,
		Metric:    metric,
	})
	if err != nil {
		return nil, fmt.Errorf("add set: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CounterSets.WithLabelValues(string(metric)).Inc()
	}
	return set, nil
}

// Sets returns the workout's sets. The weights are converted for display
// into the given metric, or the user's preferred one when display is empty.
// Stored sets are never changed.
func (s *Service) Sets(ctx context.Context, userID string, workoutID int, display units.Metric) (_ []SetView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.service.sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if display != "" && !display.Valid() {
		return nil, validation.NewFieldError("unit", units.ErrUnknownMetric.Error())
	}

	if _, err := s.repo.GetWorkout(ctx, userID, workoutID); err != nil {
		return nil, fmt.Errorf("get workout %d: %w", workoutID, err)
	}

	sets, err := s.repo.ListSets(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	if display == "" {
		display = s.preferredMetric(ctx, userID)
	}
	span.SetAttributes(attribute.String("display", string(display)))

	views := make([]SetView, 0, len(sets))
	for _, set := range sets {
		views = append(views, toView(set, display))
	}
	return views, nil
}

// LatestSet returns the user's last set of the same exercise as the
// workout, from any day.
func (s *Service) LatestSet(ctx context.Context, userID string, workoutID int) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workouts.service.latestSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout, err := s.repo.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, fmt.Errorf("get workout %d: %w", workoutID, err)
	}
	return s.repo.LatestSet(ctx, userID, workout.ExerciseID)
}

// preferredMetric returns "" when there is no preference to apply.
func (s *Service) preferredMetric(ctx context.Context, userID string) units.Metric {
	if s.prefs == nil {
		return ""
	}
	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		log.Warnf("get display metric of [%s]: %s", userID, err)
		return ""
	}
	return prefs.DisplayMetric
}

func toView(set Set, display units.Metric) SetView {
	view := SetView{
		Set:            set,
		DisplayWeights: set.Weights,
		DisplayMetric:  set.Metric,
	}
	if !display.Valid() {
		return view
	}

	converted, err := units.Convert(set.Weights, set.Metric, display)
	if err != nil {
		log.Errorf("convert set %d for display: %s", set.ID, err)
		return view
	}
	view.DisplayWeights = converted
	view.DisplayMetric = display
	return view
}
