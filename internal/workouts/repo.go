package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/legday/internal/db"
	"github.com/2beens/legday/internal/telemetry/tracing"
	"github.com/2beens/legday/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddWorkout(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout (date_id, exercise_id, weight, rpe, description)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		workout.DateID, workout.ExerciseID, workout.Weight, workout.RPE, workout.Description,
	).Scan(&id)
	if err != nil {
		return nil, db.WrapStorageErr("add workout", err)
	}

	span.SetAttributes(attribute.Int("workout.id", id))

	workout.ID = id
	return &workout, nil
}

// GetWorkout returns the workout only when it is on one of the user's days.
func (r *Repo) GetWorkout(ctx context.Context, userID string, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				w.id, w.date_id, w.exercise_id, e.name, e.body_id, w.weight, w.rpe, w.description
			FROM workout w
			JOIN day d ON d.id = w.date_id
			JOIN exercise e ON e.id = w.exercise_id
			WHERE w.id = $1 AND d.user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, db.WrapStorageErr("get workout", err)
	}
	defer rows.Close()

	workouts, err := rows2workouts(rows)
	if err != nil {
		return nil, db.WrapStorageErr("get workout", err)
	}
	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}
	return &workouts[0], nil
}

// ListWorkouts returns the workouts logged on the user's day, oldest first.
func (r *Repo) ListWorkouts(ctx context.Context, userID string, dateID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("date_id", dateID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				w.id, w.date_id, w.exercise_id, e.name, e.body_id, w.weight, w.rpe, w.description
			FROM workout w
			JOIN day d ON d.id = w.date_id
			JOIN exercise e ON e.id = w.exercise_id
			WHERE w.date_id = $1 AND d.user_id = $2
			ORDER BY w.id;`,
		dateID, userID,
	)
	if err != nil {
		return nil, db.WrapStorageErr("list workouts", err)
	}
	defer rows.Close()

	workouts, err := rows2workouts(rows)
	if err != nil {
		return nil, db.WrapStorageErr("list workouts", err)
	}
	return workouts, nil
}

func (r *Repo) AddSet(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", set.WorkoutID))

	var id int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO set_entry (workout_id, reps, weights, metric)
			VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		set.WorkoutID, set.Reps, set.Weights, string(set.Metric),
	).Scan(&id)
	if pkg.IsForeignKeyViolationError(err) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, db.WrapStorageErr("add set", err)
	}

	set.ID = id
	return &set, nil
}

func (r *Repo) ListSets(ctx context.Context, workoutID int) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", workoutID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, reps, weights, metric FROM set_entry WHERE workout_id = $1 ORDER BY id;`,
		workoutID,
	)
	if err != nil {
		return nil, db.WrapStorageErr("list sets", err)
	}
	defer rows.Close()

	sets, err := rows2sets(rows)
	if err != nil {
		return nil, db.WrapStorageErr("list sets", err)
	}
	return sets, nil
}

// LatestSet returns the user's most recent set of the exercise across all
// workouts.
func (r *Repo) LatestSet(ctx context.Context, userID string, exerciseID int) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.latestSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise_id", exerciseID))

	var set Set
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				s.id, s.workout_id, s.reps, s.weights, s.metric
			FROM set_entry s
			JOIN workout w ON w.id = s.workout_id
			JOIN day d ON d.id = w.date_id
			WHERE d.user_id = $1 AND w.exercise_id = $2
			ORDER BY s.id DESC
			LIMIT 1;`,
		userID, exerciseID,
	).Scan(&set.ID, &set.WorkoutID, &set.Reps, &set.Weights, &set.Metric)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSetNotFound
	}
	if err != nil {
		return nil, db.WrapStorageErr("latest set", err)
	}
	return &set, nil
}

func rows2workouts(rows pgx.Rows) ([]Workout, error) {
	workouts := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.DateID, &w.ExerciseID, &w.ExerciseName, &w.BodyID, &w.Weight, &w.RPE, &w.Description,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

func rows2sets(rows pgx.Rows) ([]Set, error) {
	sets := make([]Set, 0)
	for rows.Next() {
		var s Set
		if err := rows.Scan(&s.ID, &s.WorkoutID, &s.Reps, &s.Weights, &s.Metric); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}
