package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/legday/internal/db"
	"github.com/2beens/legday/internal/telemetry/tracing"

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

// GetCatalog returns all bodies, exercises and trains in insertion order.
func (r *Repo) GetCatalog(ctx context.Context) (_ Catalog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	bodies, err := r.bodies(ctx)
	if err != nil {
		return Catalog{}, db.WrapStorageErr("get bodies", err)
	}
	exercises, err := r.exercises(ctx)
	if err != nil {
		return Catalog{}, db.WrapStorageErr("get exercises", err)
	}
	trains, err := r.trains(ctx)
	if err != nil {
		return Catalog{}, db.WrapStorageErr("get trains", err)
	}

	span.SetAttributes(attribute.Int("bodies", len(bodies)))
	span.SetAttributes(attribute.Int("exercises", len(exercises)))
	span.SetAttributes(attribute.Int("trains", len(trains)))

	return Catalog{
		Bodies:    bodies,
		Exercises: exercises,
		Trains:    trains,
	}, nil
}

func (r *Repo) bodies(ctx context.Context) ([]Body, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM body ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	bodies := make([]Body, 0)
	for rows.Next() {
		var b Body
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		bodies = append(bodies, b)
	}
	return bodies, rows.Err()
}

func (r *Repo) exercises(ctx context.Context) ([]Exercise, error) {
	rows, err := r.db.Query(ctx, `SELECT id, body_id, name, split_id FROM exercise ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2exercises(rows)
}

func (r *Repo) trains(ctx context.Context) ([]Train, error) {
	rows, err := r.db.Query(ctx, `SELECT id, split_id, body_id FROM train ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	// nil when the table is empty, the relation is then derived from exercises
	var trains []Train
	for rows.Next() {
		var t Train
		if err := rows.Scan(&t.ID, &t.SplitID, &t.BodyID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		trains = append(trains, t)
	}
	return trains, rows.Err()
}

// GetSplits returns the splits of a program ordered by id. Program id 0
// returns all splits.
func (r *Repo) GetSplits(ctx context.Context, programID int) (_ []Split, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.splits")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program_id", programID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, program_id FROM split
			WHERE ($1::integer = 0 OR program_id = $1)
			ORDER BY id;`,
		programID,
	)
	if err != nil {
		return nil, db.WrapStorageErr("get splits", err)
	}
	defer rows.Close()

	splits, err := rows2splits(rows)
	if err != nil {
		return nil, db.WrapStorageErr("get splits", err)
	}
	return splits, nil
}

// GetSplit returns ErrSplitNotFound when the id is unknown.
func (r *Repo) GetSplit(ctx context.Context, id int) (_ *Split, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.split")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(ctx, `SELECT id, name, program_id FROM split WHERE id = $1;`, id)
	if err != nil {
		return nil, db.WrapStorageErr("get split", err)
	}
	defer rows.Close()

	splits, err := rows2splits(rows)
	if err != nil {
		return nil, db.WrapStorageErr("get split", err)
	}
	if len(splits) != 1 {
		return nil, ErrSplitNotFound
	}
	return &splits[0], nil
}

// ApplySeed upserts the seed catalog in a single transaction, keeping the
// ids from the seed file.
func (r *Repo) ApplySeed(ctx context.Context, seed *Seed) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.seed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return db.WrapStorageErr("seed begin", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("%w (rollback: %s)", err, rbErr)
			}
		}
	}()

	batch := &pgx.Batch{}
	for _, p := range seed.Programs {
		batch.Queue(
			`INSERT INTO program (id, day, name) VALUES ($1, $2, $3)
				ON CONFLICT (id) DO UPDATE SET day = EXCLUDED.day, name = EXCLUDED.name;`,
			p.ID, p.Day, p.Name,
		)
	}
	for _, s := range seed.Splits {
		batch.Queue(
			`INSERT INTO split (id, name, program_id) VALUES ($1, $2, $3)
				ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, program_id = EXCLUDED.program_id;`,
			s.ID, s.Name, s.ProgramID,
		)
	}
	for _, b := range seed.Bodies {
		batch.Queue(
			`INSERT INTO body (id, name) VALUES ($1, $2)
				ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;`,
			b.ID, b.Name,
		)
	}
	for _, e := range seed.Exercises {
		batch.Queue(
			`INSERT INTO exercise (id, body_id, name, split_id) VALUES ($1, $2, $3, $4)
				ON CONFLICT (id) DO UPDATE SET body_id = EXCLUDED.body_id, name = EXCLUDED.name, split_id = EXCLUDED.split_id;`,
			e.ID, e.BodyID, e.Name, e.SplitID,
		)
	}
	for _, t := range seed.Trains {
		batch.Queue(
			`INSERT INTO train (id, split_id, body_id) VALUES ($1, $2, $3)
				ON CONFLICT (id) DO UPDATE SET split_id = EXCLUDED.split_id, body_id = EXCLUDED.body_id;`,
			t.ID, t.SplitID, t.BodyID,
		)
	}
	// explicit ids leave the serial sequences behind
	for _, table := range []string{"program", "split", "body", "exercise", "train"} {
		batch.Queue(fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false);`,
			table,
		))
	}

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return db.WrapStorageErr("seed batch", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return db.WrapStorageErr("seed commit", err)
	}
	return nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.BodyID, &e.Name, &e.SplitID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func rows2splits(rows pgx.Rows) ([]Split, error) {
	splits := make([]Split, 0)
	for rows.Next() {
		var s Split
		if err := rows.Scan(&s.ID, &s.Name, &s.ProgramID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		splits = append(splits, s)
	}
	return splits, rows.Err()
}
