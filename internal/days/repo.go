package days

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/legday/internal/catalog"
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

func (r *Repo) FindDay(ctx context.Context, userID string, date time.Time) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.find")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format(DateLayout)))

	var day Day
	err = r.db.QueryRow(
		ctx,
		`SELECT id, date, user_id, split_id FROM day WHERE user_id = $1 AND date = $2;`,
		userID, date,
	).Scan(&day.ID, &day.Date, &day.UserID, &day.SplitID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, db.WrapStorageErr("find day", err)
	}

	return &day, nil
}

// InsertDay inserts the day, or returns ErrDayConflict when the
// (user, date) row is already there.
func (r *Repo) InsertDay(ctx context.Context, day Day) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", day.Date.Format(DateLayout)))

	var id int
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO day (date, user_id, split_id) VALUES ($1, $2, $3)
			ON CONFLICT ON CONSTRAINT uq_day_user_date DO NOTHING
			RETURNING id;`,
		day.Date, day.UserID, day.SplitID,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) || pkg.IsUniqueViolationError(err) {
		return nil, ErrDayConflict
	}
	if pkg.IsForeignKeyViolationError(err) {
		// split removed after the resolver looked it up
		return nil, catalog.ErrSplitNotFound
	}
	if err != nil {
		return nil, db.WrapStorageErr("insert day", err)
	}

	span.SetAttributes(attribute.Int("day.id", id))

	day.ID = id
	return &day, nil
}

// ListDays returns the user's days, newest first.
func (r *Repo) ListDays(ctx context.Context, userID string) (_ []Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, user_id, split_id FROM day WHERE user_id = $1 ORDER BY date DESC;`,
		userID,
	)
	if err != nil {
		return nil, db.WrapStorageErr("list days", err)
	}
	defer rows.Close()

	days := make([]Day, 0)
	for rows.Next() {
		var day Day
		if err := rows.Scan(&day.ID, &day.Date, &day.UserID, &day.SplitID); err != nil {
			return nil, db.WrapStorageErr("list days", fmt.Errorf("rows scan: %w", err))
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, db.WrapStorageErr("list days", err)
	}

	span.SetAttributes(attribute.Int("days", len(days)))
	return days, nil
}

// GetDay returns the user's day with its split. Days of other users are
// reported as not found.
func (r *Repo) GetDay(ctx context.Context, userID string, dayID int) (_ *DayWithSplit, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.days.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", dayID))

	var (
		day            DayWithSplit
		splitID        *int
		splitName      *string
		splitProgramID *int
	)
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				d.id, d.date, d.user_id, d.split_id, s.id, s.name, s.program_id
			FROM day d
			LEFT JOIN split s ON s.id = d.split_id
			WHERE d.id = $1 AND d.user_id = $2;`,
		dayID, userID,
	).Scan(&day.ID, &day.Date, &day.UserID, &day.SplitID, &splitID, &splitName, &splitProgramID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, db.WrapStorageErr("get day", err)
	}

	if splitID != nil && splitName != nil {
		day.Split = &catalog.Split{
			ID:        *splitID,
			Name:      *splitName,
			ProgramID: splitProgramID,
		}
	}

	return &day, nil
}
