package days

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/legday/internal/catalog"
	"github.com/2beens/legday/internal/telemetry/metrics"
	"github.com/2beens/legday/internal/telemetry/tracing"
	"github.com/2beens/legday/internal/validation"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=days_test

type dayStore interface {
	FindDay(ctx context.Context, userID string, date time.Time) (*Day, error)
	InsertDay(ctx context.Context, day Day) (*Day, error)
}

type splitFinder interface {
	GetSplit(ctx context.Context, id int) (*catalog.Split, error)
}

type Resolution struct {
	DateID  int  `json:"dateId"`
	Created bool `json:"created"`
}

// Resolver hands out the single Day of a (user, date), creating it on
// first use. Concurrent callers for the same key within the process share
// one lookup and insert; across processes the unique constraint decides
// and the losers read the winner's row.
type Resolver struct {
	store   dayStore
	splits  splitFinder
	group   singleflight.Group
	metrics *metrics.Manager
}

func NewResolver(store dayStore, splits splitFinder, metricsManager *metrics.Manager) *Resolver {
	return &Resolver{
		store:   store,
		splits:  splits,
		metrics: metricsManager,
	}
}

// ResolveDayID returns the id of the user's day at date. The split is only
// looked up and used when the day gets created, an unknown one yields
// catalog.ErrSplitNotFound.
func (r *Resolver) ResolveDayID(ctx context.Context, userID string, date time.Time, splitID *int) (_ Resolution, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "days.resolver.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var errs validation.Errors
	errs.Check(userID != "", "userId", "user id is required")
	errs.Check(!date.IsZero(), "date", "please select a date")
	if splitID != nil {
		errs.Check(*splitID > 0, "splitId", "please select a split")
	}
	if err := errs.Err(); err != nil {
		return Resolution{}, err
	}

	date = NormalizeDate(date)
	key := userID + "|" + date.Format(DateLayout)
	span.SetAttributes(attribute.String("date", date.Format(DateLayout)))

	executed := false
	res, err, shared := r.group.Do(key, func() (any, error) {
		executed = true
		return r.resolve(ctx, userID, date, splitID)
	})
	if err != nil {
		return Resolution{}, err
	}
	span.SetAttributes(attribute.Bool("shared", shared))

	resolution := res.(Resolution)
	if !executed {
		// only the caller that ran the insert reports it
		resolution.Created = false
	}
	return resolution, nil
}

func (r *Resolver) resolve(ctx context.Context, userID string, date time.Time, splitID *int) (Resolution, error) {
	day, err := r.store.FindDay(ctx, userID, date)
	if err == nil {
		r.count("found")
		return Resolution{DateID: day.ID}, nil
	}
	if !errors.Is(err, ErrDayNotFound) {
		return Resolution{}, fmt.Errorf("find day: %w", err)
	}

	if splitID != nil {
		if _, err := r.splits.GetSplit(ctx, *splitID); err != nil {
			return Resolution{}, fmt.Errorf("get split %d: %w", *splitID, err)
		}
	}

	day, err = r.store.InsertDay(ctx, Day{
		Date:    date,
		UserID:  userID,
		SplitID: splitID,
	})
	if err == nil {
		log.Debugf("new day [%s] created for [%s]: %d", date.Format(DateLayout), userID, day.ID)
		r.count("created")
		return Resolution{DateID: day.ID, Created: true}, nil
	}
	if !errors.Is(err, ErrDayConflict) {
		return Resolution{}, fmt.Errorf("insert day: %w", err)
	}

	// lost the race to another process
	r.count("conflict")
	day, err = r.store.FindDay(ctx, userID, date)
	if err != nil {
		return Resolution{}, fmt.Errorf("find day after conflict: %w", err)
	}
	return Resolution{DateID: day.ID}, nil
}

func (r *Resolver) count(outcome string) {
	if r.metrics == nil {
		return
	}
	r.metrics.CounterDaysResolved.WithLabelValues(outcome).Inc()
}
