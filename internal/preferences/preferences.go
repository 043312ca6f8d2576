package preferences

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/2beens/legday/internal/telemetry/tracing"
	"github.com/2beens/legday/internal/units"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	keyPrefix = "legday-prefs||"

	fieldLastSplitID   = "lastSplitId"
	fieldDisplayMetric = "displayMetric"
)

var ErrNoUser = errors.New("user id is empty")

// Preferences are remembered per user between requests.
// LastSplitID 0 means no split was picked yet.
type Preferences struct {
	LastSplitID   int          `json:"lastSplitId"`
	DisplayMetric units.Metric `json:"displayMetric"`
}

// Store keeps the preferences in one redis hash per user.
type Store struct {
	redisClient   *redis.Client
	defaultMetric units.Metric
}

func NewStore(redisClient *redis.Client, defaultMetric units.Metric) *Store {
	if !defaultMetric.Valid() {
		defaultMetric = units.Pound
	}
	return &Store{
		redisClient:   redisClient,
		defaultMetric: defaultMetric,
	}
}

func key(userID string) string {
	return keyPrefix + userID
}

func (s *Store) Get(ctx context.Context, userID string) (_ Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "preferences.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	prefs := Preferences{DisplayMetric: s.defaultMetric}
	if userID == "" {
		return prefs, ErrNoUser
	}

	cmd := s.redisClient.HGetAll(ctx, key(userID))
	if err := cmd.Err(); err != nil {
		return prefs, fmt.Errorf("get preferences: %w", err)
	}

	values := cmd.Val()
	if splitIDStr, ok := values[fieldLastSplitID]; ok {
		splitID, err := strconv.Atoi(splitIDStr)
		if err != nil {
			log.Errorf("preferences of [%s], invalid last split id [%s]: %s", userID, splitIDStr, err)
		} else {
			prefs.LastSplitID = splitID
		}
	}
	if metricStr, ok := values[fieldDisplayMetric]; ok {
		metric, err := units.ParseMetric(metricStr)
		if err != nil {
			log.Errorf("preferences of [%s], invalid display metric [%s]: %s", userID, metricStr, err)
		} else {
			prefs.DisplayMetric = metric
		}
	}

	return prefs, nil
}

func (s *Store) SetLastSplit(ctx context.Context, userID string, splitID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "preferences.setLastSplit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return ErrNoUser
	}
	if err := s.redisClient.HSet(ctx, key(userID), fieldLastSplitID, splitID).Err(); err != nil {
		return fmt.Errorf("set last split: %w", err)
	}
	return nil
}

func (s *Store) SetDisplayMetric(ctx context.Context, userID string, metric units.Metric) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "preferences.setDisplayMetric")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return ErrNoUser
	}
	if !metric.Valid() {
		return units.ErrUnknownMetric
	}
	if err := s.redisClient.HSet(ctx, key(userID), fieldDisplayMetric, string(metric)).Err(); err != nil {
		return fmt.Errorf("set display metric: %w", err)
	}
	return nil
}
