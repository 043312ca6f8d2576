package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/legday/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "legday-session||"

	fieldUserID    = "userId"
	fieldCreatedAt = "createdAt"
)

var (
	ErrNoSession      = errors.New("no session")
	ErrSessionExpired = errors.New("session expired")
)

func SessionKey(token string) string {
	return sessionKeyPrefix + token
}

// SessionReader reads sessions stored as redis hashes with the user id and
// the unix time the session was created at.
type SessionReader struct {
	ttl         time.Duration
	redisClient *redis.Client
	now         func() time.Time
}

func NewSessionReader(ttl time.Duration, redisClient *redis.Client) *SessionReader {
	return &SessionReader{
		ttl:         ttl,
		redisClient: redisClient,
		now:         time.Now,
	}
}

func (sr *SessionReader) UserID(ctx context.Context, token string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.session.userId")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if token == "" {
		return "", ErrNoSession
	}

	cmd := sr.redisClient.HGetAll(ctx, SessionKey(token))
	if err := cmd.Err(); err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}

	session := cmd.Val()
	userID := session[fieldUserID]
	if userID == "" {
		return "", ErrNoSession
	}

	createdAtUnix, err := strconv.ParseInt(session[fieldCreatedAt], 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse session created at: %w", err)
	}

	createdAt := time.Unix(createdAtUnix, 0)
	if sr.now().Sub(createdAt) > sr.ttl {
		return "", ErrSessionExpired
	}

	return userID, nil
}
