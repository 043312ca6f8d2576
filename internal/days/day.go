package days

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/legday/internal/apierr"
	"github.com/2beens/legday/internal/catalog"
)

const DateLayout = "2006-01-02"

var (
	ErrDayNotFound = fmt.Errorf("day %w", apierr.ErrNotFound)
	// ErrDayConflict is returned by the store when another caller inserted
	// the same (user, date) first. It never leaves this package.
	ErrDayConflict = errors.New("day already exists")
)

type Day struct {
	ID      int       `json:"id"`
	Date    time.Time `json:"date"`
	UserID  string    `json:"userId"`
	SplitID *int      `json:"splitId"`
}

type DayWithSplit struct {
	Day
	Split *catalog.Split `json:"split"`
}

// NormalizeDate keeps only the calendar date of t, as seen in t's location.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts 2006-01-02 or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date [%s] is neither %s nor RFC 3339", s, DateLayout)
	}
	return NormalizeDate(t), nil
}
