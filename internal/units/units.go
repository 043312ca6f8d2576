// Package units converts weights between pounds and kilograms.
package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// PoundsPerKilogram is the fixed conversion factor.
const PoundsPerKilogram = 2.20462

type Metric string

const (
	Pound    Metric = "lb"
	Kilogram Metric = "kg"
)

var (
	ErrInvalidWeight = errors.New("weight must be a finite, non-negative number")
	ErrUnknownMetric = errors.New("unknown metric, expected lb or kg")
)

func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: [%s]", ErrUnknownMetric, s)
	}
	return m, nil
}

func (m Metric) Valid() bool {
	return m == Pound || m == Kilogram
}

// Other returns kg for lb and lb for kg.
func (m Metric) Other() Metric {
	if m == Kilogram {
		return Pound
	}
	return Kilogram
}

// Round rounds to 2 decimals, half away from zero.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

func ToKg(lb float64) float64 {
	return Round(lb / PoundsPerKilogram)
}

func ToLb(kg float64) float64 {
	return Round(kg * PoundsPerKilogram)
}

func ValidWeight(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Convert converts value from one metric to the other, rounded to 2 decimals.
func Convert(value float64, from, to Metric) (float64, error) {
	if !ValidWeight(value) {
		return 0, ErrInvalidWeight
	}
	if !from.Valid() {
		return 0, fmt.Errorf("%w: from [%s]", ErrUnknownMetric, from)
	}
	if !to.Valid() {
		return 0, fmt.Errorf("%w: to [%s]", ErrUnknownMetric, to)
	}

	switch {
	case from == to:
		return Round(value), nil
	case from == Pound:
		return ToKg(value), nil
	default:
		return ToLb(value), nil
	}
}
