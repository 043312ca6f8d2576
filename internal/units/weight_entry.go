package units

// WeightEntry is a weight the user typed, in the metric it was typed in.
// The displayed metric can be toggled any number of times; every displayed
// value is converted from the typed one, so toggling never drifts.
type WeightEntry struct {
	value   float64
	metric  Metric
	display Metric
}

func NewWeightEntry(value float64, metric Metric) (WeightEntry, error) {
	if !ValidWeight(value) {
		return WeightEntry{}, ErrInvalidWeight
	}
	if !metric.Valid() {
		return WeightEntry{}, ErrUnknownMetric
	}
	return WeightEntry{
		value:   value,
		metric:  metric,
		display: metric,
	}, nil
}

// In returns the entry in metric m.
func (w WeightEntry) In(m Metric) float64 {
	if m == w.metric {
		return Round(w.value)
	}
	v, err := Convert(w.value, w.metric, m)
	if err != nil {
		return 0
	}
	return v
}

// Displayed returns the value and metric currently shown.
func (w WeightEntry) Displayed() (float64, Metric) {
	return w.In(w.display), w.display
}

// Toggle switches the displayed metric, the typed value is kept.
func (w WeightEntry) Toggle() WeightEntry {
	w.display = w.display.Other()
	return w
}

// Set records a newly typed value in the displayed metric.
func (w WeightEntry) Set(value float64) (WeightEntry, error) {
	display := w.display
	if !display.Valid() {
		display = Pound
	}
	return NewWeightEntry(value, display)
}

// Typed returns the value as typed and its metric.
func (w WeightEntry) Typed() (float64, Metric) {
	return w.value, w.metric
}
