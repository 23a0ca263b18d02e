package dashboard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// Widget is an input component of the page. Values travel as the query
// parameters named after the widget id.
type Widget interface {
	WidgetID() string
	// Defaults are the raw values used when a request carries none.
	Defaults() []string
	// Check reports whether raw values are acceptable for the widget.
	Check(raw []string) error
}

type Option struct {
	Label string
	Value string
}

// Dropdown is a single-choice list with a fixed option set.
type Dropdown struct {
	ID          string
	Options     []Option
	Value       string
	Placeholder string
}

func (d Dropdown) WidgetID() string {
	return d.ID
}

func (d Dropdown) Defaults() []string {
	return []string{d.Value}
}

// Check accepts any single value. Values outside the option set are passed
// through; the handlers treat them as selecting nothing.
func (d Dropdown) Check(raw []string) error {
	if len(raw) != 1 {
		return fmt.Errorf("%w: %s takes one value, got %d", ErrInvalidInput, d.ID, len(raw))
	}

	return nil
}

// RangeSlider selects a [low, high] interval within [Min, Max] in Step
// increments. Submitted values are not clamped to the bounds.
type RangeSlider struct {
	ID    string
	Min   float64
	Max   float64
	Step  float64
	Value [2]float64
}

func (s RangeSlider) WidgetID() string {
	return s.ID
}

func (s RangeSlider) Defaults() []string {
	return []string{formatFloat(s.Value[0]), formatFloat(s.Value[1])}
}

func (s RangeSlider) Check(raw []string) error {
	_, err := parseRange(s.ID, raw)

	return err
}

// MaxMarks bounds the labelled positions a slider draws.
const MaxMarks = 101

// Marks returns the labelled positions from Min to Max every Step. Sliders
// whose bounds are not finite or that would need more than MaxMarks
// positions get none.
func (s RangeSlider) Marks() []float64 {
	if !isFinite(s.Min) || !isFinite(s.Max) || !isFinite(s.Step) || s.Step <= 0 || s.Max < s.Min {
		return nil
	}

	span := (s.Max - s.Min) / s.Step
	if span >= MaxMarks {
		return nil
	}

	n := int(span) + 1
	marks := make([]float64, 0, n)

	for i := range n {
		marks = append(marks, s.Min+float64(i)*s.Step)
	}

	return marks
}

// parseRange accepts either two values or one "low,high" value. Both ends
// must be finite non-negative numbers; low > high is allowed.
func parseRange(id string, raw []string) ([2]float64, error) {
	if len(raw) == 1 {
		raw = strings.Split(raw[0], ",")
	}

	if len(raw) != 2 { //nolint:mnd
		return [2]float64{}, fmt.Errorf("%w: %s takes low and high, got %d values", ErrInvalidInput, id, len(raw))
	}

	var r [2]float64

	for i, v := range raw {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || !isFinite(f) {
			return [2]float64{}, fmt.Errorf("%w: %s value %q is not a finite number", ErrInvalidInput, id, v)
		}

		if f < 0 {
			return [2]float64{}, fmt.Errorf("%w: %s value %v is negative", ErrInvalidInput, id, f)
		}

		r[i] = f
	}

	return r, nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
