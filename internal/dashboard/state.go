package dashboard

import (
	"fmt"
	"net/url"
)

// State holds the current raw value of every widget.
type State struct {
	values map[string][]string
}

// Value returns the single value of a widget.
func (s State) Value(id string) string {
	v := s.values[id]
	if len(v) == 0 {
		return ""
	}

	return v[0]
}

// Range returns the [low, high] value of a range widget.
func (s State) Range(id string) ([2]float64, error) {
	return parseRange(id, s.values[id])
}

// Query encodes the state back into query parameters, for links to chart
// images that must see the same selection as the page.
func (s State) Query() url.Values {
	q := make(url.Values, len(s.values))

	for id, v := range s.values {
		q[id] = append([]string(nil), v...)
	}

	return q
}

// StateFromQuery fills every registered widget from the query, using widget
// defaults for absent ones. Unknown parameters are ignored.
func (a *App) StateFromQuery(query url.Values) (State, error) {
	values := make(map[string][]string, len(a.widgets))

	for id, w := range a.widgets {
		raw, ok := query[id]
		if !ok || len(raw) == 0 {
			raw = w.Defaults()
		}

		if err := w.Check(raw); err != nil {
			return State{}, fmt.Errorf("widget %s: %w", id, err)
		}

		values[id] = raw
	}

	return State{values: values}, nil
}
