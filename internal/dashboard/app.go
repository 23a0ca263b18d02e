// Package dashboard is the host layer of the launch dashboard: a declarative
// page layout, a registry that maps input widgets to pure figure handlers,
// and rendering of the returned figures to images.
package dashboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrUnknownOutput   = errors.New("unknown output")
	ErrDuplicateOutput = errors.New("duplicate output")
	ErrUnknownInput    = errors.New("unknown input")
)

// HandlerFunc computes a figure from the current widget values. It must not
// keep state between calls.
type HandlerFunc func(State) (Figure, error)

// Callback binds an output graph to the widgets it reads.
type Callback struct {
	Output string
	Inputs []string
	Handle HandlerFunc
}

// Graph is an output slot of the page.
type Graph struct {
	ID string
}

// Layout is what the page template draws.
type Layout struct {
	Title    string
	Dropdown Dropdown
	Slider   RangeSlider
	Graphs   []Graph
}

type App struct {
	layout    Layout
	widgets   map[string]Widget
	callbacks map[string]Callback
	metrics   *callbackMetrics
}

// NewApp registers the layout widgets. Callbacks are added with Register.
func NewApp(layout Layout, registerer prometheus.Registerer, namespace string) *App {
	return &App{
		layout: layout,
		widgets: map[string]Widget{
			layout.Dropdown.ID: layout.Dropdown,
			layout.Slider.ID:   layout.Slider,
		},
		callbacks: make(map[string]Callback),
		metrics:   newCallbackMetrics(registerer, namespace),
	}
}

func (a *App) Layout() Layout {
	return a.layout
}

// Register adds a callback. Every output has at most one callback and every
// input must name a layout widget.
func (a *App) Register(cb Callback) error {
	if _, ok := a.callbacks[cb.Output]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateOutput, cb.Output)
	}

	for _, in := range cb.Inputs {
		if _, ok := a.widgets[in]; !ok {
			return fmt.Errorf("%w: %s (output %s)", ErrUnknownInput, in, cb.Output)
		}
	}

	a.callbacks[cb.Output] = cb
	a.layout.Graphs = append(a.layout.Graphs, Graph{ID: cb.Output})

	return nil
}

// Invoke runs the callback of output against state.
func (a *App) Invoke(output string, state State) (Figure, error) {
	cb, ok := a.callbacks[output]
	if !ok {
		return Figure{}, fmt.Errorf("%w: %s", ErrUnknownOutput, output)
	}

	start := time.Now()

	fig, err := cb.Handle(state)

	a.metrics.observe(output, time.Since(start), err)

	if err != nil {
		return Figure{}, fmt.Errorf("callback %s: %w", output, err)
	}

	return fig, nil
}
