package dashboard

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: format %q", ErrInvalidInput, s)
	}
}

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}

	return "image/svg+xml"
}

// Slice is one share of a pie figure. Color is a name understood by the
// renderer ("red", "green") or a hex code; empty picks the palette color.
type Slice struct {
	Label string
	Value float64
	Color string
}

// Series is one color group of a scatter figure.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Figure is the render-ready result of a callback.
type Figure struct {
	Kind   Kind
	Title  string
	Slices []Slice

	Series []Series
	XLabel string
	YLabel string
	// XRange fixes the x axis so the view does not jump with the data.
	XRange [2]float64
	// YTicks labels discrete y values, e.g. outcome classes.
	YTicks []float64
}

// Empty reports whether the figure has nothing to draw.
func (f Figure) Empty() bool {
	switch f.Kind {
	case KindPie:
		for _, s := range f.Slices {
			if s.Value > 0 {
				return false
			}
		}

		return true
	case KindScatter:
		for _, s := range f.Series {
			if len(s.X) > 0 {
				return false
			}
		}

		return true
	default:
		return true
	}
}
