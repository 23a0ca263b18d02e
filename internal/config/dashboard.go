package config

import (
	"errors"
	"fmt"
	"math"
)

// maxSliderMarks caps the labelled slider positions drawn on the page.
const maxSliderMarks = 101

// Dashboard holds the payload slider bounds and chart image size.
type Dashboard struct {
	SliderMin   float64 `env:"SLIDER_MIN" envDefault:"0"`
	SliderMax   float64 `env:"SLIDER_MAX" envDefault:"10000"`
	SliderStep  float64 `env:"SLIDER_STEP" envDefault:"1000"`
	ChartWidth  int     `env:"CHART_WIDTH" envDefault:"900"`
	ChartHeight int     `env:"CHART_HEIGHT" envDefault:"480"`
}

func (d Dashboard) validate() error {
	for name, v := range map[string]float64{"SLIDER_MIN": d.SliderMin, "SLIDER_MAX": d.SliderMax, "SLIDER_STEP": d.SliderStep} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("%s %v must be a finite number", name, v)
		}
	}

	var errs []error

	if d.SliderMin < 0 {
		errs = append(errs, fmt.Errorf("SLIDER_MIN %v must not be negative", d.SliderMin))
	}

	if d.SliderMin > d.SliderMax {
		errs = append(errs, fmt.Errorf("SLIDER_MIN %v exceeds SLIDER_MAX %v", d.SliderMin, d.SliderMax))
	}

	if d.SliderStep <= 0 {
		errs = append(errs, fmt.Errorf("SLIDER_STEP %v must be positive", d.SliderStep))
	} else if (d.SliderMax-d.SliderMin)/d.SliderStep >= maxSliderMarks {
		errs = append(errs, fmt.Errorf("SLIDER_STEP %v gives more than %d slider marks", d.SliderStep, maxSliderMarks))
	}

	if d.ChartWidth <= 0 || d.ChartHeight <= 0 {
		errs = append(errs, errors.New("CHART_WIDTH and CHART_HEIGHT must be positive"))
	}

	return errors.Join(errs...)
}
