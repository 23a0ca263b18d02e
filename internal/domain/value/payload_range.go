package value

// PayloadRange is an inclusive payload mass interval in kilograms. An
// inverted range (Low > High) contains nothing.
type PayloadRange struct {
	Low  float64
	High float64
}

func (r PayloadRange) Contains(massKg float64) bool {
	return r.Low <= massKg && massKg <= r.High
}

func (r PayloadRange) Inverted() bool {
	return r.Low > r.High
}
