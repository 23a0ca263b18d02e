package entity

import "launchdash/internal/domain/value"

// Launch is one launch attempt of the dataset.
type Launch struct {
	FlightNumber           int
	Site                   value.Site
	PayloadMassKg          float64
	BoosterVersion         string
	BoosterVersionCategory string
	Class                  value.OutcomeClass
}
