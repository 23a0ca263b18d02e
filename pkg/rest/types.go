// Package rest holds the JSON bodies of the dashboard's read-only API.
package rest

type Sites struct {
	// All is the sentinel value selecting every site.
	All   string   `json:"all"`
	Sites []string `json:"sites"`
}

type Slider struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

type Summary struct {
	Records      int     `json:"records"`
	Sites        int     `json:"sites"`
	PayloadMinKg float64 `json:"payloadMinKg"`
	PayloadMaxKg float64 `json:"payloadMaxKg"`
	Slider       Slider  `json:"slider"`
}

type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

type SuccessDistribution struct {
	Site   string  `json:"site"`
	Title  string  `json:"title"`
	Slices []Slice `json:"slices"`
}

type Launch struct {
	FlightNumber           int     `json:"flightNumber,omitempty"`
	Site                   string  `json:"site"`
	PayloadMassKg          float64 `json:"payloadMassKg"`
	BoosterVersion         string  `json:"boosterVersion,omitempty"`
	BoosterVersionCategory string  `json:"boosterVersionCategory"`
	Class                  int     `json:"class"`
}

type Launches struct {
	Site  string   `json:"site"`
	Title string   `json:"title"`
	Low   float64  `json:"low"`
	High  float64  `json:"high"`
	Rows  []Launch `json:"rows"`
}

// Error Модель ошибок
type Error struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}
