package persistence

import (
	"database/sql"
	"fmt"

	"launchdash/internal/domain/entity"
	"launchdash/internal/domain/value"
)

// launchSchema maps one row of the launches table.
type launchSchema struct {
	ID                     int64          `db:"id"`
	FlightNumber           sql.NullInt64  `db:"flight_number"`
	LaunchSite             string         `db:"launch_site"`
	PayloadMassKg          float64        `db:"payload_mass_kg"`
	BoosterVersion         sql.NullString `db:"booster_version"`
	BoosterVersionCategory string         `db:"booster_version_category"`
	Class                  int            `db:"class"`
}

func (s launchSchema) toDomain() (entity.Launch, error) {
	if s.Class != int(value.OutcomeFailure) && s.Class != int(value.OutcomeSuccess) {
		return entity.Launch{}, fmt.Errorf("launch %d: class %d must be 0 or 1", s.ID, s.Class)
	}

	if s.PayloadMassKg < 0 {
		return entity.Launch{}, fmt.Errorf("launch %d: negative payload %v", s.ID, s.PayloadMassKg)
	}

	return entity.Launch{
		FlightNumber:           int(s.FlightNumber.Int64),
		Site:                   value.Site(s.LaunchSite),
		PayloadMassKg:          s.PayloadMassKg,
		BoosterVersion:         s.BoosterVersion.String,
		BoosterVersionCategory: s.BoosterVersionCategory,
		Class:                  value.OutcomeClass(s.Class),
	}, nil
}
