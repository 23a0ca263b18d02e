package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"

	"launchdash/internal/domain"
	"launchdash/internal/domain/entity"
	"launchdash/pkg/errcodes"
)

// LaunchRepository reads the launch table from Postgres. It satisfies
// dataset.Source, so the table can be seeded from a database instead of a
// file.
type LaunchRepository struct {
	db *sqlx.DB
}

func NewLaunchRepository(db *sqlx.DB) *LaunchRepository {
	return &LaunchRepository{db: db}
}

func (r *LaunchRepository) Name() string {
	return "postgres launches"
}

// Launches returns every row ordered by id, which is the load order of the
// original file.
func (r *LaunchRepository) Launches(ctx context.Context) ([]entity.Launch, error) {
	const query = `
		SELECT id, flight_number, launch_site, payload_mass_kg,
		       booster_version, booster_version_category, class
		FROM launches
		ORDER BY id`

	var rows []launchSchema
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, domain.WrapError(err, errcodes.DatasetUnavailable, "failed to select launches")
	}

	if len(rows) == 0 {
		return nil, domain.NewError(errcodes.InvalidDataset, "launches table is empty")
	}

	launches := make([]entity.Launch, 0, len(rows))

	for _, row := range rows {
		l, err := row.toDomain()
		if err != nil {
			return nil, domain.WrapError(err, errcodes.InvalidDataset, "invalid launch row")
		}

		launches = append(launches, l)
	}

	return launches, nil
}
