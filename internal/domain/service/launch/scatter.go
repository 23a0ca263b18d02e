package launch

import (
	"fmt"

	"launchdash/internal/domain/entity"
	"launchdash/internal/domain/value"
)

const titleAllSitesCorrelation = "Correlation between Payload and Success for all Sites"

// Scatter is the input of the payload/outcome scatter chart: x is the payload
// mass, y the outcome class and color the booster version category.
type Scatter struct {
	Title string
	Rows  []entity.Launch
}

// FilteredLaunches keeps the launches of the selected site (every site for
// value.AllSites) whose payload lies in the inclusive range, in table order.
// Unknown sites and inverted or disjoint ranges give an empty result.
func FilteredLaunches(table entity.Table, site value.Site, payload value.PayloadRange) Scatter {
	title := titleAllSitesCorrelation
	if !site.IsAll() {
		title = fmt.Sprintf("Correlation between Payload and Success for site %s", site)
	}

	return Scatter{
		Title: title,
		Rows: table.Filter(func(l entity.Launch) bool {
			return (site.IsAll() || l.Site == site) && payload.Contains(l.PayloadMassKg)
		}),
	}
}
