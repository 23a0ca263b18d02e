package launch

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"launchdash/internal/domain/entity"
	"launchdash/internal/domain/value"
)

const titleAllSitesSuccess = "Total Success Launches for All Sites"

// Distribution is the input of a proportion chart. Labels[i] belongs to
// Values[i]; Colors is either empty or parallel to Labels.
type Distribution struct {
	Title  string
	Labels []string
	Values []float64
	Colors []string
}

func (d Distribution) Empty() bool {
	return len(d.Labels) == 0
}

// SuccessDistribution counts launch outcomes for the selected site.
//
// For value.AllSites it returns one successful-launch count per site that has
// at least one success, ordered by site name. For a single site it returns the
// failure and success counts, both always present, colored per class. An
// unknown site yields an empty distribution.
func SuccessDistribution(table entity.Table, site value.Site) Distribution {
	if site.IsAll() {
		return successesPerSite(table)
	}

	d := Distribution{
		Title:  fmt.Sprintf("Success Launches for Site %s", site),
		Labels: []string{},
		Values: []float64{},
	}

	if !table.HasSite(site) {
		return d
	}

	counts := lo.CountValuesBy(
		table.Filter(func(l entity.Launch) bool { return l.Site == site }),
		func(l entity.Launch) value.OutcomeClass { return l.Class },
	)

	for _, class := range value.OutcomeClasses {
		d.Labels = append(d.Labels, class.String())
		d.Values = append(d.Values, float64(counts[class]))
		d.Colors = append(d.Colors, class.Color())
	}

	return d
}

func successesPerSite(table entity.Table) Distribution {
	counts := lo.CountValuesBy(
		table.Filter(func(l entity.Launch) bool { return l.Class == value.OutcomeSuccess }),
		func(l entity.Launch) value.Site { return l.Site },
	)

	sites := lo.Keys(counts)
	slices.Sort(sites)

	d := Distribution{
		Title:  titleAllSitesSuccess,
		Labels: make([]string, 0, len(sites)),
		Values: make([]float64, 0, len(sites)),
	}

	for _, site := range sites {
		d.Labels = append(d.Labels, site.String())
		d.Values = append(d.Values, float64(counts[site]))
	}

	return d
}
