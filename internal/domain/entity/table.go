package entity

import (
	"slices"

	"github.com/samber/lo"

	"launchdash/internal/domain/value"
)

// Table is the immutable launch record set. The distinct sites and the
// payload bounds are derived once at construction.
type Table struct {
	launches   []Launch
	sites      []value.Site
	siteIndex  map[value.Site]struct{}
	payloadMin float64
	payloadMax float64
}

// NewTable copies launches, so later changes to the argument do not leak in.
func NewTable(launches []Launch) Table {
	owned := slices.Clone(launches)
	sites := lo.Uniq(lo.Map(owned, func(l Launch, _ int) value.Site { return l.Site }))
	payloads := lo.Map(owned, func(l Launch, _ int) float64 { return l.PayloadMassKg })

	return Table{
		launches:   owned,
		sites:      sites,
		siteIndex:  lo.Keyify(sites),
		payloadMin: lo.Min(payloads),
		payloadMax: lo.Max(payloads),
	}
}

func (t Table) Len() int {
	return len(t.launches)
}

// Launches returns a copy of every record in load order.
func (t Table) Launches() []Launch {
	return slices.Clone(t.launches)
}

// Filter returns the records matching keep, in load order.
func (t Table) Filter(keep func(Launch) bool) []Launch {
	return lo.Filter(t.launches, func(l Launch, _ int) bool { return keep(l) })
}

// Sites returns the distinct sites in first-appearance order.
func (t Table) Sites() []value.Site {
	return slices.Clone(t.sites)
}

func (t Table) HasSite(site value.Site) bool {
	_, ok := t.siteIndex[site]

	return ok
}

// PayloadBounds returns the smallest and largest payload mass; both are zero
// for an empty table.
func (t Table) PayloadBounds() (float64, float64) {
	return t.payloadMin, t.payloadMax
}
