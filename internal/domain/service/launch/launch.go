// Package launch computes the two dashboard views over the launch table: the
// success distribution behind the proportion chart and the payload filter
// behind the scatter chart. Both are pure functions of the table and the
// current selection.
package launch

import (
	"launchdash/internal/domain/entity"
	"launchdash/internal/domain/value"
)

// Service binds the computations to one loaded table. It holds no other
// state and is safe for concurrent use.
type Service struct {
	table entity.Table
}

func NewService(table entity.Table) *Service {
	return &Service{table: table}
}

func (s *Service) Table() entity.Table {
	return s.table
}

func (s *Service) Sites() []value.Site {
	return s.table.Sites()
}

func (s *Service) SuccessDistribution(site value.Site) Distribution {
	return SuccessDistribution(s.table, site)
}

func (s *Service) FilteredLaunches(site value.Site, payload value.PayloadRange) Scatter {
	return FilteredLaunches(s.table, site, payload)
}
