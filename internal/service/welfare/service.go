package welfare

import (
	"github.com/cmlabs-hris/payroll-engine/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-engine/internal/domain/welfare"
)

// Aggregator evaluates every registered provider in registration order.
// Providers are independent, so the order only affects the line listing.
type Aggregator struct {
	providers []welfare.Provider
}

func NewWelfareService(providers ...welfare.Provider) *Aggregator {
	return &Aggregator{providers: providers}
}

var _ welfare.WelfareService = (*Aggregator)(nil)

// ComputeTotals implements welfare.WelfareService.
func (a *Aggregator) ComputeTotals(emp employee.Employee, att attendance.Summarizer, month, year int) welfare.Totals {
	totals := welfare.NewTotals()
	for _, p := range a.providers {
		if !p.IsEligible(emp, att, month, year) {
			continue
		}
		totals.Apply(p.Details(), p.CalculateImpact(emp))
	}
	return totals
}

// Providers implements welfare.WelfareService.
func (a *Aggregator) Providers() []welfare.Details {
	out := make([]welfare.Details, 0, len(a.providers))
	for _, p := range a.providers {
		out = append(out, p.Details())
	}
	return out
}
