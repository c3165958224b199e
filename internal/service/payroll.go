package service

import (
	"hr-payroll-backend/internal/config"
	"hr-payroll-backend/internal/database/models"
	apperrors "hr-payroll-backend/internal/errors"

	"github.com/shopspring/decimal"
)

// Amount is a pay figure that serializes as a JSON number
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d as an Amount
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalJSON renders the amount as an unquoted number
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// EmployeePayBreakdown splits an employee's pay by the role held in each assignment
type EmployeePayBreakdown struct {
	Employee decimal.Decimal
	Leader   decimal.Decimal
	Total    decimal.Decimal
}

// PayrollAggregator computes pay from assignments. Single-assignment and
// per-employee figures always apply the leader premium to the leader's own
// term; team and company totals follow the configured aggregation mode.
type PayrollAggregator struct {
	premium decimal.Decimal
	mode    string
}

// NewPayrollAggregator creates an aggregator with a leader premium multiplier
// and an aggregation mode (config.AggregationPerTerm or config.AggregationCompounding)
func NewPayrollAggregator(leaderPremium float64, mode string) (*PayrollAggregator, error) {
	switch mode {
	case config.AggregationPerTerm, config.AggregationCompounding:
	default:
		return nil, apperrors.ErrInvalidAggregationMode
	}
	return &PayrollAggregator{
		premium: decimal.NewFromFloat(leaderPremium),
		mode:    mode,
	}, nil
}

// Mode returns the team and company aggregation mode
func (p *PayrollAggregator) Mode() string {
	return p.mode
}

// AssignmentPay returns weekly pay for hours at rate, with the premium for leaders
func (p *PayrollAggregator) AssignmentPay(hourlyRate float64, weeklyHours int, role models.Role) decimal.Decimal {
	pay := baseTerm(hourlyRate, weeklyHours)
	if role.IsLeader() {
		pay = pay.Mul(p.premium)
	}
	return pay
}

// EmployeePay sums one employee's assignments at hourlyRate, split by role
func (p *PayrollAggregator) EmployeePay(hourlyRate float64, assignments []models.Assignment) EmployeePayBreakdown {
	breakdown := EmployeePayBreakdown{
		Employee: decimal.Zero,
		Leader:   decimal.Zero,
	}
	for _, a := range assignments {
		term := p.AssignmentPay(hourlyRate, a.WeeklyHours, a.Role)
		if a.Role.IsLeader() {
			breakdown.Leader = breakdown.Leader.Add(term)
		} else {
			breakdown.Employee = breakdown.Employee.Add(term)
		}
	}
	breakdown.Total = breakdown.Employee.Add(breakdown.Leader)
	return breakdown
}

// TeamCompensation totals a team's assignments. Each assignment must carry its
// preloaded Employee.
func (p *PayrollAggregator) TeamCompensation(assignments []models.Assignment) decimal.Decimal {
	return p.aggregate(assignments)
}

// CompanyCompensation totals every assignment, in the order given
func (p *PayrollAggregator) CompanyCompensation(assignments []models.Assignment) decimal.Decimal {
	return p.aggregate(assignments)
}

func (p *PayrollAggregator) aggregate(assignments []models.Assignment) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assignments {
		if p.mode == config.AggregationCompounding {
			// the premium scales the running total after the leader's term is added
			total = total.Add(baseTerm(a.Employee.HourlyRate, a.WeeklyHours))
			if a.Role.IsLeader() {
				total = total.Mul(p.premium)
			}
			continue
		}
		total = total.Add(p.AssignmentPay(a.Employee.HourlyRate, a.WeeklyHours, a.Role))
	}
	return total
}

func baseTerm(hourlyRate float64, weeklyHours int) decimal.Decimal {
	return decimal.NewFromFloat(hourlyRate).Mul(decimal.NewFromInt(int64(weeklyHours)))
}
