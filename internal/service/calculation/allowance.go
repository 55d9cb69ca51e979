package calculation

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
)

// EvaluateAllowances runs every configured allowance rule against the period's
// attendance summary. FIXED and ONE_TIME rules always pay out; CONDITIONAL
// rules pay only when every configured condition holds. Ineligible rules stay
// in the item list with the reasons they failed, so a preview can show why an
// allowance was withheld.
func EvaluateAllowances(cfg policy.AllowanceConfig, summary attendance.Summary) payroll.AllowanceResult {
	res := payroll.AllowanceResult{Items: make([]payroll.AllowanceItem, 0, len(cfg.Rules))}

	for _, rule := range cfg.Rules {
		item := payroll.AllowanceItem{
			Code:     rule.Code,
			Name:     rule.Name,
			Type:     rule.Type,
			Amount:   rule.Amount,
			Taxable:  rule.Taxable,
			Included: true,
		}

		if rule.Type == policy.AllowanceTypeConditional {
			if reasons := failedConditions(rule.Condition, summary); len(reasons) > 0 {
				item.Included = false
				item.IneligibleReason = strings.Join(reasons, "; ")
			}
		}

		if item.Included {
			res.TotalAllowances = res.TotalAllowances.Add(rule.Amount)
			if rule.Taxable {
				res.TaxableAllowances = res.TaxableAllowances.Add(rule.Amount)
			} else {
				res.NonTaxableAllowances = res.NonTaxableAllowances.Add(rule.Amount)
			}
		}
		res.Items = append(res.Items, item)
	}

	return res
}

func failedConditions(c policy.AllowanceCondition, s attendance.Summary) []string {
	var reasons []string
	if c.MinWorkingDays > 0 && s.WorkingDays < c.MinWorkingDays {
		reasons = append(reasons, fmt.Sprintf("requires at least %d working days, got %d", c.MinWorkingDays, s.WorkingDays))
	}
	if c.MinWorkingHours > 0 && s.WorkingHours() < c.MinWorkingHours {
		reasons = append(reasons, fmt.Sprintf("requires at least %d working hours, got %d", c.MinWorkingHours, s.WorkingHours()))
	}
	if c.NoAbsence && s.AbsenceDays > 0 {
		reasons = append(reasons, fmt.Sprintf("requires no absences, got %d", s.AbsenceDays))
	}
	if c.NoLateArrival && s.LateCount > 0 {
		reasons = append(reasons, fmt.Sprintf("requires no late arrivals, got %d", s.LateCount))
	}
	if c.NoEarlyLeave && s.EarlyLeaveCount > 0 {
		reasons = append(reasons, fmt.Sprintf("requires no early leaves, got %d", s.EarlyLeaveCount))
	}
	return reasons
}
