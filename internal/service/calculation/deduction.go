package calculation

import (
	"sort"

	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-engine-go/internal/domain/policy"
	"github.com/shopspring/decimal"
)

// EvaluateDeductions applies every configured deduction rule in ascending
// Order (ties keep declaration order), then the three attendance penalties.
// Percentage rules take their cut of the base salary; penalties price late
// and early-leave minutes linearly, and absences pro-rata against the
// standard working month.
func EvaluateDeductions(cfg policy.DeductionConfig, summary attendance.Summary, baseSalary, monthlySalary decimal.Decimal) payroll.DeductionResult {
	rules := make([]policy.DeductionRule, len(cfg.Rules))
	copy(rules, cfg.Rules)
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Order < rules[j].Order })

	res := payroll.DeductionResult{Items: make([]payroll.DeductionItem, 0, len(rules))}
	for _, rule := range rules {
		amount := rule.Amount
		if rule.Type == policy.DeductionTypePercentage {
			amount = baseSalary.Mul(rule.Percentage).Div(decimal.NewFromInt(100))
		}
		res.Items = append(res.Items, payroll.DeductionItem{
			Code:   rule.Code,
			Name:   rule.Name,
			Type:   rule.Type,
			Order:  rule.Order,
			Amount: amount,
		})
		res.RuleTotal = res.RuleTotal.Add(amount)
	}

	if cfg.EnableLatePenalty && summary.TotalLateMinutes > 0 {
		res.LatePenalty = cfg.LatePenaltyPerMinute.Mul(decimal.NewFromInt(int64(summary.TotalLateMinutes)))
	}
	if cfg.EnableEarlyLeavePenalty && summary.TotalEarlyLeaveMinutes > 0 {
		res.EarlyLeavePenalty = cfg.EarlyLeavePenaltyPerMinute.Mul(decimal.NewFromInt(int64(summary.TotalEarlyLeaveMinutes)))
	}
	if cfg.EnableAbsenceDeduction && summary.AbsenceDays > 0 && cfg.StandardWorkingDaysPerMonth > 0 {
		perDay := monthlySalary.Div(decimal.NewFromInt(int64(cfg.StandardWorkingDaysPerMonth)))
		res.AbsenceDeduction = perDay.Mul(decimal.NewFromInt(int64(summary.AbsenceDays)))
	}

	res.TotalDeductions = res.RuleTotal.
		Add(res.LatePenalty).
		Add(res.EarlyLeavePenalty).
		Add(res.AbsenceDeduction)
	return res
}
