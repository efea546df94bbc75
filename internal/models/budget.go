package models

import (
	"github.com/billtrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the spending ceiling for one month. A month without a budget
// row has a budget of zero.
type Budget struct {
	DefaultModel
	Month  types.Month     `gorm:"uniqueIndex"`
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	return nil
}

// AfterSave validates the amount that was actually saved, which on
// updates differs from the one BeforeSave sees.
func (b *Budget) AfterSave(_ *gorm.DB) error {
	if b.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	return nil
}

// BudgetStatus classifies how a month's committed bills compare to its budget.
type BudgetStatus string

const (
	BudgetStatusOK      BudgetStatus = "ok"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusOver    BudgetStatus = "over"
)

// BudgetUsage compares a month's total committed bill amount against the
// configured budget.
type BudgetUsage struct {
	Budget         decimal.Decimal // The configured budget, zero when unset
	Total          decimal.Decimal // Sum of all bill amounts for the month
	Remaining      decimal.Decimal // Budget minus total, negative when over budget
	UsedPercentage decimal.Decimal // Share of the budget used, clamped to [0, 100]
	OverBudget     bool
	Status         BudgetStatus
}

var hundred = decimal.NewFromInt(100)
var ninety = decimal.NewFromInt(90)

// ComputeUsage is a pure function of the budget amount and the month total.
// It is cheap enough to recompute on every request, so its result is never
// stored.
func ComputeUsage(budget, total decimal.Decimal) BudgetUsage {
	usage := BudgetUsage{
		Budget:    budget,
		Total:     total,
		Remaining: budget.Sub(total),
	}

	// The unclamped sign of Remaining drives over-budget detection even
	// when the percentage is clamped for display.
	usage.OverBudget = total.GreaterThan(budget)

	// A zero budget would divide by zero; the percentage is defined as 0
	// and the status follows Remaining alone.
	if budget.IsZero() {
		usage.UsedPercentage = decimal.Zero
	} else {
		used := total.Div(budget).Mul(hundred)
		if used.LessThan(decimal.Zero) {
			used = decimal.Zero
		}
		if used.GreaterThan(hundred) {
			used = hundred
		}
		usage.UsedPercentage = used
	}

	switch {
	case usage.OverBudget:
		usage.Status = BudgetStatusOver
	case usage.UsedPercentage.GreaterThan(ninety):
		usage.Status = BudgetStatusWarning
	default:
		usage.Status = BudgetStatusOK
	}

	return usage
}
