package models

import (
	"strings"
	"time"

	"github.com/billtrack/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill is a single dated monetary obligation, paid or pending.
//
// Bills are either created directly by the user or materialized from a
// RecurringRule for a specific month. The unique index over the rule ID
// and the month guarantees that a rule materializes at most once per month.
type Bill struct {
	DefaultModel
	Name            string
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDate         time.Time
	Month           types.Month `gorm:"uniqueIndex:bill_rule_month"`
	Category        Category
	IsRecurring     bool
	IsPaid          bool
	RecurringRuleID *uuid.UUID     `gorm:"uniqueIndex:bill_rule_month"`
	RecurringRule   *RecurringRule `json:"-"`
}

// Status is the display label derived from IsPaid. It is never stored,
// which keeps it consistent with IsPaid at all times.
func (b Bill) Status() string {
	if b.IsPaid {
		return "paid"
	}

	return "pending"
}

func (b *Bill) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return ErrBillNameRequired
	}

	if b.Amount.IsNegative() {
		return ErrBillAmountNegative
	}

	if b.DueDate.IsZero() {
		return ErrBillDueDateRequired
	}

	b.DueDate = b.DueDate.In(time.UTC)

	// The month bucket always follows the due date.
	b.Month = types.MonthOf(b.DueDate)

	if !b.Category.Valid() {
		b.Category = CategoryOther
	}

	return nil
}

// AfterSave validates the values that were actually saved. Updates merge
// the changed fields into the model only after BeforeSave ran, so this is
// where invalid updates surface and roll back.
func (b *Bill) AfterSave(_ *gorm.DB) error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrBillNameRequired
	}

	if b.Amount.IsNegative() {
		return ErrBillAmountNegative
	}

	if b.DueDate.IsZero() {
		return ErrBillDueDateRequired
	}

	return nil
}

// AfterFind normalizes the due date to UTC, see DefaultModel.AfterFind.
func (b *Bill) AfterFind(tx *gorm.DB) error {
	b.DueDate = b.DueDate.In(time.UTC)
	return b.DefaultModel.AfterFind(tx)
}

// MonthTotals summarizes the bills of one month.
type MonthTotals struct {
	Total        decimal.Decimal
	Paid         decimal.Decimal
	Pending      decimal.Decimal
	BillCount    int
	PaidCount    int
	PendingCount int
}

// TotalsFor computes the totals over a month's bills.
func TotalsFor(bills []Bill) MonthTotals {
	t := MonthTotals{
		Total:   decimal.Zero,
		Paid:    decimal.Zero,
		Pending: decimal.Zero,
	}

	for _, bill := range bills {
		t.Total = t.Total.Add(bill.Amount)
		t.BillCount++

		if bill.IsPaid {
			t.Paid = t.Paid.Add(bill.Amount)
			t.PaidCount++
		} else {
			t.PendingCount++
		}
	}

	t.Pending = t.Total.Sub(t.Paid)
	return t
}
