package models

import (
	"strings"
	"time"

	"github.com/billtrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RepeatType determines how long a recurring rule keeps generating bills.
type RepeatType string

const (
	RepeatForever RepeatType = "forever"
	RepeatLimited RepeatType = "limited"
)

// RecurringRule is a template that generates one Bill per calendar month,
// either indefinitely or for a bounded number of occurrences.
//
// A rule is never deleted automatically. When a limited rule runs out of
// occurrences it simply stops projecting until the user edits or deletes it.
type RecurringRule struct {
	DefaultModel
	Name                 string
	Amount               decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Day                  int             // Day of month an occurrence falls due, 1-31
	Category             Category
	RepeatType           RepeatType
	RepeatCount          *uint // Total occurrences ever to generate, limited rules only
	RemainingOccurrences *uint // Occurrences not yet materialized, limited rules only
	CreatedMonth         types.Month
}

func (r *RecurringRule) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return ErrRuleNameRequired
	}

	if !r.Amount.IsPositive() {
		return ErrRuleAmountNotPositive
	}

	if r.Day < 1 || r.Day > 31 {
		return ErrRuleDayOutOfRange
	}

	if !r.Category.Valid() {
		r.Category = CategoryOther
	}

	switch r.RepeatType {
	case RepeatForever:
		// Counters only exist for limited rules
		r.RepeatCount = nil
		r.RemainingOccurrences = nil

	case RepeatLimited:
		if r.RepeatCount == nil || *r.RepeatCount < 1 {
			return ErrRuleRepeatCountInvalid
		}

		if r.RemainingOccurrences == nil {
			remaining := *r.RepeatCount
			r.RemainingOccurrences = &remaining
		}

		if *r.RemainingOccurrences > *r.RepeatCount {
			return ErrRuleCountersMismatch
		}

	default:
		return ErrRuleRepeatTypeInvalid
	}

	return nil
}

// AfterSave validates the values that were actually saved. Updates merge
// the changed fields into the model only after BeforeSave ran, so this is
// where invalid updates surface and roll back.
func (r *RecurringRule) AfterSave(_ *gorm.DB) error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrRuleNameRequired
	}

	if !r.Amount.IsPositive() {
		return ErrRuleAmountNotPositive
	}

	if r.Day < 1 || r.Day > 31 {
		return ErrRuleDayOutOfRange
	}

	switch r.RepeatType {
	case RepeatForever:

	case RepeatLimited:
		if r.RepeatCount == nil || *r.RepeatCount < 1 {
			return ErrRuleRepeatCountInvalid
		}

		if r.RemainingOccurrences != nil && *r.RemainingOccurrences > *r.RepeatCount {
			return ErrRuleCountersMismatch
		}

	default:
		return ErrRuleRepeatTypeInvalid
	}

	return nil
}

func (r *RecurringRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	if r.CreatedMonth.IsZero() {
		r.CreatedMonth = types.MonthOf(time.Now().In(time.UTC))
	}

	return nil
}

// Consumed returns how many occurrences of the rule have already been
// materialized. It is always 0 for forever rules, which have no counters.
func (r RecurringRule) Consumed() uint {
	if r.RepeatType != RepeatLimited || r.RepeatCount == nil || r.RemainingOccurrences == nil {
		return 0
	}

	return *r.RepeatCount - *r.RemainingOccurrences
}

// RemainingAfterEdit computes the remaining occurrences after an edit
// changes the total repeat count. The number of occurrences that have
// already appeared is preserved, the countdown is not reset.
func (r RecurringRule) RemainingAfterEdit(newRepeatCount uint) uint {
	consumed := r.Consumed()
	if consumed >= newRepeatCount {
		return 0
	}

	return newRepeatCount - consumed
}

// DueDate returns the due date of the rule's occurrence in a month.
// Days beyond the end of a short month clamp to its last day, so a rule
// for day 31 falls due on April 30.
func (r RecurringRule) DueDate(month types.Month) time.Time {
	return month.Date(r.Day)
}

// ProjectsInto reports whether an occurrence of the rule exists for the
// month. Months before the rule's creation never have occurrences, and
// limited rules stop projecting once no occurrences remain.
//
// This is a pure read. Materializing the occurrence into a Bill, and with
// it the counter decrement, happens in MaterializeMonth.
func (r RecurringRule) ProjectsInto(month types.Month) bool {
	if month.Before(r.CreatedMonth) {
		return false
	}

	if r.RepeatType == RepeatLimited {
		return r.RemainingOccurrences != nil && *r.RemainingOccurrences > 0
	}

	return true
}
