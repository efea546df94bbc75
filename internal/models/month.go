package models

import (
	"errors"

	"github.com/billtrack/backend/internal/types"
	"gorm.io/gorm"
)

// MaterializeMonth turns every recurring rule occurrence that is due for
// the month into a concrete Bill and returns all bills of the month.
//
// Materialization is idempotent per (rule, month): a rule that already has
// a bill for the month is skipped, so displaying a month repeatedly never
// decrements counters twice. The skip check includes soft-deleted bills,
// because a user who deleted an occurrence does not want it back the next
// time the month is displayed.
func MaterializeMonth(db *gorm.DB, month types.Month) ([]Bill, error) {
	var rules []RecurringRule
	err := db.Find(&rules).Error
	if err != nil {
		return nil, err
	}

	// One transaction per month display. If two requests race on the same
	// month, the unique (rule, month) index fails the second insert and
	// its transaction rolls back without consuming an occurrence.
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, rule := range rules {
			if !rule.ProjectsInto(month) {
				continue
			}

			var existing int64
			err := tx.Unscoped().Model(&Bill{}).
				Where("recurring_rule_id = ? AND month = ?", rule.ID, month).
				Count(&existing).Error
			if err != nil {
				return err
			}

			if existing > 0 {
				continue
			}

			ruleID := rule.ID
			bill := Bill{
				Name:            rule.Name,
				Amount:          rule.Amount,
				DueDate:         rule.DueDate(month),
				Category:        rule.Category,
				IsRecurring:     true,
				RecurringRuleID: &ruleID,
			}

			err = tx.Create(&bill).Error
			if err != nil {
				return err
			}

			if rule.RepeatType == RepeatLimited {
				remaining := *rule.RemainingOccurrences - 1
				err = tx.Model(&rule).Update("remaining_occurrences", remaining).Error
				if err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil && !errors.Is(err, ErrOccurrenceExists) {
		return nil, err
	}

	var bills []Bill
	err = db.Where("month = ?", month).Order("due_date ASC, name ASC").Find(&bills).Error
	if err != nil {
		return nil, err
	}

	return bills, nil
}

// BudgetFor returns the budget amount configured for a month. A month
// without a budget record has a budget of zero, which is not an error.
func BudgetFor(db *gorm.DB, month types.Month) (Budget, error) {
	var budget Budget
	err := db.Where("month = ?", month).First(&budget).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return Budget{Month: month}, nil
		}

		return Budget{}, err
	}

	return budget, nil
}
