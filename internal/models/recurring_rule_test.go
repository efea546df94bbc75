package models_test

import (
	"time"

	"github.com/billtrack/backend/internal/models"
	"github.com/billtrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func uintp(i uint) *uint {
	return &i
}

func (suite *TestSuiteStandard) TestRecurringRuleValidation() {
	tests := []struct {
		name string
		rule models.RecurringRule
		err  error
	}{
		{"valid forever", models.RecurringRule{Name: "Rent", Amount: decimal.NewFromInt(850), Day: 1, RepeatType: models.RepeatForever}, nil},
		{"valid limited", models.RecurringRule{Name: "Loan", Amount: decimal.NewFromInt(200), Day: 15, RepeatType: models.RepeatLimited, RepeatCount: uintp(12)}, nil},
		{"name is required", models.RecurringRule{Name: " ", Amount: decimal.NewFromInt(850), Day: 1, RepeatType: models.RepeatForever}, models.ErrRuleNameRequired},
		{"amount must be positive", models.RecurringRule{Name: "Rent", Day: 1, RepeatType: models.RepeatForever}, models.ErrRuleAmountNotPositive},
		{"day too small", models.RecurringRule{Name: "Rent", Amount: decimal.NewFromInt(850), Day: 0, RepeatType: models.RepeatForever}, models.ErrRuleDayOutOfRange},
		{"day too large", models.RecurringRule{Name: "Rent", Amount: decimal.NewFromInt(850), Day: 32, RepeatType: models.RepeatForever}, models.ErrRuleDayOutOfRange},
		{"repeat type must be known", models.RecurringRule{Name: "Rent", Amount: decimal.NewFromInt(850), Day: 1, RepeatType: "yearly"}, models.ErrRuleRepeatTypeInvalid},
		{"limited needs a repeat count", models.RecurringRule{Name: "Loan", Amount: decimal.NewFromInt(200), Day: 15, RepeatType: models.RepeatLimited}, models.ErrRuleRepeatCountInvalid},
		{"repeat count must be at least one", models.RecurringRule{Name: "Loan", Amount: decimal.NewFromInt(200), Day: 15, RepeatType: models.RepeatLimited, RepeatCount: uintp(0)}, models.ErrRuleRepeatCountInvalid},
		{"remaining cannot exceed count", models.RecurringRule{Name: "Loan", Amount: decimal.NewFromInt(200), Day: 15, RepeatType: models.RepeatLimited, RepeatCount: uintp(5), RemainingOccurrences: uintp(6)}, models.ErrRuleCountersMismatch},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			rule := tt.rule
			err := models.DB.Create(&rule).Error
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringRuleForeverClearsCounters() {
	rule := suite.createTestRule(models.RecurringRule{
		Name:                 "Rent",
		Amount:               decimal.NewFromInt(850),
		Day:                  1,
		RepeatType:           models.RepeatForever,
		RepeatCount:          uintp(12),
		RemainingOccurrences: uintp(12),
	})

	assert.Nil(suite.T(), rule.RepeatCount)
	assert.Nil(suite.T(), rule.RemainingOccurrences)
}

func (suite *TestSuiteStandard) TestRecurringRuleRemainingDefaultsToCount() {
	rule := suite.createTestRule(models.RecurringRule{
		Name:        "Loan",
		Amount:      decimal.NewFromInt(200),
		Day:         15,
		RepeatType:  models.RepeatLimited,
		RepeatCount: uintp(12),
	})

	if assert.NotNil(suite.T(), rule.RemainingOccurrences) {
		assert.Equal(suite.T(), uint(12), *rule.RemainingOccurrences)
	}
}

func (suite *TestSuiteStandard) TestRecurringRuleCreatedMonthDefaults() {
	rule := suite.createTestRule(models.RecurringRule{
		Name:       "Rent",
		Amount:     decimal.NewFromInt(850),
		Day:        1,
		RepeatType: models.RepeatForever,
	})

	assert.Equal(suite.T(), types.MonthOf(time.Now().In(time.UTC)), rule.CreatedMonth)
}

func (suite *TestSuiteStandard) TestRecurringRuleConsumed() {
	forever := models.RecurringRule{RepeatType: models.RepeatForever}
	assert.Equal(suite.T(), uint(0), forever.Consumed())

	limited := models.RecurringRule{
		RepeatType:           models.RepeatLimited,
		RepeatCount:          uintp(12),
		RemainingOccurrences: uintp(8),
	}
	assert.Equal(suite.T(), uint(4), limited.Consumed())
}

func (suite *TestSuiteStandard) TestRecurringRuleRemainingAfterEdit() {
	rule := models.RecurringRule{
		RepeatType:           models.RepeatLimited,
		RepeatCount:          uintp(12),
		RemainingOccurrences: uintp(8),
	}

	// 4 occurrences are consumed, raising the total to 20 leaves 16
	assert.Equal(suite.T(), uint(16), rule.RemainingAfterEdit(20))

	// Lowering the total below the consumed count leaves nothing
	assert.Equal(suite.T(), uint(0), rule.RemainingAfterEdit(3))

	// A forever rule has consumed nothing
	forever := models.RecurringRule{RepeatType: models.RepeatForever}
	assert.Equal(suite.T(), uint(5), forever.RemainingAfterEdit(5))
}

func (suite *TestSuiteStandard) TestRecurringRuleDueDateClamps() {
	rule := models.RecurringRule{Day: 31}

	assert.Equal(suite.T(), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), rule.DueDate(types.NewMonth(2024, 1)))
	assert.Equal(suite.T(), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), rule.DueDate(types.NewMonth(2024, 2)))
	assert.Equal(suite.T(), time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), rule.DueDate(types.NewMonth(2023, 2)))
	assert.Equal(suite.T(), time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), rule.DueDate(types.NewMonth(2024, 4)))
}

func (suite *TestSuiteStandard) TestRecurringRuleProjectsInto() {
	created := types.NewMonth(2024, 3)

	tests := []struct {
		name  string
		rule  models.RecurringRule
		month types.Month
		want  bool
	}{
		{"forever projects into its creation month", models.RecurringRule{RepeatType: models.RepeatForever, CreatedMonth: created}, created, true},
		{"forever projects far into the future", models.RecurringRule{RepeatType: models.RepeatForever, CreatedMonth: created}, types.NewMonth(2030, 12), true},
		{"never projects before creation", models.RecurringRule{RepeatType: models.RepeatForever, CreatedMonth: created}, types.NewMonth(2024, 2), false},
		{"limited with remaining projects", models.RecurringRule{RepeatType: models.RepeatLimited, CreatedMonth: created, RepeatCount: uintp(2), RemainingOccurrences: uintp(1)}, types.NewMonth(2024, 5), true},
		{"limited without remaining does not project", models.RecurringRule{RepeatType: models.RepeatLimited, CreatedMonth: created, RepeatCount: uintp(2), RemainingOccurrences: uintp(0)}, types.NewMonth(2024, 5), false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			assert.Equal(suite.T(), tt.want, tt.rule.ProjectsInto(tt.month))
		})
	}
}
