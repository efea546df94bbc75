package models_test

import (
	"github.com/billtrack/backend/internal/models"
	"github.com/billtrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetAmountMustNotBeNegative() {
	budget := models.Budget{
		Month:  types.NewMonth(2024, 3),
		Amount: decimal.NewFromInt(-100),
	}

	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetAmountNegative)
}

func (suite *TestSuiteStandard) TestBudgetMonthIsUnique() {
	_ = suite.createTestBudget(models.Budget{
		Month:  types.NewMonth(2024, 3),
		Amount: decimal.NewFromInt(1500),
	})

	duplicate := models.Budget{
		Month:  types.NewMonth(2024, 3),
		Amount: decimal.NewFromInt(2000),
	}

	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetMonthNotUnique)
}

func (suite *TestSuiteStandard) TestComputeUsage() {
	tests := []struct {
		name           string
		budget         float64
		total          float64
		remaining      float64
		usedPercentage float64
		overBudget     bool
		status         models.BudgetStatus
	}{
		{"well within budget", 1000, 500, 500, 50, false, models.BudgetStatusOK},
		{"exactly on budget", 1000, 1000, 0, 100, false, models.BudgetStatusWarning},
		{"over budget", 1000, 1200, -200, 100, true, models.BudgetStatusOver},
		{"just inside the warning band", 1000, 901, 99, 90.1, false, models.BudgetStatusWarning},
		{"at the warning threshold", 1000, 900, 100, 90, false, models.BudgetStatusOK},
		{"no budget configured", 0, 500, -500, 0, true, models.BudgetStatusOver},
		{"no budget and no bills", 0, 0, 0, 0, false, models.BudgetStatusOK},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			usage := models.ComputeUsage(decimal.NewFromFloat(tt.budget), decimal.NewFromFloat(tt.total))

			assert.True(suite.T(), usage.Remaining.Equal(decimal.NewFromFloat(tt.remaining)), "remaining is %s", usage.Remaining)
			assert.True(suite.T(), usage.UsedPercentage.Equal(decimal.NewFromFloat(tt.usedPercentage)), "used percentage is %s", usage.UsedPercentage)
			assert.Equal(suite.T(), tt.overBudget, usage.OverBudget)
			assert.Equal(suite.T(), tt.status, usage.Status)
		})
	}
}
