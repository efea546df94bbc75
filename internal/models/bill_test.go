package models_test

import (
	"time"

	"github.com/billtrack/backend/internal/models"
	"github.com/billtrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBillValidation() {
	dueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		bill models.Bill
		err  error
	}{
		{"valid", models.Bill{Name: "Rent", Amount: decimal.NewFromInt(850), DueDate: dueDate}, nil},
		{"name is required", models.Bill{Name: "  ", Amount: decimal.NewFromInt(850), DueDate: dueDate}, models.ErrBillNameRequired},
		{"amount must not be negative", models.Bill{Name: "Rent", Amount: decimal.NewFromInt(-1), DueDate: dueDate}, models.ErrBillAmountNegative},
		{"due date is required", models.Bill{Name: "Rent", Amount: decimal.NewFromInt(850)}, models.ErrBillDueDateRequired},
		{"zero amount is allowed", models.Bill{Name: "Donation", DueDate: dueDate}, nil},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			bill := tt.bill
			err := models.DB.Create(&bill).Error
			assert.ErrorIs(suite.T(), err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBillMonthFollowsDueDate() {
	bill := suite.createTestBill(models.Bill{
		Name:    "Electricity",
		Amount:  decimal.NewFromInt(80),
		DueDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(suite.T(), types.NewMonth(2024, 3), bill.Month)

	// Changing the due date moves the bill to the new month
	bill.DueDate = time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	err := models.DB.Save(&bill).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), types.NewMonth(2024, 4), bill.Month)
}

// TestBillUpdateValidation verifies that invalid values are also rejected
// on partial updates, where the hooks run before the new values are merged
// into the model.
func (suite *TestSuiteStandard) TestBillUpdateValidation() {
	bill := suite.createTestBill(models.Bill{
		Name:    "Rent",
		Amount:  decimal.NewFromInt(850),
		DueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	err := models.DB.Model(&bill).Select("", "Name").Updates(models.Bill{Name: ""}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBillNameRequired)

	err = models.DB.Model(&bill).Select("", "Amount").Updates(models.Bill{Amount: decimal.NewFromInt(-1)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBillAmountNegative)

	// The rejected updates were rolled back
	var reloaded models.Bill
	assert.Nil(suite.T(), models.DB.First(&reloaded, bill.ID).Error)
	assert.Equal(suite.T(), "Rent", reloaded.Name)
	assert.True(suite.T(), reloaded.Amount.Equal(decimal.NewFromInt(850)))
}

func (suite *TestSuiteStandard) TestBillStatusDerived() {
	bill := models.Bill{IsPaid: false}
	assert.Equal(suite.T(), "pending", bill.Status())

	bill.IsPaid = true
	assert.Equal(suite.T(), "paid", bill.Status())
}

func (suite *TestSuiteStandard) TestBillUnknownCategory() {
	bill := suite.createTestBill(models.Bill{
		Name:     "Mystery",
		Amount:   decimal.NewFromInt(10),
		DueDate:  time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Category: models.Category("definitely-not-a-category"),
	})

	assert.Equal(suite.T(), models.CategoryOther, bill.Category)
}

func (suite *TestSuiteStandard) TestBillTrimWhitespace() {
	bill := suite.createTestBill(models.Bill{
		Name:    "  Rent \t",
		Amount:  decimal.NewFromInt(850),
		DueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(suite.T(), "Rent", bill.Name)
}

func (suite *TestSuiteStandard) TestTotalsFor() {
	dueDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	bills := []models.Bill{
		{Name: "Rent", Amount: decimal.NewFromInt(850), DueDate: dueDate, IsPaid: true},
		{Name: "Internet", Amount: decimal.NewFromFloat(39.99), DueDate: dueDate},
		{Name: "Electricity", Amount: decimal.NewFromFloat(110.01), DueDate: dueDate},
	}

	totals := models.TotalsFor(bills)

	assert.True(suite.T(), totals.Total.Equal(decimal.NewFromInt(1000)), "total is %s", totals.Total)
	assert.True(suite.T(), totals.Paid.Equal(decimal.NewFromInt(850)), "paid is %s", totals.Paid)
	assert.True(suite.T(), totals.Pending.Equal(decimal.NewFromInt(150)), "pending is %s", totals.Pending)
	assert.Equal(suite.T(), 3, totals.BillCount)
	assert.Equal(suite.T(), 1, totals.PaidCount)
	assert.Equal(suite.T(), 2, totals.PendingCount)
}

func (suite *TestSuiteStandard) TestTotalsForEmpty() {
	totals := models.TotalsFor(nil)

	assert.True(suite.T(), totals.Total.IsZero())
	assert.True(suite.T(), totals.Paid.IsZero())
	assert.True(suite.T(), totals.Pending.IsZero())
	assert.Equal(suite.T(), 0, totals.BillCount)
}
