package v1

import (
	"fmt"

	"github.com/billtrack/backend/internal/models"
	"github.com/billtrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"2500.00" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The spending limit for the month
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Amount: editable.Amount,
	}
}

type BudgetLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/budgets/2024-03"`       // The budget itself
	Month string `json:"month" example:"https://example.com/api/v1/months?month=2024-03"` // The month overview the budget applies to
}

// Budget is the representation of a monthly budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`

	Month types.Month `json:"month" example:"2024-03"` // The month the budget applies to
}

// newBudget returns the API v1 representation of the resource
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Amount: model.Amount,
		},
		Links: BudgetLinks{
			Self:  fmt.Sprintf("%s/v1/budgets/%s", url, model.Month),
			Month: fmt.Sprintf("%s/v1/months?month=%s", url, model.Month),
		},
		Month: model.Month,
	}
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // The Budget data
}
