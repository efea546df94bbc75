package v1

import (
	"fmt"

	"github.com/billtrack/backend/internal/models"
	"github.com/billtrack/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RecurringRuleEditable represents all user configurable parameters
type RecurringRuleEditable struct {
	Name string `json:"name" example:"Internet" default:""` // Name of the recurring bill

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"39.99" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount due every month

	Day         int               `json:"day" example:"15" minimum:"1" maximum:"31"`            // Day of the month the bill is due. Clamped to the last day for shorter months.
	Category    models.Category   `json:"category" example:"utilities" default:"other"`         // Category for generated bills
	RepeatType  models.RepeatType `json:"repeatType" example:"forever" enums:"forever,limited"` // Does the rule repeat forever or a limited number of times?
	RepeatCount *uint             `json:"repeatCount" example:"12" minimum:"1"`                 // Total number of occurrences for limited rules
}

// model returns the database resource for the API representation of the editable fields
func (editable RecurringRuleEditable) model() models.RecurringRule {
	return models.RecurringRule{
		Name:        editable.Name,
		Amount:      editable.Amount,
		Day:         editable.Day,
		Category:    editable.Category,
		RepeatType:  editable.RepeatType,
		RepeatCount: editable.RepeatCount,
	}
}

type RecurringRuleLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/recurring/a1c4b8d2-9f06-4e51-b2c3-8a07ff53e591"`   // The recurring bill itself
	Bills string `json:"bills" example:"https://example.com/api/v1/bills?rule=a1c4b8d2-9f06-4e51-b2c3-8a07ff53e591"` // Bills generated from this recurring bill
}

// RecurringRule is the representation of a recurring bill in API v1.
type RecurringRule struct {
	models.DefaultModel
	RecurringRuleEditable
	Links RecurringRuleLinks `json:"links"`

	// These fields are computed
	RemainingOccurrences *uint       `json:"remainingOccurrences" example:"8"` // Occurrences left to generate, limited rules only
	CreatedMonth         types.Month `json:"createdMonth" example:"2024-01"`   // First month the rule generates a bill for
}

// newRecurringRule returns the API v1 representation of the resource
func newRecurringRule(c *gin.Context, model models.RecurringRule) RecurringRule {
	url := c.GetString(string(models.DBContextURL))

	return RecurringRule{
		DefaultModel: model.DefaultModel,
		RecurringRuleEditable: RecurringRuleEditable{
			Name:        model.Name,
			Amount:      model.Amount,
			Day:         model.Day,
			Category:    model.Category,
			RepeatType:  model.RepeatType,
			RepeatCount: model.RepeatCount,
		},
		Links: RecurringRuleLinks{
			Self:  fmt.Sprintf("%s/v1/recurring/%s", url, model.ID),
			Bills: fmt.Sprintf("%s/v1/bills?rule=%s", url, model.ID),
		},
		RemainingOccurrences: model.RemainingOccurrences,
		CreatedMonth:         model.CreatedMonth,
	}
}

type RecurringRuleListResponse struct {
	Data       []RecurringRule `json:"data"`                                                          // List of recurring bills
	Error      *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination     `json:"pagination"`                                                    // Pagination information
}

type RecurringRuleCreateResponse struct {
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []RecurringRuleResponse `json:"data"`                                                          // List of created recurring bills
}

func (r *RecurringRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RecurringRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RecurringRuleResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this recurring bill
	Data  *RecurringRule `json:"data"`                                                          // The recurring bill data, if creation was successful
}

type RecurringRuleQueryFilter struct {
	Name       string            `form:"name" filterField:"false"`   // By name
	Category   models.Category   `form:"category"`                   // By category
	RepeatType models.RepeatType `form:"repeatType"`                 // By repeat type
	Active     bool              `form:"active" filterField:"false"` // Only rules that still generate bills
	Search     string            `form:"search" filterField:"false"` // By string in name
	Offset     uint              `form:"offset" filterField:"false"` // The offset of the first recurring bill returned. Defaults to 0.
	Limit      int               `form:"limit" filterField:"false"`  // Maximum number of recurring bills to return. Defaults to 50.
}

func (f RecurringRuleQueryFilter) model() (models.RecurringRule, error) {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.RecurringRule{
		Category:   f.Category,
		RepeatType: f.RepeatType,
	}, nil
}
