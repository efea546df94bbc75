package v1

import (
	"fmt"
	"time"

	"github.com/billtrack/backend/internal/models"
	"github.com/billtrack/backend/internal/types"
	ez_uuid "github.com/billtrack/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillEditable represents all user configurable parameters
type BillEditable struct {
	Name string `json:"name" example:"Rent" default:""` // Name of the bill

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"850.00" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount due

	DueDate  time.Time       `json:"dueDate" example:"2024-03-01T00:00:00Z"`           // Date the bill is due
	Category models.Category `json:"category" example:"housing" default:"other"`       // Category of the bill
	IsPaid   bool            `json:"isPaid" example:"true" default:"false"`            // Has the bill been paid?
}

// model returns the database resource for the API representation of the editable fields
func (editable BillEditable) model() models.Bill {
	return models.Bill{
		Name:     editable.Name,
		Amount:   editable.Amount,
		DueDate:  editable.DueDate,
		Category: editable.Category,
		IsPaid:   editable.IsPaid,
	}
}

type BillLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/bills/d430d7c3-d14c-4712-9336-ee56965a6673"` // The bill itself
}

// Bill is the representation of a Bill in API v1.
type Bill struct {
	models.DefaultModel
	BillEditable
	Links BillLinks `json:"links"`

	// These fields are computed
	Status          string      `json:"status" example:"pending" enums:"paid,pending"`                        // Payment status, derived from isPaid
	Month           types.Month `json:"month" example:"2024-03"`                                              // The month the bill belongs to, derived from dueDate
	IsRecurring     bool        `json:"isRecurring" example:"false"`                                          // Was this bill created from a recurring bill?
	RecurringRuleID *uuid.UUID  `json:"recurringRuleId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`       // ID of the recurring bill this occurrence belongs to
}

// newBill returns the API v1 representation of the resource
func newBill(c *gin.Context, model models.Bill) Bill {
	url := c.GetString(string(models.DBContextURL))

	return Bill{
		DefaultModel: model.DefaultModel,
		BillEditable: BillEditable{
			Name:     model.Name,
			Amount:   model.Amount,
			DueDate:  model.DueDate,
			Category: model.Category,
			IsPaid:   model.IsPaid,
		},
		Links: BillLinks{
			Self: fmt.Sprintf("%s/v1/bills/%s", url, model.ID),
		},
		Status:          model.Status(),
		Month:           model.Month,
		IsRecurring:     model.IsRecurring,
		RecurringRuleID: model.RecurringRuleID,
	}
}

type BillListResponse struct {
	Data       []Bill      `json:"data"`                                                          // List of bills
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BillCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BillResponse `json:"data"`                                                          // List of created Bills
}

func (b *BillCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BillResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BillResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this bill
	Data  *Bill   `json:"data"`                                                          // The Bill data, if creation was successful
}

type BillQueryFilter struct {
	Month           time.Time       `form:"month" filterField:"false" time_format:"2006-01" time_utc:"1"` // The month the bill belongs to
	Name            string          `form:"name" filterField:"false"`                                     // By name
	Category        models.Category `form:"category"`                                                     // By category
	IsPaid          bool            `form:"paid"`                                                         // Is the bill paid?
	IsRecurring     bool            `form:"recurring"`                                                    // Was the bill created from a recurring bill?
	RecurringRuleID ez_uuid.UUID    `form:"rule"`                                                         // By ID of the recurring bill
	Search          string          `form:"search" filterField:"false"`                                   // By string in name
	Offset          uint            `form:"offset" filterField:"false"`                                   // The offset of the first Bill returned. Defaults to 0.
	Limit           int             `form:"limit" filterField:"false"`                                    // Maximum number of Bills to return. Defaults to 50.
}

func (f BillQueryFilter) model() (models.Bill, error) {
	// If the rule ID is nil, use an actual nil, not uuid.Nil
	var ruleID *uuid.UUID
	if f.RecurringRuleID != ez_uuid.Nil {
		ruleID = &f.RecurringRuleID.UUID
	}

	// This does not set the string or month fields since they are
	// handled in the controller function
	return models.Bill{
		Category:        f.Category,
		IsPaid:          f.IsPaid,
		IsRecurring:     f.IsRecurring,
		RecurringRuleID: ruleID,
	}, nil
}
