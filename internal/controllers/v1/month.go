package v1

import (
	"fmt"
	"net/http"

	"github.com/billtrack/backend/internal/httputil"
	"github.com/billtrack/backend/internal/models"
	"github.com/billtrack/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type MonthResponse struct {
	Data  *Month  `json:"data"`  // Data for the month
	Error *string `json:"error"` // The error, if any occurred
}

// Month is the overview for a single month: the bills due in it,
// their totals and the budget usage.
type Month struct {
	Month  types.Month        `json:"month" example:"2024-03"` // The month
	Bills  []Bill             `json:"bills"`                   // All bills due in this month
	Totals models.MonthTotals `json:"totals"`                  // Aggregated amounts for the month
	Budget models.BudgetUsage `json:"budget"`                  // Budget usage for the month
	Links  MonthLinks         `json:"links"`
}

type MonthLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/months?month=2024-03"` // The month overview itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/2024-03"`    // The budget for this month
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonth)
	r.GET("", GetMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get data about a month
// @Description	Returns the bills for a specific month. Bills for recurring bills that have not been generated for this month yet are generated by this call.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	var query QueryMonth
	if err := c.BindQuery(&query); err != nil {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	if query.Month.IsZero() {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(query.Month)

	bills, err := models.MaterializeMonth(models.DB, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	budget, err := models.BudgetFor(models.DB, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	totals := models.TotalsFor(bills)

	data := make([]Bill, 0)
	for _, bill := range bills {
		data = append(data, newBill(c, bill))
	}

	url := c.GetString(string(models.DBContextURL))
	result := Month{
		Month:  month,
		Bills:  data,
		Totals: totals,
		Budget: models.ComputeUsage(budget.Amount, totals.Total),
		Links: MonthLinks{
			Self:   fmt.Sprintf("%s/v1/months?month=%s", url, month),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, month),
		},
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &result})
}
