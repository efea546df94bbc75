package v1

import (
	"net/http"

	"github.com/billtrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Auth      string `json:"auth" example:"https://example.com/api/v1/auth"`           // URL of the auth endpoints
	Bills     string `json:"bills" example:"https://example.com/api/v1/bills"`         // URL of the bill collection endpoint
	Budgets   string `json:"budgets" example:"https://example.com/api/v1/budgets"`     // URL of the budget endpoints
	Import    string `json:"import" example:"https://example.com/api/v1/import"`       // URL of the import endpoint
	Months    string `json:"months" example:"https://example.com/api/v1/months"`       // URL of the month overview endpoint
	Recurring string `json:"recurring" example:"https://example.com/api/v1/recurring"` // URL of the recurring bill collection endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Auth:      url + "/auth",
			Bills:     url + "/bills",
			Budgets:   url + "/budgets",
			Import:    url + "/import",
			Months:    url + "/months",
			Recurring: url + "/recurring",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	c.Header("allow", "GET, DELETE")
	c.Status(http.StatusNoContent)
}
