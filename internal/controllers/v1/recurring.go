package v1

import (
	"net/http"

	"github.com/billtrack/backend/internal/httputil"
	"github.com/billtrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterRecurringRuleRoutes registers the routes for recurring bills with
// the RouterGroup that is passed.
func RegisterRecurringRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringRuleList)
		r.GET("", GetRecurringRules)
		r.POST("", CreateRecurringRules)
	}

	// Recurring rule with ID
	{
		r.OPTIONS("/:id", OptionsRecurringRuleDetail)
		r.GET("/:id", GetRecurringRule)
		r.PATCH("/:id", UpdateRecurringRule)
		r.DELETE("/:id", DeleteRecurringRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringBills
// @Success		204
// @Router			/v1/recurring [options]
func OptionsRecurringRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringBills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring/{id} [options]
func OptionsRecurringRuleDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.RecurringRule{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create recurring bills
// @Description	Creates new recurring bills
// @Tags			RecurringBills
// @Produce		json
// @Success		201		{object}	RecurringRuleCreateResponse
// @Failure		400		{object}	RecurringRuleCreateResponse
// @Failure		500		{object}	RecurringRuleCreateResponse
// @Param			rules	body		[]RecurringRuleEditable	true	"Recurring bills"
// @Router			/v1/recurring [post]
func CreateRecurringRules(c *gin.Context) {
	var editables []RecurringRuleEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringRuleCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RecurringRuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model()

		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRecurringRule(c, rule)
		r.Data = append(r.Data, RecurringRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get recurring bills
// @Description	Returns a list of recurring bills
// @Tags			RecurringBills
// @Produce		json
// @Success		200	{object}	RecurringRuleListResponse
// @Failure		400	{object}	RecurringRuleListResponse
// @Failure		500	{object}	RecurringRuleListResponse
// @Router			/v1/recurring [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			category	query	string	false	"Filter by category"
// @Param			repeatType	query	string	false	"Filter by repeat type"	Enums(forever, limited)
// @Param			active		query	bool	false	"Only rules that still generate bills"
// @Param			search		query	string	false	"Search for this text in the name"
// @Param			offset		query	uint	false	"The offset of the first recurring bill returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of recurring bills to return. Defaults to 50."
func GetRecurringRules(c *gin.Context) {
	var filter RecurringRuleQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a Create struct
	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringRuleListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = nameFilters(q, setFields, filter.Name, filter.Search)

	if slices.Contains(setFields, "Active") && filter.Active {
		q = q.Where("repeat_type = ? OR remaining_occurrences > 0", models.RepeatForever)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 rules and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var rules []models.RecurringRule
	err = q.Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringRuleListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringRuleListResponse{
			Error: &e,
		})
		return
	}

	data := make([]RecurringRule, 0)
	for _, rule := range rules {
		data = append(data, newRecurringRule(c, rule))
	}

	c.JSON(http.StatusOK, RecurringRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get recurring bill
// @Description	Returns a specific recurring bill
// @Tags			RecurringBills
// @Produce		json
// @Success		200	{object}	RecurringRuleResponse
// @Failure		400	{object}	RecurringRuleResponse
// @Failure		404	{object}	RecurringRuleResponse
// @Failure		500	{object}	RecurringRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring/{id} [get]
func GetRecurringRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.RecurringRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringRuleResponse{
			Error: &s,
		})
		return
	}

	data := newRecurringRule(c, rule)
	c.JSON(http.StatusOK, RecurringRuleResponse{Data: &data})
}

// @Summary		Update recurring bill
// @Description	Update an existing recurring bill. Only values to be updated need to be specified. Bills already generated are not changed.
// @Tags			RecurringBills
// @Accept			json
// @Produce		json
// @Success		200		{object}	RecurringRuleResponse
// @Failure		400		{object}	RecurringRuleResponse
// @Failure		404		{object}	RecurringRuleResponse
// @Failure		500		{object}	RecurringRuleResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			rule	body		RecurringRuleEditable	true	"Recurring bill"
// @Router			/v1/recurring/{id} [patch]
func UpdateRecurringRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.RecurringRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringRuleResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringRuleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringRuleResponse{
			Error: &s,
		})
		return
	}

	var data RecurringRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringRuleResponse{
			Error: &s,
		})
		return
	}

	updateModel := data.model()

	// When the repeat settings change, the remaining occurrences are
	// recalculated so that occurrences already generated stay consumed.
	if slices.Contains(updateFields, "RepeatType") || slices.Contains(updateFields, "RepeatCount") {
		repeatType := rule.RepeatType
		if slices.Contains(updateFields, "RepeatType") {
			repeatType = data.RepeatType
		}

		switch repeatType {
		case models.RepeatForever:
			updateModel.RepeatCount = nil
			updateModel.RemainingOccurrences = nil
			updateFields = append(updateFields, "RepeatCount", "RemainingOccurrences")

		case models.RepeatLimited:
			count := rule.RepeatCount
			if slices.Contains(updateFields, "RepeatCount") {
				count = data.RepeatCount
			}

			if count == nil || *count < 1 {
				s := models.ErrRuleRepeatCountInvalid.Error()
				c.JSON(status(models.ErrRuleRepeatCountInvalid), RecurringRuleResponse{
					Error: &s,
				})
				return
			}

			remaining := rule.RemainingAfterEdit(*count)
			updateModel.RepeatCount = count
			updateModel.RemainingOccurrences = &remaining
			updateFields = append(updateFields, "RepeatCount", "RemainingOccurrences")

		default:
			s := models.ErrRuleRepeatTypeInvalid.Error()
			c.JSON(status(models.ErrRuleRepeatTypeInvalid), RecurringRuleResponse{
				Error: &s,
			})
			return
		}
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(updateModel).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecurringRuleResponse{
			Error: &s,
		})
		return
	}

	r := newRecurringRule(c, rule)
	c.JSON(http.StatusOK, RecurringRuleResponse{Data: &r})
}

// @Summary		Delete recurring bill
// @Description	Deletes a recurring bill. Bills already generated from it are kept.
// @Tags			RecurringBills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring/{id} [delete]
func DeleteRecurringRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var rule models.RecurringRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
