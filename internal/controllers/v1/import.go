package v1

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/billtrack/backend/internal/httputil"
	"github.com/billtrack/backend/internal/importer"
	"github.com/billtrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", ImportBills)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import bills
// @Description	Imports bills from a JSON export. Malformed records are skipped and reported, all others are created.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	BillCreateResponse
// @Failure		400		{object}	BillCreateResponse
// @Failure		500		{object}	BillCreateResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import [post]
func ImportBills(c *gin.Context) {
	f, err := getUploadedFile(c, ".json")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BillCreateResponse{
			Error: &s,
		})
		return
	}

	content, err := io.ReadAll(f)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BillCreateResponse{
			Error: &s,
		})
		return
	}

	normalized, parseErrors := importer.Parse(content)
	if len(parseErrors) == 1 && errors.Is(parseErrors[0], importer.ErrInvalidJSON) {
		s := parseErrors[0].Error()
		c.JSON(http.StatusBadRequest, BillCreateResponse{
			Error: &s,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BillCreateResponse{}

	for _, parseError := range parseErrors {
		status = r.appendError(parseError, status)
	}

	for _, record := range normalized {
		bill := record.Bill

		err = models.DB.Create(&bill).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBill(c, bill)
		r.Data = append(r.Data, BillResponse{Data: &data})
	}

	c.JSON(status, r)
}
