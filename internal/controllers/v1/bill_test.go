package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/billtrack/backend/internal/controllers/v1"
	"github.com/billtrack/backend/internal/models"
	"github.com/billtrack/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBill(t *testing.T, b v1.BillEditable, expectedStatus ...int) v1.BillResponse {
	if b.Name == "" {
		b.Name = uuid.NewString()
	}

	if b.DueDate.IsZero() {
		b.DueDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.BillEditable{b}

	r := request(t, http.MethodPost, "http://example.com/v1/bills", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.BillCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.BillResponse{}
}

// TestBillsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBillsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestBill(t, v1.BillEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := request(t, http.MethodGet, "http://example.com/v1/bills", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.BillListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestBillsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBillsOptions() {
	tests := []struct {
		name   string
		id     string // path at the bills endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Bill with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Bill exists", createTestBill(suite.T(), v1.BillEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/bills", tt.id)
			r := request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBillsCreate() {
	r := request(suite.T(), http.MethodPost, "http://example.com/v1/bills", []v1.BillEditable{
		{
			Name:     "Rent",
			Amount:   decimal.NewFromInt(850),
			DueDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Category: models.CategoryHousing,
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.BillCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	data := response.Data[0].Data
	require.NotNil(suite.T(), data)

	assert.Equal(suite.T(), "Rent", data.Name)
	assert.Equal(suite.T(), "pending", data.Status)
	assert.Equal(suite.T(), "2024-03", data.Month.String())
	assert.False(suite.T(), data.IsRecurring)
	assert.Nil(suite.T(), data.RecurringRuleID)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/bills/%s", data.ID), data.Links.Self)
}

// TestBillsCreatePartialFailure verifies that a mix of valid and invalid
// bills creates the valid ones and reports the invalid ones.
func (suite *TestSuiteStandard) TestBillsCreatePartialFailure() {
	r := request(suite.T(), http.MethodPost, "http://example.com/v1/bills", []v1.BillEditable{
		{Name: "Valid", Amount: decimal.NewFromInt(10), DueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "", Amount: decimal.NewFromInt(10), DueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BillCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	require.NotNil(suite.T(), response.Data[1].Error)
	assert.Equal(suite.T(), models.ErrBillNameRequired.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestBillsCreateInvalidBody() {
	tests := []string{
		`{ "name": "not an array" }`,
		`[{ "amount": "not a number" }]`,
		``,
	}

	for _, body := range tests {
		r := request(suite.T(), http.MethodPost, "http://example.com/v1/bills", body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestBillsGetSingle() {
	b := createTestBill(suite.T(), v1.BillEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Bill", b.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (uint64)", "10000000000000000000", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (not a number)", "NotANumber", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := request(t, tt.method, fmt.Sprintf("http://example.com/v1/bills/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBillsGetFilter() {
	_ = createTestBill(suite.T(), v1.BillEditable{
		Name:     "Rent March",
		Amount:   decimal.NewFromInt(850),
		DueDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Category: models.CategoryHousing,
		IsPaid:   true,
	})
	_ = createTestBill(suite.T(), v1.BillEditable{
		Name:     "Internet March",
		Amount:   decimal.NewFromFloat(39.99),
		DueDate:  time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Category: models.CategoryUtilities,
	})
	_ = createTestBill(suite.T(), v1.BillEditable{
		Name:     "Rent April",
		Amount:   decimal.NewFromInt(850),
		DueDate:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Category: models.CategoryHousing,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Month March", "month=2024-03", 2},
		{"Month April", "month=2024-04", 1},
		{"Month without bills", "month=2024-05", 0},
		{"Category", "category=Housing", 2},
		{"Paid", "paid=true", 1},
		{"Unpaid", "paid=false", 2},
		{"Name", "name=Rent March", 1},
		{"Search", "search=rent", 2},
		{"Search with month", "search=rent&month=2024-03", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
		{"Recurring", "recurring=true", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/bills?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BillListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

// TestBillsGetSorted verifies that bills are sorted by due date, then name.
func (suite *TestSuiteStandard) TestBillsGetSorted() {
	_ = createTestBill(suite.T(), v1.BillEditable{Name: "Zebra", DueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})
	_ = createTestBill(suite.T(), v1.BillEditable{Name: "Aardvark", DueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)})
	_ = createTestBill(suite.T(), v1.BillEditable{Name: "Middle", DueDate: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)})

	r := request(suite.T(), http.MethodGet, "http://example.com/v1/bills", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "Middle", response.Data[0].Name)
	assert.Equal(suite.T(), "Aardvark", response.Data[1].Name)
	assert.Equal(suite.T(), "Zebra", response.Data[2].Name)
}

func (suite *TestSuiteStandard) TestBillsPagination() {
	for i := 0; i < 3; i++ {
		_ = createTestBill(suite.T(), v1.BillEditable{})
	}

	r := request(suite.T(), http.MethodGet, "http://example.com/v1/bills?limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
	require.NotNil(suite.T(), response.Pagination)
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
	assert.Equal(suite.T(), uint(0), response.Pagination.Offset)
}

func (suite *TestSuiteStandard) TestBillsUpdate() {
	b := createTestBill(suite.T(), v1.BillEditable{Name: "Internet", Amount: decimal.NewFromFloat(39.99)})

	r := request(suite.T(), http.MethodPatch, b.Data.Links.Self, map[string]any{
		"name": "Internet & TV",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Internet & TV", response.Data.Name)

	// Fields not in the request body are unchanged
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(39.99)))
}

// TestBillsUpdateDueDateMovesMonth verifies that moving the due date also
// moves the bill into the new month.
func (suite *TestSuiteStandard) TestBillsUpdateDueDateMovesMonth() {
	b := createTestBill(suite.T(), v1.BillEditable{DueDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)})
	assert.Equal(suite.T(), "2024-03", b.Data.Month.String())

	r := request(suite.T(), http.MethodPatch, b.Data.Links.Self, map[string]any{
		"dueDate": "2024-04-15T00:00:00Z",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = request(suite.T(), http.MethodGet, b.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "2024-04", response.Data.Month.String())
}

func (suite *TestSuiteStandard) TestBillsUpdateInvalid() {
	b := createTestBill(suite.T(), v1.BillEditable{})

	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "name": 2" }`},
		{"Type mismatch", `{ "name": false }`},
		{"Empty name", map[string]any{"name": ""}},
		{"Negative amount", map[string]any{"amount": -10}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := request(t, http.MethodPatch, b.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestBillsDelete() {
	b := createTestBill(suite.T(), v1.BillEditable{})

	r := request(suite.T(), http.MethodDelete, b.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = request(suite.T(), http.MethodGet, b.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBillsPay() {
	b := createTestBill(suite.T(), v1.BillEditable{})
	assert.Equal(suite.T(), "pending", b.Data.Status)

	r := request(suite.T(), http.MethodPost, b.Data.Links.Self+"/pay", v1.BillPayment{Paid: true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BillResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.IsPaid)
	assert.Equal(suite.T(), "paid", response.Data.Status)

	// Paying is reversible
	r = request(suite.T(), http.MethodPost, b.Data.Links.Self+"/pay", v1.BillPayment{Paid: false})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.False(suite.T(), response.Data.IsPaid)
	assert.Equal(suite.T(), "pending", response.Data.Status)
}

func (suite *TestSuiteStandard) TestBillsPayNonexistent() {
	r := request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/bills/%s/pay", uuid.New()), v1.BillPayment{Paid: true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
