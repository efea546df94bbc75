package v1_test

import (
	"net/http"
	"testing"

	"github.com/billtrack/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRootGet() {
	r := request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Links map[string]string `json:"links"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	tests := []struct {
		name string
		url  string
	}{
		{"auth", "http://example.com/v1/auth"},
		{"bills", "http://example.com/v1/bills"},
		{"budgets", "http://example.com/v1/budgets"},
		{"import", "http://example.com/v1/import"},
		{"months", "http://example.com/v1/months"},
		{"recurring", "http://example.com/v1/recurring"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.url, response.Links[tt.name])
		})
	}
}

func (suite *TestSuiteStandard) TestRootOptions() {
	r := request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, DELETE", r.Header().Get("allow"))
}
