package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/billtrack/backend/internal/controllers/v1"
	"github.com/billtrack/backend/internal/models"
	"github.com/billtrack/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerTestUser(t *testing.T, email, password string) v1.UserResponse {
	r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterRequest{
		Name:     "Jane Doe",
		Email:    email,
		Password: password,
	})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response v1.UserResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

// TestAuthRequired verifies that the data endpoints reject requests that
// do not carry a valid session token.
func (suite *TestSuiteStandard) TestAuthRequired() {
	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"List bills", http.MethodGet, "http://example.com/v1/bills", ""},
		{"Create bill", http.MethodPost, "http://example.com/v1/bills", "[]"},
		{"List recurring bills", http.MethodGet, "http://example.com/v1/recurring", ""},
		{"Read budget", http.MethodGet, "http://example.com/v1/budgets/2024-03", ""},
		{"Month overview", http.MethodGet, "http://example.com/v1/months?month=2024-03", ""},
		{"Import", http.MethodPost, "http://example.com/v1/import", ""},
		{"Cleanup", http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			// Without a token
			r := test.Request(t, tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

			// With a token that belongs to no session
			r = test.Request(t, tt.method, tt.path, tt.body, map[string]string{
				"Authorization": "Bearer " + uuid.NewString(),
			})
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}

	// Nothing was deleted by the unauthenticated cleanup attempt
	r := request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

// TestAuthNotRequiredForPreflight verifies that CORS preflight requests
// pass without credentials, browsers do not attach them.
func (suite *TestSuiteStandard) TestAuthNotRequiredForPreflight() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/bills", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAuthOptions() {
	tests := []struct {
		name  string
		path  string
		allow string
	}{
		{"Register", "register", "POST"},
		{"Login", "login", "POST"},
		{"Session", "session", "DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/auth/"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestAuthRegister() {
	response := registerTestUser(suite.T(), "Jane@Example.com", "correct horse battery staple")

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Jane Doe", response.Data.Name)

	// The email address is normalized
	assert.Equal(suite.T(), "jane@example.com", response.Data.Email)
	assert.NotEqual(suite.T(), uuid.Nil, response.Data.ID)
}

func (suite *TestSuiteStandard) TestAuthRegisterFails() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Missing email", v1.RegisterRequest{Password: "secret"}, http.StatusBadRequest, "the email field must be set"},
		{"Missing password", v1.RegisterRequest{Email: "jane@example.com"}, http.StatusBadRequest, "the password field must be set"},
		{"Broken JSON", `{ "email": 2" }`, http.StatusBadRequest, ""},
		{"Empty body", "", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				var response v1.UserResponse
				test.DecodeResponse(t, &r, &response)
				require.NotNil(t, response.Error)
				assert.Equal(t, tt.err, *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAuthRegisterDuplicateEmail() {
	_ = registerTestUser(suite.T(), "jane@example.com", "secret")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.RegisterRequest{
		Email:    "JANE@example.com",
		Password: "another secret",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), models.ErrEmailNotUnique.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestAuthLogin() {
	_ = registerTestUser(suite.T(), "jane@example.com", "correct horse battery staple")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{
		Email:    " Jane@Example.COM ",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.NotEmpty(suite.T(), response.Data.Token)
	assert.Equal(suite.T(), "jane@example.com", response.Data.User.Email)
}

// TestAuthLoginFails verifies that a wrong password and an unknown email
// address are indistinguishable in the response.
func (suite *TestSuiteStandard) TestAuthLoginFails() {
	_ = registerTestUser(suite.T(), "jane@example.com", "correct horse battery staple")

	tests := []struct {
		name  string
		email string
	}{
		{"Wrong password", "jane@example.com"},
		{"Unknown email", "nobody@example.com"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{
				Email:    tt.email,
				Password: "wrong password",
			})
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

			var response v1.SessionResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Equal(t, models.ErrCredentialsInvalid.Error(), *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestAuthLogout() {
	_ = registerTestUser(suite.T(), "jane@example.com", "secret")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{
		Email:    "jane@example.com",
		Password: "secret",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/auth/session", "", map[string]string{
		"Authorization": "Bearer " + response.Data.Token,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Logout is idempotent
	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/auth/session", "", map[string]string{
		"Authorization": "Bearer " + response.Data.Token,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// A request without any token is also fine
	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/auth/session", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
