package models_test

import (
	"github.com/billtrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSessionLifecycle() {
	user := suite.createTestUser(models.User{Email: "jane@example.com"}, "hunter22")

	session, err := models.CreateSession(models.DB, user)
	assert.Nil(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, session.Token)

	found, err := models.LookupSession(models.DB, session.Token.String())
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), user.ID, found.UserID)
	assert.Equal(suite.T(), user.Email, found.User.Email)

	err = models.ClearSession(models.DB, session.Token.String())
	assert.Nil(suite.T(), err)

	_, err = models.LookupSession(models.DB, session.Token.String())
	assert.ErrorIs(suite.T(), err, models.ErrSessionTokenInvalid)
}

func (suite *TestSuiteStandard) TestSessionLookupInvalidToken() {
	_, err := models.LookupSession(models.DB, "not-a-token")
	assert.ErrorIs(suite.T(), err, models.ErrSessionTokenInvalid)

	_, err = models.LookupSession(models.DB, uuid.NewString())
	assert.ErrorIs(suite.T(), err, models.ErrSessionTokenInvalid)
}

func (suite *TestSuiteStandard) TestSessionClearIsIdempotent() {
	err := models.ClearSession(models.DB, uuid.NewString())
	assert.Nil(suite.T(), err)

	// Garbage tokens cannot belong to a session, clearing them is a no-op
	err = models.ClearSession(models.DB, "garbage")
	assert.Nil(suite.T(), err)
}
