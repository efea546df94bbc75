package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/billtrack/backend/internal/httputil"
	"github.com/billtrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Authenticate verifies the bearer token of the request and aborts with
// 401 when it is missing or unknown. CORS preflight requests pass through,
// browsers do not send credentials with them.
func Authenticate(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		return
	}

	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
			Error: models.ErrSessionTokenInvalid.Error(),
		})
		return
	}

	_, err := models.LookupSession(models.DB, token)
	if err != nil {
		c.AbortWithStatusJSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}
}

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsRegister)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", Login)

	r.OPTIONS("/session", OptionsSession)
	r.DELETE("/session", Logout)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/session [options]
func OptionsSession(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Register user
// @Description	Creates a new user account
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		RegisterRequest	true	"User"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var request RegisterRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	if strings.TrimSpace(request.Email) == "" {
		s := errEmailRequired.Error()
		c.JSON(http.StatusBadRequest, UserResponse{
			Error: &s,
		})
		return
	}

	if request.Password == "" {
		s := errPasswordRequired.Error()
		c.JSON(http.StatusBadRequest, UserResponse{
			Error: &s,
		})
		return
	}

	user := models.User{
		Name:  request.Name,
		Email: request.Email,
	}

	err = user.SetPassword(request.Password)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, UserResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &s,
		})
		return
	}

	data := newAuthUser(user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Login
// @Description	Verifies the credentials and opens a new session
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var request LoginRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))

	var user models.User
	err = models.DB.First(&user, "email = ?", email).Error
	if err != nil {
		// An unknown email is reported exactly like a wrong password
		if errors.Is(err, models.ErrResourceNotFound) {
			err = models.ErrCredentialsInvalid
		}

		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	if !user.CheckPassword(request.Password) {
		s := models.ErrCredentialsInvalid.Error()
		c.JSON(status(models.ErrCredentialsInvalid), SessionResponse{
			Error: &s,
		})
		return
	}

	session, err := models.CreateSession(models.DB, user)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	data := SessionData{
		Token: session.Token.String(),
		User:  newAuthUser(user),
	}
	c.JSON(http.StatusCreated, SessionResponse{Data: &data})
}

// @Summary		Logout
// @Description	Ends the session for the bearer token in the Authorization header. Logging out an unknown token is not an error.
// @Tags			Auth
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/v1/auth/session [delete]
func Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	err := models.ClearSession(models.DB, token)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
