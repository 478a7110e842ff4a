package auth

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tetteam4/swimming-project/internal/models"
	"github.com/tetteam4/swimming-project/internal/services"
	"github.com/tetteam4/swimming-project/internal/utils"
)

// isUserValidationError reports whether err is one of the identity
// invariants from the user model, surfaced to the client verbatim.
func isUserValidationError(err error) bool {
	switch {
	case errors.Is(err, models.ErrEmailRequired),
		errors.Is(err, models.ErrEmailInvalid),
		errors.Is(err, models.ErrFirstNameRequired),
		errors.Is(err, models.ErrLastNameRequired):
		return true
	}
	return false
}

// Register godoc
// @Summary Register a new user
// @Description Register a new user; an activation link is emailed before login is possible
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   RegisterInput  true  "Register Input"
// @Success 201 {object} utils.Response{data=auth.UserResponse}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /auth/register/ [post]
func Register(c *gin.Context) {
	var input RegisterInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	u, err := services.RegisterUser(input.Email, input.FirstName, input.LastName,
		input.Username, input.Password1, input.Password2)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordMismatch), isUserValidationError(err):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		case errors.Is(err, services.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to register user due to an internal error"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("User registered successfully. Check your email to activate the account.", NewUserResponse(u)))
}

// Token godoc
// @Summary Obtain a token pair
// @Description Log in with email and password and receive access and refresh tokens
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   TokenInput  true  "Token Input"
// @Success 200 {object} utils.Response{data=auth.TokenResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /auth/token/ [post]
func Token(c *gin.Context) {
	var input TokenInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	pair, u, err := services.LoginUser(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAccountDisabled) {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User account is disabled"))
			return
		}
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid email or password"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged in successfully", newTokenResponse(pair, u)))
}

// Refresh godoc
// @Summary Refresh an access token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   RefreshInput  true  "Refresh Input"
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /auth/refresh/ [post]
func Refresh(c *gin.Context) {
	var input RefreshInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	access, err := services.RefreshAccessToken(input.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid or expired refresh token"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Token refreshed", gin.H{"access": access}))
}

// Logout godoc
// @Summary Log out a user
// @Description Invalidate the user's current token
// @Tags auth
// @Produce  json
// @Security Bearer
// @Success 200 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /auth/logout/ [post]
func Logout(c *gin.Context) {
	tokenString, err := utils.ExtractToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
		return
	}

	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		// Already invalid; denylist for the maximum token life anyway since
		// the expiry cannot be read.
		if err := services.AddToDenylist(tokenString, utils.AccessTokenLifetime); err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to denylist token"))
			return
		}
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out successfully", nil))
		return
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Invalid token expiration"))
		return
	}

	remaining := time.Until(time.Unix(int64(exp), 0))
	if err := services.AddToDenylist(tokenString, remaining); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to denylist token"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out successfully", nil))
}

// PasswordReset godoc
// @Summary Request a password reset email
// @Description Sends an OTP reset link when the email belongs to an account. The response never reveals whether the account exists.
// @Tags auth
// @Produce  json
// @Param email path string true "Account email"
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /auth/user/password-reset/{email}/ [get]
func PasswordReset(c *gin.Context) {
	email := c.Param("email")

	if err := services.RequestPasswordReset(email); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process password reset request"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("If an account with that email exists, a reset email has been sent", nil))
}

// PasswordChange godoc
// @Summary Complete a password reset
// @Description Set a new password using the OTP and encoded user id from the reset email
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   PasswordChangeInput  true  "Password Change Input"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /auth/user/password-change/ [post]
func PasswordChange(c *gin.Context) {
	var input PasswordChangeInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	if err := services.ChangePassword(input.OTP, input.UUIDB64, input.Password); err != nil {
		if errors.Is(err, services.ErrResetNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User does not exist or invalid OTP"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to change password"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Password changed successfully", nil))
}

// Activate godoc
// @Summary Activate an account
// @Description Consume an emailed activation link; responds with a small HTML page
// @Tags auth
// @Produce  html
// @Param uidb64 path string true "Encoded user id"
// @Param token path string true "Activation token"
// @Success 200 {string} string "HTML success page"
// @Failure 400 {string} string "Invalid activation link"
// @Router /auth/activate/{uidb64}/{token}/ [get]
func Activate(c *gin.Context) {
	user, err := services.ActivateUser(c.Param("uidb64"), c.Param("token"))
	if err != nil {
		c.Data(http.StatusBadRequest, "text/html; charset=utf-8", []byte("Invalid activation link"))
		return
	}

	page := fmt.Sprintf(`<html><body><h1>Account activated</h1><p>Welcome, %s. Your account is now active and you can log in.</p></body></html>`,
		html.EscapeString(user.FullName()))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
