package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskhive/taskhive/internal/application"
	"github.com/taskhive/taskhive/pkg/response"
	"github.com/taskhive/taskhive/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	id, err := h.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, application.ErrEmailTaken):
		response.Error(c, http.StatusBadRequest, "Email already registered")
		return
	case errors.Is(err, application.ErrUsernameTaken):
		response.Error(c, http.StatusBadRequest, "Username already taken")
		return
	case err != nil:
		h.Logger.WithError(err).Error("register failed")
		response.Error(c, http.StatusInternalServerError, "Error creating user")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"id":      id,
		"message": "User created successfully",
	})
}

// Login POST /api/auth/login — accepts JSON or form-encoded credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	token, exp, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Incorrect password")
		return
	case err != nil:
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "Error logging in")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"expires_at":   exp,
	})
}
