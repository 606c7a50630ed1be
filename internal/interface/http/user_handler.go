package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/picbay/internal/application"
	"github.com/oksasatya/picbay/internal/domain/repository"
	"github.com/oksasatya/picbay/pkg/response"
	"github.com/oksasatya/picbay/pkg/validation"
)

const invalidLinkMessage = "your validation link is not valid!"

type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// registerRequest is the explicit allow-list of fields accepted at
// registration; unknown JSON fields are discarded by the binding.
type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,uname"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/user
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnauthorized, "validation failed", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), userapp.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			response.Error[any](c, http.StatusConflict, "email or username already registered", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("registration failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
		return
	}

	// Password hash and validation token are never echoed back.
	response.Success(c, http.StatusOK, gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"name":     u.Name,
	}, "open your email and verify")
}

// Login POST /api/user/auth
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnauthorized, "validation failed", validation.ToDetails(err))
		return
	}

	token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// One message for every failure mode so the response does not
		// reveal whether the email exists or the password was wrong.
		response.Error[any](c, http.StatusUnauthorized, "authentication failed", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token":      token,
		"expires_at": exp,
	}, "Enjoy your token!")
}

// Validate GET /api/user/settings/validate?token=...&email=...
func (h *UserHandler) Validate(c *gin.Context) {
	email := c.Query("email")
	token := c.Query("token")
	if email == "" || token == "" {
		response.Error[any](c, http.StatusUnauthorized, invalidLinkMessage, nil)
		return
	}

	if err := h.Svc.VerifyEmail(c.Request.Context(), email, token); err != nil {
		response.Error[any](c, http.StatusUnauthorized, invalidLinkMessage, nil)
		return
	}

	response.Success[any](c, http.StatusOK, nil, "your email has been verified!")
}

// Me GET /api/me (auth required)
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":           u.ID,
		"username":     u.Username,
		"email":        u.Email,
		"name":         u.Name,
		"is_validated": u.IsValidated,
		"created_at":   u.CreatedAt,
	}, "profile")
}
