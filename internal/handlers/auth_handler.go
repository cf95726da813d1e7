package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/dto"
	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	ucAuth "github.com/BruksfildServices01/service-marketplace/internal/usecase/auth"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	login          *ucAuth.Login
	register       *ucAuth.Register
	changePassword *ucAuth.ChangePassword
	me             *ucAuth.Me
	updateProfile  *ucAuth.UpdateProfile
	adminSetup     *ucAuth.AdminSetup
}

func NewAuthHandler(
	login *ucAuth.Login,
	register *ucAuth.Register,
	changePassword *ucAuth.ChangePassword,
	me *ucAuth.Me,
	updateProfile *ucAuth.UpdateProfile,
	adminSetup *ucAuth.AdminSetup,
) *AuthHandler {
	return &AuthHandler{
		login:          login,
		register:       register,
		changePassword: changePassword,
		me:             me,
		updateProfile:  updateProfile,
		adminSetup:     adminSetup,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Registration successful",
		"token":   res.Token,
		"user":    dto.FromUser(res.User),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   res.Token,
		"user":    dto.FromUser(res.User),
	})
}

// AdminSetup never echoes the configured password.
func (h *AuthHandler) AdminSetup(c *gin.Context) {
	u, created, err := h.adminSetup.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{
			"message": "Admin already exists",
			"email":   u.Email,
		})
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Admin user created",
		"email":   u.Email,
	})
}

// ======================================================
// AUTHENTICATED
// ======================================================

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	actor := middleware.Actor(c)
	if err := h.changePassword.Execute(c.Request.Context(), actor.ID, req.CurrentPassword, req.NewPassword); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Password updated successfully")
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.me.Execute(c.Request.Context(), middleware.Actor(c).ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.FromUser(u)})
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.updateProfile.Execute(c.Request.Context(), middleware.Actor(c).ID, ucAuth.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"user":    dto.FromUser(u),
	})
}
