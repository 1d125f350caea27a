package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"volair/internal/logger"
	"volair/internal/middleware"
	"volair/internal/models"
)

// Register - POST /api/auth/register
func (h *Handlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.services.Users.Register(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	logger.WithContext(c.Request.Context()).Info("User registered", "user_id", user.ID)

	c.JSON(http.StatusCreated, models.AuthResponse{
		Message: "user registered successfully",
		Token:   token,
		User:    user.PublicProfile(),
	})
}

// Login - POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.services.Users.Authenticate(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Message: "login successful",
		Token:   token,
		User:    user.PublicProfile(),
	})
}

// Profile - GET /api/auth/profile (authenticated)
func (h *Handlers) Profile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
		return
	}

	user, err := h.services.Users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.PublicProfile())
}
