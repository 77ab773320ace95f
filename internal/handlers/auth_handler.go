package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-service-backend/internal/middleware"
	"invoice-service-backend/internal/repository"
	"invoice-service-backend/internal/services/accounts"
)

type AuthHandler struct {
	service *accounts.Service
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(service *accounts.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup implements the wire contract of the signup form: 200 on
// success, 400 with a short reason on bad input or a taken email, 500
// with a generic message on anything unexpected. Internal causes never
// reach the client.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	_, err := h.service.Signup(req.Email, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, accounts.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, repository.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	token, user, err := h.service.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := c.Get(middleware.ContextUserID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	email, _ := c.Get(middleware.ContextEmail)

	c.JSON(http.StatusOK, gin.H{"id": userID, "email": email})
}
