package handler

import (
	"errors"
	"net/http"

	"jobboard/internal/models"
	"jobboard/internal/service"
	"jobboard/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const refreshTokenCookie = "refresh_token"

type AuthHandler interface {
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	Register(c *gin.Context)
	Account(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
	userService service.UserService
	authority   *token.Authority
	log         *logrus.Logger
}

func NewAuthHandler(authService service.AuthService, userService service.UserService,
	authority *token.Authority, log *logrus.Logger) AuthHandler {
	return &authHandler{
		authService: authService,
		userService: userService,
		authority:   authority,
		log:         log,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string        `json:"name" binding:"required"`
	Email    string        `json:"email" binding:"required,email"`
	Password string        `json:"password" binding:"required,min=6"`
	Age      int           `json:"age"`
	Gender   models.Gender `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	Address  string        `json:"address"`
}

func (h *authHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for login: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.log.Errorf("Failed to login user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	c.JSON(http.StatusOK, gin.H{
		"access_token": result.AccessToken,
		"user":         result.User,
	})
}

// Refresh redeems the refresh-token cookie for a fresh token pair. A token
// that was superseded by a newer login is rejected even when unexpired.
func (h *authHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token required"})
		return
	}

	result, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, token.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
			return
		}
		h.log.Errorf("Failed to refresh tokens: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh tokens"})
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	c.JSON(http.StatusOK, gin.H{
		"access_token": result.AccessToken,
		"user":         result.User,
	})
}

func (h *authHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		h.log.Errorf("Failed to logout user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	c.SetCookie(refreshTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (h *authHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for registration: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Gender:   req.Gender,
		Address:  req.Address,
	}
	if user.Gender == "" {
		user.Gender = models.GenderOther
	}

	created, err := h.authService.Register(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email " + req.Email + " already in use"})
			return
		}
		h.log.Errorf("Failed to register user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, h.userService.ToCreateResponse(created))
}

func (h *authHandler) Account(c *gin.Context) {
	account, err := h.authService.Account(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		h.log.Errorf("Failed to fetch account: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": account})
}

func (h *authHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	maxAge := int(h.authority.RefreshTokenValidity().Seconds())
	c.SetCookie(refreshTokenCookie, refreshToken, maxAge, "/", "", false, true)
}
