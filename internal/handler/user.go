package handler

import (
	"net/http"

	"jobboard/internal/models"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UserHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	GetByID(c *gin.Context)
	List(c *gin.Context)
}

type userHandler struct {
	service service.UserService
	log     *logrus.Logger
}

func NewUserHandler(service service.UserService, log *logrus.Logger) UserHandler {
	return &userHandler{service: service, log: log}
}

type CreateUserRequest struct {
	Name      string        `json:"name" binding:"required"`
	Email     string        `json:"email" binding:"required,email"`
	Password  string        `json:"password" binding:"required,min=6"`
	Age       int           `json:"age"`
	Gender    models.Gender `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	Address   string        `json:"address"`
	CompanyID *int64        `json:"companyId"`
	RoleID    *int64        `json:"roleId"`
}

type UpdateUserRequest struct {
	ID        int64         `json:"id" binding:"required"`
	Name      string        `json:"name" binding:"required"`
	Age       int           `json:"age"`
	Gender    models.Gender `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	Address   string        `json:"address"`
	CompanyID *int64        `json:"companyId"`
	RoleID    *int64        `json:"roleId"`
}

func (h *userHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for user create: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := h.service.IsEmailExist(req.Email)
	if err != nil {
		h.log.Errorf("Failed to check email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email " + req.Email + " already in use"})
		return
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Age:       req.Age,
		Gender:    req.Gender,
		Address:   req.Address,
		CompanyID: req.CompanyID,
		RoleID:    req.RoleID,
	}
	if user.Gender == "" {
		user.Gender = models.GenderOther
	}

	created, err := h.service.Create(c.Request.Context(), user)
	if err != nil {
		h.log.Errorf("Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, h.service.ToCreateResponse(created))
}

func (h *userHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for user update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		ID:        req.ID,
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Address:   req.Address,
		CompanyID: req.CompanyID,
		RoleID:    req.RoleID,
	}

	updated, err := h.service.Update(c.Request.Context(), user)
	if err != nil {
		h.log.Errorf("Failed to update user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, h.service.ToUpdateResponse(updated))
}

func (h *userHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.log.Errorf("Failed to delete user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *userHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	user, err := h.service.FetchByID(id)
	if err != nil {
		h.log.Errorf("Failed to fetch user %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, h.service.ToUserResponse(user))
}

func (h *userHandler) List(c *gin.Context) {
	page := parsePageRequest(c)
	result, err := h.service.FetchAll(c.Query("name"), page)
	if err != nil {
		h.log.Errorf("Failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, result)
}
