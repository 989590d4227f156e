package handler

import (
	"net/http"

	"jobboard/internal/models"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RoleHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	GetByID(c *gin.Context)
	List(c *gin.Context)
}

type roleHandler struct {
	service service.RoleService
	log     *logrus.Logger
}

func NewRoleHandler(service service.RoleService, log *logrus.Logger) RoleHandler {
	return &roleHandler{service: service, log: log}
}

type RoleRequest struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Active        bool    `json:"active"`
	PermissionIDs []int64 `json:"permissionIds"`
}

func (h *roleHandler) Create(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for role create: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := h.service.ExistByName(req.Name)
	if err != nil {
		h.log.Errorf("Failed to check role name: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create role"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role " + req.Name + " already exists"})
		return
	}

	role := &models.Role{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	}

	created, err := h.service.Create(c.Request.Context(), role, req.PermissionIDs)
	if err != nil {
		h.log.Errorf("Failed to create role: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create role"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *roleHandler) Update(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for role update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role id"})
		return
	}

	role := &models.Role{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	}

	updated, err := h.service.Update(c.Request.Context(), role, req.PermissionIDs)
	if err != nil {
		h.log.Errorf("Failed to update role: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *roleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role id"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.log.Errorf("Failed to delete role %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Role deleted"})
}

func (h *roleHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role id"})
		return
	}

	role, err := h.service.FetchByID(id)
	if err != nil {
		h.log.Errorf("Failed to fetch role %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch role"})
		return
	}
	if role == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}

	c.JSON(http.StatusOK, role)
}

func (h *roleHandler) List(c *gin.Context) {
	page := parsePageRequest(c)
	result, err := h.service.FetchAll(c.Query("name"), page)
	if err != nil {
		h.log.Errorf("Failed to list roles: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list roles"})
		return
	}

	c.JSON(http.StatusOK, result)
}
