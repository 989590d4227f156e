package handler

import (
	"net/http"

	"jobboard/internal/models"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PermissionHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	GetByID(c *gin.Context)
	List(c *gin.Context)
}

type permissionHandler struct {
	service service.PermissionService
	log     *logrus.Logger
}

func NewPermissionHandler(service service.PermissionService, log *logrus.Logger) PermissionHandler {
	return &permissionHandler{service: service, log: log}
}

type PermissionRequest struct {
	ID      int64  `json:"id"`
	Name    string `json:"name" binding:"required"`
	APIPath string `json:"apiPath" binding:"required"`
	Method  string `json:"method" binding:"required,oneof=GET POST PUT DELETE PATCH"`
	Module  string `json:"module" binding:"required"`
}

func (r *PermissionRequest) toModel() *models.Permission {
	return &models.Permission{
		ID:      r.ID,
		Name:    r.Name,
		APIPath: r.APIPath,
		Method:  r.Method,
		Module:  r.Module,
	}
}

func (h *permissionHandler) Create(c *gin.Context) {
	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for permission create: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	permission := req.toModel()
	exists, err := h.service.IsPermissionExist(permission)
	if err != nil {
		h.log.Errorf("Failed to check permission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create permission"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Permission already exists"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), permission)
	if err != nil {
		h.log.Errorf("Failed to create permission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create permission"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update rejects a change whose path/method/module triple already belongs to
// another permission; renaming an existing permission in place is allowed.
func (h *permissionHandler) Update(c *gin.Context) {
	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for permission update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid permission id"})
		return
	}

	permission := req.toModel()
	exists, err := h.service.IsPermissionExist(permission)
	if err != nil {
		h.log.Errorf("Failed to check permission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update permission"})
		return
	}
	if exists {
		sameName, err := h.service.IsSameName(permission)
		if err != nil {
			h.log.Errorf("Failed to check permission name: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update permission"})
			return
		}
		if !sameName {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Permission already exists"})
			return
		}
	}

	updated, err := h.service.Update(c.Request.Context(), permission)
	if err != nil {
		h.log.Errorf("Failed to update permission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update permission"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Permission not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *permissionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid permission id"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.log.Errorf("Failed to delete permission %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete permission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Permission deleted"})
}

func (h *permissionHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid permission id"})
		return
	}

	permission, err := h.service.FetchByID(id)
	if err != nil {
		h.log.Errorf("Failed to fetch permission %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch permission"})
		return
	}
	if permission == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Permission not found"})
		return
	}

	c.JSON(http.StatusOK, permission)
}

func (h *permissionHandler) List(c *gin.Context) {
	page := parsePageRequest(c)
	result, err := h.service.FetchAll(c.Query("name"), page)
	if err != nil {
		h.log.Errorf("Failed to list permissions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list permissions"})
		return
	}

	c.JSON(http.StatusOK, result)
}
