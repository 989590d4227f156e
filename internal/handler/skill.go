package handler

import (
	"net/http"

	"jobboard/internal/models"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SkillHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	GetByID(c *gin.Context)
	List(c *gin.Context)
}

type skillHandler struct {
	service service.SkillService
	log     *logrus.Logger
}

func NewSkillHandler(service service.SkillService, log *logrus.Logger) SkillHandler {
	return &skillHandler{service: service, log: log}
}

type SkillRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required"`
}

func (h *skillHandler) Create(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for skill create: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := h.service.IsNameExist(req.Name)
	if err != nil {
		h.log.Errorf("Failed to check skill name: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skill"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Skill name " + req.Name + " already exists"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &models.Skill{Name: req.Name})
	if err != nil {
		h.log.Errorf("Failed to create skill: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skill"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *skillHandler) Update(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for skill update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill id"})
		return
	}

	exists, err := h.service.IsNameExist(req.Name)
	if err != nil {
		h.log.Errorf("Failed to check skill name: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skill"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Skill name " + req.Name + " already exists"})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), &models.Skill{ID: req.ID, Name: req.Name})
	if err != nil {
		h.log.Errorf("Failed to update skill: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update skill"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *skillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill id"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.log.Errorf("Failed to delete skill %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete skill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted"})
}

func (h *skillHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill id"})
		return
	}

	skill, err := h.service.FetchByID(id)
	if err != nil {
		h.log.Errorf("Failed to fetch skill %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skill"})
		return
	}
	if skill == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	c.JSON(http.StatusOK, skill)
}

func (h *skillHandler) List(c *gin.Context) {
	page := parsePageRequest(c)
	result, err := h.service.FetchAll(c.Query("name"), page)
	if err != nil {
		h.log.Errorf("Failed to list skills: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list skills"})
		return
	}

	c.JSON(http.StatusOK, result)
}
