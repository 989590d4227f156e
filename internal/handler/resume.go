package handler

import (
	"errors"
	"net/http"

	"jobboard/internal/models"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ResumeHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	GetByID(c *gin.Context)
	List(c *gin.Context)
	ListByCurrentUser(c *gin.Context)
}

type resumeHandler struct {
	service service.ResumeService
	log     *logrus.Logger
}

func NewResumeHandler(service service.ResumeService, log *logrus.Logger) ResumeHandler {
	return &resumeHandler{service: service, log: log}
}

type CreateResumeRequest struct {
	Email  string `json:"email" binding:"required,email"`
	URL    string `json:"url" binding:"required"`
	UserID int64  `json:"userId" binding:"required"`
	JobID  int64  `json:"jobId" binding:"required"`
}

type UpdateResumeRequest struct {
	ID     int64               `json:"id" binding:"required"`
	Status models.ResumeStatus `json:"status" binding:"required,oneof=PENDING REVIEWING APPROVED REJECTED"`
}

func (h *resumeHandler) Create(c *gin.Context) {
	var req CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for resume create: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resume := &models.Resume{
		Email:  req.Email,
		URL:    req.URL,
		Status: models.ResumePending,
		UserID: req.UserID,
		JobID:  req.JobID,
	}

	ok, err := h.service.CheckResumeExistByUserAndJob(resume)
	if err != nil {
		h.log.Errorf("Failed to check resume references: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resume"})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User or job does not exist"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), resume)
	if err != nil {
		h.log.Errorf("Failed to create resume: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resume"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *resumeHandler) Update(c *gin.Context) {
	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for resume update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), &models.Resume{ID: req.ID, Status: req.Status})
	if err != nil {
		h.log.Errorf("Failed to update resume: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update resume"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *resumeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume id"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.log.Errorf("Failed to delete resume %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete resume"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted"})
}

func (h *resumeHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume id"})
		return
	}

	resume, err := h.service.FetchByID(id)
	if err != nil {
		h.log.Errorf("Failed to fetch resume %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resume"})
		return
	}
	if resume == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
		return
	}

	response, err := h.service.GetResume(resume)
	if err != nil {
		h.log.Errorf("Failed to build resume response %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resume"})
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *resumeHandler) List(c *gin.Context) {
	page := parsePageRequest(c)
	result, err := h.service.FetchAll(c.Query("email"), page)
	if err != nil {
		h.log.Errorf("Failed to list resumes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list resumes"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListByCurrentUser pages through the resumes submitted by the caller.
func (h *resumeHandler) ListByCurrentUser(c *gin.Context) {
	page := parsePageRequest(c)
	result, err := h.service.FetchByCurrentUser(c.Request.Context(), page)
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		h.log.Errorf("Failed to list resumes by current user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list resumes"})
		return
	}

	c.JSON(http.StatusOK, result)
}
