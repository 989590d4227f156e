package handler

import (
	"net/http"
	"time"

	"jobboard/internal/models"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type JobHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	GetByID(c *gin.Context)
	List(c *gin.Context)
}

type jobHandler struct {
	service service.JobService
	log     *logrus.Logger
}

func NewJobHandler(service service.JobService, log *logrus.Logger) JobHandler {
	return &jobHandler{service: service, log: log}
}

type JobRequest struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" binding:"required"`
	Location    string          `json:"location"`
	Salary      float64         `json:"salary"`
	Quantity    int             `json:"quantity"`
	Level       models.JobLevel `json:"level" binding:"omitempty,oneof=INTERN FRESHER JUNIOR MIDDLE SENIOR"`
	Description string          `json:"description"`
	StartDate   *time.Time      `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
	Active      bool            `json:"active"`
	CompanyID   *int64          `json:"companyId"`
	SkillIDs    []int64         `json:"skillIds"`
}

func (r *JobRequest) toModel() *models.Job {
	return &models.Job{
		ID:          r.ID,
		Name:        r.Name,
		Location:    r.Location,
		Salary:      r.Salary,
		Quantity:    r.Quantity,
		Level:       r.Level,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Active:      r.Active,
		CompanyID:   r.CompanyID,
	}
}

func (h *jobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for job create: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.toModel(), req.SkillIDs)
	if err != nil {
		h.log.Errorf("Failed to create job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *jobHandler) Update(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for job update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), req.toModel(), req.SkillIDs)
	if err != nil {
		h.log.Errorf("Failed to update job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *jobHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.log.Errorf("Failed to delete job %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *jobHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	job, err := h.service.FetchByID(id)
	if err != nil {
		h.log.Errorf("Failed to fetch job %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch job"})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, h.service.ToJobResponse(job))
}

func (h *jobHandler) List(c *gin.Context) {
	page := parsePageRequest(c)
	result, err := h.service.FetchAll(c.Query("name"), page)
	if err != nil {
		h.log.Errorf("Failed to list jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs"})
		return
	}

	c.JSON(http.StatusOK, result)
}
