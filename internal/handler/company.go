package handler

import (
	"net/http"

	"jobboard/internal/models"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CompanyHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	GetByID(c *gin.Context)
	List(c *gin.Context)
}

type companyHandler struct {
	service service.CompanyService
	log     *logrus.Logger
}

func NewCompanyHandler(service service.CompanyService, log *logrus.Logger) CompanyHandler {
	return &companyHandler{service: service, log: log}
}

type CompanyRequest struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Logo        string `json:"logo"`
}

func (h *companyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for company create: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company := &models.Company{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Logo:        req.Logo,
	}

	created, err := h.service.Create(c.Request.Context(), company)
	if err != nil {
		h.log.Errorf("Failed to create company: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create company"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *companyHandler) Update(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for company update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company id"})
		return
	}

	company := &models.Company{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Logo:        req.Logo,
	}

	updated, err := h.service.Update(c.Request.Context(), company)
	if err != nil {
		h.log.Errorf("Failed to update company: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update company"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *companyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company id"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.log.Errorf("Failed to delete company %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete company"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}

func (h *companyHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company id"})
		return
	}

	company, err := h.service.FindByID(id)
	if err != nil {
		h.log.Errorf("Failed to fetch company %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch company"})
		return
	}
	if company == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *companyHandler) List(c *gin.Context) {
	page := parsePageRequest(c)
	result, err := h.service.FetchAll(c.Query("name"), page)
	if err != nil {
		h.log.Errorf("Failed to list companies: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list companies"})
		return
	}

	c.JSON(http.StatusOK, result)
}
