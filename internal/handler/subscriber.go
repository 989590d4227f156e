package handler

import (
	"errors"
	"net/http"

	"jobboard/internal/models"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SubscriberHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	GetByCurrentUser(c *gin.Context)
}

type subscriberHandler struct {
	service service.SubscriberService
	log     *logrus.Logger
}

func NewSubscriberHandler(service service.SubscriberService, log *logrus.Logger) SubscriberHandler {
	return &subscriberHandler{service: service, log: log}
}

type CreateSubscriberRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Name     string  `json:"name"`
	SkillIDs []int64 `json:"skillIds"`
}

type UpdateSubscriberRequest struct {
	ID       int64   `json:"id" binding:"required"`
	Name     string  `json:"name"`
	SkillIDs []int64 `json:"skillIds"`
}

func (h *subscriberHandler) Create(c *gin.Context) {
	var req CreateSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for subscriber create: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := h.service.IsEmailExist(req.Email)
	if err != nil {
		h.log.Errorf("Failed to check subscriber email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscriber"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email " + req.Email + " is already subscribed"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &models.Subscriber{
		Email: req.Email,
		Name:  req.Name,
	}, req.SkillIDs)
	if err != nil {
		h.log.Errorf("Failed to create subscriber: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscriber"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *subscriberHandler) Update(c *gin.Context) {
	var req UpdateSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for subscriber update: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), &models.Subscriber{
		ID:   req.ID,
		Name: req.Name,
	}, req.SkillIDs)
	if err != nil {
		h.log.Errorf("Failed to update subscriber: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscriber"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *subscriberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscriber id"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.log.Errorf("Failed to delete subscriber %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscriber"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscriber deleted"})
}

// GetByCurrentUser returns the caller's own subscription with the skills
// they follow.
func (h *subscriberHandler) GetByCurrentUser(c *gin.Context) {
	subscriber, err := h.service.FetchByCurrentUser(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		h.log.Errorf("Failed to fetch subscription: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscription"})
		return
	}
	if subscriber == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No subscription found"})
		return
	}

	c.JSON(http.StatusOK, subscriber)
}
