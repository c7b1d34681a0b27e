package handlers

import (
	"errors"
	"net/http"

	personRepo "clearslot/database/repository/person"
	"clearslot/models"
	"clearslot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PersonHandler exposes person profile and preference management.
type PersonHandler struct {
	Repo personRepo.PersonRepository
}

// NewPersonHandler creates a handler bound to the given repository.
func NewPersonHandler(repo personRepo.PersonRepository) *PersonHandler {
	return &PersonHandler{Repo: repo}
}

// GetPersonByIDHandler handles GET /api/persons/:id.
func (h *PersonHandler) GetPersonByIDHandler(c *gin.Context) {
	id := c.Param("id")

	person, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, personRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch person", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, person)
}

// UpsertPersonHandler handles PUT /api/persons/:id.
func (h *PersonHandler) UpsertPersonHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var person models.Person
	if err := c.ShouldBindJSON(&person); err != nil {
		logger.Error("Invalid person payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	person.ID = id

	if err := h.Repo.Upsert(c.Request.Context(), &person); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save person", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, person)
}

// UpdatePreferencesHandler handles PUT /api/persons/:id/preferences.
func (h *PersonHandler) UpdatePreferencesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		logger.Error("Invalid preferences payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if prefs.WorkStartMin >= prefs.WorkEndMin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Working hours start must precede end"})
		return
	}

	if err := h.Repo.UpdatePreferences(c.Request.Context(), id, prefs); err != nil {
		if errors.Is(err, personRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated", "preferences": prefs})
}

// DeletePersonHandler handles DELETE /api/persons/:id.
func (h *PersonHandler) DeletePersonHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, personRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete person", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Person deleted"})
}
