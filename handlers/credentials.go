package handlers

import (
	"net/http"

	credentialsRepo "clearslot/database/repository/credentials"
	"clearslot/models"
	"clearslot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CredentialsHandler manages stored upstream credential pairs. Tokens are
// accepted and replaced as a whole pair; they are never echoed back.
type CredentialsHandler struct {
	Repo credentialsRepo.CredentialsRepository
}

// NewCredentialsHandler creates a handler bound to the given repository.
func NewCredentialsHandler(repo credentialsRepo.CredentialsRepository) *CredentialsHandler {
	return &CredentialsHandler{Repo: repo}
}

// StoreCredentialsHandler handles PUT /api/persons/:id/credentials.
func (h *CredentialsHandler) StoreCredentialsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var pair models.CredentialPair
	if err := c.ShouldBindJSON(&pair); err != nil {
		logger.Error("Invalid credentials payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both accessToken and refreshToken are required"})
		return
	}

	if err := h.Repo.Put(c.Request.Context(), id, pair); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store credentials", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credentials stored"})
}

// DeleteCredentialsHandler handles DELETE /api/persons/:id/credentials.
func (h *CredentialsHandler) DeleteCredentialsHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete credentials", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credentials deleted"})
}
