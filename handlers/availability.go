package handlers

import (
	"net/http"

	"clearslot/models"
	"clearslot/services/availability"
	"clearslot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the availability computation over HTTP.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler creates a handler bound to the given service.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// kindStatus maps a typed availability failure to an HTTP status. Revoked and
// expired both demand re-authentication; provider faults and unreachable
// upstreams map to gateway statuses so callers can distinguish retryable
// failures.
func kindStatus(kind availability.Kind) int {
	switch kind {
	case availability.KindValidation:
		return http.StatusBadRequest
	case availability.KindCredentialNotFound:
		return http.StatusNotFound
	case availability.KindCredentialExpired, availability.KindCredentialRevoked:
		return http.StatusUnauthorized
	case availability.KindProvider:
		return http.StatusBadGateway
	case availability.KindUnreachable:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func respondTypedError(c *gin.Context, err error) {
	kind := availability.KindOf(err)
	c.JSON(kindStatus(kind), gin.H{"error": err.Error(), "kind": string(kind)})
}

// ComputeAvailabilityHandler handles POST /api/availability.
func (h *AvailabilityHandler) ComputeAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid availability request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	result, err := h.Service.ComputeAvailability(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Availability computation failed",
			zap.String("personId", req.PersonID),
			zap.String("kind", string(availability.KindOf(err))),
			zap.Error(err))
		respondTypedError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ComputeBatchHandler handles POST /api/availability/batch.
func (h *AvailabilityHandler) ComputeBatchHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.BatchAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid batch availability request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	entries, err := h.Service.ComputeBatch(c.Request.Context(), req)
	if err != nil {
		respondTypedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": entries})
}
