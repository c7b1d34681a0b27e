// File: clearslot/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	ComputeAvailabilityHandler gin.HandlerFunc
	ComputeBatchHandler        gin.HandlerFunc

	// Person endpoints
	GetPersonByIDHandler     gin.HandlerFunc
	UpsertPersonHandler      gin.HandlerFunc
	UpdatePreferencesHandler gin.HandlerFunc
	DeletePersonHandler      gin.HandlerFunc

	// Credential endpoints
	StoreCredentialsHandler  gin.HandlerFunc
	DeleteCredentialsHandler gin.HandlerFunc
}
