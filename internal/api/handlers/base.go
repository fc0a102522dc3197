// Package handlers provides HTTP request handlers for all API endpoints.
package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/storyreel/storyreel/internal/apperrors"
	"github.com/storyreel/storyreel/internal/services"
	"github.com/storyreel/storyreel/internal/utils"
	"github.com/storyreel/storyreel/pkg/logger"
)

// Handlers contains all the dependencies needed by the API handlers.
type Handlers struct {
	storySvc *services.StoryService
}

// NewHandlers creates a new Handlers instance with all required dependencies.
func NewHandlers(storySvc *services.StoryService) *Handlers {
	return &Handlers{
		storySvc: storySvc,
	}
}

// handleServiceError converts apperrors.Error to appropriate HTTP responses.
// Internal error details are logged but never exposed to clients.
func handleServiceError(c *gin.Context, err error, resource string) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		// Not-found is an expected outcome, everything else gets logged
		if appErr.Internal != "" && appErr.Code != apperrors.CodeNotFound {
			logger.Error("%s error: %s (internal: %s)", resource, appErr.Message, appErr.Internal)
		}

		switch appErr.Code {
		case apperrors.CodeNotFound:
			utils.ProblemNotFound(c, resource)
		case apperrors.CodeValidation:
			var fieldErrors []utils.ValidationError
			if appErr.Field != "" {
				fieldErrors = []utils.ValidationError{{Field: appErr.Field, Message: appErr.Message}}
			}
			utils.ProblemValidationError(c, appErr.Message, fieldErrors)
		case apperrors.CodeInvalidInput:
			utils.ProblemBadRequest(c, appErr.Message)
		case apperrors.CodeIllegalRetry:
			utils.ProblemConflict(c, appErr.Message)
		default:
			utils.ProblemInternalServer(c, fmt.Sprintf("Failed to process %s", resource))
		}
		return
	}

	logger.Error("Unhandled error for %s: %v", resource, err)
	utils.ProblemInternalServer(c, fmt.Sprintf("Failed to process %s", resource))
}
