package api

import (
	"errors"
	"net/http"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondWithError maps service and domain errors to status codes. Anything unknown is
// logged and reported as a 500 without details.
func respondWithError(c *gin.Context, err error) {
	var overlap *domain.CycleOverlapError
	if errors.As(err, &overlap) {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error":                  err.Error(),
			"conflictingCycleId":     overlap.ConflictingCycleID.Hex(),
			"conflictingCycleNumber": overlap.ConflictingCycleNumber,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrInvalidRegistration),
		errors.Is(err, service.ErrInvalidImage):
		abortWithError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, service.ErrExerciseAccessDenied):
		abortWithError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, service.ErrProgramNotFound),
		errors.Is(err, service.ErrTemplateNotFound),
		errors.Is(err, service.ErrNoUpcomingSession),
		errors.Is(err, service.ErrExerciseNotFound),
		errors.Is(err, service.ErrPhotoNotFound),
		errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrTemplateNameExists),
		errors.Is(err, service.ErrConcurrentUpdate):
		abortWithError(c, http.StatusConflict, err.Error())

	case errors.Is(err, service.ErrPhotoTooLarge):
		abortWithError(c, http.StatusRequestEntityTooLarge, err.Error())

	case errors.Is(err, domain.ErrInvalidActivation),
		errors.Is(err, domain.ErrUnsupportedPeriodicity):
		abortWithError(c, http.StatusUnprocessableEntity, err.Error())

	default:
		log.WithError(err).WithFields(log.Fields{
			"method": c.Request.Method,
			"route":  c.FullPath(),
		}).Error("request failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
