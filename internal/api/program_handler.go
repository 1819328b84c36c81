package api

import (
	"context"
	"net/http"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramHandler serves user programs, their cycles and schedules.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// ownerAndProgram resolves the caller and the :programId path parameter.
func ownerAndProgram(c *gin.Context) (ownerID, programID primitive.ObjectID, ok bool) {
	if ownerID, ok = requireUserID(c); !ok {
		return
	}
	programID, ok = pathObjectID(c, "programId")
	return
}

// --- Programs ---

// CreateProgram godoc
// @Summary Create a program
// @Tags Programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param program body ProgramRequest true "Program template fields"
// @Success 201 {object} ProgramResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /programs [post]
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	params, err := req.toParams(ownerID) // Builds the periodicity rule, may fail validation
	if err != nil {
		respondWithError(c, err)
		return
	}

	program, err := h.programService.CreateProgram(c.Request.Context(), ownerID, params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapProgramToResponse(program))
}

// ListPrograms godoc
// @Summary List the caller's programs
// @Tags Programs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProgramResponse
// @Router /programs [get]
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	programs, err := h.programService.ListPrograms(c.Request.Context(), ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProgramsToResponse(programs))
}

// GetProgram godoc
// @Summary Get a program with its cycles
// @Tags Programs
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Success 200 {object} ProgramResponse
// @Failure 404 {object} gin.H "Program not found"
// @Router /programs/{programId} [get]
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	ownerID, programID, ok := ownerAndProgram(c)
	if !ok {
		return
	}
	program, err := h.programService.GetProgram(c.Request.Context(), ownerID, programID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProgramToResponse(program))
}

// DeleteProgram godoc
// @Summary Delete a program
// @Tags Programs
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Success 204 "Deleted"
// @Failure 404 {object} gin.H "Program not found"
// @Router /programs/{programId} [delete]
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	ownerID, programID, ok := ownerAndProgram(c)
	if !ok {
		return
	}
	if err := h.programService.DeleteProgram(c.Request.Context(), ownerID, programID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Cycles ---

// CreateCycle godoc
// @Summary Start a new cycle
// @Description Schedules sessions for the cycle. Overlapping an existing cycle is rejected with 409.
// @Tags Cycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Param cycle body CreateCycleRequest true "Cycle details"
// @Success 201 {object} ProgramResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Overlaps an existing cycle"
// @Failure 422 {object} gin.H "Periodicity cannot be scheduled"
// @Router /programs/{programId}/cycles [post]
func (h *ProgramHandler) CreateCycle(c *gin.Context) {
	ownerID, programID, ok := ownerAndProgram(c)
	if !ok {
		return
	}
	var req CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	start, opts, err := req.toOptions()
	if err != nil {
		respondWithError(c, err)
		return
	}

	program, err := h.programService.CreateCycle(c.Request.Context(), ownerID, programID, start, opts)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapProgramToResponse(program))
}

// ActivatableCycles godoc
// @Summary Cycles that may be activated on a date
// @Tags Cycles
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {array} CycleResponse
// @Router /programs/{programId}/cycles/activatable [get]
func (h *ProgramHandler) ActivatableCycles(c *gin.Context) {
	ownerID, programID, ok := ownerAndProgram(c)
	if !ok {
		return
	}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	cycles, err := h.programService.ActivatableCycles(c.Request.Context(), ownerID, programID, date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapCyclesToResponse(cycles))
}

// ActivateCycle godoc
// @Summary Activate a cycle
// @Description Deactivates every other cycle. Completed cycles and cycles not covering today are rejected.
// @Tags Cycles
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Param cycleId path string true "Cycle ID"
// @Success 200 {object} ProgramResponse
// @Failure 404 {object} gin.H "Program or cycle not found"
// @Failure 422 {object} gin.H "Cycle cannot be activated"
// @Router /programs/{programId}/cycles/{cycleId}/activate [post]
func (h *ProgramHandler) ActivateCycle(c *gin.Context) {
	h.cycleAction(c, h.programService.ActivateCycle)
}

// DeactivateCycle godoc
// @Summary Deactivate a cycle
// @Tags Cycles
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Param cycleId path string true "Cycle ID"
// @Success 200 {object} ProgramResponse
// @Failure 404 {object} gin.H "Program or cycle not found"
// @Router /programs/{programId}/cycles/{cycleId}/deactivate [post]
func (h *ProgramHandler) DeactivateCycle(c *gin.Context) {
	h.cycleAction(c, h.programService.DeactivateCycle)
}

type cycleActionFunc func(ctx context.Context, ownerID, programID, cycleID primitive.ObjectID) (*domain.Program, error)

func (h *ProgramHandler) cycleAction(c *gin.Context, action cycleActionFunc) {
	ownerID, programID, ok := ownerAndProgram(c)
	if !ok {
		return
	}
	cycleID, ok := pathObjectID(c, "cycleId")
	if !ok {
		return
	}
	program, err := action(c.Request.Context(), ownerID, programID, cycleID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProgramToResponse(program))
}

// CompleteCurrentCycle godoc
// @Summary Complete the active cycle
// @Description No-op when no cycle is active.
// @Tags Cycles
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Success 200 {object} ProgramResponse
// @Router /programs/{programId}/complete-cycle [post]
func (h *ProgramHandler) CompleteCurrentCycle(c *gin.Context) {
	h.programAction(c, h.programService.CompleteCurrentCycle)
}

// RefreshCycleActivation godoc
// @Summary Re-evaluate which cycle is active today
// @Tags Cycles
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Success 200 {object} ProgramResponse
// @Router /programs/{programId}/refresh-activation [post]
func (h *ProgramHandler) RefreshCycleActivation(c *gin.Context) {
	h.programAction(c, h.programService.RefreshCycleActivation)
}

func (h *ProgramHandler) programAction(
	c *gin.Context,
	action func(ctx context.Context, ownerID, programID primitive.ObjectID) (*domain.Program, error),
) {
	ownerID, programID, ok := ownerAndProgram(c)
	if !ok {
		return
	}
	program, err := action(c.Request.Context(), ownerID, programID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapProgramToResponse(program))
}

// --- Schedule and sessions ---

// Schedule godoc
// @Summary Day-by-day schedule
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Success 200 {array} ScheduledDayResponse
// @Failure 400 {object} gin.H "Missing or invalid range"
// @Router /programs/{programId}/schedule [get]
func (h *ProgramHandler) Schedule(c *gin.Context) {
	ownerID, programID, ok := ownerAndProgram(c)
	if !ok {
		return
	}
	from, ok := queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return
	}
	if from.IsZero() || to.IsZero() {
		// Both bounds are required; the service caps the span
		abortWithError(c, http.StatusBadRequest, "Query parameters from and to are required.")
		return
	}

	days, err := h.programService.Schedule(c.Request.Context(), ownerID, programID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapScheduleToResponse(days))
}

type ExpectedResponse struct {
	Date     string `json:"date"`
	Expected bool   `json:"expected"`
}

// IsWorkoutExpected godoc
// @Summary Whether a workout is planned on a date
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} ExpectedResponse
// @Failure 422 {object} gin.H "Custom periodicity cannot be evaluated"
// @Router /programs/{programId}/expected [get]
func (h *ProgramHandler) IsWorkoutExpected(c *gin.Context) {
	ownerID, programID, ok := ownerAndProgram(c)
	if !ok {
		return
	}
	date, ok := queryDate(c, "date")
	if !ok {
		return
	}
	if date.IsZero() {
		abortWithError(c, http.StatusBadRequest, "Query parameter date is required.")
		return
	}

	expected, err := h.programService.IsWorkoutExpected(c.Request.Context(), ownerID, programID, date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ExpectedResponse{Date: formatDate(date), Expected: expected})
}

// NextSession godoc
// @Summary Next open session
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Param from query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} gin.H "Nothing scheduled"
// @Router /programs/{programId}/next-session [get]
func (h *ProgramHandler) NextSession(c *gin.Context) {
	ownerID, programID, ok := ownerAndProgram(c)
	if !ok {
		return
	}
	from, ok := queryDate(c, "from")
	if !ok {
		return
	}

	session, err := h.programService.NextSession(c.Request.Context(), ownerID, programID, from)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(session))
}

// LogSession godoc
// @Summary Record a workout session
// @Description Replaces exercises, sets and completion state of a scheduled session.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Param cycleId path string true "Cycle ID"
// @Param sessionId path string true "Session ID"
// @Param session body LogSessionRequest true "Performed work"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} gin.H "Program, cycle or session not found"
// @Failure 409 {object} gin.H "Concurrent update"
// @Router /programs/{programId}/cycles/{cycleId}/sessions/{sessionId} [put]
func (h *ProgramHandler) LogSession(c *gin.Context) {
	ownerID, programID, ok := ownerAndProgram(c)
	if !ok {
		return
	}
	cycleID, ok := pathObjectID(c, "cycleId")
	if !ok {
		return
	}
	sessionID, ok := pathObjectID(c, "sessionId")
	if !ok {
		return
	}
	var req LogSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	// Timestamps are optional, but when both are sent they must be ordered
	if req.StartedAt != nil && req.CompletedAt != nil && req.CompletedAt.Before(*req.StartedAt) {
		abortWithError(c, http.StatusBadRequest, "completedAt must not be before startedAt.")
		return
	}

	// Date and day template stay as generated; only the performed work is taken from the body
	session, err := h.programService.LogSession(c.Request.Context(), ownerID, programID, cycleID, req.toSession(sessionID))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(session))
}
