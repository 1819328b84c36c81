package api

import (
	"time"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Requests ---

type DayTemplateDTO struct {
	Name        string   `json:"name" binding:"required"`
	ExerciseIDs []string `json:"exerciseIds"`
}

// ProgramRequest creates a user program or, for admins, a built-in template.
type ProgramRequest struct {
	Name               string                  `json:"name" binding:"required"`
	Description        string                  `json:"description"`
	Type               domain.ProgramType      `json:"type"`
	Difficulty         domain.Difficulty       `json:"difficulty"`
	DefaultPeriodicity *domain.PeriodicitySpec `json:"defaultPeriodicity"`
	Tags               []string                `json:"tags"`
	DayTemplates       []DayTemplateDTO        `json:"dayTemplates" binding:"dive"`
}

func (r ProgramRequest) toParams(ownerID primitive.ObjectID) (domain.ProgramParams, error) {
	rule, err := r.DefaultPeriodicity.Build()
	if err != nil {
		return domain.ProgramParams{}, err
	}
	templates := make([]domain.DayTemplate, len(r.DayTemplates))
	for i, t := range r.DayTemplates {
		templates[i] = domain.DayTemplate{Name: t.Name, ExerciseIDs: t.ExerciseIDs}
	}
	return domain.ProgramParams{
		OwnerID:            ownerID,
		Name:               r.Name,
		Description:        r.Description,
		Type:               r.Type,
		Difficulty:         r.Difficulty,
		DefaultPeriodicity: rule,
		Tags:               r.Tags,
		DayTemplates:       templates,
	}, nil
}

// CreateCycleRequest starts a new cycle. Dates are YYYY-MM-DD; a missing end date makes
// the cycle open-ended.
type CreateCycleRequest struct {
	StartDate   string                  `json:"startDate" binding:"required"`
	EndDate     *string                 `json:"endDate"`
	Periodicity *domain.PeriodicitySpec `json:"periodicity"`
	Notes       string                  `json:"notes"`
	Metadata    map[string]string       `json:"metadata"`
}

func (r CreateCycleRequest) toOptions() (time.Time, domain.CycleOptions, error) {
	start, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return time.Time{}, domain.CycleOptions{}, &domain.ValidationError{Field: "startDate", Reason: "must be YYYY-MM-DD"}
	}
	opts := domain.CycleOptions{Notes: r.Notes, Metadata: r.Metadata}
	if r.EndDate != nil {
		end, err := domain.ParseDate(*r.EndDate)
		if err != nil {
			return time.Time{}, domain.CycleOptions{}, &domain.ValidationError{Field: "endDate", Reason: "must be YYYY-MM-DD"}
		}
		opts.EndDate = &end
	}
	if opts.Periodicity, err = r.Periodicity.Build(); err != nil {
		return time.Time{}, domain.CycleOptions{}, err
	}
	return start, opts, nil
}

type SetDTO struct {
	TargetReps   int      `json:"targetReps"`
	ActualReps   *int     `json:"actualReps,omitempty"`
	TargetWeight float64  `json:"targetWeight"`
	ActualWeight *float64 `json:"actualWeight,omitempty"`
	IsCompleted  bool     `json:"isCompleted"`
}

type WorkoutExerciseDTO struct {
	ExerciseID string   `json:"exerciseId" binding:"required"`
	Sets       []SetDTO `json:"sets"`
	Notes      string   `json:"notes,omitempty"`
}

// LogSessionRequest replaces the content of a scheduled session.
type LogSessionRequest struct {
	Exercises   []WorkoutExerciseDTO `json:"exercises" binding:"dive"`
	IsCompleted bool                 `json:"isCompleted"`
	StartedAt   *time.Time           `json:"startedAt"`
	CompletedAt *time.Time           `json:"completedAt"`
	Notes       string               `json:"notes"`
}

func (r LogSessionRequest) toSession(sessionID primitive.ObjectID) domain.WorkoutSession {
	exercises := make([]domain.WorkoutExercise, len(r.Exercises))
	for i, e := range r.Exercises {
		sets := make([]domain.ExerciseSet, len(e.Sets))
		for j, s := range e.Sets {
			sets[j] = domain.ExerciseSet{
				TargetReps:   s.TargetReps,
				ActualReps:   s.ActualReps,
				TargetWeight: s.TargetWeight,
				ActualWeight: s.ActualWeight,
				IsCompleted:  s.IsCompleted,
			}
		}
		exercises[i] = domain.WorkoutExercise{ExerciseID: e.ExerciseID, Sets: sets, Notes: e.Notes}
	}
	return domain.WorkoutSession{
		ID:          sessionID,
		Exercises:   exercises,
		IsCompleted: r.IsCompleted,
		StartedAt:   r.StartedAt,
		CompletedAt: r.CompletedAt,
		Notes:       r.Notes,
	}
}

// --- Responses ---

type SessionResponse struct {
	ID          string               `json:"id"`
	CycleID     string               `json:"cycleId"`
	Date        string               `json:"date"`
	DayTemplate string               `json:"dayTemplate,omitempty"`
	Exercises   []WorkoutExerciseDTO `json:"exercises"`
	IsCompleted bool                 `json:"isCompleted"`
	StartedAt   *time.Time           `json:"startedAt,omitempty"`
	CompletedAt *time.Time           `json:"completedAt,omitempty"`
	Notes       string               `json:"notes,omitempty"`
	Volume      float64              `json:"volume"`
}

type CycleResponse struct {
	ID                   string                  `json:"id"`
	CycleNumber          int                     `json:"cycleNumber"`
	StartDate            string                  `json:"startDate"`
	EndDate              *string                 `json:"endDate,omitempty"`
	Periodicity          *domain.PeriodicitySpec `json:"periodicity,omitempty"`
	IsActive             bool                    `json:"isActive"`
	IsCompleted          bool                    `json:"isCompleted"`
	CompletionPercentage float64                 `json:"completionPercentage"`
	DurationDays         int                     `json:"durationDays"`
	Notes                string                  `json:"notes,omitempty"`
	Metadata             map[string]string       `json:"metadata,omitempty"`
	Sessions             []SessionResponse       `json:"sessions"`
	CreatedAt            time.Time               `json:"createdAt"`
}

type ProgramResponse struct {
	ID                 string                  `json:"id"`
	OwnerID            string                  `json:"ownerId,omitempty"`
	Name               string                  `json:"name"`
	Description        string                  `json:"description,omitempty"`
	Type               domain.ProgramType      `json:"type"`
	Difficulty         domain.Difficulty       `json:"difficulty"`
	DefaultPeriodicity *domain.PeriodicitySpec `json:"defaultPeriodicity,omitempty"`
	ScheduleSummary    string                  `json:"scheduleSummary"`
	Tags               []string                `json:"tags"`
	IsDefault          bool                    `json:"isDefault"`
	DayTemplates       []DayTemplateDTO        `json:"dayTemplates"`
	Cycles             []CycleResponse         `json:"cycles"`
	ActiveCycleID      *string                 `json:"activeCycleId,omitempty"`
	CreatedAt          time.Time               `json:"createdAt"`
	UpdatedAt          time.Time               `json:"updatedAt"`
	Version            int64                   `json:"version"`
}

type ScheduledDayResponse struct {
	Date        string  `json:"date"`
	Expected    bool    `json:"expected"`
	CycleID     *string `json:"cycleId,omitempty"`
	CycleNumber int     `json:"cycleNumber,omitempty"`
	SessionID   *string `json:"sessionId,omitempty"`
	Completed   bool    `json:"completed"`
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func hexPtr(id *primitive.ObjectID) *string {
	if id == nil {
		return nil
	}
	s := id.Hex()
	return &s
}

// MapSessionToResponse converts a domain.WorkoutSession to its DTO.
func MapSessionToResponse(s *domain.WorkoutSession) SessionResponse {
	if s == nil {
		return SessionResponse{}
	}
	exercises := make([]WorkoutExerciseDTO, len(s.Exercises))
	for i, e := range s.Exercises {
		sets := make([]SetDTO, len(e.Sets))
		for j, set := range e.Sets {
			sets[j] = SetDTO{
				TargetReps:   set.TargetReps,
				ActualReps:   set.ActualReps,
				TargetWeight: set.TargetWeight,
				ActualWeight: set.ActualWeight,
				IsCompleted:  set.IsCompleted,
			}
		}
		exercises[i] = WorkoutExerciseDTO{ExerciseID: e.ExerciseID, Sets: sets, Notes: e.Notes}
	}
	return SessionResponse{
		ID:          s.ID.Hex(),
		CycleID:     s.CycleID.Hex(),
		Date:        formatDate(s.Date),
		DayTemplate: s.DayTemplate,
		Exercises:   exercises,
		IsCompleted: s.IsCompleted,
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
		Notes:       s.Notes,
		Volume:      s.Volume(),
	}
}

// MapCycleToResponse converts a domain.ProgramCycle to its DTO.
func MapCycleToResponse(c domain.ProgramCycle) CycleResponse {
	sessions := make([]SessionResponse, len(c.ScheduledSessions))
	for i := range c.ScheduledSessions {
		sessions[i] = MapSessionToResponse(&c.ScheduledSessions[i])
	}
	var end *string
	if c.EndDate != nil {
		s := formatDate(*c.EndDate)
		end = &s
	}
	return CycleResponse{
		ID:                   c.ID.Hex(),
		CycleNumber:          c.CycleNumber,
		StartDate:            formatDate(c.StartDate),
		EndDate:              end,
		Periodicity:          domain.SpecOf(c.Periodicity),
		IsActive:             c.IsActive,
		IsCompleted:          c.IsCompleted,
		CompletionPercentage: c.CompletionPercentage(),
		DurationDays:         c.DurationInDays(),
		Notes:                c.Notes,
		Metadata:             c.Metadata,
		Sessions:             sessions,
		CreatedAt:            c.CreatedAt,
	}
}

// MapCyclesToResponse converts a slice of cycles.
func MapCyclesToResponse(cycles []domain.ProgramCycle) []CycleResponse {
	responses := make([]CycleResponse, len(cycles))
	for i, c := range cycles {
		responses[i] = MapCycleToResponse(c)
	}
	return responses
}

// MapProgramToResponse converts a domain.Program to ProgramResponse DTO.
func MapProgramToResponse(p *domain.Program) ProgramResponse {
	if p == nil {
		return ProgramResponse{}
	}
	templates := make([]DayTemplateDTO, len(p.DayTemplates))
	for i, t := range p.DayTemplates {
		templates[i] = DayTemplateDTO{Name: t.Name, ExerciseIDs: t.ExerciseIDs}
	}
	resp := ProgramResponse{
		ID:                 p.ID.Hex(),
		Name:               p.Name,
		Description:        p.Description,
		Type:               p.Type,
		Difficulty:         p.Difficulty,
		DefaultPeriodicity: domain.SpecOf(p.DefaultPeriodicity),
		ScheduleSummary:    domain.Describe(p.DefaultPeriodicity),
		Tags:               p.Tags,
		IsDefault:          p.IsDefault,
		DayTemplates:       templates,
		Cycles:             MapCyclesToResponse(p.Cycles),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
		Version:            p.Version,
	}
	if !p.OwnerID.IsZero() {
		resp.OwnerID = p.OwnerID.Hex()
	}
	if active, ok := p.ActiveCycle(); ok {
		resp.ActiveCycleID = hexPtr(&active.ID)
	}
	return resp
}

// MapProgramsToResponse converts a slice of domain.Program to DTOs.
func MapProgramsToResponse(programs []domain.Program) []ProgramResponse {
	responses := make([]ProgramResponse, len(programs))
	for i := range programs {
		responses[i] = MapProgramToResponse(&programs[i])
	}
	return responses
}

// MapScheduleToResponse converts the service schedule to date-string DTOs.
func MapScheduleToResponse(days []service.ScheduledDay) []ScheduledDayResponse {
	responses := make([]ScheduledDayResponse, len(days))
	for i, d := range days {
		responses[i] = ScheduledDayResponse{
			Date:        formatDate(d.Date),
			Expected:    d.Expected,
			CycleID:     hexPtr(d.CycleID),
			CycleNumber: d.CycleNumber,
			SessionID:   hexPtr(d.SessionID),
			Completed:   d.Completed,
		}
	}
	return responses
}
