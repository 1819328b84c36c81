package domain

import (
	"maps"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OpenEndedHorizon bounds generation for cycles without an end date:
// their effective end is StartDate plus this many years.
const OpenEndedHorizon = 1

// CycleOptions are the optional inputs of a new cycle.
type CycleOptions struct {
	EndDate     *time.Time
	Periodicity Periodicity // overrides the program default when set
	Notes       string
	Metadata    map[string]string
}

// ProgramCycle is one dated execution instance of a Program.
type ProgramCycle struct {
	ID                primitive.ObjectID
	ProgramID         primitive.ObjectID
	CycleNumber       int
	StartDate         time.Time
	EndDate           *time.Time // nil means open-ended
	Periodicity       Periodicity
	IsActive          bool
	IsCompleted       bool
	ScheduledSessions []WorkoutSession
	Notes             string
	Metadata          map[string]string
	CreatedAt         time.Time
}

// NewProgramCycle validates its input and returns an inactive cycle with no sessions.
// Dates are normalised to calendar days.
func NewProgramCycle(programID primitive.ObjectID, cycleNumber int, startDate time.Time, opts CycleOptions) (ProgramCycle, error) {
	if cycleNumber < 1 {
		return ProgramCycle{}, &ValidationError{Field: "cycleNumber", Reason: "must be at least 1"}
	}
	if startDate.IsZero() {
		return ProgramCycle{}, &ValidationError{Field: "startDate", Reason: "is required"}
	}
	start := Day(startDate)

	var end *time.Time
	if opts.EndDate != nil {
		e := Day(*opts.EndDate)
		if e.Before(start) {
			return ProgramCycle{}, &ValidationError{Field: "endDate", Reason: "must not be before startDate"}
		}
		end = &e
	}

	return ProgramCycle{
		ID:          primitive.NewObjectID(),
		ProgramID:   programID,
		CycleNumber: cycleNumber,
		StartDate:   start,
		EndDate:     end,
		Periodicity: opts.Periodicity,
		Notes:       opts.Notes,
		Metadata:    maps.Clone(opts.Metadata),
	}, nil
}

// EffectiveEndDate is EndDate, or StartDate + OpenEndedHorizon years for open-ended cycles.
func (c ProgramCycle) EffectiveEndDate() time.Time {
	if c.EndDate != nil {
		return Day(*c.EndDate)
	}
	return Day(c.StartDate).AddDate(OpenEndedHorizon, 0, 0)
}

// EffectivePeriodicity is the cycle's own rule, else fallback (the owning program's default).
func (c ProgramCycle) EffectivePeriodicity(fallback Periodicity) (Periodicity, error) {
	if c.Periodicity != nil {
		return c.Periodicity, nil
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, &ValidationError{Field: "periodicity", Reason: "cycle has no periodicity and no program default was given"}
}

func (c ProgramCycle) resolvedPeriodicity(fallback Periodicity) (Periodicity, bool) {
	rule, err := c.EffectivePeriodicity(fallback)
	return rule, err == nil
}

// GenerateScheduledSessions returns a copy of the cycle with one session per workout day
// from StartDate to EffectiveEndDate inclusive, in ascending date order.
//
// A cycle without its own Periodicity cannot resolve its schedule alone: the caller must pass
// the owning program's default as fallback. When templates are given they are assigned to the
// generated sessions in rotation. Dates are deterministic; session ids are fresh on every call.
func (c ProgramCycle) GenerateScheduledSessions(fallback Periodicity, templates ...DayTemplate) (ProgramCycle, error) {
	rule, err := c.EffectivePeriodicity(fallback)
	if err != nil {
		return ProgramCycle{}, err
	}

	start, end := Day(c.StartDate), c.EffectiveEndDate()
	var sessions []WorkoutSession
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		expected, err := IsWorkoutExpected(rule, start, d)
		if err != nil {
			return ProgramCycle{}, err
		}
		if !expected {
			continue
		}
		var tpl *DayTemplate
		if len(templates) > 0 {
			t := templates[len(sessions)%len(templates)].clone()
			tpl = &t
		}
		sessions = append(sessions, NewScheduledSession(c.ProgramID, c.ID, d, tpl))
	}

	out := c.clone()
	out.ScheduledSessions = sessions
	return out, nil
}

// Complete marks the cycle completed and inactive. Completing twice is a no-op.
func (c ProgramCycle) Complete() ProgramCycle {
	out := c.clone()
	out.IsCompleted = true
	out.IsActive = false
	return out
}

// Contains reports whether date lies within [StartDate, EffectiveEndDate].
func (c ProgramCycle) Contains(date time.Time) bool {
	d := Day(date)
	return !d.Before(Day(c.StartDate)) && !d.After(c.EffectiveEndDate())
}

// CanBeActivatedOn reports whether the cycle is not completed and contains date.
func (c ProgramCycle) CanBeActivatedOn(date time.Time) bool {
	return !c.IsCompleted && c.Contains(date)
}

// OverlapsRange reports whether the closed range [start, end] intersects the cycle's range.
// Ranges sharing an endpoint date overlap.
func (c ProgramCycle) OverlapsRange(start, end time.Time) bool {
	return !Day(end).Before(Day(c.StartDate)) && !Day(start).After(c.EffectiveEndDate())
}

// DurationInDays is the number of whole days from StartDate to EffectiveEndDate.
func (c ProgramCycle) DurationInDays() int {
	return DaysBetween(c.StartDate, c.EffectiveEndDate())
}

// DurationInWeeks is DurationInDays / 7 as a fraction.
func (c ProgramCycle) DurationInWeeks() float64 {
	return float64(c.DurationInDays()) / 7
}

// CompletionPercentage is the fraction (0..1) of scheduled sessions that are completed.
// A cycle without sessions reports 0.
func (c ProgramCycle) CompletionPercentage() float64 {
	if len(c.ScheduledSessions) == 0 {
		return 0
	}
	var done int
	for _, s := range c.ScheduledSessions {
		if s.IsCompleted {
			done++
		}
	}
	return float64(done) / float64(len(c.ScheduledSessions))
}

// NextScheduledSession returns the first not-completed session dated on or after from.
func (c ProgramCycle) NextScheduledSession(from time.Time) (WorkoutSession, bool) {
	f := Day(from)
	for _, s := range c.ScheduledSessions {
		if !s.IsCompleted && !s.Date.Before(f) {
			return s.clone(), true
		}
	}
	return WorkoutSession{}, false
}

// SessionByID looks up a scheduled session.
func (c ProgramCycle) SessionByID(id primitive.ObjectID) (WorkoutSession, bool) {
	for _, s := range c.ScheduledSessions {
		if s.ID == id {
			return s.clone(), true
		}
	}
	return WorkoutSession{}, false
}

// WithSession returns a copy of the cycle with the session of the same id replaced.
// Fields owned by generation (ids, date and day template) are kept from the stored session.
func (c ProgramCycle) WithSession(session WorkoutSession) (ProgramCycle, error) {
	for i, existing := range c.ScheduledSessions {
		if existing.ID != session.ID {
			continue
		}
		updated := session.clone()
		updated.ProgramID = existing.ProgramID
		updated.CycleID = existing.CycleID
		updated.Date = existing.Date
		updated.DayTemplate = existing.DayTemplate
		out := c.clone()
		out.ScheduledSessions[i] = updated
		return out, nil
	}
	return ProgramCycle{}, &NotFoundError{Resource: "session", ID: session.ID.Hex()}
}

func (c ProgramCycle) clone() ProgramCycle {
	out := c
	out.EndDate = cloneTime(c.EndDate)
	out.Metadata = maps.Clone(c.Metadata)
	if c.ScheduledSessions != nil {
		out.ScheduledSessions = make([]WorkoutSession, len(c.ScheduledSessions))
		for i, s := range c.ScheduledSessions {
			out.ScheduledSessions[i] = s.clone()
		}
	}
	return out
}
