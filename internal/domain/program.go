package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/multierr"
)

// ProgramType classifies a program's training goal.
type ProgramType string

const (
	TypeStrength    ProgramType = "strength"
	TypeHypertrophy ProgramType = "hypertrophy"
	TypeEndurance   ProgramType = "endurance"
	TypeGeneral     ProgramType = "general"
	TypeCustom      ProgramType = "custom"
)

// Difficulty is the intended experience level.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var (
	programTypes = []ProgramType{TypeStrength, TypeHypertrophy, TypeEndurance, TypeGeneral, TypeCustom}
	difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
)

// Program is a reusable workout plan template plus its history of cycles.
//
// Programs are values: every operation below returns a new Program and leaves the receiver,
// and anything reachable from it, unchanged. Persisting the result is up to the caller.
type Program struct {
	ID                 primitive.ObjectID
	OwnerID            primitive.ObjectID // NilObjectID for built-in templates
	Name               string
	Description        string
	Type               ProgramType
	Difficulty         Difficulty
	DefaultPeriodicity Periodicity
	Tags               []string
	IsDefault          bool
	Cycles             []ProgramCycle
	DayTemplates       []DayTemplate
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int64 // storage revision, maintained by the repository
}

// ProgramParams are the template fields of a new Program.
type ProgramParams struct {
	OwnerID            primitive.ObjectID
	Name               string
	Description        string
	Type               ProgramType
	Difficulty         Difficulty
	DefaultPeriodicity Periodicity
	Tags               []string
	DayTemplates       []DayTemplate
	IsDefault          bool
	CreatedAt          time.Time
}

// NewProgram validates params and returns a template without cycles.
// Empty type and difficulty default to general and beginner.
func NewProgram(params ProgramParams) (Program, error) {
	var errs error
	name := strings.TrimSpace(params.Name)
	if name == "" {
		errs = multierr.Append(errs, &ValidationError{Field: "name", Reason: "is required"})
	}
	if params.Type == "" {
		params.Type = TypeGeneral
	}
	if !slices.Contains(programTypes, params.Type) {
		errs = multierr.Append(errs, &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown program type %q", params.Type)})
	}
	if params.Difficulty == "" {
		params.Difficulty = DifficultyBeginner
	}
	if !slices.Contains(difficulties, params.Difficulty) {
		errs = multierr.Append(errs, &ValidationError{Field: "difficulty", Reason: fmt.Sprintf("unknown difficulty %q", params.Difficulty)})
	}
	for i, t := range params.DayTemplates {
		if strings.TrimSpace(t.Name) == "" {
			errs = multierr.Append(errs, &ValidationError{Field: fmt.Sprintf("dayTemplates[%d].name", i), Reason: "is required"})
		}
	}
	if errs != nil {
		return Program{}, errs
	}

	templates := make([]DayTemplate, len(params.DayTemplates))
	for i, t := range params.DayTemplates {
		templates[i] = t.clone()
	}
	return Program{
		ID:                 primitive.NewObjectID(),
		OwnerID:            params.OwnerID,
		Name:               name,
		Description:        params.Description,
		Type:               params.Type,
		Difficulty:         params.Difficulty,
		DefaultPeriodicity: params.DefaultPeriodicity,
		Tags:               slices.Clone(params.Tags),
		IsDefault:          params.IsDefault,
		DayTemplates:       templates,
		CreatedAt:          params.CreatedAt,
		UpdatedAt:          params.CreatedAt,
	}, nil
}

// NextCycleNumber is one more than the highest existing cycle number, or 1.
func (p Program) NextCycleNumber() int {
	highest := 0
	for _, c := range p.Cycles {
		highest = max(highest, c.CycleNumber)
	}
	return highest + 1
}

// WouldCycleOverlap reports whether [start, end] (end nil = open-ended) intersects any
// existing cycle's range. Touching endpoints count as overlap.
func (p Program) WouldCycleOverlap(start time.Time, end *time.Time) bool {
	probe := ProgramCycle{StartDate: Day(start), EndDate: end}
	_, overlaps := p.conflictingCycle(probe.StartDate, probe.EffectiveEndDate())
	return overlaps
}

func (p Program) conflictingCycle(start, end time.Time) (ProgramCycle, bool) {
	for _, c := range p.Cycles {
		if c.OverlapsRange(start, end) {
			return c, true
		}
	}
	return ProgramCycle{}, false
}

// CreateCycle appends a new cycle numbered NextCycleNumber and generates its sessions.
//
// The new cycle is active only when its range contains now and no other cycle is active;
// otherwise it is left inactive and the caller must use ActivateCycle. Cycles whose effective
// periodicity is Custom, or that have no periodicity at all, get no generated sessions.
func (p Program) CreateCycle(start time.Time, opts CycleOptions, now time.Time) (Program, error) {
	cycle, err := NewProgramCycle(p.ID, p.NextCycleNumber(), start, opts)
	if err != nil {
		return Program{}, err
	}
	if conflict, ok := p.conflictingCycle(cycle.StartDate, cycle.EffectiveEndDate()); ok {
		return Program{}, &CycleOverlapError{ConflictingCycleID: conflict.ID, ConflictingCycleNumber: conflict.CycleNumber}
	}

	if rule, ok := cycle.resolvedPeriodicity(p.DefaultPeriodicity); ok && rule.Kind() != KindCustom {
		cycle, err = cycle.GenerateScheduledSessions(p.DefaultPeriodicity, p.DayTemplates...)
		if err != nil {
			return Program{}, err
		}
	}
	cycle.CreatedAt = now

	_, hasActive := p.ActiveCycle()
	cycle.IsActive = !hasActive && cycle.Contains(now)

	out := p.clone()
	out.Cycles = append(out.Cycles, cycle)
	return out, nil
}

// ActivateCycle makes cycleID the active cycle, deactivating (not completing) any other.
func (p Program) ActivateCycle(cycleID primitive.ObjectID, now time.Time) (Program, error) {
	idx := p.cycleIndex(cycleID)
	if idx < 0 {
		return Program{}, &NotFoundError{Resource: "cycle", ID: cycleID.Hex()}
	}
	target := p.Cycles[idx]
	if target.IsCompleted {
		return Program{}, &InvalidActivationError{CycleID: cycleID, Reason: "cycle is completed"}
	}
	if !target.Contains(now) {
		return Program{}, &InvalidActivationError{
			CycleID: cycleID,
			Reason:  fmt.Sprintf("%s is outside %s..%s", Day(now).Format(DateLayout), target.StartDate.Format(DateLayout), target.EffectiveEndDate().Format(DateLayout)),
		}
	}

	out := p.clone()
	for i := range out.Cycles {
		out.Cycles[i].IsActive = i == idx
	}
	return out, nil
}

// DeactivateCycle clears the active flag of cycleID without completing it.
func (p Program) DeactivateCycle(cycleID primitive.ObjectID) (Program, error) {
	idx := p.cycleIndex(cycleID)
	if idx < 0 {
		return Program{}, &NotFoundError{Resource: "cycle", ID: cycleID.Hex()}
	}
	out := p.clone()
	out.Cycles[idx].IsActive = false
	return out, nil
}

// CompleteCurrentCycle completes the active cycle. Without an active cycle it is a no-op.
func (p Program) CompleteCurrentCycle() Program {
	out := p.clone()
	for i, c := range out.Cycles {
		if c.IsActive {
			out.Cycles[i] = c.Complete()
			break
		}
	}
	return out
}

// RefreshCycleActivation re-evaluates activation against now. Among the non-completed cycles
// that can be activated on now, the one with the lowest cycle number becomes active and all
// other non-completed cycles become inactive. Completed cycles are left untouched.
func (p Program) RefreshCycleActivation(now time.Time) Program {
	chosen := -1
	for i, c := range p.Cycles {
		if !c.CanBeActivatedOn(now) {
			continue
		}
		if chosen < 0 || c.CycleNumber < p.Cycles[chosen].CycleNumber {
			chosen = i
		}
	}

	out := p.clone()
	for i := range out.Cycles {
		if out.Cycles[i].IsCompleted {
			continue
		}
		out.Cycles[i].IsActive = i == chosen
	}
	return out
}

// ActivatableCycles returns the non-completed cycles that can be activated on now, in list order.
func (p Program) ActivatableCycles(now time.Time) []ProgramCycle {
	var out []ProgramCycle
	for _, c := range p.Cycles {
		if c.CanBeActivatedOn(now) {
			out = append(out, c.clone())
		}
	}
	return out
}

// ActiveCycle returns the active cycle, if any.
func (p Program) ActiveCycle() (ProgramCycle, bool) {
	for _, c := range p.Cycles {
		if c.IsActive {
			return c.clone(), true
		}
	}
	return ProgramCycle{}, false
}

// CycleByID returns the cycle with the given id.
func (p Program) CycleByID(id primitive.ObjectID) (ProgramCycle, bool) {
	if idx := p.cycleIndex(id); idx >= 0 {
		return p.Cycles[idx].clone(), true
	}
	return ProgramCycle{}, false
}

// CycleOn returns the cycle whose range contains date.
func (p Program) CycleOn(date time.Time) (ProgramCycle, bool) {
	for _, c := range p.Cycles {
		if c.Contains(date) {
			return c.clone(), true
		}
	}
	return ProgramCycle{}, false
}

// IsWorkoutExpectedOn evaluates the effective periodicity of the cycle containing date.
// A date outside every cycle, or in a cycle without any periodicity, is not a workout day.
func (p Program) IsWorkoutExpectedOn(date time.Time) (bool, error) {
	c, ok := p.CycleOn(date)
	if !ok {
		return false, nil
	}
	rule, ok := c.resolvedPeriodicity(p.DefaultPeriodicity)
	if !ok {
		return false, nil
	}
	return IsWorkoutExpected(rule, c.StartDate, date)
}

// LogSession replaces a scheduled session of cycleID with the given one.
func (p Program) LogSession(cycleID primitive.ObjectID, session WorkoutSession) (Program, error) {
	idx := p.cycleIndex(cycleID)
	if idx < 0 {
		return Program{}, &NotFoundError{Resource: "cycle", ID: cycleID.Hex()}
	}
	updated, err := p.Cycles[idx].WithSession(session)
	if err != nil {
		return Program{}, err
	}
	out := p.clone()
	out.Cycles[idx] = updated
	return out, nil
}

// Instantiate copies the template fields into a new user-owned program without cycles.
func (p Program) Instantiate(ownerID primitive.ObjectID, now time.Time) Program {
	out := p.clone()
	out.ID = primitive.NewObjectID()
	out.OwnerID = ownerID
	out.IsDefault = false
	out.Cycles = nil
	out.CreatedAt = now
	out.UpdatedAt = now
	out.Version = 0
	return out
}

// CheckInvariants verifies the cross-cycle invariants: at most one active cycle, no cycle both
// active and completed, unique cycle numbers and pairwise non-overlapping ranges.
func (p Program) CheckInvariants() error {
	var errs error
	active := 0
	numbers := make(map[int]bool, len(p.Cycles))
	for i, c := range p.Cycles {
		if c.IsActive {
			active++
		}
		if c.IsActive && c.IsCompleted {
			errs = multierr.Append(errs, fmt.Errorf("cycle #%d is both active and completed", c.CycleNumber))
		}
		if numbers[c.CycleNumber] {
			errs = multierr.Append(errs, fmt.Errorf("cycle number %d is used twice", c.CycleNumber))
		}
		numbers[c.CycleNumber] = true
		for _, other := range p.Cycles[i+1:] {
			if c.OverlapsRange(other.StartDate, other.EffectiveEndDate()) {
				errs = multierr.Append(errs, fmt.Errorf("cycles #%d and #%d overlap", c.CycleNumber, other.CycleNumber))
			}
		}
	}
	if active > 1 {
		errs = multierr.Append(errs, fmt.Errorf("%d cycles are active", active))
	}
	return errs
}

func (p Program) cycleIndex(id primitive.ObjectID) int {
	return slices.IndexFunc(p.Cycles, func(c ProgramCycle) bool { return c.ID == id })
}

func (p Program) clone() Program {
	out := p
	out.Tags = slices.Clone(p.Tags)
	if p.DayTemplates != nil {
		out.DayTemplates = make([]DayTemplate, len(p.DayTemplates))
		for i, t := range p.DayTemplates {
			out.DayTemplates[i] = t.clone()
		}
	}
	if p.Cycles != nil {
		out.Cycles = make([]ProgramCycle, len(p.Cycles))
		for i, c := range p.Cycles {
			out.Cycles[i] = c.clone()
		}
	}
	return out
}
