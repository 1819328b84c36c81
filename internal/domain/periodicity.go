package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"go.uber.org/multierr"
)

// PeriodicityKind names a Periodicity variant.
type PeriodicityKind string

const (
	KindWeekly   PeriodicityKind = "weekly"
	KindCyclic   PeriodicityKind = "cyclic"
	KindInterval PeriodicityKind = "interval"
	KindCustom   PeriodicityKind = "custom"
)

// Periodicity is the recurrence rule deciding which calendar days are workout days.
// The set of implementations is closed: Weekly, Cyclic, Interval and Custom.
type Periodicity interface {
	Kind() PeriodicityKind
	sealed()
}

// Weekly expects a workout on a fixed set of ISO weekdays (1 = Monday … 7 = Sunday).
type Weekly struct {
	days []int
}

// NewWeekly builds a Weekly rule. Duplicate days collapse; the set must be non-empty.
func NewWeekly(days ...int) (Weekly, error) {
	if len(days) == 0 {
		return Weekly{}, &ValidationError{Field: "daysOfWeek", Reason: "at least one weekday is required"}
	}
	var errs error
	for _, d := range days {
		if d < 1 || d > 7 {
			errs = multierr.Append(errs, &ValidationError{Field: "daysOfWeek", Reason: fmt.Sprintf("weekday %d is outside 1..7", d)})
		}
	}
	if errs != nil {
		return Weekly{}, errs
	}
	sorted := slices.Clone(days)
	slices.Sort(sorted)
	return Weekly{days: slices.Compact(sorted)}, nil
}

func (Weekly) Kind() PeriodicityKind { return KindWeekly }
func (Weekly) sealed()               {}

// Days returns the ISO weekdays in ascending order.
func (w Weekly) Days() []int { return slices.Clone(w.days) }

// Cyclic repeats a block of WorkoutDays training days followed by RestDays rest days,
// counted from the cycle start.
type Cyclic struct {
	workoutDays int
	restDays    int
}

func NewCyclic(workoutDays, restDays int) (Cyclic, error) {
	var errs error
	if workoutDays <= 0 {
		errs = multierr.Append(errs, &ValidationError{Field: "workoutDays", Reason: "must be positive"})
	}
	if restDays < 0 {
		errs = multierr.Append(errs, &ValidationError{Field: "restDays", Reason: "must not be negative"})
	}
	if errs != nil {
		return Cyclic{}, errs
	}
	return Cyclic{workoutDays: workoutDays, restDays: restDays}, nil
}

func (Cyclic) Kind() PeriodicityKind { return KindCyclic }
func (Cyclic) sealed()               {}

func (c Cyclic) WorkoutDays() int { return c.workoutDays }
func (c Cyclic) RestDays() int    { return c.restDays }

// Interval expects a workout every N days starting with the cycle start day.
type Interval struct {
	everyNDays int
}

func NewInterval(everyNDays int) (Interval, error) {
	if everyNDays <= 0 {
		return Interval{}, &ValidationError{Field: "everyNDays", Reason: "must be positive"}
	}
	return Interval{everyNDays: everyNDays}, nil
}

func (Interval) Kind() PeriodicityKind { return KindInterval }
func (Interval) sealed()               {}

func (i Interval) EveryNDays() int { return i.everyNDays }

// Custom carries opaque scheduling metadata. It cannot be evaluated;
// callers schedule these programs manually.
type Custom struct {
	data map[string]any
}

func NewCustom(data map[string]any) Custom {
	return Custom{data: maps.Clone(data)}
}

func (Custom) Kind() PeriodicityKind { return KindCustom }
func (Custom) sealed()               {}

func (c Custom) Data() map[string]any { return maps.Clone(c.data) }

// IsWorkoutExpected reports whether candidate is a workout day for rule, with day offsets
// counted from referenceStart. Candidates before the start are allowed.
// A Custom rule returns ErrUnsupportedPeriodicity.
func IsWorkoutExpected(rule Periodicity, referenceStart, candidate time.Time) (bool, error) {
	switch r := rule.(type) {
	case Weekly:
		return slices.Contains(r.days, isoWeekday(Day(candidate))), nil
	case Cyclic:
		offset := floorMod(DaysBetween(referenceStart, candidate), r.workoutDays+r.restDays)
		return offset < r.workoutDays, nil
	case Interval:
		return floorMod(DaysBetween(referenceStart, candidate), r.everyNDays) == 0, nil
	case Custom:
		return false, ErrUnsupportedPeriodicity
	case nil:
		return false, &ValidationError{Field: "periodicity", Reason: "no rule given"}
	default:
		panic(fmt.Sprintf("domain: unknown periodicity %T", rule))
	}
}

var weekdayNames = [...]string{1: "Mon", 2: "Tue", 3: "Wed", 4: "Thu", 5: "Fri", 6: "Sat", 7: "Sun"}

// Describe returns a human-readable summary such as "Every Mon, Wed, Fri".
func Describe(rule Periodicity) string {
	switch r := rule.(type) {
	case Weekly:
		if len(r.days) == 7 {
			return "Every day"
		}
		names := make([]string, len(r.days))
		for i, d := range r.days {
			names[i] = weekdayNames[d]
		}
		return "Every " + strings.Join(names, ", ")
	case Cyclic:
		if r.restDays == 0 {
			return "Every day"
		}
		return fmt.Sprintf("%s on, %s off", plural(r.workoutDays, "day"), plural(r.restDays, "day"))
	case Interval:
		if r.everyNDays == 1 {
			return "Every day"
		}
		return fmt.Sprintf("Every %d days", r.everyNDays)
	case Custom:
		if desc, ok := r.data["description"].(string); ok && desc != "" {
			return desc
		}
		return "Custom schedule"
	case nil:
		return "No schedule"
	default:
		panic(fmt.Sprintf("domain: unknown periodicity %T", rule))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// PeriodicitySpec is the flat, portable form of a Periodicity used by storage,
// transport and the template catalog.
type PeriodicitySpec struct {
	Kind        PeriodicityKind `bson:"kind" json:"kind" toml:"kind"`
	Days        []int           `bson:"days,omitempty" json:"days,omitempty" toml:"days"`
	WorkoutDays int             `bson:"workoutDays,omitempty" json:"workoutDays,omitempty" toml:"workout_days"`
	RestDays    int             `bson:"restDays,omitempty" json:"restDays,omitempty" toml:"rest_days"`
	EveryNDays  int             `bson:"everyNDays,omitempty" json:"everyNDays,omitempty" toml:"every_n_days"`
	Data        map[string]any  `bson:"data,omitempty" json:"data,omitempty" toml:"data"`
}

// SpecOf flattens rule. A nil rule yields a nil spec.
func SpecOf(rule Periodicity) *PeriodicitySpec {
	switch r := rule.(type) {
	case nil:
		return nil
	case Weekly:
		return &PeriodicitySpec{Kind: KindWeekly, Days: r.Days()}
	case Cyclic:
		return &PeriodicitySpec{Kind: KindCyclic, WorkoutDays: r.workoutDays, RestDays: r.restDays}
	case Interval:
		return &PeriodicitySpec{Kind: KindInterval, EveryNDays: r.everyNDays}
	case Custom:
		return &PeriodicitySpec{Kind: KindCustom, Data: r.Data()}
	default:
		panic(fmt.Sprintf("domain: unknown periodicity %T", rule))
	}
}

// Build validates the spec and returns the matching rule. A nil spec yields a nil rule.
func (s *PeriodicitySpec) Build() (Periodicity, error) {
	if s == nil {
		return nil, nil
	}
	switch s.Kind {
	case KindWeekly:
		return NewWeekly(s.Days...)
	case KindCyclic:
		return NewCyclic(s.WorkoutDays, s.RestDays)
	case KindInterval:
		return NewInterval(s.EveryNDays)
	case KindCustom:
		return NewCustom(s.Data), nil
	default:
		return nil, &ValidationError{Field: "periodicity.kind", Reason: fmt.Sprintf("unknown kind %q", s.Kind)}
	}
}
