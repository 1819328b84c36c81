package domain

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseSet is one planned or performed set.
type ExerciseSet struct {
	TargetReps   int
	ActualReps   *int
	TargetWeight float64 // kg
	ActualWeight *float64
	IsCompleted  bool
}

// WorkoutExercise is one exercise inside a session.
type WorkoutExercise struct {
	ExerciseID string // opaque reference into the exercise library or catalog
	Sets       []ExerciseSet
	Notes      string
}

// WorkoutSession is a concrete dated workout occurrence of a cycle.
type WorkoutSession struct {
	ID          primitive.ObjectID
	ProgramID   primitive.ObjectID
	CycleID     primitive.ObjectID
	Date        time.Time
	DayTemplate string // name of the day template it was generated from, if any
	Exercises   []WorkoutExercise
	IsCompleted bool
	StartedAt   *time.Time
	CompletedAt *time.Time
	Notes       string
}

// DayTemplate is a reusable named workout day: an ordered list of exercise ids.
type DayTemplate struct {
	Name        string
	ExerciseIDs []string
}

// NewScheduledSession creates a fresh session for date. When template is non-nil the
// session is pre-filled with the template's exercises (without sets).
func NewScheduledSession(programID, cycleID primitive.ObjectID, date time.Time, template *DayTemplate) WorkoutSession {
	s := WorkoutSession{
		ID:        primitive.NewObjectID(),
		ProgramID: programID,
		CycleID:   cycleID,
		Date:      Day(date),
	}
	if template != nil {
		s.DayTemplate = template.Name
		s.Exercises = make([]WorkoutExercise, len(template.ExerciseIDs))
		for i, id := range template.ExerciseIDs {
			s.Exercises[i] = WorkoutExercise{ExerciseID: id}
		}
	}
	return s
}

// Volume is the sum of reps × weight over completed sets with recorded actuals.
func (s WorkoutSession) Volume() float64 {
	var total float64
	for _, ex := range s.Exercises {
		for _, set := range ex.Sets {
			if !set.IsCompleted || set.ActualReps == nil || set.ActualWeight == nil {
				continue
			}
			total += float64(*set.ActualReps) * *set.ActualWeight
		}
	}
	return total
}

// clone returns a deep copy so that later edits never alias the original.
func (s WorkoutSession) clone() WorkoutSession {
	out := s
	out.Exercises = make([]WorkoutExercise, len(s.Exercises))
	for i, ex := range s.Exercises {
		ex.Sets = slices.Clone(ex.Sets)
		for j := range ex.Sets {
			if r := ex.Sets[j].ActualReps; r != nil {
				v := *r
				ex.Sets[j].ActualReps = &v
			}
			if w := ex.Sets[j].ActualWeight; w != nil {
				v := *w
				ex.Sets[j].ActualWeight = &v
			}
		}
		out.Exercises[i] = ex
	}
	if s.Exercises == nil {
		out.Exercises = nil
	}
	out.StartedAt = cloneTime(s.StartedAt)
	out.CompletedAt = cloneTime(s.CompletedAt)
	return out
}

func (t DayTemplate) clone() DayTemplate {
	t.ExerciseIDs = slices.Clone(t.ExerciseIDs)
	return t
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
