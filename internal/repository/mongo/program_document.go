package mongo

import (
	"fmt"
	"time"

	"alcyxob/workout-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Storage shapes of the program aggregate. The domain types carry no tags and hold
// periodicity as a sealed interface, so they are mapped through these documents.

type programDocument struct {
	ID                 primitive.ObjectID      `bson:"_id"`
	OwnerID            primitive.ObjectID      `bson:"ownerId"`
	Name               string                  `bson:"name"`
	Description        string                  `bson:"description,omitempty"`
	Type               domain.ProgramType      `bson:"type"`
	Difficulty         domain.Difficulty       `bson:"difficulty"`
	DefaultPeriodicity *domain.PeriodicitySpec `bson:"defaultPeriodicity,omitempty"`
	Tags               []string                `bson:"tags,omitempty"`
	IsDefault          bool                    `bson:"isDefault"`
	Cycles             []cycleDocument         `bson:"cycles"`
	DayTemplates       []dayTemplateDocument   `bson:"dayTemplates,omitempty"`
	CreatedAt          time.Time               `bson:"createdAt"`
	UpdatedAt          time.Time               `bson:"updatedAt"`
	Version            int64                   `bson:"version"`
}

type cycleDocument struct {
	ID                primitive.ObjectID      `bson:"_id"`
	CycleNumber       int                     `bson:"cycleNumber"`
	StartDate         time.Time               `bson:"startDate"`
	EndDate           *time.Time              `bson:"endDate,omitempty"`
	Periodicity       *domain.PeriodicitySpec `bson:"periodicity,omitempty"`
	IsActive          bool                    `bson:"isActive"`
	IsCompleted       bool                    `bson:"isCompleted"`
	ScheduledSessions []sessionDocument       `bson:"scheduledSessions"`
	Notes             string                  `bson:"notes,omitempty"`
	Metadata          map[string]string       `bson:"metadata,omitempty"`
	CreatedAt         time.Time               `bson:"createdAt"`
}

type sessionDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Date        time.Time          `bson:"date"`
	DayTemplate string             `bson:"dayTemplate,omitempty"`
	Exercises   []exerciseDocument `bson:"exercises,omitempty"`
	IsCompleted bool               `bson:"isCompleted"`
	StartedAt   *time.Time         `bson:"startedAt,omitempty"`
	CompletedAt *time.Time         `bson:"completedAt,omitempty"`
	Notes       string             `bson:"notes,omitempty"`
}

type exerciseDocument struct {
	ExerciseID string        `bson:"exerciseId"`
	Sets       []setDocument `bson:"sets,omitempty"`
	Notes      string        `bson:"notes,omitempty"`
}

type setDocument struct {
	TargetReps   int      `bson:"targetReps"`
	ActualReps   *int     `bson:"actualReps,omitempty"`
	TargetWeight float64  `bson:"targetWeight"`
	ActualWeight *float64 `bson:"actualWeight,omitempty"`
	IsCompleted  bool     `bson:"isCompleted"`
}

type dayTemplateDocument struct {
	Name        string   `bson:"name"`
	ExerciseIDs []string `bson:"exerciseIds"`
}

func toProgramDocument(p domain.Program) programDocument {
	doc := programDocument{
		ID:                 p.ID,
		OwnerID:            p.OwnerID,
		Name:               p.Name,
		Description:        p.Description,
		Type:               p.Type,
		Difficulty:         p.Difficulty,
		DefaultPeriodicity: domain.SpecOf(p.DefaultPeriodicity),
		Tags:               p.Tags,
		IsDefault:          p.IsDefault,
		Cycles:             make([]cycleDocument, len(p.Cycles)),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
		Version:            p.Version,
	}
	for _, t := range p.DayTemplates {
		doc.DayTemplates = append(doc.DayTemplates, dayTemplateDocument{Name: t.Name, ExerciseIDs: t.ExerciseIDs})
	}
	for i, c := range p.Cycles {
		cd := cycleDocument{
			ID:                c.ID,
			CycleNumber:       c.CycleNumber,
			StartDate:         c.StartDate,
			EndDate:           c.EndDate,
			Periodicity:       domain.SpecOf(c.Periodicity),
			IsActive:          c.IsActive,
			IsCompleted:       c.IsCompleted,
			ScheduledSessions: make([]sessionDocument, len(c.ScheduledSessions)),
			Notes:             c.Notes,
			Metadata:          c.Metadata,
			CreatedAt:         c.CreatedAt,
		}
		for j, s := range c.ScheduledSessions {
			cd.ScheduledSessions[j] = toSessionDocument(s)
		}
		doc.Cycles[i] = cd
	}
	return doc
}

func toSessionDocument(s domain.WorkoutSession) sessionDocument {
	sd := sessionDocument{
		ID:          s.ID,
		Date:        s.Date,
		DayTemplate: s.DayTemplate,
		IsCompleted: s.IsCompleted,
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
		Notes:       s.Notes,
	}
	for _, ex := range s.Exercises {
		ed := exerciseDocument{ExerciseID: ex.ExerciseID, Notes: ex.Notes}
		for _, set := range ex.Sets {
			ed.Sets = append(ed.Sets, setDocument(set))
		}
		sd.Exercises = append(sd.Exercises, ed)
	}
	return sd
}

// toDomain rebuilds the aggregate. Cycle and session parent ids are derived from nesting.
func (d programDocument) toDomain() (domain.Program, error) {
	def, err := d.DefaultPeriodicity.Build()
	if err != nil {
		return domain.Program{}, fmt.Errorf("program %s default periodicity: %w", d.ID.Hex(), err)
	}
	p := domain.Program{
		ID:                 d.ID,
		OwnerID:            d.OwnerID,
		Name:               d.Name,
		Description:        d.Description,
		Type:               d.Type,
		Difficulty:         d.Difficulty,
		DefaultPeriodicity: def,
		Tags:               d.Tags,
		IsDefault:          d.IsDefault,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
		Version:            d.Version,
	}
	for _, t := range d.DayTemplates {
		p.DayTemplates = append(p.DayTemplates, domain.DayTemplate{Name: t.Name, ExerciseIDs: t.ExerciseIDs})
	}
	for _, cd := range d.Cycles {
		rule, err := cd.Periodicity.Build()
		if err != nil {
			return domain.Program{}, fmt.Errorf("program %s cycle #%d periodicity: %w", d.ID.Hex(), cd.CycleNumber, err)
		}
		c := domain.ProgramCycle{
			ID:          cd.ID,
			ProgramID:   d.ID,
			CycleNumber: cd.CycleNumber,
			StartDate:   cd.StartDate.UTC(),
			EndDate:     utcPtr(cd.EndDate),
			Periodicity: rule,
			IsActive:    cd.IsActive,
			IsCompleted: cd.IsCompleted,
			Notes:       cd.Notes,
			Metadata:    cd.Metadata,
			CreatedAt:   cd.CreatedAt,
		}
		for _, sd := range cd.ScheduledSessions {
			s := domain.WorkoutSession{
				ID:          sd.ID,
				ProgramID:   d.ID,
				CycleID:     cd.ID,
				Date:        sd.Date.UTC(),
				DayTemplate: sd.DayTemplate,
				IsCompleted: sd.IsCompleted,
				StartedAt:   sd.StartedAt,
				CompletedAt: sd.CompletedAt,
				Notes:       sd.Notes,
			}
			for _, ed := range sd.Exercises {
				ex := domain.WorkoutExercise{ExerciseID: ed.ExerciseID, Notes: ed.Notes}
				for _, set := range ed.Sets {
					ex.Sets = append(ex.Sets, domain.ExerciseSet(set))
				}
				s.Exercises = append(s.Exercises, ex)
			}
			c.ScheduledSessions = append(c.ScheduledSessions, s)
		}
		p.Cycles = append(p.Cycles, c)
	}
	return p, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
