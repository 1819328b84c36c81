package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alcyxob/workout-tracker/internal/cache"
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProgramNotFound    = errors.New("program not found")
	ErrTemplateNotFound   = errors.New("template not found")
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrNoUpcomingSession  = errors.New("no upcoming session")
	ErrConcurrentUpdate   = errors.New("program was modified concurrently, please retry")
	ErrTemplateNameExists = errors.New("a template with this name already exists")
)

// maxWriteAttempts bounds the read-modify-write retries on version conflicts.
const maxWriteAttempts = 3

// ScheduledDay is one calendar day of a program's schedule.
type ScheduledDay struct {
	Date        time.Time           `json:"date"`
	Expected    bool                `json:"expected"`
	CycleID     *primitive.ObjectID `json:"cycleId,omitempty"`
	CycleNumber int                 `json:"cycleNumber,omitempty"`
	SessionID   *primitive.ObjectID `json:"sessionId,omitempty"`
	Completed   bool                `json:"completed"`
}

type ProgramService interface {
	// --- Programs and templates ---
	CreateProgram(ctx context.Context, ownerID primitive.ObjectID, params domain.ProgramParams) (*domain.Program, error)
	ListPrograms(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Program, error)
	GetProgram(ctx context.Context, ownerID, programID primitive.ObjectID) (*domain.Program, error)
	DeleteProgram(ctx context.Context, ownerID, programID primitive.ObjectID) error
	ListTemplates(ctx context.Context) ([]domain.Program, error)
	PublishTemplate(ctx context.Context, params domain.ProgramParams) (*domain.Program, error)
	CloneTemplate(ctx context.Context, ownerID, templateID primitive.ObjectID) (*domain.Program, error)
	SeedTemplates(ctx context.Context, templates []domain.Program) (int, error)

	// --- Cycles ---
	CreateCycle(ctx context.Context, ownerID, programID primitive.ObjectID, start time.Time, opts domain.CycleOptions) (*domain.Program, error)
	ActivateCycle(ctx context.Context, ownerID, programID, cycleID primitive.ObjectID) (*domain.Program, error)
	DeactivateCycle(ctx context.Context, ownerID, programID, cycleID primitive.ObjectID) (*domain.Program, error)
	CompleteCurrentCycle(ctx context.Context, ownerID, programID primitive.ObjectID) (*domain.Program, error)
	RefreshCycleActivation(ctx context.Context, ownerID, programID primitive.ObjectID) (*domain.Program, error)
	ActivatableCycles(ctx context.Context, ownerID, programID primitive.ObjectID, date time.Time) ([]domain.ProgramCycle, error)

	// --- Schedule and sessions ---
	IsWorkoutExpected(ctx context.Context, ownerID, programID primitive.ObjectID, date time.Time) (bool, error)
	Schedule(ctx context.Context, ownerID, programID primitive.ObjectID, from, to time.Time) ([]ScheduledDay, error)
	NextSession(ctx context.Context, ownerID, programID primitive.ObjectID, from time.Time) (*domain.WorkoutSession, error)
	LogSession(ctx context.Context, ownerID, programID, cycleID primitive.ObjectID, session domain.WorkoutSession) (*domain.WorkoutSession, error)
}

// programService implements ProgramService. Every mutation is a read-modify-write of the
// whole aggregate guarded by the repository's version check.
type programService struct {
	programRepo   repository.ProgramRepository
	scheduleCache cache.Cache
	metrics       *metrics.Manager
	maxRangeDays  int
	now           func() time.Time
}

// NewProgramService creates a new instance of programService. now is the clock used for
// activation decisions; pass time.Now outside tests.
func NewProgramService(
	programRepo repository.ProgramRepository,
	scheduleCache cache.Cache,
	metricsManager *metrics.Manager,
	maxRangeDays int,
	now func() time.Time,
) ProgramService {
	return &programService{
		programRepo:   programRepo,
		scheduleCache: scheduleCache,
		metrics:       metricsManager,
		maxRangeDays:  maxRangeDays,
		now:           now,
	}
}

// --- Programs and templates ---

func (s *programService) CreateProgram(ctx context.Context, ownerID primitive.ObjectID, params domain.ProgramParams) (*domain.Program, error) {
	params.OwnerID = ownerID
	params.IsDefault = false
	params.CreatedAt = s.now()
	program, err := domain.NewProgram(params)
	if err != nil {
		return nil, err
	}
	if err := s.programRepo.Create(ctx, &program); err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	log.WithFields(log.Fields{"programId": program.ID.Hex(), "ownerId": ownerID.Hex()}).Info("program created")
	return &program, nil
}

func (s *programService) ListPrograms(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Program, error) {
	programs, err := s.programRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

// GetProgram returns one of the owner's programs or a built-in template.
func (s *programService) GetProgram(ctx context.Context, ownerID, programID primitive.ObjectID) (*domain.Program, error) {
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("get program: %w", err)
	}
	if program.OwnerID != ownerID && !program.IsDefault {
		return nil, ErrProgramNotFound
	}
	return program, nil
}

func (s *programService) DeleteProgram(ctx context.Context, ownerID, programID primitive.ObjectID) error {
	if err := s.programRepo.Delete(ctx, programID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return fmt.Errorf("delete program: %w", err)
	}
	return nil
}

func (s *programService) ListTemplates(ctx context.Context) ([]domain.Program, error) {
	templates, err := s.programRepo.GetDefaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

// PublishTemplate stores a new built-in template. Templates have no owner and no cycles.
func (s *programService) PublishTemplate(ctx context.Context, params domain.ProgramParams) (*domain.Program, error) {
	params.OwnerID = primitive.NilObjectID
	params.IsDefault = true
	params.CreatedAt = s.now()
	template, err := domain.NewProgram(params)
	if err != nil {
		return nil, err
	}
	if err := s.programRepo.Create(ctx, &template); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrTemplateNameExists
		}
		return nil, fmt.Errorf("create template: %w", err)
	}
	log.WithFields(log.Fields{"templateId": template.ID.Hex(), "name": template.Name}).Info("template published")
	return &template, nil
}

// CloneTemplate copies a built-in template into a new program owned by ownerID.
func (s *programService) CloneTemplate(ctx context.Context, ownerID, templateID primitive.ObjectID) (*domain.Program, error) {
	template, err := s.programRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	if !template.IsDefault {
		return nil, ErrTemplateNotFound
	}

	program := template.Instantiate(ownerID, s.now())
	if err := s.programRepo.Create(ctx, &program); err != nil {
		return nil, fmt.Errorf("create program from template: %w", err)
	}
	log.WithFields(log.Fields{
		"templateId": templateID.Hex(),
		"programId":  program.ID.Hex(),
		"ownerId":    ownerID.Hex(),
	}).Info("template cloned")
	return &program, nil
}

// SeedTemplates stores the templates whose names are not taken yet and returns how many
// were inserted. Running it again is a no-op.
func (s *programService) SeedTemplates(ctx context.Context, templates []domain.Program) (int, error) {
	existing, err := s.programRepo.GetDefaults(ctx)
	if err != nil {
		return 0, fmt.Errorf("list templates: %w", err)
	}
	taken := make(map[string]bool, len(existing))
	for _, t := range existing {
		taken[t.Name] = true
	}

	inserted := 0
	for _, t := range templates {
		if taken[t.Name] {
			continue
		}
		t.IsDefault = true
		t.OwnerID = primitive.NilObjectID
		if err := s.programRepo.Create(ctx, &t); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return inserted, fmt.Errorf("seed template %q: %w", t.Name, err)
		}
		taken[t.Name] = true
		inserted++
	}
	return inserted, nil
}

// --- Cycles ---

// CreateCycle appends a cycle with generated sessions.
func (s *programService) CreateCycle(ctx context.Context, ownerID, programID primitive.ObjectID, start time.Time, opts domain.CycleOptions) (*domain.Program, error) {
	program, err := s.mutate(ctx, ownerID, programID, "create cycle", func(p domain.Program, now time.Time) (domain.Program, error) {
		return p.CreateCycle(start, opts, now)
	})
	if err != nil {
		if errors.Is(err, domain.ErrCycleOverlap) {
			s.metrics.CounterCycleOverlaps.Inc()
		}
		return nil, err
	}

	created := program.Cycles[len(program.Cycles)-1]
	s.metrics.CounterCyclesCreated.Inc()
	s.metrics.CounterSessionsGenerated.Add(float64(len(created.ScheduledSessions)))
	log.WithFields(log.Fields{
		"programId":   programID.Hex(),
		"cycleNumber": created.CycleNumber,
		"sessions":    len(created.ScheduledSessions),
		"active":      created.IsActive,
	}).Info("cycle created")
	return program, nil
}

func (s *programService) ActivateCycle(ctx context.Context, ownerID, programID, cycleID primitive.ObjectID) (*domain.Program, error) {
	return s.mutate(ctx, ownerID, programID, "activate cycle", func(p domain.Program, now time.Time) (domain.Program, error) {
		return p.ActivateCycle(cycleID, now)
	})
}

func (s *programService) DeactivateCycle(ctx context.Context, ownerID, programID, cycleID primitive.ObjectID) (*domain.Program, error) {
	return s.mutate(ctx, ownerID, programID, "deactivate cycle", func(p domain.Program, _ time.Time) (domain.Program, error) {
		return p.DeactivateCycle(cycleID)
	})
}

func (s *programService) CompleteCurrentCycle(ctx context.Context, ownerID, programID primitive.ObjectID) (*domain.Program, error) {
	return s.mutate(ctx, ownerID, programID, "complete cycle", func(p domain.Program, _ time.Time) (domain.Program, error) {
		return p.CompleteCurrentCycle(), nil
	})
}

func (s *programService) RefreshCycleActivation(ctx context.Context, ownerID, programID primitive.ObjectID) (*domain.Program, error) {
	return s.mutate(ctx, ownerID, programID, "refresh activation", func(p domain.Program, now time.Time) (domain.Program, error) {
		return p.RefreshCycleActivation(now), nil
	})
}

// ActivatableCycles lists the cycles that could be activated on date (today when zero).
func (s *programService) ActivatableCycles(ctx context.Context, ownerID, programID primitive.ObjectID, date time.Time) ([]domain.ProgramCycle, error) {
	program, err := s.GetProgram(ctx, ownerID, programID)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = s.now()
	}
	return program.ActivatableCycles(date), nil
}

// --- Schedule and sessions ---

func (s *programService) IsWorkoutExpected(ctx context.Context, ownerID, programID primitive.ObjectID, date time.Time) (bool, error) {
	program, err := s.GetProgram(ctx, ownerID, programID)
	if err != nil {
		return false, err
	}
	return program.IsWorkoutExpectedOn(date)
}

// Schedule lists every day of [from, to] with its expectation and scheduled session.
// Results are cached per program version, so any write invalidates them.
func (s *programService) Schedule(ctx context.Context, ownerID, programID primitive.ObjectID, from, to time.Time) ([]ScheduledDay, error) {
	from, to = domain.Day(from), domain.Day(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidDateRange)
	}
	if days := domain.DaysBetween(from, to) + 1; days > s.maxRangeDays {
		return nil, fmt.Errorf("%w: %d days requested, at most %d allowed", ErrInvalidDateRange, days, s.maxRangeDays)
	}

	program, err := s.GetProgram(ctx, ownerID, programID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("schedule:%s:%d:%s:%s", program.ID.Hex(), program.Version, from.Format(domain.DateLayout), to.Format(domain.DateLayout))
	var cached cachedSchedule
	hit, err := s.scheduleCache.Get(key, &cached)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("schedule cache read failed")
	}
	if hit {
		s.metrics.CounterScheduleCache.WithLabelValues("hit").Inc()
		return cached.expand(from), nil
	}
	s.metrics.CounterScheduleCache.WithLabelValues("miss").Inc()

	days, err := buildSchedule(*program, from, to)
	if err != nil {
		return nil, err
	}
	if err := s.scheduleCache.Set(key, compactSchedule(days)); err != nil {
		log.WithError(err).WithField("key", key).Warn("schedule cache write failed")
	}
	return days, nil
}

func buildSchedule(program domain.Program, from, to time.Time) ([]ScheduledDay, error) {
	sessionsByDay := make(map[time.Time]domain.WorkoutSession)
	for _, c := range program.Cycles {
		for _, sess := range c.ScheduledSessions {
			sessionsByDay[sess.Date] = sess
		}
	}

	days := make([]ScheduledDay, 0, domain.DaysBetween(from, to)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		day := ScheduledDay{Date: d}
		if c, ok := program.CycleOn(d); ok {
			cycleID := c.ID
			day.CycleID = &cycleID
			day.CycleNumber = c.CycleNumber
			expected, err := program.IsWorkoutExpectedOn(d)
			// Custom cycles have no computable rhythm; their days are simply not expected.
			if err != nil && !errors.Is(err, domain.ErrUnsupportedPeriodicity) {
				return nil, err
			}
			day.Expected = expected
		}
		if sess, ok := sessionsByDay[d]; ok {
			sessionID := sess.ID
			day.SessionID = &sessionID
			day.Completed = sess.IsCompleted
		}
		days = append(days, day)
	}
	return days, nil
}

// NextSession returns the first open session on or after from in the active cycle, or in
// the cycle containing from when none is active.
func (s *programService) NextSession(ctx context.Context, ownerID, programID primitive.ObjectID, from time.Time) (*domain.WorkoutSession, error) {
	program, err := s.GetProgram(ctx, ownerID, programID)
	if err != nil {
		return nil, err
	}
	if from.IsZero() {
		from = s.now()
	}
	cycle, ok := program.ActiveCycle()
	if !ok {
		cycle, ok = program.CycleOn(from)
	}
	if !ok {
		return nil, ErrNoUpcomingSession
	}
	next, ok := cycle.NextScheduledSession(from)
	if !ok {
		return nil, ErrNoUpcomingSession
	}
	return &next, nil
}

// LogSession records the performed work of a scheduled session.
func (s *programService) LogSession(ctx context.Context, ownerID, programID, cycleID primitive.ObjectID, session domain.WorkoutSession) (*domain.WorkoutSession, error) {
	program, err := s.mutate(ctx, ownerID, programID, "log session", func(p domain.Program, now time.Time) (domain.Program, error) {
		if session.IsCompleted && session.CompletedAt == nil {
			session.CompletedAt = &now
		}
		return p.LogSession(cycleID, session)
	})
	if err != nil {
		return nil, err
	}

	cycle, _ := program.CycleByID(cycleID)
	logged, _ := cycle.SessionByID(session.ID)
	s.metrics.CounterSessionsLogged.Inc()
	log.WithFields(log.Fields{
		"programId": programID.Hex(),
		"sessionId": session.ID.Hex(),
		"completed": logged.IsCompleted,
		"volume":    logged.Volume(),
	}).Info("session logged")
	return &logged, nil
}

// mutate loads the owner's program, applies fn and writes the result back, retrying the
// whole sequence when another writer got there first.
func (s *programService) mutate(
	ctx context.Context,
	ownerID, programID primitive.ObjectID,
	op string,
	fn func(p domain.Program, now time.Time) (domain.Program, error),
) (*domain.Program, error) {
	for attempt := 1; ; attempt++ {
		current, err := s.programRepo.GetByID(ctx, programID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrProgramNotFound
			}
			return nil, fmt.Errorf("%s: get program: %w", op, err)
		}
		// Templates are read-only; they are changed by cloning.
		if current.OwnerID != ownerID || current.IsDefault {
			return nil, ErrProgramNotFound
		}

		now := s.now()
		next, err := fn(*current, now)
		if err != nil {
			return nil, err
		}
		next.UpdatedAt = now

		err = s.programRepo.Replace(ctx, &next)
		if err == nil {
			return &next, nil
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		if !errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s: replace program: %w", op, err)
		}
		if attempt == maxWriteAttempts {
			return nil, ErrConcurrentUpdate
		}
		log.WithFields(log.Fields{"programId": programID.Hex(), "op": op, "attempt": attempt}).Warn("version conflict, retrying")
	}
}
