package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	exportContentType  = "application/zip"
	exportProgramsFile = "programs.json"
	exportSessionsFile = "sessions.csv"
)

var sessionsCSVHeader = []string{
	"program", "cycle_number", "date", "session_id", "completed",
	"exercise_id", "set", "target_reps", "actual_reps", "target_weight", "actual_weight", "set_completed",
}

// Export describes an uploaded backup archive.
type Export struct {
	ObjectKey string    `json:"-"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
	Programs  int       `json:"programs"`
	Sets      int       `json:"sets"`
}

type ExportService interface {
	// CreateExport archives all of the owner's programs and returns a download link.
	CreateExport(ctx context.Context, ownerID primitive.ObjectID) (*Export, error)
}

type exportService struct {
	programRepo repository.ProgramRepository
	fileStorage storage.FileStorage
	metrics     *metrics.Manager
	urlExpiry   time.Duration
	now         func() time.Time
}

func NewExportService(
	programRepo repository.ProgramRepository,
	fileStorage storage.FileStorage,
	metricsManager *metrics.Manager,
	urlExpiry time.Duration,
	now func() time.Time,
) ExportService {
	if urlExpiry <= 0 {
		urlExpiry = storage.DefaultPresignedURLExpiry
	}
	return &exportService{
		programRepo: programRepo,
		fileStorage: fileStorage,
		metrics:     metricsManager,
		urlExpiry:   urlExpiry,
		now:         now,
	}
}

func (s *exportService) CreateExport(ctx context.Context, ownerID primitive.ObjectID) (*Export, error) {
	timer := prometheus.NewTimer(s.metrics.HistExportDuration)
	defer timer.ObserveDuration()

	programs, err := s.programRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}

	var buf bytes.Buffer
	sets, err := writeArchive(&buf, programs, s.now())
	if err != nil {
		return nil, fmt.Errorf("build archive: %w", err)
	}

	key := storage.ObjectKey("exports", ownerID.Hex(), ".zip")
	size := int64(buf.Len())
	if err := s.fileStorage.PutObject(ctx, key, exportContentType, &buf, size); err != nil {
		return nil, fmt.Errorf("upload archive: %w", err)
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, key, s.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign archive: %w", err)
	}

	s.metrics.CounterExports.Inc()
	log.WithFields(log.Fields{
		"ownerId":  ownerID.Hex(),
		"key":      key,
		"programs": len(programs),
		"sets":     sets,
		"bytes":    size,
	}).Info("backup export created")

	return &Export{
		ObjectKey: key,
		URL:       url,
		ExpiresAt: s.now().Add(s.urlExpiry).UTC(),
		Programs:  len(programs),
		Sets:      sets,
	}, nil
}

// --- Archive format ---

type archiveFile struct {
	ExportedAt time.Time        `json:"exportedAt"`
	Programs   []archiveProgram `json:"programs"`
}

type archiveProgram struct {
	ID                 string                  `json:"id"`
	Name               string                  `json:"name"`
	Description        string                  `json:"description,omitempty"`
	Type               domain.ProgramType      `json:"type"`
	Difficulty         domain.Difficulty       `json:"difficulty"`
	DefaultPeriodicity *domain.PeriodicitySpec `json:"defaultPeriodicity,omitempty"`
	Tags               []string                `json:"tags,omitempty"`
	DayTemplates       []archiveDayTemplate    `json:"dayTemplates,omitempty"`
	Cycles             []archiveCycle          `json:"cycles"`
	CreatedAt          time.Time               `json:"createdAt"`
}

type archiveDayTemplate struct {
	Name        string   `json:"name"`
	ExerciseIDs []string `json:"exerciseIds"`
}

type archiveCycle struct {
	CycleNumber int                     `json:"cycleNumber"`
	StartDate   string                  `json:"startDate"`
	EndDate     string                  `json:"endDate,omitempty"`
	Periodicity *domain.PeriodicitySpec `json:"periodicity,omitempty"`
	IsActive    bool                    `json:"isActive"`
	IsCompleted bool                    `json:"isCompleted"`
	Notes       string                  `json:"notes,omitempty"`
	Sessions    int                     `json:"sessions"`
	Completion  float64                 `json:"completion"`
}

func toArchiveProgram(p domain.Program) archiveProgram {
	out := archiveProgram{
		ID:                 p.ID.Hex(),
		Name:               p.Name,
		Description:        p.Description,
		Type:               p.Type,
		Difficulty:         p.Difficulty,
		DefaultPeriodicity: domain.SpecOf(p.DefaultPeriodicity),
		Tags:               p.Tags,
		Cycles:             make([]archiveCycle, 0, len(p.Cycles)),
		CreatedAt:          p.CreatedAt.UTC(),
	}
	for _, t := range p.DayTemplates {
		out.DayTemplates = append(out.DayTemplates, archiveDayTemplate{Name: t.Name, ExerciseIDs: t.ExerciseIDs})
	}
	for _, c := range p.Cycles {
		ac := archiveCycle{
			CycleNumber: c.CycleNumber,
			StartDate:   c.StartDate.Format(domain.DateLayout),
			Periodicity: domain.SpecOf(c.Periodicity),
			IsActive:    c.IsActive,
			IsCompleted: c.IsCompleted,
			Notes:       c.Notes,
			Sessions:    len(c.ScheduledSessions),
			Completion:  c.CompletionPercentage(),
		}
		if c.EndDate != nil {
			ac.EndDate = c.EndDate.Format(domain.DateLayout)
		}
		out.Cycles = append(out.Cycles, ac)
	}
	return out
}

// writeArchive writes the zip into w and returns the number of set rows in sessions.csv.
func writeArchive(w *bytes.Buffer, programs []domain.Program, now time.Time) (int, error) {
	zw := zip.NewWriter(w)

	doc := archiveFile{ExportedAt: now.UTC(), Programs: make([]archiveProgram, 0, len(programs))}
	for _, p := range programs {
		doc.Programs = append(doc.Programs, toArchiveProgram(p))
	}
	pw, err := zw.CreateHeader(&zip.FileHeader{Name: exportProgramsFile, Method: zip.Deflate, Modified: now})
	if err != nil {
		return 0, err
	}
	enc := json.NewEncoder(pw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return 0, fmt.Errorf("encode %s: %w", exportProgramsFile, err)
	}

	sw, err := zw.CreateHeader(&zip.FileHeader{Name: exportSessionsFile, Method: zip.Deflate, Modified: now})
	if err != nil {
		return 0, err
	}
	rows, err := writeSessionsCSV(csv.NewWriter(sw), programs)
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", exportSessionsFile, err)
	}

	if err := zw.Close(); err != nil {
		return 0, err
	}
	return rows, nil
}

func writeSessionsCSV(cw *csv.Writer, programs []domain.Program) (int, error) {
	if err := cw.Write(sessionsCSVHeader); err != nil {
		return 0, err
	}
	rows := 0
	for _, p := range programs {
		for _, c := range p.Cycles {
			for _, sess := range c.ScheduledSessions {
				for _, ex := range sess.Exercises {
					for i, set := range ex.Sets {
						record := []string{
							p.Name,
							strconv.Itoa(c.CycleNumber),
							sess.Date.Format(domain.DateLayout),
							sess.ID.Hex(),
							strconv.FormatBool(sess.IsCompleted),
							ex.ExerciseID,
							strconv.Itoa(i + 1),
							strconv.Itoa(set.TargetReps),
							optionalInt(set.ActualReps),
							formatWeight(set.TargetWeight),
							optionalWeight(set.ActualWeight),
							strconv.FormatBool(set.IsCompleted),
						}
						if err := cw.Write(record); err != nil {
							return rows, err
						}
						rows++
					}
				}
			}
		}
	}
	cw.Flush()
	return rows, cw.Error()
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optionalWeight(v *float64) string {
	if v == nil {
		return ""
	}
	return formatWeight(*v)
}
