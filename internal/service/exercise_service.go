package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExerciseAccessDenied = errors.New("access denied to modify or delete this exercise")
	ErrValidationFailed     = errors.New("exercise validation failed: name is required")
)

// ExerciseInput carries the editable fields of an exercise.
type ExerciseInput struct {
	Name         string
	Description  string
	MuscleGroup  string
	Equipment    string
	IsBodyweight bool
}

type ExerciseService interface {
	CreateExercise(ctx context.Context, ownerID primitive.ObjectID, in ExerciseInput) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, ownerID, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	GetExercisesByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, ownerID, exerciseID primitive.ObjectID, in ExerciseInput) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, ownerID, exerciseID primitive.ObjectID) error
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// CreateExercise adds an exercise to the owner's library.
func (s *exerciseService) CreateExercise(ctx context.Context, ownerID primitive.ObjectID, in ExerciseInput) (*domain.Exercise, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrValidationFailed
	}

	exercise := &domain.Exercise{
		OwnerID:      ownerID,
		Name:         in.Name,
		Description:  in.Description,
		MuscleGroup:  in.MuscleGroup,
		Equipment:    in.Equipment,
		IsBodyweight: in.IsBodyweight,
	}
	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, fmt.Errorf("create exercise: %w", err)
	}
	return exercise, nil
}

// GetExerciseByID retrieves one of the owner's exercises.
func (s *exerciseService) GetExerciseByID(ctx context.Context, ownerID, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	if exercise.OwnerID != ownerID {
		return nil, ErrExerciseNotFound
	}
	return exercise, nil
}

// GetExercisesByOwner lists the owner's library. An empty library is an empty slice.
func (s *exerciseService) GetExercisesByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// UpdateExercise overwrites the editable fields, ensuring ownership.
func (s *exerciseService) UpdateExercise(ctx context.Context, ownerID, exerciseID primitive.ObjectID, in ExerciseInput) (*domain.Exercise, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrValidationFailed
	}

	existing, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	if existing.OwnerID != ownerID {
		return nil, ErrExerciseAccessDenied
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.MuscleGroup = in.MuscleGroup
	existing.Equipment = in.Equipment
	existing.IsBodyweight = in.IsBodyweight

	if err := s.exerciseRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("update exercise: %w", err)
	}
	return existing, nil
}

// DeleteExercise removes an exercise. The repository filter enforces ownership, so a
// foreign exercise reports not found.
func (s *exerciseService) DeleteExercise(ctx context.Context, ownerID, exerciseID primitive.ObjectID) error {
	if err := s.exerciseRepo.Delete(ctx, exerciseID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}
