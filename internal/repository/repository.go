package repository

import (
	"context"

	"alcyxob/workout-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
	// ErrConflict means the stored document changed since it was read.
	ErrConflict = RepositoryError("version conflict")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

//go:generate mockgen -source=$GOFILE -destination=../service/mocks_test.go -package=service_test

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// ExerciseRepository defines the interface for interacting with exercise data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error // only the owner may delete
}

// ProgramRepository stores whole program aggregates, cycles and sessions included.
type ProgramRepository interface {
	// Create inserts program with Version 1.
	Create(ctx context.Context, program *domain.Program) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Program, error)
	// GetDefaults lists the built-in templates (IsDefault).
	GetDefaults(ctx context.Context) ([]domain.Program, error)
	// Replace overwrites the stored program if its version still equals program.Version,
	// then bumps program.Version. A stale version returns ErrConflict.
	Replace(ctx context.Context, program *domain.Program) error
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error
}

// PhotoRepository defines the interface for progress photo metadata.
type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.ProgressPhoto) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgressPhoto, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.ProgressPhoto, error)
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error
}
