package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=../api/service_mocks_test.go -package=api_test alcyxob/workout-tracker/internal/service AuthService,ExerciseService,ProgramService,PhotoService,ExportService

// Errors shared by several services.
var (
	ErrInvalidID    = errors.New("invalid id")
	ErrUserNotFound = errors.New("user not found")
)

func parseObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}
