package mongo

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const photoCollectionName = "progress_photos"

// mongoPhotoRepository implements repository.PhotoRepository
type mongoPhotoRepository struct {
	collection *mongo.Collection
}

// NewMongoPhotoRepository creates a new progress photo repository backed by MongoDB.
func NewMongoPhotoRepository(db *mongo.Database) repository.PhotoRepository {
	return &mongoPhotoRepository{
		collection: db.Collection(photoCollectionName),
	}
}

// Create inserts photo metadata. UploadedAt is set by the caller.
func (r *mongoPhotoRepository) Create(ctx context.Context, photo *domain.ProgressPhoto) (primitive.ObjectID, error) {
	if photo.OwnerID.IsZero() || photo.S3ObjectKey == "" {
		return primitive.NilObjectID, errors.New("photo requires ownerId and s3ObjectKey")
	}

	photo.ID = primitive.NewObjectID() // Generate new ObjectID
	if _, err := r.collection.InsertOne(ctx, photo); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert photo: %w", err)
	}
	return photo.ID, nil
}

// GetByID retrieves photo metadata by its ID.
func (r *mongoPhotoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgressPhoto, error) {
	var photo domain.ProgressPhoto
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&photo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// GetByOwnerID lists the owner's photos, newest first.
func (r *mongoPhotoRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.ProgressPhoto, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "takenAt", Value: -1}}) // Newest first
	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx) // Ensure cursor is closed

	photos := []domain.ProgressPhoto{}
	if err = cursor.All(ctx, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// Delete removes photo metadata. The S3 object is removed by the service.
func (r *mongoPhotoRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	// Filter by owner too, so one user can't delete another's photo by ID
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePhotoIndexes creates necessary indexes for the progress photo collection.
func EnsurePhotoIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "takenAt", Value: -1}}, // Gallery listing
		},
		{
			Keys:    bson.D{{Key: "sessionId", Value: 1}},
			Options: options.Index().SetSparse(true), // Sparse because most photos aren't tied to a session
		},
		{
			Keys:    bson.D{{Key: "s3ObjectKey", Value: 1}}, // One metadata row per object
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
