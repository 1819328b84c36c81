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

const programCollectionName = "programs"

// mongoProgramRepository implements repository.ProgramRepository.
// A program is stored as one document holding its cycles and their sessions.
type mongoProgramRepository struct {
	collection *mongo.Collection
}

// NewMongoProgramRepository creates a new Program repository backed by MongoDB.
func NewMongoProgramRepository(db *mongo.Database) repository.ProgramRepository {
	return &mongoProgramRepository{
		collection: db.Collection(programCollectionName),
	}
}

// Create inserts a new program. The domain assigns the ID, the repository the first version.
func (r *mongoProgramRepository) Create(ctx context.Context, program *domain.Program) error {
	if program.ID.IsZero() || program.Name == "" {
		return errors.New("program requires an id and a name")
	}
	program.Version = 1
	if _, err := r.collection.InsertOne(ctx, toProgramDocument(*program)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Only templates have a unique name index
			return repository.ErrDuplicate
		}
		return fmt.Errorf("insert program: %w", err)
	}
	return nil
}

// GetByID retrieves a program with all its cycles. Ownership is checked by the service.
func (r *mongoProgramRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Program, error) {
	var doc programDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	p, err := doc.toDomain() // Rebuilds periodicity rules from their stored specs
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByOwnerID lists the owner's programs, newest first.
func (r *mongoProgramRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Program, error) {
	// Templates have a zero ownerId, but isDefault keeps the filter explicit
	return r.find(ctx, bson.M{"ownerId": ownerID, "isDefault": false}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// GetDefaults lists the built-in templates sorted by name.
func (r *mongoProgramRepository) GetDefaults(ctx context.Context) ([]domain.Program, error) {
	return r.find(ctx, bson.M{"isDefault": true}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *mongoProgramRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Program, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx) // Ensure cursor is closed

	var docs []programDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	programs := make([]domain.Program, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, nil
}

// Replace writes the whole aggregate guarded by its version.
func (r *mongoProgramRepository) Replace(ctx context.Context, program *domain.Program) error {
	expected := program.Version
	doc := toProgramDocument(*program)
	doc.Version = expected + 1 // Bump on every write

	// Matching on version makes a stale write match nothing
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": program.ID, "version": expected}, doc)
	if err != nil {
		return fmt.Errorf("replace program: %w", err)
	}
	if result.MatchedCount == 0 {
		// Either gone or changed underneath us.
		n, err := r.collection.CountDocuments(ctx, bson.M{"_id": program.ID})
		if err != nil {
			return fmt.Errorf("count program: %w", err)
		}
		if n == 0 {
			return repository.ErrNotFound
		}
		return repository.ErrConflict
	}
	program.Version = doc.Version // Caller sees the stored version
	return nil
}

// Delete removes a program owned by ownerID. Templates (zero owner) can't be deleted this way.
func (r *mongoProgramRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureProgramIndexes creates necessary indexes for the programs collection.
// Built-in template names are unique so that catalog seeding is idempotent.
func EnsureProgramIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}}, // Listing by owner
		},
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetName("default_template_name").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"isDefault": true}),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
