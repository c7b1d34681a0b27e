package personRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clearslot/database"
	"clearslot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no person matches the query.
var ErrNotFound = errors.New("person not found")

// MongoPersonRepo implements PersonRepository using MongoDB.
type MongoPersonRepo struct {
	coll *mongo.Collection
}

// NewMongoPersonRepo creates a new instance of PersonRepository using MongoDB.
func NewMongoPersonRepo() PersonRepository {
	coll := database.MongoClient.Database("clearslot").Collection("persons")
	repo := &MongoPersonRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoPersonRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a person by its unique ID.
func (r *MongoPersonRepo) GetByID(ctx context.Context, id string) (*models.Person, error) {
	var person models.Person
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&person); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch person with id %s: %w", id, err)
	}
	return &person, nil
}

// GetByEmail retrieves a person by its email address.
func (r *MongoPersonRepo) GetByEmail(ctx context.Context, email string) (*models.Person, error) {
	var person models.Person
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&person); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch person with email %s: %w", email, err)
	}
	return &person, nil
}

// Upsert inserts or replaces a person record.
func (r *MongoPersonRepo) Upsert(ctx context.Context, person *models.Person) error {
	now := time.Now()
	if person.CreatedAt.IsZero() {
		person.CreatedAt = now
	}
	person.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": person.ID}, person, opts); err != nil {
		return fmt.Errorf("failed to upsert person %s: %w", person.ID, err)
	}
	return nil
}

// UpdatePreferences replaces a person's working-hours preferences.
func (r *MongoPersonRepo) UpdatePreferences(ctx context.Context, id string, prefs models.Preferences) error {
	update := bson.M{"$set": bson.M{"preferences": prefs, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update preferences for person %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a person record by its ID.
func (r *MongoPersonRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete person %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
