package repositories

import (
	"context"

	"github.com/shufflegram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingsRepository defines the interface for the runtime settings singleton
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, settings *models.Settings) error
}

// MongoSettingsRepository implements SettingsRepository for MongoDB
type MongoSettingsRepository struct {
	collection *mongo.Collection
}

// NewMongoSettingsRepository creates a new MongoSettingsRepository
func NewMongoSettingsRepository(db *mongo.Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{collection: db.Collection("settings")}
}

// GetSettings returns the settings document, creating it with defaults on
// first access.
func (r *MongoSettingsRepository) GetSettings(ctx context.Context) (*models.Settings, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var settings models.Settings
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": models.SettingsID},
		bson.M{"$setOnInsert": models.DefaultSettings()},
		opts,
	).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings replaces the settings document
func (r *MongoSettingsRepository) SaveSettings(ctx context.Context, settings *models.Settings) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": models.SettingsID}, settings, opts)
	return err
}
