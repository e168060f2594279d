package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/shufflegram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines the interface for user ledger operations
type UserRepository interface {
	EnsureUser(ctx context.Context, id string, now time.Time) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	AddXP(ctx context.Context, id string, amount int) error
	TopByXP(ctx context.Context, limit int64) ([]models.User, error)
	SampleChatPartner(ctx context.Context, excludeID string) (*models.User, error)
	CountUsers(ctx context.Context) (int64, error)
	CountVerified(ctx context.Context) (int64, error)
	CountBanned(ctx context.Context) (int64, error)
}

// MongoUserRepository implements UserRepository for MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

// EnsureUser lazily creates the user record on first interaction. The upsert
// is idempotent: an existing record is returned untouched.
func (r *MongoUserRepository) EnsureUser(ctx context.Context, id string, now time.Time) (*models.User, error) {
	fresh := models.NewUser(id, now)
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$setOnInsert": fresh},
		opts,
	).Decode(&user)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure user %s: %w", id, err)
	}
	return &user, nil
}

// GetUser retrieves a user by id
func (r *MongoUserRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SaveUser replaces the full user record
func (r *MongoUserRepository) SaveUser(ctx context.Context, user *models.User) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddXP atomically increments a user's experience points
func (r *MongoUserRepository) AddXP(ctx context.Context, id string, amount int) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"xp": amount}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// TopByXP returns the highest-ranked users for the leaderboard
func (r *MongoUserRepository) TopByXP(ctx context.Context, limit int64) ([]models.User, error) {
	findOptions := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "xp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SampleChatPartner picks one uniform-random user who accepts anonymous
// messages and has no active conversation, excluding the sender. Returns
// ErrNotFound when nobody is eligible.
func (r *MongoUserRepository) SampleChatPartner(ctx context.Context, excludeID string) (*models.User, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"_id":               bson.M{"$ne": excludeID},
			"anonymous_receive": true,
			"banned":            false,
			"anon_conversation": bson.M{"$in": bson.A{nil, ""}},
		}}},
		{{Key: "$sample", Value: bson.M{"size": 1}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return &users[0], nil
}

// CountUsers returns the total number of user records
func (r *MongoUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.D{})
}

// CountVerified returns the number of verified users
func (r *MongoUserRepository) CountVerified(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"verified": true})
}

// CountBanned returns the number of banned users
func (r *MongoUserRepository) CountBanned(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"banned": true})
}
