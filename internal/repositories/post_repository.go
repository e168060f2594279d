package repositories

import (
	"context"
	"errors"

	"github.com/shufflegram/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a referenced ledger record does not exist.
var ErrNotFound = errors.New("record not found")

// PostRepository defines the interface for post ledger operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id string) (*models.Post, error)
	SavePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id string) error
	DeleteByUploader(ctx context.Context, uploader string) (int64, error)
	SampleExcluding(ctx context.Context, excludeIDs []string, excludeUploader string) (*models.Post, error)
	TopByLikes(ctx context.Context, limit int64) ([]models.Post, error)
	MostReported(ctx context.Context, limit int64) ([]models.Post, error)
	CountPosts(ctx context.Context) (int64, error)
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// CreatePost inserts a new post
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPost retrieves a post by id
func (r *MongoPostRepository) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// SavePost replaces the full post record
func (r *MongoPostRepository) SavePost(ctx context.Context, post *models.Post) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePost removes a post by id
func (r *MongoPostRepository) DeletePost(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByUploader removes every post owned by the given user (ban cascade)
func (r *MongoPostRepository) DeleteByUploader(ctx context.Context, uploader string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"uploader": uploader})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// SampleExcluding picks one uniform-random post whose id is not in
// excludeIDs and that was not uploaded by excludeUploader. Returns
// ErrNotFound when the candidate set is empty.
func (r *MongoPostRepository) SampleExcluding(ctx context.Context, excludeIDs []string, excludeUploader string) (*models.Post, error) {
	if excludeIDs == nil {
		excludeIDs = []string{}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"_id":      bson.M{"$nin": excludeIDs},
			"uploader": bson.M{"$ne": excludeUploader},
		}}},
		{{Key: "$sample", Value: bson.M{"size": 1}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNotFound
	}
	return &posts[0], nil
}

// TopByLikes returns the most-liked posts (trending)
func (r *MongoPostRepository) TopByLikes(ctx context.Context, limit int64) ([]models.Post, error) {
	findOptions := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "likes", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// MostReported returns reported posts ordered by report count, for the admin
// review queue
func (r *MongoPostRepository) MostReported(ctx context.Context, limit int64) ([]models.Post, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"reported_by.0": bson.M{"$exists": true}}}},
		{{Key: "$addFields", Value: bson.M{"report_count": bson.M{"$size": "$reported_by"}}}},
		{{Key: "$sort", Value: bson.M{"report_count": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CountPosts returns the total number of posts
func (r *MongoPostRepository) CountPosts(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.D{})
}
