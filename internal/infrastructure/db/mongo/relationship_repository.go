package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rimonomega/sampleapp/internal/core/domain"
)

const relationshipsCollection = "relationships"

// RelationshipRepository stores follow edges, one document per ordered pair.
type RelationshipRepository struct {
	col *mongo.Collection
}

func NewRelationshipRepository(db *mongo.Database) *RelationshipRepository {
	return &RelationshipRepository{col: db.Collection(relationshipsCollection)}
}

// Create inserts the edge. The unique index turns a repeated follow into a
// duplicate key error, which is reported as an existing edge.
func (r *RelationshipRepository) Create(ctx context.Context, followerID, followedID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, domain.Relationship{
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("insert relationship: %w", err)
	}
	return true, nil
}

func (r *RelationshipRepository) Delete(ctx context.Context, followerID, followedID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteOne(ctx, edgeFilter(followerID, followedID))
	if err != nil {
		return fmt.Errorf("delete relationship: %w", err)
	}
	return nil
}

func (r *RelationshipRepository) Exists(ctx context.Context, followerID, followedID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, edgeFilter(followerID, followedID), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("relationship exists: %w", err)
	}
	return n > 0, nil
}

// FollowingIDs returns the ids followerID follows.
func (r *RelationshipRepository) FollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	return r.distinct(ctx, "followed_id", bson.M{"follower_id": followerID})
}

// FollowerIDs returns the ids following followedID.
func (r *RelationshipRepository) FollowerIDs(ctx context.Context, followedID string) ([]string, error) {
	return r.distinct(ctx, "follower_id", bson.M{"followed_id": followedID})
}

func (r *RelationshipRepository) distinct(ctx context.Context, field string, filter bson.M) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	values, err := r.col.Distinct(ctx, field, filter)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", field, err)
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}

// EnsureIndexes creates the unique edge index and the reverse lookup index.
func (r *RelationshipRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "follower_id", Value: 1}, {Key: "followed_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "followed_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func edgeFilter(followerID, followedID string) bson.M {
	return bson.M{"follower_id": followerID, "followed_id": followedID}
}
