package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/ports"
)

const micropostsCollection = "microposts"

type MicropostRepository struct {
	col *mongo.Collection
}

func NewMicropostRepository(db *mongo.Database) *MicropostRepository {
	return &MicropostRepository{col: db.Collection(micropostsCollection)}
}

type mongoMicropost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m mongoMicropost) toDomain() *domain.Micropost {
	return &domain.Micropost{
		ID:        m.ID.Hex(),
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// Create inserts a new micropost document.
func (r *MicropostRepository) Create(ctx context.Context, p *domain.Micropost) (*domain.Micropost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMicropost{UserID: p.UserID, Content: p.Content, CreatedAt: p.CreatedAt.UTC()}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert micropost: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *MicropostRepository) FindByID(ctx context.Context, id string) (*domain.Micropost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMicropostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoMicropost
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMicropostNotFound
		}
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *MicropostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMicropostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete micropost: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMicropostNotFound
	}
	return nil
}

func (r *MicropostRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"user_id": userID})
}

// FindByOwners runs the feed query: user_id ∈ ownerIDs, newest first.
func (r *MicropostRepository) FindByOwners(ctx context.Context, ownerIDs []string, page ports.PageFilter) ([]*domain.Micropost, int64, error) {
	if len(ownerIDs) == 0 {
		return []*domain.Micropost{}, 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": bson.M{"$in": ownerIDs}}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count feed: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find feed: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoMicropost
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode feed: %w", err)
	}
	items := make([]*domain.Micropost, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toDomain())
	}
	return items, total, nil
}

// EnsureIndexes creates the indexes backing the feed query.
func (r *MicropostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
