// internal/app/store/tools/toolstore.go
package toolstore

import (
	"context"
	"sort"

	"github.com/toolgate/toolgate/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tools")}
}

// InsertMany bulk-inserts tools. Used by seeding.
func (s *Store) InsertMany(ctx context.Context, tools []models.Tool) error {
	if len(tools) == 0 {
		return nil
	}
	docs := make([]interface{}, len(tools))
	for i, t := range tools {
		docs[i] = t
	}
	_, err := s.c.InsertMany(ctx, docs)
	return err
}

// Count returns the number of tools in the catalog.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// List returns tools filtered by type and category. Empty filter values
// match everything. Results are sorted by name.
func (s *Store) List(ctx context.Context, toolType, category string) ([]models.Tool, error) {
	filter := bson.M{}
	if toolType != "" {
		filter["type"] = toolType
	}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tools []models.Tool
	if err := cur.All(ctx, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// Categories returns the distinct category names for a tool type, sorted.
// An empty type returns categories across the whole catalog.
func (s *Store) Categories(ctx context.Context, toolType string) ([]string, error) {
	filter := bson.M{}
	if toolType != "" {
		filter["type"] = toolType
	}

	values, err := s.c.Distinct(ctx, "category", filter)
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	sort.Strings(categories)
	return categories, nil
}
