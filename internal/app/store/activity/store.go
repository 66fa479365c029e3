// internal/app/store/activity/store.go
package activity

import (
	"context"
	"errors"
	"time"

	"github.com/toolgate/toolgate/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotOpen is returned by Close when the record has already been closed
// or does not exist. Callers treat a second logout as a no-op after
// reporting it.
var ErrNotOpen = errors.New("activity record is not open")

// Store manages login/logout activity records in the user_logs collection.
// Each record is one login; it stays open (logout_at unset) until the
// matching logout closes it.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user_logs")}
}

// Open inserts a new activity record for a login and returns its ID.
// The record starts with logout_at unset.
func (s *Store) Open(ctx context.Context, accountID primitive.ObjectID, ip string) (primitive.ObjectID, error) {
	rec := models.ActivityRecord{
		ID:        primitive.NewObjectID(),
		AccountID: accountID,
		LoginAt:   time.Now().UTC(),
		IP:        ip,
	}
	if _, err := s.c.InsertOne(ctx, rec); err != nil {
		return primitive.NilObjectID, err
	}
	return rec.ID, nil
}

// Close stamps logout_at on an open record. The filter requires logout_at
// to still be unset, so a record is only ever closed once; closing an
// already-closed or missing record returns ErrNotOpen.
func (s *Store) Close(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "logout_at": nil},
		bson.M{"$set": bson.M{"logout_at": at.UTC()}},
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrNotOpen
	}
	return nil
}

// GetByID loads a single activity record.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ActivityRecord, error) {
	var rec models.ActivityRecord
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListAll returns every activity record ordered by login time, oldest
// first. Used by the audit report.
func (s *Store) ListAll(ctx context.Context) ([]models.ActivityRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "login_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.ActivityRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListByAccount returns recent activity records for one account,
// latest-first.
func (s *Store) ListByAccount(ctx context.Context, accountID primitive.ObjectID, limit int64) ([]models.ActivityRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "login_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{"account_id": accountID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.ActivityRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CountOpen returns the number of records still missing a logout stamp.
func (s *Store) CountOpen(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"logout_at": nil})
}
