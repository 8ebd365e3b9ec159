package databases

// go generate: mockery --name ReferrerStatsDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invitetrackhq/invite-tracker-api/models"
)

const referrerStatsName = "referrer_stats"

// ReferrerStatsDatabase contains the methods to use with the referrer stats database
type ReferrerStatsDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.ReferrerStats, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ReferrerStats, error)

	// ApplyDelta applies the given counter deltas with a single atomic
	// $inc, upserting the stats row on first use. All counter mutation in
	// this project goes through here; read-modify-write on stats rows is
	// not allowed.
	ApplyDelta(ctx context.Context, spaceID, referrerID string, delta models.StatsDelta) error
}

type referrerStatsDatabase struct {
	db DatabaseHelper
}

// NewReferrerStatsDatabase initializes a new instance of referrer stats database with the provided db connection
func NewReferrerStatsDatabase(db DatabaseHelper) ReferrerStatsDatabase {
	return &referrerStatsDatabase{
		db: db,
	}
}

func (c *referrerStatsDatabase) FindOne(ctx context.Context, filter interface{}) (*models.ReferrerStats, error) {
	stats := &models.ReferrerStats{}
	err := c.db.Collection(referrerStatsName).FindOne(ctx, filter).Decode(&stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *referrerStatsDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ReferrerStats, error) {
	var stats []models.ReferrerStats
	cursor, err := c.db.Collection(referrerStatsName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *referrerStatsDatabase) ApplyDelta(ctx context.Context, spaceID, referrerID string, delta models.StatsDelta) error {
	inc := bson.M{}
	if delta.TotalInvites != 0 {
		inc["totalInvites"] = delta.TotalInvites
	}
	if delta.RealInvites != 0 {
		inc["realInvites"] = delta.RealInvites
	}
	if delta.FakeInvites != 0 {
		inc["fakeInvites"] = delta.FakeInvites
	}
	if delta.Leaves != 0 {
		inc["leaves"] = delta.Leaves
	}
	if len(inc) == 0 {
		return nil
	}

	filter := bson.M{"spaceId": spaceID, "referrerId": referrerID}
	update := bson.M{"$inc": inc}
	upsert := true
	return c.db.Collection(referrerStatsName).UpdateOne(ctx, filter, update, &options.UpdateOptions{Upsert: &upsert})
}
