package databases

// go generate: mockery --name SpaceConfigDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invitetrackhq/invite-tracker-api/models"
)

const spaceConfigName = "space_configs"

// SpaceConfigDatabase contains the methods to use with the space config database
type SpaceConfigDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.SpaceConfig, error)
	Upsert(ctx context.Context, spaceID string, cfg models.SpaceConfig) error

	// IncrementLeaves bumps the space-wide leave tally used for departures
	// that carry no per-referrer attribution
	IncrementLeaves(ctx context.Context, spaceID string) error
}

type spaceConfigDatabase struct {
	db DatabaseHelper
}

// NewSpaceConfigDatabase initializes a new instance of space config database with the provided db connection
func NewSpaceConfigDatabase(db DatabaseHelper) SpaceConfigDatabase {
	return &spaceConfigDatabase{
		db: db,
	}
}

func (c *spaceConfigDatabase) FindOne(ctx context.Context, filter interface{}) (*models.SpaceConfig, error) {
	cfg := &models.SpaceConfig{}
	err := c.db.Collection(spaceConfigName).FindOne(ctx, filter).Decode(&cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *spaceConfigDatabase) Upsert(ctx context.Context, spaceID string, cfg models.SpaceConfig) error {
	filter := bson.M{"spaceId": spaceID}
	update := bson.M{"$set": bson.M{
		"spaceId":         spaceID,
		"welcomeChannel":  cfg.WelcomeChannel,
		"welcomeTemplate": cfg.WelcomeTemplate,
	}}
	upsert := true
	return c.db.Collection(spaceConfigName).UpdateOne(ctx, filter, update, &options.UpdateOptions{Upsert: &upsert})
}

func (c *spaceConfigDatabase) IncrementLeaves(ctx context.Context, spaceID string) error {
	filter := bson.M{"spaceId": spaceID}
	update := bson.M{"$inc": bson.M{"stats.leaves": 1}}
	upsert := true
	return c.db.Collection(spaceConfigName).UpdateOne(ctx, filter, update, &options.UpdateOptions{Upsert: &upsert})
}
