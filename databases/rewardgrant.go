package databases

// go generate: mockery --name RewardGrantDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invitetrackhq/invite-tracker-api/models"
)

const rewardGrantName = "reward_grants"

// RewardGrantDatabase contains the methods to use with the reward grant database
type RewardGrantDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.RewardGrant, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.RewardGrant, error)
	InsertOne(ctx context.Context, grant models.RewardGrant, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
}

type rewardGrantDatabase struct {
	db DatabaseHelper
}

// NewRewardGrantDatabase initializes a new instance of reward grant database with the provided db connection
func NewRewardGrantDatabase(db DatabaseHelper) RewardGrantDatabase {
	return &rewardGrantDatabase{
		db: db,
	}
}

func (c *rewardGrantDatabase) FindOne(ctx context.Context, filter interface{}) (*models.RewardGrant, error) {
	grant := &models.RewardGrant{}
	err := c.db.Collection(rewardGrantName).FindOne(ctx, filter).Decode(&grant)
	if err != nil {
		return nil, err
	}
	return grant, nil
}

func (c *rewardGrantDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.RewardGrant, error) {
	var grants []models.RewardGrant
	cursor, err := c.db.Collection(rewardGrantName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&grants)
	if err != nil {
		return nil, err
	}
	return grants, nil
}

func (c *rewardGrantDatabase) InsertOne(ctx context.Context, grant models.RewardGrant, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(rewardGrantName).InsertOne(ctx, grant, opts...)
}
