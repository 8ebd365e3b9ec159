package databases

// go generate: mockery --name RewardRuleDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invitetrackhq/invite-tracker-api/models"
)

const rewardRuleName = "reward_rules"

// RewardRuleDatabase contains the methods to use with the reward rule database
type RewardRuleDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.RewardRule, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.RewardRule, error)
	InsertOne(ctx context.Context, rule models.RewardRule, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
}

type rewardRuleDatabase struct {
	db DatabaseHelper
}

// NewRewardRuleDatabase initializes a new instance of reward rule database with the provided db connection
func NewRewardRuleDatabase(db DatabaseHelper) RewardRuleDatabase {
	return &rewardRuleDatabase{
		db: db,
	}
}

func (c *rewardRuleDatabase) FindOne(ctx context.Context, filter interface{}) (*models.RewardRule, error) {
	rule := &models.RewardRule{}
	err := c.db.Collection(rewardRuleName).FindOne(ctx, filter).Decode(&rule)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func (c *rewardRuleDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.RewardRule, error) {
	var rules []models.RewardRule
	cursor, err := c.db.Collection(rewardRuleName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&rules)
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (c *rewardRuleDatabase) InsertOne(ctx context.Context, rule models.RewardRule, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(rewardRuleName).InsertOne(ctx, rule, opts...)
}

func (c *rewardRuleDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(rewardRuleName).DeleteOne(ctx, filter, opts...)
}
