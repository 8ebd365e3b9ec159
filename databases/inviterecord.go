package databases

// go generate: mockery --name InviteRecordDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invitetrackhq/invite-tracker-api/models"
)

const inviteRecordName = "invites"

// InviteRecordDatabase contains the methods to use with the invite roster database
type InviteRecordDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.InviteRecord, error)
	Upsert(ctx context.Context, spaceID string, invite models.Invite) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
}

type inviteRecordDatabase struct {
	db DatabaseHelper
}

// NewInviteRecordDatabase initializes a new instance of invite roster database with the provided db connection
func NewInviteRecordDatabase(db DatabaseHelper) InviteRecordDatabase {
	return &inviteRecordDatabase{
		db: db,
	}
}

func (c *inviteRecordDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.InviteRecord, error) {
	var invites []models.InviteRecord
	cursor, err := c.db.Collection(inviteRecordName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&invites)
	if err != nil {
		return nil, err
	}
	return invites, nil
}

func (c *inviteRecordDatabase) Upsert(ctx context.Context, spaceID string, invite models.Invite) error {
	filter := bson.M{"spaceId": spaceID, "code": invite.Code}
	update := bson.M{"$set": bson.M{
		"spaceId":   spaceID,
		"code":      invite.Code,
		"creatorId": invite.CreatorID,
		"uses":      invite.Uses,
		"syncedAt":  time.Now(),
	}}
	upsert := true
	return c.db.Collection(inviteRecordName).UpdateOne(ctx, filter, update, &options.UpdateOptions{Upsert: &upsert})
}

func (c *inviteRecordDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(inviteRecordName).DeleteOne(ctx, filter, opts...)
}
