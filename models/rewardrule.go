package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RewardRule configures a reward threshold for a space: once a referrer
// reaches InvitesRequired real invites, GrantID is assigned to them
type RewardRule struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SpaceID         string             `bson:"spaceId" json:"spaceId"`
	Name            string             `bson:"name" json:"name"`
	InvitesRequired int                `bson:"invitesRequired" json:"invitesRequired"`
	GrantID         string             `bson:"grantId" json:"grantId"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// RewardGrant is the idempotency guard for reward actuation. Its existence
// means the (space, referrer, invitesRequired) threshold was already granted.
type RewardGrant struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SpaceID         string             `bson:"spaceId" json:"spaceId"`
	ReferrerID      string             `bson:"referrerId" json:"referrerId"`
	InvitesRequired int                `bson:"invitesRequired" json:"invitesRequired"`
	GrantID         string             `bson:"grantId" json:"grantId"`
	GrantedAt       time.Time          `bson:"grantedAt" json:"grantedAt"`
}
