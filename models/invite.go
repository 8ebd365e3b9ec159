package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invite represents one invite link as reported by the live platform
type Invite struct {
	Code      string `json:"code"`
	CreatorID string `json:"creatorId"`
	Uses      int    `json:"uses"`
}

// InviteRecord is the persisted roster entry for an invite, upserted at
// bootstrap and on each resync. It is observability data only; attribution
// always diffs against the live platform state, never this collection.
type InviteRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SpaceID   string             `bson:"spaceId" json:"spaceId"`
	Code      string             `bson:"code" json:"code"`
	CreatorID string             `bson:"creatorId" json:"creatorId"`
	Uses      int                `bson:"uses" json:"uses"`
	SyncedAt  time.Time          `bson:"syncedAt" json:"syncedAt"`
}

// Member represents a current member of a space as reported by the live platform
type Member struct {
	ID          string `json:"id"`
	IsAutomated bool   `json:"isAutomated"`
}
