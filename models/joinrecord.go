package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel invite codes for join records that were not resolved by the
// count-diff attribution path.
const (
	InviteCodeManual  = "manual"
	InviteCodeUnknown = "unknown"
)

// JoinRecord records a single arrival and its attribution. Written exactly
// once per (spaceId, userId); never updated afterwards.
type JoinRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SpaceID    string             `bson:"spaceId" json:"spaceId"`
	UserID     string             `bson:"userId" json:"userId"`
	ReferrerID string             `bson:"referrerId" json:"referrerId"`
	InviteCode string             `bson:"inviteCode" json:"inviteCode"`
	JoinedAt   time.Time          `bson:"joinedAt" json:"joinedAt"`
}

// Attributed reports whether the record names a concrete referrer
func (j JoinRecord) Attributed() bool {
	return j.ReferrerID != ""
}
