package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReferrerStats holds the durable per-(space, referrer) counters.
// TotalInvites is lifetime attributed joins and only ever increases;
// RealInvites drops when a join is reclassified as fake on departure.
type ReferrerStats struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SpaceID      string             `bson:"spaceId" json:"spaceId"`
	ReferrerID   string             `bson:"referrerId" json:"referrerId"`
	TotalInvites int                `bson:"totalInvites" json:"totalInvites"`
	RealInvites  int                `bson:"realInvites" json:"realInvites"`
	FakeInvites  int                `bson:"fakeInvites" json:"fakeInvites"`
	Leaves       int                `bson:"leaves" json:"leaves"`
}

// StatsDelta names the counter mutations applied in one atomic update
type StatsDelta struct {
	TotalInvites int
	RealInvites  int
	FakeInvites  int
	Leaves       int
}
