package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DepartureLog records one departure of a previously attributed member,
// with the tenure that drove the fake-join classification
type DepartureLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SpaceID         string             `bson:"spaceId" json:"spaceId"`
	UserID          string             `bson:"userId" json:"userId"`
	ReferrerID      string             `bson:"referrerId" json:"referrerId"`
	JoinedAt        time.Time          `bson:"joinedAt" json:"joinedAt"`
	LeftAt          time.Time          `bson:"leftAt" json:"leftAt"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	ShortLived      bool               `bson:"shortLived" json:"shortLived"`
}
