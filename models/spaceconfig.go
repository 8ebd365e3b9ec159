package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SpaceConfig holds per-space settings owned by the admin surface. The
// core only reads the welcome fields; Stats.Leaves is the space-wide tally
// for departures that have no per-referrer attribution.
type SpaceConfig struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SpaceID         string             `bson:"spaceId" json:"spaceId"`
	WelcomeChannel  string             `bson:"welcomeChannel" json:"welcomeChannel"`
	WelcomeTemplate string             `bson:"welcomeTemplate" json:"welcomeTemplate"`
	Stats           SpaceStats         `bson:"stats" json:"stats"`
}

// SpaceStats aggregates space-wide tallies not modeled per referrer
type SpaceStats struct {
	Leaves int `bson:"leaves" json:"leaves"`
}
