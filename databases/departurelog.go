package databases

// go generate: mockery --name DepartureLogDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invitetrackhq/invite-tracker-api/models"
)

const departureLogName = "departure_logs"

// DepartureLogDatabase contains the methods to use with the departure log database
type DepartureLogDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.DepartureLog, error)
	InsertOne(ctx context.Context, log models.DepartureLog, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
}

type departureLogDatabase struct {
	db DatabaseHelper
}

// NewDepartureLogDatabase initializes a new instance of departure log database with the provided db connection
func NewDepartureLogDatabase(db DatabaseHelper) DepartureLogDatabase {
	return &departureLogDatabase{
		db: db,
	}
}

func (c *departureLogDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.DepartureLog, error) {
	var logs []models.DepartureLog
	cursor, err := c.db.Collection(departureLogName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&logs)
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *departureLogDatabase) InsertOne(ctx context.Context, log models.DepartureLog, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(departureLogName).InsertOne(ctx, log, opts...)
}
