package databases

// go generate: mockery --name JoinRecordDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invitetrackhq/invite-tracker-api/models"
)

const joinRecordName = "join_records"

// JoinRecordDatabase contains the methods to use with the join record database
type JoinRecordDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.JoinRecord, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.JoinRecord, error)
	InsertOne(ctx context.Context, record models.JoinRecord, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

type joinRecordDatabase struct {
	db DatabaseHelper
}

// NewJoinRecordDatabase initializes a new instance of join record database with the provided db connection
func NewJoinRecordDatabase(db DatabaseHelper) JoinRecordDatabase {
	return &joinRecordDatabase{
		db: db,
	}
}

func (c *joinRecordDatabase) FindOne(ctx context.Context, filter interface{}) (*models.JoinRecord, error) {
	record := &models.JoinRecord{}
	err := c.db.Collection(joinRecordName).FindOne(ctx, filter).Decode(&record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (c *joinRecordDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.JoinRecord, error) {
	var records []models.JoinRecord
	cursor, err := c.db.Collection(joinRecordName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cursor.Decode(&records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *joinRecordDatabase) InsertOne(ctx context.Context, record models.JoinRecord, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(joinRecordName).InsertOne(ctx, record, opts...)
}

func (c *joinRecordDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(joinRecordName).CountDocuments(ctx, filter, opts...)
}
