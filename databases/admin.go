package databases

// go generate: mockery --name AdminDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invitetrackhq/invite-tracker-api/models"
)

const adminName = "admins"

// AdminDatabase contains the methods to use with the admin database
type AdminDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.AdminUser, error)
	InsertOne(ctx context.Context, admin models.AdminUser, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
}

type adminDatabase struct {
	db DatabaseHelper
}

// NewAdminDatabase initializes a new instance of admin database with the provided db connection
func NewAdminDatabase(db DatabaseHelper) AdminDatabase {
	return &adminDatabase{
		db: db,
	}
}

func (c *adminDatabase) FindOne(ctx context.Context, filter interface{}) (*models.AdminUser, error) {
	admin := &models.AdminUser{}
	err := c.db.Collection(adminName).FindOne(ctx, filter).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (c *adminDatabase) InsertOne(ctx context.Context, admin models.AdminUser, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(adminName).InsertOne(ctx, admin, opts...)
}

func (c *adminDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	return c.db.Collection(adminName).UpdateOne(ctx, filter, update, opts...)
}
