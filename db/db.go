package db

import (
	"context"
	"time"

	"github.com/Circulx/Fathom-Legal-sub001/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB holds the mongo client and the collections the services use. It is
// constructed once in main and injected; lifecycle follows the process.
type DB struct {
	Client *mongo.Client

	Orders    *mongo.Collection
	Templates *mongo.Collection
	BlogPosts *mongo.Collection
	Gallery   *mongo.Collection
	Admins    *mongo.Collection
	Contacts  *mongo.Collection
}

// Connect dials MongoDB and wires up the collections.
func Connect(ctx context.Context, cfg config.Mongo) (*DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	database := client.Database(cfg.Database)
	d := &DB{
		Client:    client,
		Orders:    database.Collection("orders"),
		Templates: database.Collection("templates"),
		BlogPosts: database.Collection("blogposts"),
		Gallery:   database.Collection("gallery"),
		Admins:    database.Collection("admins"),
		Contacts:  database.Collection("contacts"),
	}

	if err := d.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

// ensureIndexes creates the unique order number index and the lookup indexes
// the download authorizer depends on.
func (d *DB) ensureIndexes(ctx context.Context) error {
	_, err := d.Orders.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"orderNumber": 1},
			Options: options.Index().SetUnique(true).SetName("unique_order_number"),
		},
		{
			Keys:    bson.D{{Key: "customer.email", Value: 1}, {Key: "paymentStatus", Value: 1}},
			Options: options.Index().SetName("email_payment_status"),
		},
	})
	if err != nil {
		return err
	}

	_, err = d.Templates.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"templateId": 1},
		Options: options.Index().SetUnique(true).SetName("unique_template_id"),
	})
	return err
}

// Close disconnects the client during graceful shutdown.
func (d *DB) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
