package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/styleloom/clothing-store/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection    = "users"
	productsCollection = "products"
	ordersCollection   = "orders"
)

type Repository struct {
	client *mongo.Client

	User    UserRepository
	Product ProductRepository
	Order   OrderRepository
}

func New(cfg *config.Config) (*Repository, error) {

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to open mongo client: %w", err)
	}

	// Make sure the database is reachable before serving anything.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	db := client.Database(cfg.Mongo.Database)

	// The username uniqueness invariant lives in the store, not in the
	// check-then-insert of the signup flow.
	_, err = db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure username index: %w", err)
	}

	return &Repository{
		client:  client,
		User:    NewUserRepo(db),
		Product: NewProductRepo(db),
		Order:   NewOrderRepo(db),
	}, nil
}

func (r *Repository) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.client.Disconnect(ctx)
}
