package repository

import (
	"context"

	"github.com/styleloom/clothing-store/internal/models"
	"github.com/styleloom/clothing-store/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	ListOrders(ctx context.Context) ([]models.Order, error)
}

type orderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepo(db *mongo.Database) OrderRepository {
	return &orderRepository{coll: db.Collection(ordersCollection)}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.coll.InsertOne(dbCtx, order)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}

	return nil
}

// ListOrders returns orders in creation-time ascending order for the admin
// view.
func (r *orderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.coll.Find(dbCtx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	defer cursor.Close(dbCtx)

	var orders []models.Order

	if err := cursor.All(dbCtx, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
