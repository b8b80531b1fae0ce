package repository

import (
	"context"
	"fmt"

	"github.com/styleloom/clothing-store/internal/models"
	"github.com/styleloom/clothing-store/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type productRepository struct {
	coll *mongo.Collection
}

func NewProductRepo(db *mongo.Database) ProductRepository {
	return &productRepository{coll: db.Collection(productsCollection)}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	res, err := r.coll.InsertOne(dbCtx, product)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = id
	}

	return nil
}

// GetProductByID returns mongo.ErrNoDocuments when the id is well formed but
// unknown, and a plain error when it is not a valid object id at all.
func (r *productRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product id %q: %w", id, err)
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	err = r.coll.FindOne(dbCtx, bson.M{"_id": objectID}).Decode(product)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(dbCtx, bson.M{})
	if err != nil {
		return nil, err
	}

	defer cursor.Close(dbCtx)

	var products []models.Product

	if err := cursor.All(dbCtx, &products); err != nil {
		return nil, err
	}

	return products, nil
}
