package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/models"
)

// orderDoc is the persisted shape of an order. Item product ids are stored
// as the plain strings the client sent; they are only parsed when the order
// is enriched at read time.
type orderDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID string             `bson:"userId"`
	Items  []models.OrderItem `bson:"items"`
}

func (d orderDoc) toModel() models.Order {
	return models.Order{
		ID:     d.ID.Hex(),
		UserID: d.UserID,
		Items:  d.Items,
	}
}

// MongoOrderRepository is a MongoDB implementation of OrderRepository backed
// by the "orders" collection.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates a new instance of MongoOrderRepository.
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

// Create inserts a new order verbatim and records the assigned object id on
// the model as a hex string.
func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	doc := orderDoc{UserID: order.UserID, Items: order.Items}
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	order.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// FindByUser returns the page of orders owned by userID, in store-native
// order.
func (r *MongoOrderRepository) FindByUser(ctx context.Context, userID string, limit, offset int64) ([]models.Order, error) {
	opts := options.Find().SetSkip(offset).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders for user %s: %w", userID, err)
	}

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]models.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.toModel())
	}
	return orders, nil
}
