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

// productDoc is the persisted shape of a product. The raw object id never
// leaves this package; it is rendered to its hex form before a product is
// handed out.
type productDoc struct {
	ID    primitive.ObjectID   `bson:"_id,omitempty"`
	Name  string               `bson:"name"`
	Price float64              `bson:"price"`
	Sizes []models.SizeVariant `bson:"sizes"`
}

func (d productDoc) toModel() models.Product {
	return models.Product{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Price: d.Price,
		Sizes: d.Sizes,
	}
}

// MongoProductRepository is a MongoDB implementation of ProductRepository
// backed by the "products" collection.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("products"),
	}
}

// Create inserts a new product and records the assigned object id on the
// model as a hex string.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	doc := productDoc{Name: product.Name, Price: product.Price, Sizes: product.Sizes}
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	product.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// Find queries the products collection. Name filtering is a case-insensitive
// regex, size filtering an exact match over the sizes array; skip and limit
// are delegated to the store.
func (r *MongoProductRepository) Find(ctx context.Context, filter ProductFilter, limit, offset int64) ([]models.Product, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: filter.Name, Options: "i"}
	}
	if filter.Size != "" {
		query["sizes.size"] = filter.Size
	}

	opts := options.Find().SetSkip(offset).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toModel())
	}
	return products, nil
}

// GetByID retrieves a single product by its hex object id. Identifier
// parsing happens before the lookup, so a malformed id is reported as
// ErrInvalidProductID rather than as a missing product.
func (r *MongoProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProductID, id)
	}

	var doc productDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}

	product := doc.toModel()
	return &product, nil
}
