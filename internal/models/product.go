package models

// SizeVariant is a single size/quantity entry of a product. Size values are
// not required to be unique within a product's Sizes sequence.
type SizeVariant struct {
	Size     string `json:"size" bson:"size"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// Product represents a catalog product. ID is assigned by the store on
// creation and exposed to clients as a plain string; products are never
// updated or deleted once created.
type Product struct {
	ID    string        `json:"id" bson:"-"`
	Name  string        `json:"name" bson:"name"`
	Price float64       `json:"price" bson:"price"`
	Sizes []SizeVariant `json:"sizes" bson:"sizes"`
}
