package models

// OrderItem references a product by id only. The reference is not checked
// against the catalog at creation time; it is resolved when the order is
// listed, and a dangling reference is skipped there.
type OrderItem struct {
	ProductID string `json:"productId" bson:"productId"`
	Qty       int    `json:"qty" bson:"qty"`
}

// Order represents a customer order as persisted: the user that owns it and
// the ordered items, verbatim. No total is stored; it is computed from
// current product prices at read time.
type Order struct {
	ID     string      `json:"id" bson:"-"`
	UserID string      `json:"userId" bson:"userId"`
	Items  []OrderItem `json:"items" bson:"items"`
}

// ProductDetails is the slice of product data attached to an enriched order
// item: id and name only. Price drives the order total but is deliberately
// not part of the visible detail.
type ProductDetails struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EnrichedOrderItem is an order line item joined with its product at read
// time.
type EnrichedOrderItem struct {
	ProductDetails ProductDetails `json:"productDetails"`
	Qty            int            `json:"qty"`
}

// EnrichedOrder is the read-side view of an order: resolvable items with
// product details, plus the total over those items. Items whose product no
// longer exists are absent.
type EnrichedOrder struct {
	ID    string              `json:"id"`
	Items []EnrichedOrderItem `json:"items"`
	Total float64             `json:"total"`
}
