package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values. Transitions only move forward:
// Waiting -> Processing -> Completed, then archival into historyOrders.
const (
	StatusWaiting    = "Waiting"
	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"
)

// Service categories. Intake services are priced per kilogram, serve
// services per piece.
const (
	CategoryIntakeByWeight = "intake-by-weight"
	CategoryServeByPiece   = "serve-by-piece"
)

// LineItem is one priced service line inside an order. Unit_price is copied
// from the catalog at add time and Total is quantity times unit price.
type LineItem struct {
	Category   string `json:"category"`
	Service    string `json:"service"`
	Quantity   int64  `json:"quantity"`
	Unit_price int64  `json:"unit_price"`
	Total      int64  `json:"total"`
}

// Order is a live record in the orders collection. Items preserve add order
// because they are rendered that way. Total_amount always equals the sum of
// the item totals.
type Order struct {
	ID            primitive.ObjectID `bson:"_id" json:"-"`
	Order_id      string             `json:"order_id"`
	Customer_name string             `json:"customer_name" validate:"required"`
	Address       string             `json:"address" validate:"required"`
	Phone         string             `json:"phone" validate:"required"`
	User_id       string             `json:"user_id"`
	Items         []LineItem         `json:"items"`
	Total_amount  int64              `json:"total_amount"`
	Status        string             `json:"status" validate:"required,eq=Waiting|eq=Processing|eq=Completed"`
	Created_at    time.Time          `json:"created_at"`
}

// ArchivedOrder is an order migrated into the historyOrders collection.
// Identifying fields are preserved unchanged so owner lookups still resolve.
type ArchivedOrder struct {
	Order      `bson:",inline"`
	Cleared_at time.Time `json:"cleared_at"`
}
