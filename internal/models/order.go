package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusReceived OrderStatus = "Received"
	OrderStatusPaid     OrderStatus = "Paid"
)

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	MobileNumber string             `bson:"mobileNumber" json:"mobileNumber"`
	Address      string             `bson:"address" json:"address"`
	ProductName  string             `bson:"productName" json:"productName"`
	TotalAmount  float64            `bson:"totalAmount" json:"totalAmount"`
	Status       OrderStatus        `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// CheckoutRequest is the fake payment form: who the order is for and where it
// ships. The amount always comes from the cart, never from the client.
type CheckoutRequest struct {
	Name         string `form:"name" validate:"required"`
	MobileNumber string `form:"mobileNumber" validate:"required"`
	Address      string `form:"address" validate:"required"`
}
