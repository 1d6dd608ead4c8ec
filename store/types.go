// Package store holds the catalog types baked into the storefront binary.
package store

import (
	"const-generator/container"
	"const-generator/netaddr"
)

//go:generate go run const-generator/cmd/constgen derive .

// Product is an item available for sale.
// Prices are in cents to avoid floating-point errors.
//
//constgen:derive
type Product struct {
	ID         int64
	SKU        string `const:"sku"`
	Name       string
	PriceCents int64
	Tags       []string
	Status     OrderStatus
	Discount   container.Option[uint8]
}

// Money is an amount in cents and its currency code.
//
//constgen:derive tuple
type Money struct {
	Cents    int64
	Currency string
}

// OrderItem is a product line within an order. It snapshots the price at
// the time of purchase.
//
//constgen:derive name=LineItem
type OrderItem struct {
	ProductID int64
	Quantity  uint32
	UnitPrice Money
	Internal  string `const:"-"`
}

// Depot is a warehouse serving orders over the network.
//
//constgen:derive
type Depot struct {
	Code  string
	Addr  netaddr.SocketAddr
	Stock map[string]uint32
	Type  string
}

// Closed marks a store without any depot.
//
//constgen:derive
type Closed struct{}

// OrderStatus is the lifecycle state of an order.
//
//constgen:enum name=Status
type OrderStatus interface {
	isOrderStatus()
}

//constgen:variant name=Pending
type StatusPending struct{}

//constgen:variant tuple name=Paid
type StatusPaid struct {
	AmountCents int64
}

//constgen:variant name=Shipped
type StatusShipped struct {
	Carrier  string
	Tracking string `const:"tracking_id"`
}

func (StatusPending) isOrderStatus() {}
func (StatusPaid) isOrderStatus()    {}
func (StatusShipped) isOrderStatus() {}
