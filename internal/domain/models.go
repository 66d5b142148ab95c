package domain

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusServed    Status = "served"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusServed, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses drop out of the active board.
func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// Bucket ranks statuses for display: ready orders first, then in-progress,
// then orders awaiting payment.
func (s Status) Bucket() int {
	switch s {
	case StatusReady:
		return 0
	case StatusPending, StatusConfirmed, StatusPreparing:
		return 1
	case StatusServed:
		return 2
	}
	return 3
}

type LocationType string

const (
	LocationTable LocationType = "table"
	LocationRoom  LocationType = "room"
)

type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type Order struct {
	ID            string       `json:"id"`
	Number        string       `json:"order_number"`
	Status        Status       `json:"status"`
	LocationType  LocationType `json:"location_type"`
	LocationLabel string       `json:"location_label"`
	Items         []OrderItem  `json:"items"`
	TotalAmount   float64      `json:"total_amount"`
	Instructions  string       `json:"special_instructions,omitempty"`
	WaiterID      string       `json:"waiter_id,omitempty"`
	ChefID        string       `json:"chef_id,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

var (
	ErrMissingOrderID  = errors.New("order is missing an id")
	ErrInvalidStatus   = errors.New("order has an unknown status")
	ErrInvalidLocation = errors.New("order has an unknown location type")
	ErrNegativeAmount  = errors.New("order total amount is negative")
)

// Validate rejects malformed payloads at the API boundary before they reach
// the local order set.
func (o *Order) Validate() error {
	if o.ID == "" {
		return ErrMissingOrderID
	}
	if !o.Status.Valid() {
		return ErrInvalidStatus
	}
	if o.LocationType != LocationTable && o.LocationType != LocationRoom {
		return ErrInvalidLocation
	}
	if o.TotalAmount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// AssignedTo reports whether the order belongs to the given staff member.
// Unassigned orders belong to everyone.
func (o *Order) AssignedTo(staffID string) bool {
	return o.WaiterID == "" || o.WaiterID == staffID
}

const (
	EventNewOrder     = "new_order"
	EventStatusChange = "status_change"
)

type OrderEvent struct {
	Type  string `json:"event_type"`
	Order Order  `json:"order"`
}
