package domain

import "time"

type PaymentMethod string

const (
	MethodCash       PaymentMethod = "cash"
	MethodMpesa      PaymentMethod = "mpesa"
	MethodCard       PaymentMethod = "card"
	MethodRoomCharge PaymentMethod = "room_charge"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodMpesa, MethodCard, MethodRoomCharge:
		return true
	}
	return false
}

// PaymentRequest is the body of POST /order-payments on the platform backend.
type PaymentRequest struct {
	OrderID       string        `json:"order_id"`
	Method        PaymentMethod `json:"payment_method"`
	Amount        float64       `json:"amount"`
	MpesaPhone    string        `json:"mpesa_phone,omitempty"`
	CardReference string        `json:"card_reference,omitempty"`
	RoomNumber    string        `json:"room_number,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

type PaymentResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ActionRecord is one journaled staff action (serve, transfer, payment).
type ActionRecord struct {
	ID        int       `json:"id"`
	Action    string    `json:"action"`
	OrderID   string    `json:"order_id"`
	StaffID   string    `json:"staff_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	ActionServe    = "serve"
	ActionTransfer = "transfer"
	ActionPayment  = "payment"
)

// ShiftSummary is the end-of-shift roll-up for one staff member.
type ShiftSummary struct {
	StaffID        string             `json:"staff_id"`
	OrdersServed   int                `json:"orders_served"`
	Transfers      int                `json:"transfers"`
	PaymentsTaken  int                `json:"payments_taken"`
	TotalCollected float64            `json:"total_collected"`
	ByMethod       map[string]float64 `json:"by_method"`
}

// ActivityMessage is emitted to the platform event bus whenever the station
// completes a staff action, so downstream services (kitchen display,
// reporting) stay current.
type ActivityMessage struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	StaffID   string    `json:"staff_id"`
	Amount    float64   `json:"amount,omitempty"`
	Method    string    `json:"method,omitempty"`
	Location  string    `json:"location,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	ActivityOrderServed      = "order_served"
	ActivityOrderTransferred = "order_transferred"
	ActivityPaymentRecorded  = "payment_recorded"
)
