package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"

	"waiterboard/internal/backend"
	"waiterboard/internal/domain"
)

type PaymentState string

const (
	PaymentEditing    PaymentState = "editing"
	PaymentSubmitting PaymentState = "submitting"
	PaymentSucceeded  PaymentState = "succeeded"
	PaymentFailed     PaymentState = "failed"
)

var (
	ErrInvalidMethod     = errors.New("unknown payment method")
	ErrInvalidAmount     = errors.New("amount must be a positive number")
	ErrPhoneRequired     = errors.New("mpesa payments require a phone number")
	ErrReferenceRequired = errors.New("card payments require a reference code")
	ErrRoomRequired      = errors.New("room charge is only available for room orders")
	ErrSubmitInFlight    = errors.New("payment submission already in progress")
	ErrPaymentSettled    = errors.New("payment already succeeded")
	ErrDuplicatePayment  = errors.New("a payment for this order was already submitted")
)

// PaymentInput is the operator-editable part of a payment attempt. A nil
// amount keeps the current value (which defaults to the order total).
type PaymentInput struct {
	Method        domain.PaymentMethod `json:"method"`
	Amount        *float64             `json:"amount,omitempty"`
	MpesaPhone    string               `json:"mpesa_phone,omitempty"`
	CardReference string               `json:"card_reference,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

type PaymentView struct {
	OrderID string               `json:"order_id"`
	State   PaymentState         `json:"state"`
	Method  domain.PaymentMethod `json:"method"`
	Amount  float64              `json:"amount"`
	Error   string               `json:"error,omitempty"`
}

// PaymentFlow is the bounded checkout interaction for one served order:
// editing -> submitting -> succeeded | failed, with failed returning to
// editing on the next operator input. All retries are operator-initiated.
type PaymentFlow struct {
	mu        sync.Mutex
	order     domain.Order
	method    domain.PaymentMethod
	amount    float64
	phone     string
	reference string
	notes     string
	state     PaymentState
	lastError string
}

func NewPaymentFlow(order domain.Order) *PaymentFlow {
	return &PaymentFlow{
		order:  order,
		method: domain.MethodCash,
		amount: order.TotalAmount,
		state:  PaymentEditing,
	}
}

func (f *PaymentFlow) View() PaymentView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return PaymentView{
		OrderID: f.order.ID,
		State:   f.state,
		Method:  f.method,
		Amount:  f.amount,
		Error:   f.lastError,
	}
}

// Edit applies operator input. Editing after a failure clears the failed
// state; editing while a submission is in flight or settled is refused.
func (f *PaymentFlow) Edit(input PaymentInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case PaymentSubmitting:
		return ErrSubmitInFlight
	case PaymentSucceeded:
		return ErrPaymentSettled
	case PaymentFailed:
		f.state = PaymentEditing
	}

	if input.Method != "" {
		if !input.Method.Valid() {
			return ErrInvalidMethod
		}
		f.method = input.Method
	}
	if input.Amount != nil {
		f.amount = *input.Amount
	}
	f.phone = strings.TrimSpace(input.MpesaPhone)
	f.reference = strings.TrimSpace(input.CardReference)
	f.notes = input.Notes
	return nil
}

func (f *PaymentFlow) validateLocked() error {
	if math.IsNaN(f.amount) || math.IsInf(f.amount, 0) || f.amount <= 0 {
		return ErrInvalidAmount
	}
	switch f.method {
	case domain.MethodMpesa:
		if f.phone == "" {
			return ErrPhoneRequired
		}
	case domain.MethodCard:
		if f.reference == "" {
			return ErrReferenceRequired
		}
	case domain.MethodRoomCharge:
		// The room number comes from the order, never from the operator.
		if f.order.LocationType != domain.LocationRoom || f.order.LocationLabel == "" {
			return ErrRoomRequired
		}
	}
	return nil
}

func (f *PaymentFlow) requestLocked() domain.PaymentRequest {
	req := domain.PaymentRequest{
		OrderID: f.order.ID,
		Method:  f.method,
		Amount:  f.amount,
		Notes:   f.notes,
	}
	switch f.method {
	case domain.MethodMpesa:
		req.MpesaPhone = f.phone
	case domain.MethodCard:
		req.CardReference = f.reference
	case domain.MethodRoomCharge:
		req.RoomNumber = f.order.LocationLabel
	}
	return req
}

// Submit validates and sends the payment. Validation failures keep the flow
// in editing; a rejected or failed submission moves it to failed with the
// message retained for display.
func (f *PaymentFlow) Submit(ctx context.Context, payments OrdersBackend, markers PaymentMarkers) error {
	f.mu.Lock()
	switch f.state {
	case PaymentSubmitting:
		f.mu.Unlock()
		return ErrSubmitInFlight
	case PaymentSucceeded:
		f.mu.Unlock()
		return ErrPaymentSettled
	case PaymentFailed:
		f.state = PaymentEditing
	}

	if err := f.validateLocked(); err != nil {
		f.lastError = err.Error()
		f.mu.Unlock()
		return err
	}
	f.state = PaymentSubmitting
	f.lastError = ""
	req := f.requestLocked()
	f.mu.Unlock()

	key := markers.PaymentMarkerKey(f.order.ID)
	if exists, _ := markers.Exists(ctx, key); exists {
		f.fail(ErrDuplicatePayment.Error())
		return ErrDuplicatePayment
	}

	result, err := payments.RecordPayment(ctx, req)
	if err != nil {
		var domainErr *backend.DomainError
		if errors.As(err, &domainErr) {
			f.fail(domainErr.Message)
		} else {
			f.fail("failed to submit payment")
		}
		return err
	}
	if !result.Success {
		f.fail(result.Message)
		return &backend.DomainError{Code: 422, Message: result.Message}
	}

	_ = markers.SetMarker(ctx, key)

	f.mu.Lock()
	f.state = PaymentSucceeded
	f.mu.Unlock()
	return nil
}

func (f *PaymentFlow) fail(message string) {
	f.mu.Lock()
	f.state = PaymentFailed
	f.lastError = message
	f.mu.Unlock()
}

func (f *PaymentFlow) State() PaymentState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *PaymentFlow) Request() domain.PaymentRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requestLocked()
}
