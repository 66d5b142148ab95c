package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"waiterboard/internal/domain"
	"waiterboard/internal/reconcile"
)

var (
	ErrUnknownOrder      = errors.New("order not found on this board")
	ErrNotReady          = errors.New("order is not ready to serve")
	ErrNotServed         = errors.New("order has not been served yet")
	ErrAssignedElsewhere = errors.New("order is assigned to another staff member")
	ErrActionInFlight    = errors.New("an action for this order is already in progress")
	ErrEmptyLocation     = errors.New("a destination table or room is required")
	ErrNoPayment         = errors.New("no open payment for this order")
)

type OrderView struct {
	domain.Order
	Mine    bool     `json:"mine"`
	Actions []string `json:"actions"`
}

type BoardView struct {
	Orders    []OrderView `json:"orders"`
	Connected bool        `json:"connected"`
	NewOrders int64       `json:"new_orders"`
	Muted     bool        `json:"muted"`
}

// BoardService owns one station's order board: the reconciled local set, the
// staff actions against it, and the open payment flows. One instance per
// station process.
type BoardService struct {
	backend   OrdersBackend
	set       *reconcile.OrderSet
	feed      FeedStatus
	journal   ActionJournal
	markers   PaymentMarkers
	publisher ActivityPublisher
	paycode   PayCodeGenerator
	staffID   string

	mu         sync.Mutex
	inflight   map[string]bool
	payments   map[string]*PaymentFlow
	generation uint64
}

func NewBoardService(
	ordersBackend OrdersBackend,
	set *reconcile.OrderSet,
	feed FeedStatus,
	journal ActionJournal,
	markers PaymentMarkers,
	publisher ActivityPublisher,
	paycode PayCodeGenerator,
	staffID string,
) *BoardService {
	return &BoardService{
		backend:   ordersBackend,
		set:       set,
		feed:      feed,
		journal:   journal,
		markers:   markers,
		publisher: publisher,
		paycode:   paycode,
		staffID:   staffID,
		inflight:  make(map[string]bool),
		payments:  make(map[string]*PaymentFlow),
	}
}

// ApplyEvent feeds one incremental update into the local set. Wired as the
// event feed's delivery callback.
func (b *BoardService) ApplyEvent(event domain.OrderEvent) {
	b.set.Apply(event.Order)
}

// Refresh replaces the local set with a fresh backend snapshot. A generation
// counter discards responses that lost the race against a newer refresh, so a
// slow fetch can never clobber newer state.
func (b *BoardService) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.generation++
	generation := b.generation
	b.mu.Unlock()

	orders, err := b.backend.FetchActiveOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	b.mu.Lock()
	stale := generation != b.generation
	b.mu.Unlock()
	if stale {
		return nil
	}

	b.set.ApplySnapshot(orders)
	b.prunePayments()
	return nil
}

// prunePayments drops open payment flows whose order left the board
// (paid elsewhere, cancelled, or reassigned away).
func (b *BoardService) prunePayments() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id := range b.payments {
		if _, ok := b.set.Get(id); !ok {
			delete(b.payments, id)
		}
	}
}

func (b *BoardService) Board() BoardView {
	orders := b.set.Ordered()
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, OrderView{
			Order:   order,
			Mine:    order.AssignedTo(b.staffID),
			Actions: b.allowedActions(order),
		})
	}
	return BoardView{
		Orders:    views,
		Connected: b.feed.Connected(),
		NewOrders: b.feed.PendingNew(),
		Muted:     b.feed.Muted(),
	}
}

func (b *BoardService) allowedActions(order domain.Order) []string {
	if !order.AssignedTo(b.staffID) {
		return nil
	}
	switch order.Status {
	case domain.StatusReady:
		return []string{"serve", "transfer"}
	case domain.StatusServed:
		return []string{"pay", "transfer", "paycode"}
	default:
		return []string{"transfer"}
	}
}

// Serve moves a ready order to served and re-fetches the board.
func (b *BoardService) Serve(ctx context.Context, orderID string) error {
	order, err := b.guard(orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.StatusReady {
		return ErrNotReady
	}
	if err := b.begin(orderID); err != nil {
		return err
	}
	defer b.end(orderID)

	if _, err := b.backend.UpdateStatus(ctx, orderID, domain.StatusServed); err != nil {
		return err
	}

	b.journalAction(ctx, domain.ActionRecord{
		Action: domain.ActionServe, OrderID: orderID, StaffID: b.staffID,
	})
	b.publishActivity(ctx, domain.ActivityMessage{
		Type: domain.ActivityOrderServed, OrderID: orderID, StaffID: b.staffID,
		Location: order.LocationLabel, Timestamp: time.Now().UTC(),
	})
	return b.Refresh(ctx)
}

// Transfer moves an order to another table or room. Status is untouched.
func (b *BoardService) Transfer(ctx context.Context, orderID, location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrEmptyLocation
	}
	if _, err := b.guard(orderID); err != nil {
		return err
	}
	if err := b.begin(orderID); err != nil {
		return err
	}
	defer b.end(orderID)

	if _, err := b.backend.Transfer(ctx, orderID, location); err != nil {
		return err
	}

	b.journalAction(ctx, domain.ActionRecord{
		Action: domain.ActionTransfer, OrderID: orderID, StaffID: b.staffID,
	})
	b.publishActivity(ctx, domain.ActivityMessage{
		Type: domain.ActivityOrderTransferred, OrderID: orderID, StaffID: b.staffID,
		Location: location, Timestamp: time.Now().UTC(),
	})
	return b.Refresh(ctx)
}

// OpenPayment starts (or resumes) the checkout flow for a served order.
func (b *BoardService) OpenPayment(orderID string) (PaymentView, error) {
	order, err := b.guard(orderID)
	if err != nil {
		return PaymentView{}, err
	}
	if order.Status != domain.StatusServed {
		return PaymentView{}, ErrNotServed
	}

	b.mu.Lock()
	flow, ok := b.payments[orderID]
	if !ok {
		flow = NewPaymentFlow(order)
		b.payments[orderID] = flow
	}
	b.mu.Unlock()
	return flow.View(), nil
}

func (b *BoardService) PaymentState(orderID string) (PaymentView, error) {
	flow, err := b.payment(orderID)
	if err != nil {
		return PaymentView{}, err
	}
	return flow.View(), nil
}

// SubmitPayment applies the operator's input and submits the attempt. On
// success the flow is discarded and the board re-fetched, which drops the
// order from the awaiting-payment bucket.
func (b *BoardService) SubmitPayment(ctx context.Context, orderID string, input PaymentInput) (PaymentView, error) {
	flow, err := b.payment(orderID)
	if err != nil {
		return PaymentView{}, err
	}
	if err := b.begin(orderID); err != nil {
		return flow.View(), err
	}
	defer b.end(orderID)

	if err := flow.Edit(input); err != nil {
		return flow.View(), err
	}
	if err := flow.Submit(ctx, b.backend, b.markers); err != nil {
		return flow.View(), err
	}

	req := flow.Request()
	b.journalAction(ctx, domain.ActionRecord{
		Action: domain.ActionPayment, OrderID: orderID, StaffID: b.staffID,
		Amount: req.Amount, Method: string(req.Method),
	})
	b.publishActivity(ctx, domain.ActivityMessage{
		Type: domain.ActivityPaymentRecorded, OrderID: orderID, StaffID: b.staffID,
		Amount: req.Amount, Method: string(req.Method), Timestamp: time.Now().UTC(),
	})

	view := flow.View()
	b.mu.Lock()
	delete(b.payments, orderID)
	b.mu.Unlock()

	if err := b.Refresh(ctx); err != nil {
		log.Printf("Refresh after payment failed: %v", err)
	}
	return view, nil
}

// payment looks up the open flow for an order.
func (b *BoardService) payment(orderID string) (*PaymentFlow, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	flow, ok := b.payments[orderID]
	if !ok {
		return nil, ErrNoPayment
	}
	return flow, nil
}

func (b *BoardService) CancelPayment(orderID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.payments[orderID]; !ok {
		return ErrNoPayment
	}
	delete(b.payments, orderID)
	return nil
}

// PayCode renders the guest-facing payment QR for a served order.
func (b *BoardService) PayCode(orderID string) ([]byte, error) {
	order, ok := b.set.Get(orderID)
	if !ok {
		return nil, ErrUnknownOrder
	}
	if order.Status != domain.StatusServed {
		return nil, ErrNotServed
	}
	return b.paycode.Generate(orderID)
}

func (b *BoardService) Acknowledge() { b.feed.Acknowledge() }

func (b *BoardService) SetMuted(muted bool) { b.feed.SetMuted(muted) }

func (b *BoardService) ShiftSummary(ctx context.Context) (domain.ShiftSummary, error) {
	return b.journal.Summary(ctx, b.staffID)
}

// guard checks the order exists and is actionable by this station's staff
// member. Orders assigned elsewhere stay visible but read-only; the backend
// still enforces authorization on its side.
func (b *BoardService) guard(orderID string) (domain.Order, error) {
	order, ok := b.set.Get(orderID)
	if !ok {
		return domain.Order{}, ErrUnknownOrder
	}
	if !order.AssignedTo(b.staffID) {
		return domain.Order{}, ErrAssignedElsewhere
	}
	return order, nil
}

// begin serializes mutating actions per order id so a double click cannot
// reach the backend twice.
func (b *BoardService) begin(orderID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.inflight[orderID] {
		return ErrActionInFlight
	}
	b.inflight[orderID] = true
	return nil
}

func (b *BoardService) end(orderID string) {
	b.mu.Lock()
	delete(b.inflight, orderID)
	b.mu.Unlock()
}

func (b *BoardService) journalAction(ctx context.Context, record domain.ActionRecord) {
	if b.journal == nil {
		return
	}
	if err := b.journal.RecordAction(ctx, record); err != nil {
		log.Printf("Warning: failed to journal %s for order %s: %v", record.Action, record.OrderID, err)
	}
}

func (b *BoardService) publishActivity(ctx context.Context, msg domain.ActivityMessage) {
	if b.publisher == nil {
		return
	}
	if err := b.publisher.PublishActivity(ctx, msg); err != nil {
		log.Printf("Warning: failed to publish %s for order %s: %v", msg.Type, msg.OrderID, err)
	}
}
