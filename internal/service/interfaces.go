package service

import (
	"context"

	"waiterboard/internal/backend"
	"waiterboard/internal/channel"
	"waiterboard/internal/domain"
	"waiterboard/internal/storage"
)

type OrdersBackend interface {
	FetchActiveOrders(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Order, error)
	Transfer(ctx context.Context, id, location string) (domain.Order, error)
	RecordPayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResult, error)
}

type ActionJournal interface {
	RecordAction(ctx context.Context, record domain.ActionRecord) error
	Summary(ctx context.Context, staffID string) (domain.ShiftSummary, error)
}

type PaymentMarkers interface {
	PaymentMarkerKey(orderID string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type ActivityPublisher interface {
	PublishActivity(ctx context.Context, msg domain.ActivityMessage) error
}

type PayCodeGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// FeedStatus is the slice of the order event feed the board exposes to staff.
type FeedStatus interface {
	Connected() bool
	PendingNew() int64
	Acknowledge()
	SetMuted(muted bool)
	Muted() bool
}

type BoardServiceInterface interface {
	Board() BoardView
	Refresh(ctx context.Context) error
	Serve(ctx context.Context, orderID string) error
	Transfer(ctx context.Context, orderID, location string) error
	OpenPayment(orderID string) (PaymentView, error)
	PaymentState(orderID string) (PaymentView, error)
	SubmitPayment(ctx context.Context, orderID string, input PaymentInput) (PaymentView, error)
	CancelPayment(orderID string) error
	PayCode(orderID string) ([]byte, error)
	Acknowledge()
	SetMuted(muted bool)
	ShiftSummary(ctx context.Context) (domain.ShiftSummary, error)
}

var _ OrdersBackend = (*backend.Client)(nil)
var _ ActionJournal = (*storage.PostgresJournal)(nil)
var _ PaymentMarkers = (*storage.RedisMarkers)(nil)
var _ ActivityPublisher = (*storage.KafkaPublisher)(nil)
var _ FeedStatus = (*channel.Feed)(nil)
var _ BoardServiceInterface = (*BoardService)(nil)
