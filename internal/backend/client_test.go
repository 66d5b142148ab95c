package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waiterboard/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testOrder(id string) domain.Order {
	return domain.Order{
		ID:            id,
		Number:        "ORD-" + id,
		Status:        domain.StatusReady,
		LocationType:  domain.LocationTable,
		LocationLabel: "T3",
		TotalAmount:   45.5,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func TestClient_FetchActiveOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "active", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode([]domain.Order{testOrder("1"), testOrder("2")})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	orders, err := client.FetchActiveOrders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "1", orders[0].ID)
}

func TestClient_FetchActiveOrders_MalformedOrderRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Missing id: fails boundary validation.
		json.NewEncoder(w).Encode([]map[string]interface{}{{"status": "ready"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.FetchActiveOrders(context.Background())

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Message, "malformed")
}

func TestClient_UpdateStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/orders/1/status", r.URL.Path)

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "served", body["status"])

		updated := testOrder("1")
		updated.Status = domain.StatusServed
		json.NewEncoder(w).Encode(updated)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	order, err := client.UpdateStatus(context.Background(), "1", domain.StatusServed)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusServed, order.Status)
}

func TestClient_DomainErrorSurfacedVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "order already served"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.UpdateStatus(context.Background(), "1", domain.StatusServed)

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, http.StatusConflict, domainErr.Code)
	assert.Equal(t, "order already served", domainErr.Message)
}

func TestClient_ServerErrorIsNotDomainError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.FetchActiveOrders(context.Background())

	assert.Error(t, err)
	var domainErr *DomainError
	assert.False(t, errors.As(err, &domainErr))
}

func TestClient_TransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil)
	_, err := client.FetchActiveOrders(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestClient_RecordPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/order-payments", r.URL.Path)

		var req domain.PaymentRequest
		json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, domain.MethodMpesa, req.Method)
		assert.Equal(t, "0712000000", req.MpesaPhone)

		json.NewEncoder(w).Encode(domain.PaymentResult{Success: true, Message: "payment recorded"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	result, err := client.RecordPayment(context.Background(), domain.PaymentRequest{
		OrderID:    "1",
		Method:     domain.MethodMpesa,
		Amount:     45.5,
		MpesaPhone: "0712000000",
	})
	assert.NoError(t, err)
	assert.True(t, result.Success)
}
