package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"waiterboard/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DomainError is a 4xx rejection from the platform backend. Its message is
// shown to the user verbatim.
type DomainError struct {
	Code    int
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// Client wraps the platform's order REST API. It shapes requests and parses
// responses; it holds no state and performs no retries.
type Client struct {
	baseURL string
	http    HTTPClient
}

func NewClient(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) FetchActiveOrders(ctx context.Context) ([]domain.Order, error) {
	q := url.Values{}
	q.Set("status", "active")
	q.Set("limit", "200")

	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders?"+q.Encode(), nil, &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		if err := orders[i].Validate(); err != nil {
			return nil, &DomainError{Code: http.StatusBadGateway,
				Message: fmt.Sprintf("backend returned a malformed order: %v", err)}
		}
	}
	return orders, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Order, error) {
	body := map[string]domain.Status{"status": status}
	var order domain.Order
	if err := c.do(ctx, http.MethodPatch, "/api/orders/"+id+"/status", body, &order); err != nil {
		return domain.Order{}, err
	}
	if err := order.Validate(); err != nil {
		return domain.Order{}, &DomainError{Code: http.StatusBadGateway,
			Message: fmt.Sprintf("backend returned a malformed order: %v", err)}
	}
	return order, nil
}

func (c *Client) Transfer(ctx context.Context, id, location string) (domain.Order, error) {
	body := map[string]string{"location": location}
	var order domain.Order
	if err := c.do(ctx, http.MethodPatch, "/api/orders/"+id, body, &order); err != nil {
		return domain.Order{}, err
	}
	if err := order.Validate(); err != nil {
		return domain.Order{}, &DomainError{Code: http.StatusBadGateway,
			Message: fmt.Sprintf("backend returned a malformed order: %v", err)}
	}
	return order, nil
}

func (c *Client) RecordPayment(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResult, error) {
	var result domain.PaymentResult
	if err := c.do(ctx, http.MethodPost, "/api/order-payments", req, &result); err != nil {
		return domain.PaymentResult{}, err
	}
	return result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode >= 500 {
		return fmt.Errorf("backend error: status %d", resp.StatusCode)
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	message := ""
	if err := json.Unmarshal(raw, &payload); err == nil {
		message = payload.Message
		if message == "" {
			message = payload.Error
		}
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return &DomainError{Code: resp.StatusCode, Message: message}
}
