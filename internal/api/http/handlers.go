package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"waiterboard/internal/backend"
	"waiterboard/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Board service.BoardServiceInterface
}

func NewHandler(board service.BoardServiceInterface) *Handler {
	return &Handler{Board: board}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")
	r.HandleFunc("/api/board", h.getBoard).Methods("GET")
	r.HandleFunc("/api/board/refresh", h.refresh).Methods("POST")
	r.HandleFunc("/api/board/acknowledge", h.acknowledge).Methods("POST")
	r.HandleFunc("/api/board/mute", h.mute).Methods("PUT")
	r.HandleFunc("/api/orders/{orderId}/serve", h.serve).Methods("POST")
	r.HandleFunc("/api/orders/{orderId}/transfer", h.transfer).Methods("POST")
	r.HandleFunc("/api/orders/{orderId}/payment", h.openPayment).Methods("POST")
	r.HandleFunc("/api/orders/{orderId}/payment", h.paymentState).Methods("GET")
	r.HandleFunc("/api/orders/{orderId}/payment", h.cancelPayment).Methods("DELETE")
	r.HandleFunc("/api/orders/{orderId}/payment/submit", h.submitPayment).Methods("POST")
	r.HandleFunc("/api/orders/{orderId}/paycode", h.payCode).Methods("GET")
	r.HandleFunc("/api/shift/summary", h.shiftSummary).Methods("GET")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "healthy", "service": "waiter-board"})
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Board.Board())
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Board.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, h.Board.Board())
}

func (h *Handler) acknowledge(w http.ResponseWriter, r *http.Request) {
	h.Board.Acknowledge()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) mute(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Muted bool `json:"muted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Board.SetMuted(payload.Muted)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	if err := h.Board.Serve(r.Context(), orderID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, h.Board.Board())
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	var payload struct {
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Board.Transfer(r.Context(), orderID, payload.Location); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, h.Board.Board())
}

func (h *Handler) openPayment(w http.ResponseWriter, r *http.Request) {
	view, err := h.Board.OpenPayment(mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) paymentState(w http.ResponseWriter, r *http.Request) {
	view, err := h.Board.PaymentState(mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, view)
}

func (h *Handler) submitPayment(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	var input service.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := h.Board.SubmitPayment(r.Context(), orderID, input)
	if err != nil {
		if view.OrderID == "" {
			writeError(w, err)
		} else {
			writeErrorWithView(w, err, view)
		}
		return
	}
	writeJSON(w, view)
}

func (h *Handler) cancelPayment(w http.ResponseWriter, r *http.Request) {
	if err := h.Board.CancelPayment(mux.Vars(r)["orderId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) payCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Board.PayCode(mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) shiftSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Board.ShiftSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, summary)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeError maps guard failures to 4xx, backend rejections to their own
// status and message, and everything else (transport) to 502.
func writeError(w http.ResponseWriter, err error) {
	writeErrorWithView(w, err, nil)
}

func writeErrorWithView(w http.ResponseWriter, err error, view interface{}) {
	code := http.StatusBadGateway
	message := "failed to reach the order backend"

	var domainErr *backend.DomainError
	switch {
	case errors.As(err, &domainErr):
		code = domainErr.Code
		message = domainErr.Message
	case errors.Is(err, service.ErrUnknownOrder) || errors.Is(err, service.ErrNoPayment):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, service.ErrActionInFlight) ||
		errors.Is(err, service.ErrSubmitInFlight) ||
		errors.Is(err, service.ErrDuplicatePayment) ||
		errors.Is(err, service.ErrPaymentSettled):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, service.ErrNotReady) ||
		errors.Is(err, service.ErrNotServed) ||
		errors.Is(err, service.ErrEmptyLocation) ||
		errors.Is(err, service.ErrInvalidMethod) ||
		errors.Is(err, service.ErrInvalidAmount) ||
		errors.Is(err, service.ErrPhoneRequired) ||
		errors.Is(err, service.ErrReferenceRequired) ||
		errors.Is(err, service.ErrRoomRequired):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrAssignedElsewhere):
		code = http.StatusForbidden
		message = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	body := map[string]interface{}{"message": message}
	if view != nil {
		body["payment"] = view
	}
	json.NewEncoder(w).Encode(body)
}
