package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "waiterboard/internal/api/http"
	"waiterboard/internal/backend"
	"waiterboard/internal/mocks"
	"waiterboard/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(mockBoard *mocks.BoardServiceInterface) *mux.Router {
	handler := httpapi.NewHandler(mockBoard)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_serve(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(*mocks.BoardServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			prepareMocks: func(m *mocks.BoardServiceInterface) {
				m.On("Serve", mock.Anything, "42").Return(nil).Once()
				m.On("Board").Return(service.BoardView{Connected: true}).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"connected":true`,
		},
		{
			name: "unknown_order",
			prepareMocks: func(m *mocks.BoardServiceInterface) {
				m.On("Serve", mock.Anything, "42").Return(service.ErrUnknownOrder).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "not_ready",
			prepareMocks: func(m *mocks.BoardServiceInterface) {
				m.On("Serve", mock.Anything, "42").Return(service.ErrNotReady).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "assigned_elsewhere",
			prepareMocks: func(m *mocks.BoardServiceInterface) {
				m.On("Serve", mock.Anything, "42").Return(service.ErrAssignedElsewhere).Once()
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "action_in_flight",
			prepareMocks: func(m *mocks.BoardServiceInterface) {
				m.On("Serve", mock.Anything, "42").Return(service.ErrActionInFlight).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "backend_rejection_passed_through",
			prepareMocks: func(m *mocks.BoardServiceInterface) {
				m.On("Serve", mock.Anything, "42").
					Return(&backend.DomainError{Code: 422, Message: "kitchen says no"}).Once()
			},
			expectedCode: 422,
			expectedBody: "kitchen says no",
		},
		{
			name: "transport_error_is_bad_gateway",
			prepareMocks: func(m *mocks.BoardServiceInterface) {
				m.On("Serve", mock.Anything, "42").Return(assert.AnError).Once()
			},
			expectedCode: http.StatusBadGateway,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockBoard := mocks.NewBoardServiceInterface(t)
			router := setupTestRouter(mockBoard)
			testCase.prepareMocks(mockBoard)

			req := httptest.NewRequest("POST", "/api/orders/42/serve", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_transfer(t *testing.T) {
	mockBoard := mocks.NewBoardServiceInterface(t)
	router := setupTestRouter(mockBoard)

	mockBoard.On("Transfer", mock.Anything, "7", "room 12").Return(nil).Once()
	mockBoard.On("Board").Return(service.BoardView{}).Once()

	body := bytes.NewBufferString(`{"location":"room 12"}`)
	req := httptest.NewRequest("POST", "/api/orders/7/transfer", body)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_transfer_invalidJSON(t *testing.T) {
	mockBoard := mocks.NewBoardServiceInterface(t)
	router := setupTestRouter(mockBoard)

	req := httptest.NewRequest("POST", "/api/orders/7/transfer", bytes.NewBufferString("bad json"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockBoard.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_submitPayment(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(*mocks.BoardServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"method":"cash","amount":20}`,
			prepareMocks: func(m *mocks.BoardServiceInterface) {
				m.On("SubmitPayment", mock.Anything, "5", mock.Anything).
					Return(service.PaymentView{OrderID: "5", State: service.PaymentSucceeded}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"state":"succeeded"`,
		},
		{
			name:    "validation_failure_stays_editing",
			payload: `{"method":"mpesa"}`,
			prepareMocks: func(m *mocks.BoardServiceInterface) {
				m.On("SubmitPayment", mock.Anything, "5", mock.Anything).
					Return(service.PaymentView{
						OrderID: "5",
						State:   service.PaymentEditing,
						Error:   service.ErrPhoneRequired.Error(),
					}, service.ErrPhoneRequired).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "phone",
		},
		{
			name:    "no_open_payment",
			payload: `{"method":"cash"}`,
			prepareMocks: func(m *mocks.BoardServiceInterface) {
				m.On("SubmitPayment", mock.Anything, "5", mock.Anything).
					Return(service.PaymentView{}, service.ErrNoPayment).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockBoard := mocks.NewBoardServiceInterface(t)
			router := setupTestRouter(mockBoard)
			testCase.prepareMocks(mockBoard)

			req := httptest.NewRequest("POST", "/api/orders/5/payment/submit",
				bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_boardAndFeedControls(t *testing.T) {
	mockBoard := mocks.NewBoardServiceInterface(t)
	router := setupTestRouter(mockBoard)

	mockBoard.On("Board").Return(service.BoardView{NewOrders: 2}).Once()
	req := httptest.NewRequest("GET", "/api/board", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"new_orders":2`)

	mockBoard.On("Acknowledge").Once()
	req = httptest.NewRequest("POST", "/api/board/acknowledge", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	mockBoard.On("SetMuted", true).Once()
	req = httptest.NewRequest("PUT", "/api/board/mute", bytes.NewBufferString(`{"muted":true}`))
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_payCode(t *testing.T) {
	mockBoard := mocks.NewBoardServiceInterface(t)
	router := setupTestRouter(mockBoard)

	mockBoard.On("PayCode", "9").Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	req := httptest.NewRequest("GET", "/api/orders/9/paycode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}
