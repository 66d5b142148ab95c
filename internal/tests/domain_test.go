package tests

import (
	"testing"

	"waiterboard/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Buckets(t *testing.T) {
	// Ready orders sort before in-progress, which sort before awaiting payment.
	assert.Less(t, domain.StatusReady.Bucket(), domain.StatusPending.Bucket())
	assert.Less(t, domain.StatusPending.Bucket(), domain.StatusServed.Bucket())
	assert.Equal(t, domain.StatusPending.Bucket(), domain.StatusPreparing.Bucket())
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, domain.StatusPaid.Terminal())
	assert.True(t, domain.StatusCancelled.Terminal())
	assert.False(t, domain.StatusServed.Terminal())
}

func TestOrder_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*domain.Order)
		expectedError error
	}{
		{name: "valid", mutate: func(o *domain.Order) {}},
		{
			name:          "missing_id",
			mutate:        func(o *domain.Order) { o.ID = "" },
			expectedError: domain.ErrMissingOrderID,
		},
		{
			name:          "bad_status",
			mutate:        func(o *domain.Order) { o.Status = "microwaving" },
			expectedError: domain.ErrInvalidStatus,
		},
		{
			name:          "bad_location",
			mutate:        func(o *domain.Order) { o.LocationType = "beach" },
			expectedError: domain.ErrInvalidLocation,
		},
		{
			name:          "negative_total",
			mutate:        func(o *domain.Order) { o.TotalAmount = -1 },
			expectedError: domain.ErrNegativeAmount,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			order := makeOrder("1", domain.StatusReady, order1Time())
			testCase.mutate(&order)
			err := order.Validate()
			if testCase.expectedError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, testCase.expectedError)
			}
		})
	}
}

func TestOrder_AssignedTo(t *testing.T) {
	order := makeOrder("1", domain.StatusReady, order1Time())
	assert.True(t, order.AssignedTo("anyone"), "unassigned orders belong to everyone")

	order.WaiterID = "w-1"
	assert.True(t, order.AssignedTo("w-1"))
	assert.False(t, order.AssignedTo("w-2"))
}
