package transaction

import (
	"strings"
	"testing"

	"github.com/bizpulse/bizpulse-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionRequestValidate(t *testing.T) {
	valid := CreateTransactionRequest{
		Type:       "income",
		Amount:     150_000,
		Category:   "sales",
		OccurredAt: "2025-03-14T09:30:00Z",
	}
	assert.NoError(t, valid.Validate())

	noTimestamp := CreateTransactionRequest{Type: "expense", Amount: 500, Category: "supplies"}
	assert.NoError(t, noTimestamp.Validate())
	assert.False(t, noTimestamp.OccurredAtTime().IsZero())
}

func TestCreateTransactionRequestValidateFailures(t *testing.T) {
	cases := []struct {
		name  string
		req   CreateTransactionRequest
		field string
	}{
		{"bad type", CreateTransactionRequest{Type: "transfer", Amount: 100, Category: "x"}, "type"},
		{"zero amount", CreateTransactionRequest{Type: "income", Amount: 0, Category: "x"}, "amount"},
		{"negative amount", CreateTransactionRequest{Type: "income", Amount: -10, Category: "x"}, "amount"},
		{"missing category", CreateTransactionRequest{Type: "income", Amount: 100}, "category"},
		{"long category", CreateTransactionRequest{Type: "income", Amount: 100, Category: strings.Repeat("a", 61)}, "category"},
		{"bad timestamp", CreateTransactionRequest{Type: "income", Amount: 100, Category: "x", OccurredAt: "yesterday"}, "occurred_at"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			_, ok := errs.ToMap()[tc.field]
			assert.True(t, ok, "expected a validation error on %q, got %v", tc.field, errs)
		})
	}
}

func TestUpdateTransactionRequestValidate(t *testing.T) {
	amount := int64(2500)
	category := "rent"
	valid := UpdateTransactionRequest{Amount: &amount, Category: &category}
	assert.NoError(t, valid.Validate())

	empty := UpdateTransactionRequest{}
	assert.NoError(t, empty.Validate(), "all fields optional")

	bad := int64(-1)
	assert.Error(t, (&UpdateTransactionRequest{Amount: &bad}).Validate())
}
