package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func methodPtr(m domain.PaymentMethod) *domain.PaymentMethod {
	return &m
}

func TestCalculateSignedAmount(t *testing.T) {
	tests := []struct {
		txType  domain.TransactionType
		want    string
		wantErr bool
	}{
		{domain.TransactionSale, "25", false},
		{domain.TransactionEntry, "25", false},
		{domain.TransactionExit, "-25", false},
		{domain.TransactionExpense, "-25", false},
		{domain.TransactionType("troca"), "0", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			got, err := accounting.CalculateSignedAmount(domain.Transaction{Type: tt.txType, Total: d("25")})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got))
		})
	}
}

func TestNetBalance(t *testing.T) {
	txns := []domain.Transaction{
		{Type: domain.TransactionSale, Total: d("100")},
		{Type: domain.TransactionEntry, Total: d("20")},
		{Type: domain.TransactionExpense, Total: d("150")},
		{Type: domain.TransactionExit, Total: d("5")},
	}
	assert.True(t, d("-35").Equal(accounting.NetBalance(txns)))
	assert.True(t, accounting.NetBalance(nil).IsZero())
}

func TestExpectedDrawerAmount(t *testing.T) {
	deletedAt := time.Now()
	txns := []domain.Transaction{
		{Type: domain.TransactionSale, Total: d("50"), PaymentMethod: methodPtr(domain.PaymentMethodCash)},
		{Type: domain.TransactionSale, Total: d("80"), PaymentMethod: methodPtr(domain.PaymentMethodPix)},
		{Type: domain.TransactionSale, Total: d("60"), PaymentSplits: []domain.PaymentSplit{
			{Method: domain.PaymentMethodCash, Amount: d("15")},
			{Method: domain.PaymentMethodDebit, Amount: d("45")},
		}},
		{Type: domain.TransactionExpense, Total: d("12.50"), PaymentMethod: methodPtr(domain.PaymentMethodCash)},
		{Type: domain.TransactionSale, Total: d("999"), PaymentMethod: methodPtr(domain.PaymentMethodCash), DeletedAt: &deletedAt},
	}

	got := accounting.ExpectedDrawerAmount(d("100"), txns)

	assert.True(t, d("152.50").Equal(got), got.String())
}

func TestValidateSplits(t *testing.T) {
	splits := []domain.PaymentSplit{
		{Method: domain.PaymentMethodCash, Amount: d("10")},
		{Method: domain.PaymentMethodPix, Amount: d("15.50")},
	}
	assert.NoError(t, accounting.ValidateSplits(splits, d("25.50")))
	assert.ErrorContains(t, accounting.ValidateSplits(splits, d("25")), "do not add up")

	bad := []domain.PaymentSplit{{Method: "vale", Amount: d("1")}}
	assert.ErrorContains(t, accounting.ValidateSplits(bad, d("1")), "unknown payment method")

	zero := []domain.PaymentSplit{{Method: domain.PaymentMethodPix, Amount: d("0")}}
	assert.ErrorContains(t, accounting.ValidateSplits(zero, d("0")), "must be positive")
}

func TestLineTotal(t *testing.T) {
	assert.True(t, d("7.47").Equal(accounting.LineTotal(d("3"), d("2.49"))))
	assert.True(t, d("0.33").Equal(accounting.LineTotal(d("0.333"), d("1"))))
}
