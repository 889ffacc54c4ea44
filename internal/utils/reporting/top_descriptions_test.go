package reporting_test

import (
	"fmt"
	"testing"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/utils/reporting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopDescriptions_RevenueRanking(t *testing.T) {
	txs := []domain.Transaction{
		sale("A", "1", "50", domain.PaymentMethodCash),
		sale("B", "1", "200", domain.PaymentMethodCash),
		sale("A", "1", "30", domain.PaymentMethodCash),
	}

	top := reporting.TopDescriptions(txs, domain.RankByRevenue, reporting.TopDescriptionsLimit)

	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Description)
	assert.True(t, d("200").Equal(top[0].Total))
	assert.Equal(t, "A", top[1].Description)
	assert.True(t, d("80").Equal(top[1].Total))
	assert.True(t, d("2").Equal(top[1].Count))
}

func TestTopDescriptions_VolumeRanking(t *testing.T) {
	txs := []domain.Transaction{
		sale("Bolo", "1", "90", domain.PaymentMethodCash),
		sale("Bala", "40", "20", domain.PaymentMethodCash),
		sale("Suco", "3", "18", domain.PaymentMethodCash),
	}

	top := reporting.TopDescriptions(txs, domain.RankByVolume, reporting.TopDescriptionsLimit)

	require.Len(t, top, 3)
	assert.Equal(t, []string{"Bala", "Suco", "Bolo"}, []string{top[0].Description, top[1].Description, top[2].Description})
}

func TestTopDescriptions_TruncatesToFiveWithStableTies(t *testing.T) {
	txs := make([]domain.Transaction, 0, 7)
	for i := 7; i >= 1; i-- {
		txs = append(txs, sale(fmt.Sprintf("item %d", i), "1", "10", domain.PaymentMethodCash))
	}
	txs = append(txs, domain.Transaction{Type: domain.TransactionExpense, Description: "aluguel", Total: d("999"), Quantity: d("1")})

	top := reporting.TopDescriptions(txs, domain.RankByRevenue, reporting.TopDescriptionsLimit)

	require.Len(t, top, 5)
	assert.Equal(t, "item 1", top[0].Description)
	assert.Equal(t, "item 5", top[4].Description)
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "curto", reporting.TruncateLabel("curto"))
	assert.Equal(t, "12345678901234567890", reporting.TruncateLabel("12345678901234567890"))
	assert.Equal(t, "Conserto de celular ...", reporting.TruncateLabel("Conserto de celular Samsung"))
	assert.Equal(t, "ãããããããããããããããããããã...", reporting.TruncateLabel("ããããããããããããããããããããããã"))

	top := reporting.TopDescriptions([]domain.Transaction{
		sale("Conserto de celular Samsung", "1", "10", domain.PaymentMethodCash),
	}, domain.RankByRevenue, 5)
	require.Len(t, top, 1)
	assert.Equal(t, "Conserto de celular Samsung", top[0].Description)
	assert.Equal(t, "Conserto de celular ...", top[0].Label)
}
