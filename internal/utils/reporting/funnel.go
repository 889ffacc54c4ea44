package reporting

import (
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var funnelOrder = []domain.ServiceOrderStatus{
	domain.ServiceOrderOpen,
	domain.ServiceOrderCompleted,
	domain.ServiceOrderCancelled,
}

var hundred = decimal.NewFromInt(100)

// BuildFunnel counts orders per status. Percentages are 0-100 with two decimals;
// ConversionRate is completed/total as a 0-1 ratio, 0 when there are no orders.
func BuildFunnel(orders []domain.ServiceOrder) domain.Funnel {
	counts := make(map[domain.ServiceOrderStatus]int, len(funnelOrder))
	total := 0
	for _, order := range orders {
		if !order.Status.IsValid() {
			continue
		}
		counts[order.Status]++
		total++
	}

	funnel := domain.Funnel{
		Buckets:        make([]domain.FunnelBucket, 0, len(funnelOrder)),
		Total:          total,
		ConversionRate: decimal.Zero,
	}
	for _, status := range funnelOrder {
		funnel.Buckets = append(funnel.Buckets, domain.FunnelBucket{
			Status:     status,
			Count:      counts[status],
			Percentage: ratio(counts[status], total).Mul(hundred).Round(2),
		})
	}
	funnel.ConversionRate = ratio(counts[domain.ServiceOrderCompleted], total).Round(4)
	return funnel
}

func ratio(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Div(decimal.NewFromInt(int64(total)))
}
