package reporting

import (
	"sort"
	"strings"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
)

// LabelMaxRunes is the longest description shown untruncated on charts.
const LabelMaxRunes = 20

// TopDescriptions groups sale transactions by description and returns the best n,
// ranked by revenue or by volume. Ties are broken by description.
func TopDescriptions(txs []domain.Transaction, rankBy domain.RankBy, n int) []domain.DescriptionRank {
	groups := make(map[string]*domain.DescriptionRank)
	for _, tx := range txs {
		if tx.Type != domain.TransactionSale {
			continue
		}
		key := strings.TrimSpace(tx.Description)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &domain.DescriptionRank{Description: key, Label: TruncateLabel(key)}
			groups[key] = g
		}
		g.Count = g.Count.Add(tx.Quantity)
		g.Total = g.Total.Add(tx.Total)
	}

	ranked := make([]domain.DescriptionRank, 0, len(groups))
	for _, g := range groups {
		ranked = append(ranked, *g)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		primaryA, primaryB := a.Total, b.Total
		if rankBy == domain.RankByVolume {
			primaryA, primaryB = a.Count, b.Count
		}
		if !primaryA.Equal(primaryB) {
			return primaryA.GreaterThan(primaryB)
		}
		return a.Description < b.Description
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TruncateLabel shortens s to LabelMaxRunes runes followed by "..." when longer.
func TruncateLabel(s string) string {
	runes := []rune(s)
	if len(runes) <= LabelMaxRunes {
		return s
	}
	return string(runes[:LabelMaxRunes]) + "..."
}
