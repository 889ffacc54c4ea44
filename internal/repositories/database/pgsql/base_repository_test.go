package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)

	t.Run("numbers placeholders in order", func(t *testing.T) {
		w := &whereBuilder{}
		w.add("deleted_at IS NULL")
		w.period("occurred_at", domain.ReportPeriod{From: from, To: to})
		w.add("(occurred_at, transaction_id) < (?, ?)", to, "abc")
		limit := w.placeholder(51)

		assert.Equal(t, "WHERE deleted_at IS NULL AND occurred_at >= $1 AND occurred_at <= $2 AND (occurred_at, transaction_id) < ($3, $4)", w.String())
		assert.Equal(t, "$5", limit)
		assert.Equal(t, []any{from, to, to, "abc", 51}, w.args)
	})

	t.Run("open period adds no bounds", func(t *testing.T) {
		w := &whereBuilder{}
		w.period("opened_at", domain.ReportPeriod{})
		assert.Equal(t, "", w.String())
		assert.Empty(t, w.args)
	})

	t.Run("only lower bound", func(t *testing.T) {
		w := &whereBuilder{}
		w.period("opened_at", domain.ReportPeriod{From: from})
		assert.Equal(t, "WHERE opened_at >= $1", w.String())
	})
}
