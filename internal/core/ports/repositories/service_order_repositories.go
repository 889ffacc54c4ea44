package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
)

// ServiceOrderReader defines read operations for service orders
type ServiceOrderReader interface {
	FindServiceOrderByID(ctx context.Context, serviceOrderID string) (*domain.ServiceOrder, error)

	// ListServiceOrders retrieves non-deleted orders opened inside period, newest first.
	ListServiceOrders(ctx context.Context, period domain.ReportPeriod) ([]domain.ServiceOrder, error)
}

// ServiceOrderWriter defines write operations for service orders
type ServiceOrderWriter interface {
	SaveServiceOrder(ctx context.Context, order domain.ServiceOrder) error

	// UpdateServiceOrderStatus writes status, payment and closing fields when the stored
	// version equals expectedVersion. A stale version yields apperrors.ErrConflict.
	UpdateServiceOrderStatus(ctx context.Context, order domain.ServiceOrder, expectedVersion int64) error

	MarkServiceOrderDeleted(ctx context.Context, serviceOrderID string, deletedAt time.Time, deletedBy string) error
}

// ServiceOrderRepositoryFacade combines all service order repository interfaces
type ServiceOrderRepositoryFacade interface {
	ServiceOrderReader
	ServiceOrderWriter
}
