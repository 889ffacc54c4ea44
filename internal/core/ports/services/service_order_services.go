package services

import (
	"context"

	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	"github.com/SscSPs/retail_pos_app/internal/dto"
)

// ServiceOrderSvcFacade defines operations on service orders
type ServiceOrderSvcFacade interface {
	CreateServiceOrder(ctx context.Context, req dto.CreateServiceOrderRequest, userID string) (*domain.ServiceOrder, error)
	UpdateServiceOrderStatus(ctx context.Context, serviceOrderID string, req dto.UpdateServiceOrderStatusRequest, userID string) (*domain.ServiceOrder, error)
	ListServiceOrders(ctx context.Context, params dto.ListServiceOrdersParams) ([]domain.ServiceOrder, error)
	DeleteServiceOrder(ctx context.Context, serviceOrderID string, userID string) error
}
