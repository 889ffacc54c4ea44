package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/retail_pos_app/internal/apperrors"
	"github.com/SscSPs/retail_pos_app/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/SscSPs/retail_pos_app/internal/utils"
	"github.com/SscSPs/retail_pos_app/internal/utils/accounting"
	"github.com/google/uuid"
)

type serviceOrderService struct {
	BaseService
	serviceOrderRepo portsrepo.ServiceOrderRepositoryFacade
}

// NewServiceOrderService creates the service order service.
func NewServiceOrderService(repo portsrepo.ServiceOrderRepositoryFacade, options ...ServiceOption) portssvc.ServiceOrderSvcFacade {
	return &serviceOrderService{
		BaseService:      newBaseService(options...),
		serviceOrderRepo: repo,
	}
}

var _ portssvc.ServiceOrderSvcFacade = (*serviceOrderService)(nil)

func (s *serviceOrderService) CreateServiceOrder(ctx context.Context, req dto.CreateServiceOrderRequest, userID string) (*domain.ServiceOrder, error) {
	customer := strings.TrimSpace(req.CustomerName)
	if customer == "" {
		return nil, validationError("customer name is required")
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, validationError("description is required")
	}
	if req.Value.IsNegative() {
		return nil, validationError("value cannot be negative")
	}

	now := s.Now()
	order := domain.ServiceOrder{
		ServiceOrderID: uuid.NewString(),
		CustomerName:   customer,
		CustomerPhone:  utils.TrimToNil(req.CustomerPhone),
		Description:    description,
		Value:          req.Value,
		Status:         domain.ServiceOrderOpen,
		OpenedAt:       now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}
	if req.OpenedAt != nil {
		order.OpenedAt = req.OpenedAt.In(now.Location())
	}

	if err := s.serviceOrderRepo.SaveServiceOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save service order", slog.String("service_order_id", order.ServiceOrderID))
		return nil, err
	}
	s.LogInfo(ctx, "Service order opened", slog.String("service_order_id", order.ServiceOrderID))
	return &order, nil
}

// UpdateServiceOrderStatus only moves aberta orders; concluida and cancelada are final.
func (s *serviceOrderService) UpdateServiceOrderStatus(ctx context.Context, serviceOrderID string, req dto.UpdateServiceOrderStatusRequest, userID string) (*domain.ServiceOrder, error) {
	order, err := s.serviceOrderRepo.FindServiceOrderByID(ctx, serviceOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get service order %s: %w", serviceOrderID, err)
	}

	next := domain.ServiceOrderStatus(req.Status)
	if !next.IsValid() || next == domain.ServiceOrderOpen {
		return nil, validationError("status must be %s or %s", domain.ServiceOrderCompleted, domain.ServiceOrderCancelled)
	}
	if order.Status != domain.ServiceOrderOpen {
		return nil, validationError("service order is already %s", order.Status)
	}

	updated := *order
	if next == domain.ServiceOrderCompleted {
		if splits := dto.ToDomainSplits(req.PaymentSplits); len(splits) > 0 {
			if err := accounting.ValidateSplits(splits, order.Value); err != nil {
				return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
			}
			updated.PaymentSplits = splits
			updated.PaymentMethod = nil
		} else {
			if req.PaymentMethod == nil {
				return nil, validationError("payment method is required to complete a service order")
			}
			method := domain.PaymentMethod(*req.PaymentMethod)
			if !method.IsValid() {
				return nil, validationError("unknown payment method %q", *req.PaymentMethod)
			}
			updated.PaymentMethod = &method
			updated.PaymentSplits = nil
		}
	}

	now := s.Now()
	expectedVersion := order.Version
	updated.Status = next
	updated.ClosedAt = &now
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID
	updated.Version = expectedVersion + 1

	if err := s.serviceOrderRepo.UpdateServiceOrderStatus(ctx, updated, expectedVersion); err != nil {
		s.LogError(ctx, err, "Failed to update service order status",
			slog.String("service_order_id", serviceOrderID),
			slog.String("status", string(next)))
		return nil, err
	}
	s.LogInfo(ctx, "Service order status updated",
		slog.String("service_order_id", serviceOrderID),
		slog.String("status", string(next)))
	return &updated, nil
}

func (s *serviceOrderService) ListServiceOrders(ctx context.Context, params dto.ListServiceOrdersParams) ([]domain.ServiceOrder, error) {
	period, err := s.parsePeriod(params.From, params.To)
	if err != nil {
		return nil, err
	}
	orders, err := s.serviceOrderRepo.ListServiceOrders(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list service orders")
		return nil, err
	}
	if orders == nil {
		return []domain.ServiceOrder{}, nil
	}
	return orders, nil
}

func (s *serviceOrderService) DeleteServiceOrder(ctx context.Context, serviceOrderID string, userID string) error {
	if err := s.serviceOrderRepo.MarkServiceOrderDeleted(ctx, serviceOrderID, s.Now(), userID); err != nil {
		s.LogError(ctx, err, "Failed to delete service order", slog.String("service_order_id", serviceOrderID))
		return err
	}
	s.LogInfo(ctx, "Service order deleted", slog.String("service_order_id", serviceOrderID))
	return nil
}
