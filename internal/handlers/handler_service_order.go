package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type serviceOrderHandler struct {
	serviceOrderService portssvc.ServiceOrderSvcFacade
}

func newServiceOrderHandler(s portssvc.ServiceOrderSvcFacade) *serviceOrderHandler {
	return &serviceOrderHandler{serviceOrderService: s}
}

func registerServiceOrderRoutes(rg *gin.RouterGroup, serviceOrderService portssvc.ServiceOrderSvcFacade) {
	h := newServiceOrderHandler(serviceOrderService)

	orders := rg.Group("/service-orders")
	{
		orders.POST("", h.createServiceOrder)
		orders.GET("", h.listServiceOrders)
		orders.PATCH("/:orderID/status", h.updateServiceOrderStatus)
		orders.DELETE("/:orderID", h.deleteServiceOrder)
	}
}

// createServiceOrder godoc
// @Summary Open a service order
// @Tags service-orders
// @Accept json
// @Produce json
// @Param order body dto.CreateServiceOrderRequest true "Service order"
// @Success 201 {object} domain.ServiceOrder
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-orders [post]
func (h *serviceOrderHandler) createServiceOrder(c *gin.Context) {
	var req dto.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	order, err := h.serviceOrderService.CreateServiceOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create service order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// listServiceOrders godoc
// @Summary List service orders opened in a period
// @Tags service-orders
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {array} domain.ServiceOrder
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-orders [get]
func (h *serviceOrderHandler) listServiceOrders(c *gin.Context) {
	var params dto.ListServiceOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	orders, err := h.serviceOrderService.ListServiceOrders(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "list service orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// updateServiceOrderStatus godoc
// @Summary Complete or cancel a service order
// @Description Only aberta orders can change. Completing requires a payment method or splits.
// @Tags service-orders
// @Accept json
// @Produce json
// @Param orderID path string true "Service order ID"
// @Param status body dto.UpdateServiceOrderStatusRequest true "New status"
// @Success 200 {object} domain.ServiceOrder
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-orders/{orderID}/status [patch]
func (h *serviceOrderHandler) updateServiceOrderStatus(c *gin.Context) {
	var req dto.UpdateServiceOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	order, err := h.serviceOrderService.UpdateServiceOrderStatus(c.Request.Context(), c.Param("orderID"), req, userID)
	if err != nil {
		respondWithError(c, err, "update service order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// deleteServiceOrder godoc
// @Summary Delete a service order
// @Tags service-orders
// @Param orderID path string true "Service order ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /service-orders/{orderID} [delete]
func (h *serviceOrderHandler) deleteServiceOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.serviceOrderService.DeleteServiceOrder(c.Request.Context(), c.Param("orderID"), userID); err != nil {
		respondWithError(c, err, "delete service order")
		return
	}
	c.Status(http.StatusNoContent)
}
