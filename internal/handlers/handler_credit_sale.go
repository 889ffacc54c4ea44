package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/retail_pos_app/internal/core/ports/services"
	"github.com/SscSPs/retail_pos_app/internal/dto"
	"github.com/SscSPs/retail_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// creditSaleHandler handles HTTP requests related to credit sales and their installments.
type creditSaleHandler struct {
	creditSaleService portssvc.CreditSaleSvcFacade
}

func newCreditSaleHandler(cs portssvc.CreditSaleSvcFacade) *creditSaleHandler {
	return &creditSaleHandler{creditSaleService: cs}
}

// registerCreditSaleRoutes registers routes related to credit sales
func registerCreditSaleRoutes(rg *gin.RouterGroup, creditSaleService portssvc.CreditSaleSvcFacade) {
	h := newCreditSaleHandler(creditSaleService)

	sales := rg.Group("/credit-sales")
	{
		sales.POST("", h.createCreditSale)
		sales.GET("", h.listCreditSales)
		sales.GET("/reminders", h.listDueReminders)
		sales.GET("/:saleID", h.getCreditSale)
		sales.DELETE("/:saleID", h.archiveCreditSale)
		sales.POST("/:saleID/payments", h.registerPayment)
		sales.GET("/:saleID/payments", h.listPayments)
	}
}

// createCreditSale godoc
// @Summary Record a credit sale
// @Description Records a sale to be paid later in installments. The total defaults to the sum of the items.
// @Tags credit-sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateCreditSaleRequest true "Credit sale"
// @Success 201 {object} dto.CreditSaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /credit-sales [post]
func (h *creditSaleHandler) createCreditSale(c *gin.Context) {
	var req dto.CreateCreditSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sale, err := h.creditSaleService.CreateCreditSale(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create credit sale")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCreditSaleResponse(sale))
}

// listCreditSales godoc
// @Summary List credit sales
// @Tags credit-sales
// @Produce json
// @Param status query string false "em_aberto or paga"
// @Param includeArchived query bool false "Include archived sales"
// @Success 200 {array} dto.CreditSaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /credit-sales [get]
func (h *creditSaleHandler) listCreditSales(c *gin.Context) {
	var params dto.ListCreditSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	sales, err := h.creditSaleService.ListCreditSales(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "list credit sales")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCreditSaleResponse(sales))
}

// listDueReminders godoc
// @Summary Credit sales due for a charge reminder
// @Tags credit-sales
// @Produce json
// @Success 200 {array} dto.ReminderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /credit-sales/reminders [get]
func (h *creditSaleHandler) listDueReminders(c *gin.Context) {
	sales, err := h.creditSaleService.ListDueReminders(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "list reminders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReminderResponse(sales))
}

// getCreditSale godoc
// @Summary Get a credit sale
// @Tags credit-sales
// @Produce json
// @Param saleID path string true "Credit sale ID"
// @Success 200 {object} dto.CreditSaleResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /credit-sales/{saleID} [get]
func (h *creditSaleHandler) getCreditSale(c *gin.Context) {
	sale, err := h.creditSaleService.GetCreditSale(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondWithError(c, err, "get credit sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToCreditSaleResponse(sale))
}

// archiveCreditSale godoc
// @Summary Archive a credit sale
// @Description Hides the sale from listings. Reports still resolve transactions that reference it.
// @Tags credit-sales
// @Param saleID path string true "Credit sale ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /credit-sales/{saleID} [delete]
func (h *creditSaleHandler) archiveCreditSale(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.creditSaleService.ArchiveCreditSale(c.Request.Context(), c.Param("saleID"), userID); err != nil {
		respondWithError(c, err, "archive credit sale")
		return
	}
	c.Status(http.StatusNoContent)
}

// registerPayment godoc
// @Summary Register an installment payment
// @Description Stores the payment and refreshes the sale's paid amount and status.
// @Description A concurrent payment on the same sale answers 409; reload the sale and retry.
// @Tags credit-sales
// @Accept json
// @Produce json
// @Param saleID path string true "Credit sale ID"
// @Param payment body dto.RegisterPaymentRequest true "Payment"
// @Success 201 {object} dto.PaymentReceiptResponse
// @Failure 400 {object} ErrorResponse "Invalid payment or amount exceeds balance"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Sale changed concurrently"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /credit-sales/{saleID}/payments [post]
func (h *creditSaleHandler) registerPayment(c *gin.Context) {
	var req dto.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	saleID := c.Param("saleID")

	receipt, err := h.creditSaleService.RegisterPayment(c.Request.Context(), saleID, req, userID)
	if err != nil {
		respondWithError(c, err, "register payment")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payment registered",
		slog.String("credit_sale_id", saleID),
		slog.String("payment_id", receipt.Payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentReceiptResponse(receipt))
}

// listPayments godoc
// @Summary List payments of a credit sale
// @Tags credit-sales
// @Produce json
// @Param saleID path string true "Credit sale ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /credit-sales/{saleID}/payments [get]
func (h *creditSaleHandler) listPayments(c *gin.Context) {
	payments, err := h.creditSaleService.ListPayments(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondWithError(c, err, "list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}
