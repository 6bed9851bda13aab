package handlers

import (
	"net/http"

	"homefix/services/payment"
	"homefix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	PaymentService payment.PaymentService
}

// CreatePaymentHandler handles POST /api/payments.
func (h *PaymentHandler) CreatePaymentHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	var in payment.RecordInput
	if !bindJSON(c, &in) {
		return
	}
	p, err := h.PaymentService.Record(c.Request.Context(), id.UserID, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

type verifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// VerifyPaymentHandler handles POST /api/payments/verify-razorpay.
func (h *PaymentHandler) VerifyPaymentHandler(c *gin.Context) {
	var req verifyRequest
	if !bindJSON(c, &req) {
		return
	}
	valid, err := h.PaymentService.VerifyExternal(c.Request.Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !valid {
		utils.GetLogger().Warn("Payment signature rejected", zap.String("orderId", req.OrderID))
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PaymentHandler) MyPaymentsHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	payments, err := h.PaymentService.ListMine(c.Request.Context(), id.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetPaymentHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	p, err := h.PaymentService.GetByID(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListPaymentsHandler handles GET /api/payments (admin).
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	payments, err := h.PaymentService.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
