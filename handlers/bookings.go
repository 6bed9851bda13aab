package handlers

import (
	"net/http"

	"homefix/models"
	"homefix/services/booking"
	"homefix/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	BookingService booking.BookingService
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	var in booking.CreateInput
	if !bindJSON(c, &in) {
		return
	}
	b, err := h.BookingService.Create(c.Request.Context(), id.UserID, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	bookings, err := h.BookingService.ListMine(c.Request.Context(), id.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListBookingsHandler handles GET /api/bookings. Technicians only see their own assignments.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	bookings, err := h.BookingService.ListAll(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	b, err := h.BookingService.GetByID(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type statusRequest struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateStatusHandler handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.BookingService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type assignRequest struct {
	TechnicianID string `json:"technicianId"`
}

func (h *BookingHandler) AssignTechnicianHandler(c *gin.Context) {
	var req assignRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.BookingService.AssignTechnician(c.Request.Context(), c.Param("id"), req.TechnicianID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	b, err := h.BookingService.Cancel(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AddReviewHandler handles PUT /api/bookings/:id/review.
func (h *BookingHandler) AddReviewHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	var in booking.ReviewInput
	if !bindJSON(c, &in) {
		return
	}
	b, err := h.BookingService.AddReview(c.Request.Context(), c.Param("id"), id, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
