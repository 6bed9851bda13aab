package handlers

import (
	"net/http"

	technicianRepo "homefix/database/repository/technician"
	"homefix/models"
	"homefix/services/technician"
	"homefix/utils"

	"github.com/gin-gonic/gin"
)

type TechnicianHandler struct {
	TechnicianService technician.TechnicianService
}

// ListTechniciansHandler handles GET /api/technicians?specialization=&available=.
func (h *TechnicianHandler) ListTechniciansHandler(c *gin.Context) {
	filter := technicianRepo.TechnicianFilter{
		Specialization: models.Specialization(c.Query("specialization")),
		OnlyAvailable:  queryBool(c, "available"),
	}
	techs, err := h.TechnicianService.List(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, techs)
}

func (h *TechnicianHandler) GetTechnicianHandler(c *gin.Context) {
	detail, err := h.TechnicianService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *TechnicianHandler) CreateTechnicianHandler(c *gin.Context) {
	var in technician.TechnicianInput
	if !bindJSON(c, &in) {
		return
	}
	tech, err := h.TechnicianService.Create(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tech)
}

func (h *TechnicianHandler) DashboardStatsHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	stats, err := h.TechnicianService.Stats(c.Request.Context(), id.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *TechnicianHandler) MyJobsHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	bookings, err := h.TechnicianService.MyBookings(c.Request.Context(), id.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *TechnicianHandler) UpdateProfileHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	var in technician.ProfileInput
	if !bindJSON(c, &in) {
		return
	}
	tech, err := h.TechnicianService.UpdateProfile(c.Request.Context(), id.UserID, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}

type availabilityRequest struct {
	IsAvailable *bool `json:"isAvailable"`
}

func (h *TechnicianHandler) SetAvailabilityHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	var req availabilityRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.IsAvailable == nil {
		utils.RespondError(c, utils.NewValidationError("isAvailable is required"))
		return
	}
	tech, err := h.TechnicianService.SetAvailability(c.Request.Context(), id.UserID, *req.IsAvailable)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}

// UploadDocumentHandler handles POST /api/technicians/documents (multipart field "document").
func (h *TechnicianHandler) UploadDocumentHandler(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	name, file, ok := formFile(c, "document")
	if !ok {
		return
	}
	defer file.Close()

	tech, err := h.TechnicianService.UploadDocument(c.Request.Context(), id.UserID, name, file)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}
