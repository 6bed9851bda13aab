package handlers

import (
	"net/http"

	catalogRepo "homefix/database/repository/catalog"
	"homefix/models"
	"homefix/services/catalog"
	"homefix/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	CatalogService catalog.CatalogService
}

// ListServicesHandler handles GET /api/services. Unavailable services are hidden
// unless includeUnavailable=true.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	filter := catalogRepo.ServiceFilter{
		Category:      models.ServiceCategory(c.Query("category")),
		OnlyAvailable: !queryBool(c, "includeUnavailable"),
	}
	services, err := h.CatalogService.ListServices(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.CatalogService.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var in catalog.ServiceInput
	if !bindJSON(c, &in) {
		return
	}
	svc, err := h.CatalogService.CreateService(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var in catalog.ServicePatch
	if !bindJSON(c, &in) {
		return
	}
	svc, err := h.CatalogService.UpdateService(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.CatalogService.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// UploadServiceImageHandler handles POST /api/services/:id/image (multipart field "image").
func (h *CatalogHandler) UploadServiceImageHandler(c *gin.Context) {
	name, file, ok := formFile(c, "image")
	if !ok {
		return
	}
	defer file.Close()

	svc, err := h.CatalogService.SetServiceImage(c.Request.Context(), c.Param("id"), name, file)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) ListPlansHandler(c *gin.Context) {
	plans, err := h.CatalogService.ListPlans(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *CatalogHandler) GetPlanHandler(c *gin.Context) {
	plan, err := h.CatalogService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *CatalogHandler) CreatePlanHandler(c *gin.Context) {
	var in catalog.PlanInput
	if !bindJSON(c, &in) {
		return
	}
	plan, err := h.CatalogService.CreatePlan(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *CatalogHandler) UpdatePlanHandler(c *gin.Context) {
	var in catalog.PlanPatch
	if !bindJSON(c, &in) {
		return
	}
	plan, err := h.CatalogService.UpdatePlan(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *CatalogHandler) DeletePlanHandler(c *gin.Context) {
	if err := h.CatalogService.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}
