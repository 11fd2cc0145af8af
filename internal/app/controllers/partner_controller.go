package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/edusphere/internal/app/models/dto"
	"github.com/kaan/edusphere/internal/app/services"
	"github.com/kaan/edusphere/internal/middleware"
)

// PartnerController handles white-label partner session endpoints
type PartnerController struct {
	partnerService services.PartnerService
}

// NewPartnerController creates a new PartnerController
func NewPartnerController(partnerService services.PartnerService) *PartnerController {
	return &PartnerController{
		partnerService: partnerService,
	}
}

// ActivatePartner switches the caller's session into partner mode
// @Summary Activate partner mode
// @Description Resolves the selected college into a partner context and stores it on the session
// @Tags partner
// @Accept json
// @Produce json
// @Param request body dto.ActivatePartnerRequest true "College selection"
// @Success 200 {object} dto.APIResponse{data=dto.PartnerStateResponse} "Partner mode activated"
// @Failure 409 {object} dto.ErrorResponse "College no longer matches its university"
// @Failure 422 {object} dto.ErrorResponse "College is not partnered"
// @Security BearerAuth
// @Router /partner/activate [post]
func (c *PartnerController) ActivatePartner(ctx *gin.Context) {
	var req dto.ActivatePartnerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid partner activation data").WithDetails(err.Error())))
		return
	}

	partnerCtx, err := c.partnerService.ActivatePartner(ctx, middleware.UserID(ctx), req.CollegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PartnerStateResponse{
		IsPartnerMode: true,
		Context:       partnerCtx,
	}, "Partner mode activated"))
}

// DeactivatePartner returns the caller's session to the default brand
// @Summary Deactivate partner mode
// @Description Clears the partner context from the session
// @Tags partner
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.PartnerStateResponse} "Partner mode deactivated"
// @Security BearerAuth
// @Router /partner/deactivate [post]
func (c *PartnerController) DeactivatePartner(ctx *gin.Context) {
	if err := c.partnerService.DeactivatePartner(ctx, middleware.UserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PartnerStateResponse{
		IsPartnerMode: false,
	}, "Partner mode deactivated"))
}

// GetPartnerState reports whether the session is in partner mode
// @Summary Get partner state
// @Description Returns the active partner context, if any
// @Tags partner
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.PartnerStateResponse} "Current partner state"
// @Security BearerAuth
// @Router /partner/state [get]
func (c *PartnerController) GetPartnerState(ctx *gin.Context) {
	partnerCtx, active := c.partnerService.GetPartnerState(ctx, middleware.UserID(ctx))

	resp := dto.PartnerStateResponse{IsPartnerMode: active}
	if active {
		resp.Context = partnerCtx
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Partner state retrieved successfully"))
}
