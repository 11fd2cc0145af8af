package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaan/edusphere/internal/app/models"
	"github.com/kaan/edusphere/internal/app/models/dto"
	"github.com/kaan/edusphere/internal/app/services"
	"github.com/kaan/edusphere/internal/middleware"
)

// BranchController handles branch endpoints
type BranchController struct {
	branchService services.BranchService
}

// NewBranchController creates a new BranchController
func NewBranchController(branchService services.BranchService) *BranchController {
	return &BranchController{
		branchService: branchService,
	}
}

// CreateBranch creates a new branch under a university
// @Summary Create branch
// @Description Creates a branch. The owning university must exist and not be deleted.
// @Tags branches
// @Accept json
// @Produce json
// @Param request body dto.CreateBranchRequest true "Branch data"
// @Success 201 {object} dto.APIResponse{data=models.Branch} "Branch created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 422 {object} dto.ErrorResponse "University does not exist"
// @Security BearerAuth
// @Router /admin/branches [post]
func (c *BranchController) CreateBranch(ctx *gin.Context) {
	var req dto.CreateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid branch data").WithDetails(err.Error())))
		return
	}

	branch := &models.Branch{
		UniversityID: req.UniversityID,
		Name:         req.Name,
		Code:         req.Code,
		Description:  req.Description,
	}

	id, err := c.branchService.CreateBranch(ctx, branch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	branch.ID = id

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(branch, "Branch created successfully"))
}

// GetBranch returns a single branch by ID
// @Summary Get branch
// @Description Returns a branch by its ID
// @Tags branches
// @Produce json
// @Param id path int true "Branch ID"
// @Success 200 {object} dto.APIResponse{data=models.Branch} "Branch found"
// @Failure 404 {object} dto.ErrorResponse "Branch not found"
// @Router /branches/{id} [get]
func (c *BranchController) GetBranch(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid branch ID").WithField("id")))
		return
	}

	branch, err := c.branchService.GetBranchByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(branch, "Branch retrieved successfully"))
}

// ListBranchesByUniversity returns the branches of a university
// @Summary List branches of a university
// @Description Returns all branches of a university ordered by name
// @Tags branches
// @Produce json
// @Param id path int true "University ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Branch} "Branches listed"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id}/branches [get]
func (c *BranchController) ListBranchesByUniversity(ctx *gin.Context) {
	universityID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university ID").WithField("id")))
		return
	}

	branches, err := c.branchService.GetBranchesByUniversity(ctx, universityID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(branches, "Branches retrieved successfully"))
}

// UpdateBranch updates a branch's mutable fields
// @Summary Update branch
// @Description Updates a branch's name, code and description. The owning university cannot change.
// @Tags branches
// @Accept json
// @Produce json
// @Param id path int true "Branch ID"
// @Param request body dto.UpdateBranchRequest true "Branch data"
// @Success 200 {object} dto.APIResponse{data=models.Branch} "Branch updated"
// @Failure 404 {object} dto.ErrorResponse "Branch not found"
// @Security BearerAuth
// @Router /admin/branches/{id} [put]
func (c *BranchController) UpdateBranch(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid branch ID").WithField("id")))
		return
	}

	var req dto.UpdateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid branch data").WithDetails(err.Error())))
		return
	}

	branch := &models.Branch{
		ID:          id,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
	}

	if err := c.branchService.UpdateBranch(ctx, branch); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(branch, "Branch updated successfully"))
}

// UpdateBranchStatus activates or deactivates a branch
// @Summary Update branch status
// @Description Switches a branch between active and inactive
// @Tags branches
// @Accept json
// @Produce json
// @Param id path int true "Branch ID"
// @Param request body dto.UpdateBranchStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse "Status updated"
// @Failure 404 {object} dto.ErrorResponse "Branch not found"
// @Security BearerAuth
// @Router /admin/branches/{id}/status [patch]
func (c *BranchController) UpdateBranchStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid branch ID").WithField("id")))
		return
	}

	var req dto.UpdateBranchStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid status value").WithField("status")))
		return
	}

	if err := c.branchService.UpdateBranchStatus(ctx, id, models.BranchStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Branch status updated successfully"))
}
