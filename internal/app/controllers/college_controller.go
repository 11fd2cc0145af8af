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

// CollegeController handles college endpoints
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// CreateCollege creates a new college under a university
// @Summary Create college
// @Description Creates a college. Every offered branch must belong to the same university.
// @Tags colleges
// @Accept json
// @Produce json
// @Param request body dto.CreateCollegeRequest true "College data"
// @Success 201 {object} dto.APIResponse{data=models.College} "College created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 422 {object} dto.ErrorResponse "University missing or offered branch invalid"
// @Security BearerAuth
// @Router /admin/colleges [post]
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college data").WithDetails(err.Error())))
		return
	}

	college := &models.College{
		UniversityID:     req.UniversityID,
		Name:             req.Name,
		LogoURL:          req.LogoURL,
		ChairmanName:     req.ChairmanName,
		ChairmanPhotoURL: req.ChairmanPhotoURL,
		ContactNumbers:   req.ContactNumbers,
		OfferedBranches:  req.OfferedBranches,
		IsPartnered:      req.IsPartnered,
	}

	id, err := c.collegeService.CreateCollege(ctx, college)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	college.ID = id

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(college, "College created successfully"))
}

// GetCollege returns a single college by ID
// @Summary Get college
// @Description Returns a college by its ID
// @Tags colleges
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=models.College} "College found"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id} [get]
func (c *CollegeController) GetCollege(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college ID").WithField("id")))
		return
	}

	college, err := c.collegeService.GetCollegeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(college, "College retrieved successfully"))
}

// ListCollegesByUniversity returns the colleges of a university
// @Summary List colleges of a university
// @Description Returns all colleges of a university ordered by name
// @Tags colleges
// @Produce json
// @Param id path int true "University ID"
// @Success 200 {object} dto.APIResponse{data=[]models.College} "Colleges listed"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id}/colleges [get]
func (c *CollegeController) ListCollegesByUniversity(ctx *gin.Context) {
	universityID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university ID").WithField("id")))
		return
	}

	colleges, err := c.collegeService.GetCollegesByUniversity(ctx, universityID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(colleges, "Colleges retrieved successfully"))
}

// ListPartneredColleges returns every partnered college
// @Summary List partnered colleges
// @Description Returns the colleges eligible for white-label partner mode
// @Tags colleges
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.College} "Partnered colleges listed"
// @Router /colleges/partnered [get]
func (c *CollegeController) ListPartneredColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.GetPartneredColleges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(colleges, "Partnered colleges retrieved successfully"))
}

// UpdateCollege updates a college's mutable fields
// @Summary Update college
// @Description Updates a college. Offered branches are revalidated against the owning university.
// @Tags colleges
// @Accept json
// @Produce json
// @Param id path int true "College ID"
// @Param request body dto.UpdateCollegeRequest true "College data"
// @Success 200 {object} dto.APIResponse{data=models.College} "College updated"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 422 {object} dto.ErrorResponse "Offered branch invalid"
// @Security BearerAuth
// @Router /admin/colleges/{id} [put]
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college ID").WithField("id")))
		return
	}

	var req dto.UpdateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college data").WithDetails(err.Error())))
		return
	}

	college := &models.College{
		ID:               id,
		Name:             req.Name,
		LogoURL:          req.LogoURL,
		ChairmanName:     req.ChairmanName,
		ChairmanPhotoURL: req.ChairmanPhotoURL,
		ContactNumbers:   req.ContactNumbers,
		OfferedBranches:  req.OfferedBranches,
		IsPartnered:      req.IsPartnered,
	}

	if err := c.collegeService.UpdateCollege(ctx, college); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(college, "College updated successfully"))
}

// DeleteCollege removes a college
// @Summary Delete college
// @Description Deletes a college permanently
// @Tags colleges
// @Produce json
// @Param id path int true "College ID"
// @Success 200 {object} dto.APIResponse "College deleted"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Security BearerAuth
// @Router /admin/colleges/{id} [delete]
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college ID").WithField("id")))
		return
	}

	if err := c.collegeService.DeleteCollege(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "College deleted successfully"))
}
