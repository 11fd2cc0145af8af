package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/edusphere/internal/app/controllers"
	"github.com/kaan/edusphere/internal/middleware"
	"github.com/kaan/edusphere/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	universityController *controllers.UniversityController,
	branchController *controllers.BranchController,
	collegeController *controllers.CollegeController,
	courseController *controllers.CourseController,
	partnerController *controllers.PartnerController,
	progressController *controllers.ProgressController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- Public auth routes ---
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
	}

	// --- Public catalog routes ---
	universities := v1.Group("/universities")
	{
		universities.GET("", universityController.ListUniversities)
		universities.GET("/:id", universityController.GetUniversity)
		universities.GET("/:id/branches", branchController.ListBranchesByUniversity)
		universities.GET("/:id/colleges", collegeController.ListCollegesByUniversity)
	}

	branches := v1.Group("/branches")
	{
		branches.GET("/:id", branchController.GetBranch)
	}

	colleges := v1.Group("/colleges")
	{
		colleges.GET("/partnered", collegeController.ListPartneredColleges)
		colleges.GET("/:id", collegeController.GetCollege)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("/:id", courseController.GetCourse)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Partner session routes, any authenticated user
		partner := authenticated.Group("/partner")
		{
			partner.POST("/activate", partnerController.ActivatePartner)
			partner.POST("/deactivate", partnerController.DeactivatePartner)
			partner.GET("/state", partnerController.GetPartnerState)
		}

		// Progress routes, any authenticated user
		progress := authenticated.Group("/progress")
		{
			progress.POST("/events", progressController.RecordLectureEvent)
			progress.GET("/courses", progressController.ListCourseProgress)
			progress.GET("/courses/:courseId", progressController.GetCourseProgress)
		}

		// Admin-only mutations
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(auth.RoleAdmin))
		{
			admin.POST("/universities", universityController.CreateUniversity)
			admin.PUT("/universities/:id", universityController.UpdateUniversity)
			admin.DELETE("/universities/:id", universityController.DeleteUniversity)

			admin.POST("/branches", branchController.CreateBranch)
			admin.PUT("/branches/:id", branchController.UpdateBranch)
			admin.PATCH("/branches/:id/status", branchController.UpdateBranchStatus)

			admin.POST("/colleges", collegeController.CreateCollege)
			admin.PUT("/colleges/:id", collegeController.UpdateCollege)
			admin.DELETE("/colleges/:id", collegeController.DeleteCollege)

			admin.PUT("/courses", courseController.UpsertCourse)

			admin.GET("/stats", statsController.GetStats)
		}
	}
}
