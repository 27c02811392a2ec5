package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/formadesk/formadesk/internal/app/controllers"
	"github.com/formadesk/formadesk/internal/app/models"
	"github.com/formadesk/formadesk/internal/middleware"
	"github.com/formadesk/formadesk/internal/pkg/metrics"
)

// Controllers bundles every controller the router wires up.
type Controllers struct {
	Auth      *controllers.AuthController
	Request   *controllers.RequestController
	Training  *controllers.TrainingController
	Session   *controllers.SessionController
	Cohort    *controllers.CohortController
	Community *controllers.CommunityController
	Asset     *controllers.AssetController
	WorkOrder *controllers.WorkOrderController
	OrgUnit   *controllers.OrgUnitController
	Profile   *controllers.ProfileController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	// Operational endpoints outside the versioned API.
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.POST("/auth/logout", c.Auth.Logout)
	authenticated.GET("/auth/me", c.Auth.GetCurrentUser)

	// Training requests and the approval workflow.
	requests := authenticated.Group("/requests")
	{
		requests.GET("", c.Request.GetAllRequests)
		requests.GET("/stats", c.Request.GetRequestStats)
		requests.GET("/delegates", c.Request.GetDelegateCandidates)
		requests.GET("/:id", c.Request.GetRequestByID)
		requests.GET("/:id/timeline", c.Request.GetRequestTimeline)
		requests.GET("/:id/eligibility", c.Request.GetRequestEligibility)
		requests.POST("", c.Request.CreateRequest)
		requests.POST("/:id/submit", c.Request.SubmitRequest)

		// Decisions require an approver role; the service additionally
		// enforces the status transition table.
		decisions := requests.Group("")
		decisions.Use(authMiddleware.RolesRequired(models.RoleManager, models.RoleHRAdmin, models.RoleSuperAdmin))
		{
			decisions.POST("/:id/review", c.Request.StartReview)
			decisions.POST("/:id/approve", c.Request.ApproveRequest)
			decisions.POST("/:id/reject", c.Request.RejectRequest)
			decisions.POST("/:id/delegate", c.Request.DelegateRequest)
			decisions.PATCH("/:id/status", c.Request.UpdateRequestStatus)
		}
	}

	// Training catalog.
	trainings := authenticated.Group("/trainings")
	{
		trainings.GET("", c.Training.GetAllTrainings)
		trainings.GET("/:id", c.Training.GetTrainingByID)
		trainings.GET("/:id/sessions", c.Training.GetTrainingSessions)

		trainingsAdmin := trainings.Group("")
		trainingsAdmin.Use(authMiddleware.RolesRequired(models.RoleHRAdmin, models.RoleSuperAdmin))
		{
			trainingsAdmin.POST("", c.Training.CreateTraining)
			trainingsAdmin.PUT("/:id", c.Training.UpdateTraining)
			trainingsAdmin.DELETE("/:id", c.Training.DeleteTraining)
		}
	}

	// Training sessions.
	sessions := authenticated.Group("/sessions")
	{
		sessions.GET("", c.Session.GetAllSessions)
		sessions.GET("/:id", c.Session.GetSessionByID)

		sessionsAdmin := sessions.Group("")
		sessionsAdmin.Use(authMiddleware.RolesRequired(models.RoleHRAdmin, models.RoleSuperAdmin))
		{
			sessionsAdmin.POST("", c.Session.CreateSession)
			sessionsAdmin.PUT("/:id", c.Session.UpdateSession)
			sessionsAdmin.DELETE("/:id", c.Session.DeleteSession)
		}
	}

	// Cohorts.
	cohorts := authenticated.Group("/cohorts")
	{
		cohorts.GET("", c.Cohort.GetAllCohorts)
		cohorts.GET("/:id", c.Cohort.GetCohortByID)

		cohortsAdmin := cohorts.Group("")
		cohortsAdmin.Use(authMiddleware.RolesRequired(models.RoleHRAdmin, models.RoleSuperAdmin))
		{
			cohortsAdmin.POST("", c.Cohort.CreateCohort)
			cohortsAdmin.PUT("/:id", c.Cohort.UpdateCohort)
			cohortsAdmin.DELETE("/:id", c.Cohort.DeleteCohort)
		}
	}

	// Practice communities.
	communities := authenticated.Group("/communities")
	{
		communities.GET("", c.Community.GetAllCommunities)
		communities.GET("/:id", c.Community.GetCommunityByID)
		communities.POST("", c.Community.CreateCommunity)

		communitiesAdmin := communities.Group("")
		communitiesAdmin.Use(authMiddleware.RolesRequired(models.RoleHRAdmin, models.RoleSuperAdmin))
		{
			communitiesAdmin.PUT("/:id", c.Community.UpdateCommunity)
			communitiesAdmin.DELETE("/:id", c.Community.DeleteCommunity)
		}
	}

	// IT assets and work orders.
	assets := authenticated.Group("/assets")
	{
		assets.GET("", c.Asset.GetAllAssets)
		assets.GET("/:id", c.Asset.GetAssetByID)

		assetsAdmin := assets.Group("")
		assetsAdmin.Use(authMiddleware.RolesRequired(models.RoleSuperAdmin))
		{
			assetsAdmin.POST("", c.Asset.CreateAsset)
			assetsAdmin.PUT("/:id", c.Asset.UpdateAsset)
			assetsAdmin.DELETE("/:id", c.Asset.DeleteAsset)
		}
	}

	workOrders := authenticated.Group("/work-orders")
	{
		workOrders.GET("", c.WorkOrder.GetAllWorkOrders)
		workOrders.GET("/:id", c.WorkOrder.GetWorkOrderByID)
		workOrders.POST("", c.WorkOrder.CreateWorkOrder)

		workOrdersAdmin := workOrders.Group("")
		workOrdersAdmin.Use(authMiddleware.RolesRequired(models.RoleSuperAdmin))
		{
			workOrdersAdmin.PATCH("/:id/status", c.WorkOrder.UpdateWorkOrderStatus)
			workOrdersAdmin.DELETE("/:id", c.WorkOrder.DeleteWorkOrder)
		}
	}

	// Organizational units.
	orgUnits := authenticated.Group("/org-units")
	{
		orgUnits.GET("", c.OrgUnit.GetAllOrgUnits)
		orgUnits.GET("/:id", c.OrgUnit.GetOrgUnitByID)

		orgUnitsAdmin := orgUnits.Group("")
		orgUnitsAdmin.Use(authMiddleware.RolesRequired(models.RoleSuperAdmin))
		{
			orgUnitsAdmin.POST("", c.OrgUnit.CreateOrgUnit)
			orgUnitsAdmin.PUT("/:id", c.OrgUnit.UpdateOrgUnit)
			orgUnitsAdmin.DELETE("/:id", c.OrgUnit.DeleteOrgUnit)
		}
	}

	// Profiles and role administration.
	profiles := authenticated.Group("/profiles")
	{
		profiles.GET("", c.Profile.GetAllProfiles)
		profiles.GET("/:id", c.Profile.GetProfileByID)

		profilesAdmin := profiles.Group("")
		profilesAdmin.Use(authMiddleware.RolesRequired(models.RoleHRAdmin, models.RoleSuperAdmin))
		{
			profilesAdmin.PUT("/:id", c.Profile.UpdateProfile)
			profilesAdmin.DELETE("/:id", c.Profile.DeleteProfile)
			profilesAdmin.POST("/:id/roles", c.Profile.AssignRole)
			profilesAdmin.DELETE("/:id/roles/:role", c.Profile.RevokeRole)
		}
	}
}
