package main

import (
	"github.com/gin-gonic/gin"

	"betterside.backend/internal/domain/entities"
	"betterside.backend/internal/interfaces/http/handlers"
	"betterside.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	projectHandler    *handlers.ProjectHandler
	leadHandler       *handlers.LeadHandler
	adHandler         *handlers.AdHandler
	assignmentHandler *handlers.AssignmentHandler
	marketingHandler  *handlers.MarketingHandler
	cpHandler         *handlers.CpHandler
	developerHandler  *handlers.DeveloperHandler
	sessionAuth       gin.HandlerFunc
	adminAuth         gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	api := r.Group("/api")

	requireCP := middleware.RequireRole(entities.UserRoleCP)
	requireDeveloper := middleware.RequireRole(entities.UserRoleDeveloper)

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", d.authHandler.Register)
		auth.POST("/login", d.authHandler.Login)
		auth.POST("/logout", d.authHandler.Logout)
		auth.GET("/me", d.sessionAuth, d.authHandler.Me)
	}

	projects := api.Group("/projects", d.sessionAuth)
	{
		projects.GET("", d.projectHandler.ListProjects)
		projects.GET("/:id", d.projectHandler.GetProject)
		projects.POST("", requireDeveloper, d.projectHandler.CreateProject)
		projects.PUT("/:id", requireDeveloper, d.projectHandler.UpdateProject)
		projects.DELETE("/:id", requireDeveloper, d.projectHandler.DeleteProject)
	}

	leads := api.Group("/leads", d.sessionAuth)
	{
		leads.GET("", d.leadHandler.ListLeads)
		leads.GET("/:id", d.leadHandler.GetLead)
		leads.POST("", requireCP, d.leadHandler.CreateLead)
		leads.PUT("/:id", d.leadHandler.UpdateLead)
	}

	ads := api.Group("/ads", d.sessionAuth)
	{
		ads.GET("", d.adHandler.ListAds)
		ads.GET("/:id", d.adHandler.GetAd)
		ads.POST("", d.adHandler.CreateAd)
		ads.PUT("/:id", d.adHandler.UpdateAd)
	}

	assignments := api.Group("/cp-projects", d.sessionAuth)
	{
		assignments.GET("", d.assignmentHandler.ListAssignments)
		assignments.POST("", d.assignmentHandler.CreateAssignment)
		assignments.PUT("/:id/status", requireDeveloper, d.assignmentHandler.UpdateAssignmentStatus)
	}

	api.GET("/users/cps", d.sessionAuth, requireDeveloper, d.assignmentHandler.ListCps)

	// Collateral team and ad platform sync, bearer admin token
	api.POST("/cp/marketing/increment", d.adminAuth, middleware.IdempotencyMiddleware(), d.marketingHandler.IncrementCounters)
	admin := api.Group("/admin", d.adminAuth)
	{
		admin.PUT("/ads/:id/metrics", d.adHandler.UpdateAdMetrics)
		admin.PUT("/marketing/requests/:id/status", d.marketingHandler.UpdateRequestStatus)
	}

	// CP panel
	cp := api.Group("/cp", d.sessionAuth, requireCP)
	{
		cp.GET("/dashboard", d.cpHandler.GetDashboard)
		cp.GET("/profile", d.cpHandler.GetProfile)
		cp.PUT("/profile", d.cpHandler.UpdateProfile)

		cp.GET("/leads", d.leadHandler.ListCpLeads)
		cp.GET("/leads/:id", d.leadHandler.GetLead)
		cp.POST("/leads", d.leadHandler.CreateLead)
		cp.PUT("/leads/:id", d.leadHandler.UpdateLead)
		cp.DELETE("/leads/:id", d.leadHandler.DeleteCpLead)

		cp.GET("/ads-requests", d.adHandler.ListAdRequests)
		cp.GET("/ads-requests/:id", d.adHandler.GetAdRequest)
		cp.POST("/ads-requests", d.adHandler.CreateAdRequest)
		cp.PUT("/ads-requests/:id", d.adHandler.UpdateAdRequest)

		cp.GET("/projects", d.assignmentHandler.ListCpProjects)
		cp.POST("/invites/accept", d.developerHandler.AcceptInvite)

		cp.GET("/marketing", d.marketingHandler.GetSummary)
		cp.POST("/marketing/request", d.marketingHandler.CreateRequest)
		cp.GET("/marketing/requests", d.marketingHandler.ListRequests)
	}

	// Developer panel
	developer := api.Group("/developer", d.sessionAuth, requireDeveloper)
	{
		developer.GET("/dashboard", d.developerHandler.GetDashboard)
		developer.GET("/partners", d.developerHandler.ListPartners)
		developer.GET("/projects/performance", d.developerHandler.GetPerformance)
		developer.POST("/projects/:id/invite", d.developerHandler.CreateInvite)
	}
}
