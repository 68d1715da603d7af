package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public content surface, the bearer-protected
// mutation surface, and the /admin mirror of it.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, publicLimiter func(http.Handler) http.Handler) {
	// Public read endpoints
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/personal-info", handlers.personalInfoHandler.getPersonalInfo())
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Get("/experiences", handlers.experienceHandler.getAllExperiences())
		r.Get("/experiences/{experienceID}", handlers.experienceHandler.getExperience())
	})

	// Public write endpoints and login, rate limited at the edge
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(publicLimiter)

		r.Post("/contact", handlers.contactHandler.submitContact())
		r.Post("/analytics/page-view", handlers.analyticsHandler.recordPageView())
		r.Post("/analytics/event", handlers.analyticsHandler.recordEvent())
		r.Post("/admin/login", handlers.authHandler.login())
	})

	// Bearer-protected endpoints; token verification runs before any
	// handler touches storage. The admin UI drives the same handlers under
	// the /admin prefix.
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/admin/dashboard", handlers.adminHandler.getDashboard())

		mountProtectedRoutes(r, handlers, "")
		mountProtectedRoutes(r, handlers, "/admin")
	})
}

// mountProtectedRoutes registers the mutating/admin-read endpoints under
// the given prefix.
func mountProtectedRoutes(r chi.Router, handlers *routeHandlers, prefix string) {
	r.Put(prefix+"/personal-info", handlers.personalInfoHandler.updatePersonalInfo())

	r.Post(prefix+"/projects", handlers.projectHandler.createProject())
	r.Put(prefix+"/projects/{projectID}", handlers.projectHandler.updateProject())
	r.Delete(prefix+"/projects/{projectID}", handlers.projectHandler.deleteProject())

	r.Post(prefix+"/skills", handlers.skillHandler.createSkill())
	r.Put(prefix+"/skills/bulk", handlers.skillHandler.replaceAllSkills())
	r.Put(prefix+"/skills/{skillID}", handlers.skillHandler.updateSkill())
	r.Delete(prefix+"/skills/{skillID}", handlers.skillHandler.deleteSkill())

	r.Post(prefix+"/experiences", handlers.experienceHandler.createExperience())
	r.Put(prefix+"/experiences/{experienceID}", handlers.experienceHandler.updateExperience())
	r.Delete(prefix+"/experiences/{experienceID}", handlers.experienceHandler.deleteExperience())

	r.Get(prefix+"/contact", handlers.contactHandler.listMessages())
	r.Put(prefix+"/contact/{messageID}/read", handlers.contactHandler.markMessageRead())

	r.Get(prefix+"/analytics/summary", handlers.analyticsHandler.getSummary())
	r.Get(prefix+"/analytics/detailed", handlers.analyticsHandler.getDetailed())

	r.Post(prefix+"/uploads/resume", handlers.uploadHandler.uploadResume())
}
