package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface and the password-protected
// management surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(HTTPLoggingMiddleware)

		// Public endpoints
		r.Get("/health", handlers.maintenanceHandler.health())
		r.Get("/projects", handlers.projectHandler.getProjects())
		r.Get("/project/{slug}/case-study", handlers.projectHandler.getCaseStudy())
		r.Get("/skills", handlers.skillHandler.getSkills())
		r.Post("/contact", handlers.contactHandler.sendMessage())

		// Management endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/skills", handlers.skillHandler.createSkill())
			r.Delete("/skill/{skillID}", handlers.skillHandler.deleteSkill())

			r.Post("/project/{projectID}/skills/{skillID}", handlers.skillHandler.addSkillToProject())
			r.Delete("/project/{projectID}/skills/{skillID}", handlers.skillHandler.removeSkillFromProject())
			r.Post("/skills/categories/rename", handlers.skillHandler.renameCategory())

			r.Post("/uploads", handlers.uploadHandler.uploadImage())
			r.Post("/seed", handlers.maintenanceHandler.seed())
		})
	})
}
