package api

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/djblanc360/portfolio-backend/database"
	"github.com/djblanc360/portfolio-backend/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler     projectHandler
	skillHandler       skillHandler
	contactHandler     contactHandler
	uploadHandler      uploadHandler
	maintenanceHandler maintenanceHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, cfg map[string]string, cache *queryCache, startupTime time.Time) *routeHandlers {
	// Uploads stay disabled when S3 is not configured; the endpoint answers
	// 503 instead of the server refusing to boot.
	var uploader imageStore
	if s3Uploader, err := services.NewImageUploader(cfg); err != nil {
		log.Warn().Err(err).Msg("Image uploads disabled")
	} else {
		uploader = s3Uploader
	}

	return &routeHandlers{
		projectHandler:     newProjectHandler(db.ProjectRepo(), cache),
		skillHandler:       newSkillHandler(db.SkillRepo(), db.ProjectSkillRepo(), db.ProjectRepo(), cache),
		contactHandler:     newContactHandler(cfg),
		uploadHandler:      newUploadHandler(uploader),
		maintenanceHandler: newMaintenanceHandler(db, startupTime),
	}
}
