package api

import (
	"time"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(
	db database.Database,
	tokens *auth.TokenManager,
	adminUsername, adminPassword string,
	uploader resumeUploader,
	notifier contactNotifier,
	startupTime time.Time,
	exposeDetails bool,
) *routeHandlers {
	return &routeHandlers{
		authHandler:         newAuthHandler(tokens, adminUsername, adminPassword, exposeDetails),
		personalInfoHandler: newPersonalInfoHandler(db.PersonalInfoRepo(), exposeDetails),
		projectHandler:      newProjectHandler(db.ProjectRepo(), exposeDetails),
		skillHandler:        newSkillHandler(db.SkillRepo(), exposeDetails),
		experienceHandler:   newExperienceHandler(db.ExperienceRepo(), exposeDetails),
		contactHandler:      newContactHandler(db.ContactMessageRepo(), notifier, exposeDetails),
		analyticsHandler:    newAnalyticsHandler(db.AnalyticsRepo(), exposeDetails),
		uploadHandler:       newUploadHandler(uploader, exposeDetails),
		adminHandler: newAdminHandler(
			db.ProjectRepo(),
			db.SkillRepo(),
			db.ExperienceRepo(),
			db.ContactMessageRepo(),
			db.AnalyticsRepo(),
			startupTime,
			exposeDetails,
		),
	}
}
