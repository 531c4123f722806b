package followup

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taha1545/school-mangment-system/app/routes/auth"
)

func SetupFollowUpRoutes(app *fiber.App) {
	api := app.Group("/api/followup")
	api.Use(auth.AuthMiddleware)

	api.Post("/", CreateFollowUpEventAPI)
	api.Get("/teacher/:name", GetTeacherFollowUpAPI)
	api.Get("/export", ExportFollowUpAPI)
}
