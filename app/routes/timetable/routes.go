package timetable

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/taha1545/school-mangment-system/app/routes/auth"
)

func SetupTimetableRoutes(app *fiber.App) {
	api := app.Group("/api/schedule")
	api.Use(auth.AuthMiddleware)

	api.Post("/import", ImportAPI)
	api.Get("/summary", GetSummaryAPI)
	api.Get("/teachers", GetTeachersAPI)
	api.Get("/teachers/:name", GetTeacherAPI)
	api.Get("/teachers/:name/sessions", GetTeacherSessionsAPI)
	api.Get("/subjects", GetSubjectsAPI)
	api.Get("/classes", GetClassesAPI)
	api.Get("/classes/:name", GetClassAPI)
	api.Get("/problems", GetProblemsAPI)
}

// decodeParam unescapes a path parameter; teacher names carry spaces.
func decodeParam(raw string) (string, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw, err
	}
	return decoded, nil
}
