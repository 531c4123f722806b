package followup

import (
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/taha1545/school-mangment-system/app/config"
	"github.com/taha1545/school-mangment-system/app/database"
	"github.com/taha1545/school-mangment-system/app/models"
	"github.com/taha1545/school-mangment-system/app/schedule"
)

var validate = validator.New()

func CreateFollowUpEventAPI(c *fiber.Ctx) error {
	type FollowUpRequest struct {
		Date      string `json:"date" validate:"required"`
		Teacher   string `json:"teacher" validate:"required"`
		EventType string `json:"event_type" validate:"required,oneof=absence lateness makeup note"`
		Subject   string `json:"subject"`
		HourLabel string `json:"hour_label"`
		Note      string `json:"note"`
	}

	var req FollowUpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	teacher := schedule.NormalizeTeacherName(req.Teacher)
	if teacher == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Teacher name is required"})
	}

	recordedBy, _ := c.Locals("user_id").(string)
	event := &models.FollowUpEvent{
		Date:       date,
		Teacher:    teacher,
		EventType:  models.FollowUpType(req.EventType),
		Subject:    req.Subject,
		HourLabel:  req.HourLabel,
		Note:       req.Note,
		RecordedBy: recordedBy,
	}

	if err := database.InsertFollowUpEvent(config.GetDB(), event); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record follow-up event"})
	}

	return c.Status(201).JSON(fiber.Map{"event": event})
}

func GetTeacherFollowUpAPI(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Teacher name is required"})
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	name = schedule.NormalizeTeacherName(name)

	from, to, err := dateRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	events, err := database.GetFollowUpEventsByTeacher(config.GetDB(), name, from, to)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch follow-up events"})
	}
	if events == nil {
		events = []*models.FollowUpEvent{}
	}

	return c.JSON(fiber.Map{
		"teacher": name,
		"events":  events,
		"count":   len(events),
	})
}

func dateRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}
