package followup

import (
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/taha1545/school-mangment-system/app/config"
	"github.com/taha1545/school-mangment-system/app/database"
	"github.com/taha1545/school-mangment-system/app/models"
)

const exportSheet = "المتابعة"

// exportHeaders match the follow-up workbook the school has always used:
// date, teacher, type, subject, hour, note.
var exportHeaders = []string{"التاريخ", "الأستاذ", "النوع", "المادة", "الساعة", "الملاحظة"}

func ExportFollowUpAPI(c *fiber.Ctx) error {
	from, to, err := dateRange(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	events, err := database.GetAllFollowUpEvents(config.GetDB(), from, to)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch follow-up events"})
	}

	file, err := buildFollowUpWorkbook(events)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build workbook"})
	}
	buf, err := file.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write workbook"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="teacher_followup.xlsx"`)
	return c.Send(buf.Bytes())
}

func buildFollowUpWorkbook(events []*models.FollowUpEvent) (*excelize.File, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	for rowIdx, event := range events {
		values := []interface{}{
			event.Date.Format("2006-01-02"),
			event.Teacher,
			string(event.EventType),
			event.Subject,
			event.HourLabel,
			event.Note,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}
	return file, nil
}
