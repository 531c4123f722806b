package timetable

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/taha1545/school-mangment-system/app/config"
	"github.com/taha1545/school-mangment-system/app/models"
	"github.com/taha1545/school-mangment-system/app/schedule"
)

var validate = validator.New()

// The shared index and the guard around it. The parsing engine itself is
// lock-free; concurrent HTTP access is coordinated here.
var (
	mu          sync.RWMutex
	index       = schedule.NewIndex()
	lastImport  time.Time
	lastSummary models.ImportSummary
)

// ImportPaths rebuilds the shared index from the given CSV files. Used by the
// import endpoint and by the export-directory watcher.
func ImportPaths(paths []string) (models.ImportSummary, error) {
	mu.Lock()
	defer mu.Unlock()

	summary, err := index.ImportCSVFiles(paths)
	if err != nil {
		log.Printf("Import aborted: %v", err)
		return summary, err
	}
	lastImport = time.Now()
	lastSummary = summary
	return summary, nil
}

// ImportFromExportsDir imports every CSV file in the configured exports
// directory. An empty directory yields a successful empty index.
func ImportFromExportsDir() (models.ImportSummary, error) {
	paths, err := listExportFiles()
	if err != nil {
		return models.ImportSummary{}, err
	}
	return ImportPaths(paths)
}

// listExportFiles collects the CSV files of the configured exports directory,
// sorted by name for a reproducible import order.
func listExportFiles() ([]string, error) {
	dir := config.AppConfig.ExportsDir
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".csv" {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func ImportAPI(c *fiber.Ctx) error {
	type ImportRequest struct {
		Paths []string `json:"paths" validate:"omitempty,min=1,dive,required"`
	}

	var req ImportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	paths := req.Paths
	if len(paths) == 0 {
		var err error
		paths, err = listExportFiles()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to read exports directory"})
		}
		if len(paths) == 0 {
			return c.Status(400).JSON(fiber.Map{"error": "No CSV files to import"})
		}
	}

	summary, err := ImportPaths(paths)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error(), "summary": summary})
	}
	return c.JSON(fiber.Map{"summary": summary})
}

func GetSummaryAPI(c *fiber.Ctx) error {
	mu.RLock()
	defer mu.RUnlock()

	return c.JSON(fiber.Map{
		"summary":     lastSummary,
		"last_import": lastImport,
		"teachers":    len(index.TeacherActivities),
		"subjects":    len(index.SubjectTeachers),
		"classes":     len(index.ClassActivities),
	})
}

func GetTeachersAPI(c *fiber.Ctx) error {
	mu.RLock()
	defer mu.RUnlock()

	teachers := index.Teachers()
	return c.JSON(fiber.Map{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

func GetTeacherAPI(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Teacher name is required"})
	}
	name, _ = decodeParam(name)

	mu.RLock()
	defer mu.RUnlock()

	activities, ok := index.TeacherActivities[name]
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
	}

	return c.JSON(fiber.Map{
		"teacher":        name,
		"subjects":       index.TeacherSubjects[name],
		"classes":        index.TeacherClasses[name],
		"activity_count": len(activities),
	})
}

func GetTeacherSessionsAPI(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Teacher name is required"})
	}
	name, _ = decodeParam(name)

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		date = parsed
	}

	mu.RLock()
	defer mu.RUnlock()

	sessions, ok := index.SessionsForTeacherOnDate(name, date)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
	}

	return c.JSON(fiber.Map{
		"teacher":  name,
		"date":     date.Format("2006-01-02"),
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func GetSubjectsAPI(c *fiber.Ctx) error {
	mu.RLock()
	defer mu.RUnlock()

	subjects := make([]fiber.Map, 0, len(index.SubjectTeachers))
	for _, subject := range index.Subjects() {
		subjects = append(subjects, fiber.Map{
			"subject":  subject,
			"teachers": index.SubjectTeachers[subject],
			"color":    index.ColorForSubject(subject),
		})
	}
	return c.JSON(fiber.Map{
		"subjects": subjects,
		"count":    len(subjects),
	})
}

func GetClassesAPI(c *fiber.Ctx) error {
	mu.RLock()
	defer mu.RUnlock()

	classes := make([]fiber.Map, 0, len(index.ClassActivities))
	for _, class := range index.Classes() {
		classes = append(classes, fiber.Map{
			"class":          class,
			"teachers":       index.ClassTeachers[class],
			"activity_count": len(index.ClassActivities[class]),
		})
	}
	return c.JSON(fiber.Map{
		"classes": classes,
		"count":   len(classes),
	})
}

func GetClassAPI(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class name is required"})
	}
	name, _ = decodeParam(name)

	mu.RLock()
	defer mu.RUnlock()

	activities, ok := index.ClassActivities[name]
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}

	return c.JSON(fiber.Map{
		"class":      name,
		"teachers":   index.ClassTeachers[name],
		"activities": activities,
	})
}

func GetProblemsAPI(c *fiber.Ctx) error {
	mu.RLock()
	defer mu.RUnlock()

	problems := index.Problems
	if problems == nil {
		problems = []models.RowDiagnostic{}
	}
	return c.JSON(fiber.Map{
		"problems": problems,
		"count":    len(problems),
	})
}
