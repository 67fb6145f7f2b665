package main

import (
	"log"
	"time"

	"github.com/anjiri1684/edu_assist/database"
	"github.com/anjiri1684/edu_assist/jobs"
	"github.com/anjiri1684/edu_assist/notifications"
	"github.com/anjiri1684/edu_assist/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	notifications.InitEmailService()

	c := cron.New()
	c.AddFunc("@hourly", jobs.AuditPointsLedger)
	c.AddFunc("0 */6 * * *", jobs.ReportStaleDoubts)
	go c.Start()
	log.Println("✅ Audit cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Edu Assist",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"code":    code,
				"error":   err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Welcome to Edu Assist API",
		})
	})

	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.DoubtRoutes(app)
	routes.TeacherRoutes(app)
	routes.PointsRoutes(app)
	routes.QuizRoutes(app)
	routes.AssistantRoutes(app)
	routes.TopicRoutes(app)
	routes.UploadRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
