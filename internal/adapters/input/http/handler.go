package http

import (
	"context"

	"ai-anywhere/internal/ports/input"
	"ai-anywhere/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	ctx        context.Context
	operations input.OperationService
	tasks      input.CustomTaskService
	history    input.HistoryService
	db         *gorm.DB
	validator  validator.Validator
}

// New func - Creates new HTTP handler. db may be nil when the stores live in memory.
// Streams started by the handler stop when ctx is cancelled.
func New(ctx context.Context, operations input.OperationService, tasks input.CustomTaskService, history input.HistoryService, db *gorm.DB) *HTTPHandler {
	return &HTTPHandler{
		ctx:        ctx,
		operations: operations,
		tasks:      tasks,
		history:    history,
		db:         db,
		validator:  validator.New(),
	}
}

// Register func - Mounts every route on the app
func (hdl *HTTPHandler) Register(app *fiber.App) {
	app.Get("/health", hdl.HealthCheck)

	api := app.Group("/v1/api")
	{
		api.Get("/operations", hdl.ListOperations)
		api.Post("/operations/process", hdl.ProcessOperation)
		api.Post("/operations/stream", hdl.StreamOperation)
		api.Post("/operations/cancel", hdl.CancelOperation)

		api.Get("/models", hdl.ListModels)
		api.Get("/models/test", hdl.TestConnection)

		api.Get("/tasks", hdl.ListTasks)
		api.Post("/tasks", hdl.CreateTask)
		api.Get("/tasks/export", hdl.ExportTasks)
		api.Post("/tasks/import", hdl.ImportTasks)
		api.Get("/tasks/:id", hdl.GetTask)
		api.Put("/tasks/:id", hdl.UpdateTask)
		api.Delete("/tasks/:id", hdl.DeleteTask)

		api.Get("/history", hdl.ListHistory)
		api.Post("/history", hdl.RecordHistory)
		api.Delete("/history", hdl.ClearHistory)
		api.Delete("/history/:id", hdl.DeleteHistory)
		api.Post("/history/cleanup", hdl.CleanupMedia)
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if hdl.db == nil {
		return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
	}
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

func (hdl *HTTPHandler) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	return c.Status(status.Code).JSON(ResponseBody{Status: status})
}

func (hdl *HTTPHandler) badRequest(c *fiber.Ctx, err error) error {
	msg := ResponseBody{
		Status: BadRequest,
	}
	msg.Status.Message = []string{
		err.Error(),
	}
	return c.Status(fiber.StatusBadRequest).JSON(msg)
}

func (hdl *HTTPHandler) parseID(c *fiber.Ctx) (uuid.UUID, error) {
	uid, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logrus.Errorln(err)
	}
	return uid, err
}
