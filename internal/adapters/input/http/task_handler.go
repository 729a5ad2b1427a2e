package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ListTasks godoc
// @Summary List custom tasks
// @Tags TASK
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/tasks [get]
func (hdl *HTTPHandler) ListTasks(c *fiber.Ctx) error {
	tasks, err := hdl.tasks.List()
	if err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: tasks})
}

// GetTask godoc
// @Summary Get custom task
// @Tags TASK
// @Produce json
// @param id path string true "uuid"
// @Success 200 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Router /v1/api/tasks/{id} [get]
func (hdl *HTTPHandler) GetTask(c *fiber.Ctx) error {
	uid, err := hdl.parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	task, err := hdl.tasks.Get(uid)
	if err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: task})
}

func (hdl *HTTPHandler) parseTask(c *fiber.Ctx) (*CustomTaskRequest, error) {
	var request CustomTaskRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return nil, err
	}
	return &request, nil
}

// CreateTask godoc
// @Summary Create custom task
// @Description Placeholders in the system prompt must match the option keys exactly
// @Tags TASK
// @Accept application/json
// @Produce json
// @param CreateTask body CustomTaskRequest true "CreateTask"
// @Success 201 {object} ResponseBody
// @Failure 400 {object} ResponseBody
// @Router /v1/api/tasks [post]
func (hdl *HTTPHandler) CreateTask(c *fiber.Ctx) error {
	request, err := hdl.parseTask(c)
	if err != nil {
		return hdl.badRequest(c, err)
	}
	task, err := hdl.tasks.Create(request.toDomain())
	if err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Success, Data: task})
}

// UpdateTask godoc
// @Summary Update custom task
// @Tags TASK
// @Accept application/json
// @Produce json
// @param id path string true "uuid"
// @param UpdateTask body CustomTaskRequest true "UpdateTask"
// @Success 200 {object} ResponseBody
// @Failure 400 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Router /v1/api/tasks/{id} [put]
func (hdl *HTTPHandler) UpdateTask(c *fiber.Ctx) error {
	uid, err := hdl.parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	request, err := hdl.parseTask(c)
	if err != nil {
		return hdl.badRequest(c, err)
	}
	task, err := hdl.tasks.Update(uid, request.toDomain())
	if err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: task})
}

// DeleteTask godoc
// @Summary Delete custom task
// @Tags TASK
// @Produce json
// @param id path string true "uuid"
// @Success 200 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Router /v1/api/tasks/{id} [delete]
func (hdl *HTTPHandler) DeleteTask(c *fiber.Ctx) error {
	uid, err := hdl.parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.tasks.Delete(uid); err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// ExportTasks godoc
// @Summary Export custom tasks
// @Tags TASK
// @Produce json
// @Success 200 {array} domain.CustomTask
// @Router /v1/api/tasks/export [get]
func (hdl *HTTPHandler) ExportTasks(c *fiber.Ctx) error {
	data, err := hdl.tasks.Export()
	if err != nil {
		return hdl.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="custom_tasks.json"`)
	return c.Status(fiber.StatusOK).Send(data)
}

// ImportTasks godoc
// @Summary Import custom tasks
// @Description Merges tasks by name; invalid tasks are skipped
// @Tags TASK
// @Accept application/json
// @Produce json
// @param ImportTasks body []domain.CustomTask true "ImportTasks"
// @Success 200 {object} ResponseBody
// @Failure 400 {object} ResponseBody
// @Router /v1/api/tasks/import [post]
func (hdl *HTTPHandler) ImportTasks(c *fiber.Ctx) error {
	count, err := hdl.tasks.Import(c.Body())
	if err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ImportResponse{Imported: count}})
}
