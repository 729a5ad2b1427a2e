package http

import (
	"ai-anywhere/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ListHistory godoc
// @Summary List history
// @Description Newest first; q searches prompt and response text
// @Tags HISTORY
// @Produce json
// @param q query string false "search text"
// @param page query int false "page"
// @param limit query int false "limit"
// @Success 200 {object} ResponseBody
// @Router /v1/api/history [get]
func (hdl *HTTPHandler) ListHistory(c *fiber.Ctx) error {
	condition := QueryHistoryRequest{}
	if err := c.QueryParser(&condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(condition); err != nil {
		return hdl.badRequest(c, err)
	}

	limit, page, offset := condition.Pagination()
	query := domain.HistoryQuery{Limit: limit, Offset: offset}
	if condition.Q != nil {
		query.Search = *condition.Q
	}
	entries, total, err := hdl.history.List(query)
	if err != nil {
		return hdl.fail(c, err)
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status:      Success,
		Data:        entries,
		CurrentPage: &page,
		PerPage:     &limit,
		TotalItem:   &total,
	})
}

// RecordHistory godoc
// @Summary Record history entry
// @Description Stores a finished operation; failed results are ignored
// @Tags HISTORY
// @Accept application/json
// @Produce json
// @param RecordHistory body RecordHistoryRequest true "RecordHistory"
// @Success 201 {object} ResponseBody
// @Router /v1/api/history [post]
func (hdl *HTTPHandler) RecordHistory(c *fiber.Ctx) error {
	var request RecordHistoryRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return hdl.badRequest(c, err)
	}
	entry, err := hdl.history.Record(request.Request.toDomain(), request.Result)
	if err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Success, Data: entry})
}

// DeleteHistory godoc
// @Summary Delete history entry
// @Tags HISTORY
// @Produce json
// @param id path string true "uuid"
// @Success 200 {object} ResponseBody
// @Failure 404 {object} ResponseBody
// @Router /v1/api/history/{id} [delete]
func (hdl *HTTPHandler) DeleteHistory(c *fiber.Ctx) error {
	uid, err := hdl.parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.history.Delete(uid); err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// ClearHistory godoc
// @Summary Clear history
// @Tags HISTORY
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/history [delete]
func (hdl *HTTPHandler) ClearHistory(c *fiber.Ctx) error {
	if err := hdl.history.Clear(); err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// CleanupMedia godoc
// @Summary Remove expired media
// @Description Deletes generated media older than the configured retention
// @Tags HISTORY
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/history/cleanup [post]
func (hdl *HTTPHandler) CleanupMedia(c *fiber.Ctx) error {
	removed, err := hdl.history.CleanupMedia()
	if err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: CleanupResponse{Removed: removed}})
}
