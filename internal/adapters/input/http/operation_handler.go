package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"ai-anywhere/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Server-sent event names
const (
	eventChunk     = "chunk"
	eventDone      = "done"
	eventCancelled = "cancelled"
	eventResult    = "result"
)

// ListOperations godoc
// @Summary List operations
// @Description Built-in operations followed by custom tasks
// @Tags OPERATION
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/operations [get]
func (hdl *HTTPHandler) ListOperations(c *fiber.Ctx) error {
	ops, err := hdl.operations.ListOperations()
	if err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ops})
}

func (hdl *HTTPHandler) parseOperation(c *fiber.Ctx) (domain.OperationRequest, error) {
	var request OperationRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return domain.OperationRequest{}, err
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return domain.OperationRequest{}, err
	}
	return request.toDomain(), nil
}

// ProcessOperation godoc
// @Summary Run operation
// @Description Runs an operation and returns the whole result. A failed result is still returned as data.
// @Tags OPERATION
// @Accept application/json
// @Produce json
// @param ProcessOperation body OperationRequest true "ProcessOperation"
// @Success 200 {object} ResponseBody
// @Failure 400 {object} ResponseBody
// @Failure 502 {object} ResponseBody
// @Router /v1/api/operations/process [post]
func (hdl *HTTPHandler) ProcessOperation(c *fiber.Ctx) error {
	request, err := hdl.parseOperation(c)
	if err != nil {
		return hdl.badRequest(c, err)
	}

	result := hdl.operations.Process(c.UserContext(), request)
	hdl.record(request, result)
	if !result.Success && !result.Cancelled {
		status := statusFor(result.Err)
		return c.Status(status.Code).JSON(ResponseBody{Status: status, Data: result})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: result})
}

// StreamOperation godoc
// @Summary Stream operation
// @Description Streams deltas as server-sent events (chunk, done, cancelled) followed by one result event
// @Tags OPERATION
// @Accept application/json
// @Produce text/event-stream
// @param StreamOperation body OperationRequest true "StreamOperation"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} ResponseBody
// @Router /v1/api/operations/stream [post]
func (hdl *HTTPHandler) StreamOperation(c *fiber.Ctx) error {
	request, err := hdl.parseOperation(c)
	if err != nil {
		return hdl.badRequest(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		hdl.streamOperation(hdl.ctx, request, w)
	})
	return nil
}

func (hdl *HTTPHandler) streamOperation(ctx context.Context, request domain.OperationRequest, w *bufio.Writer) {
	disconnected := false
	send := func(event string, payload interface{}) {
		if disconnected {
			return
		}
		if err := writeEvent(w, event, payload); err != nil {
			logrus.Warnf("Stream client went away: %v", err)
			disconnected = true
			hdl.operations.Cancel()
		}
	}

	result := hdl.operations.ProcessStreaming(ctx, request, func(n domain.StreamNotification) {
		switch n.Kind {
		case domain.NotifyChunk:
			send(eventChunk, n)
		case domain.NotifyDone:
			send(eventDone, n)
		case domain.NotifyCancelled:
			send(eventCancelled, n)
		}
	})
	hdl.record(request, result)
	send(eventResult, result)
}

func writeEvent(w *bufio.Writer, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return w.Flush()
}

// CancelOperation godoc
// @Summary Cancel streaming operation
// @Description Stops the in-flight streaming operation before its next chunk
// @Tags OPERATION
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/operations/cancel [post]
func (hdl *HTTPHandler) CancelOperation(c *fiber.Ctx) error {
	hdl.operations.Cancel()
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// ListModels godoc
// @Summary List models
// @Description Models advertised by the configured provider
// @Tags MODEL
// @Produce json
// @Success 200 {object} ResponseBody
// @Failure 502 {object} ResponseBody
// @Router /v1/api/models [get]
func (hdl *HTTPHandler) ListModels(c *fiber.Ctx) error {
	models, err := hdl.operations.ListModels(c.UserContext())
	if err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: models})
}

// TestConnection godoc
// @Summary Test provider connection
// @Tags MODEL
// @Produce json
// @Success 200 {object} ResponseBody
// @Failure 502 {object} ResponseBody
// @Router /v1/api/models/test [get]
func (hdl *HTTPHandler) TestConnection(c *fiber.Ctx) error {
	if err := hdl.operations.TestConnection(c.UserContext()); err != nil {
		return hdl.fail(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

func (hdl *HTTPHandler) record(request domain.OperationRequest, result domain.OperationResult) {
	if !result.Success {
		return
	}
	if _, err := hdl.history.Record(request, result); err != nil {
		logrus.Errorf("Failed to record history: %v", err)
	}
}
