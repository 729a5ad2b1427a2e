package http

import (
	"errors"
	"net/http"

	"ai-anywhere/internal/domain"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Data not found"}}
	// BadGateway response
	BadGateway = Status{Code: http.StatusBadGateway, Message: []string{"Sorry, The AI provider did not answer correctly"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`

	CurrentPage *int   `json:"current_page,omitempty"`
	PerPage     *int   `json:"per_page,omitempty"`
	TotalItem   *int64 `json:"total_item,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// ImportResponse struct - HTTP response DTO for a task import
type ImportResponse struct {
	Imported int `json:"imported"`
}

// CleanupResponse struct - HTTP response DTO for a media cleanup
type CleanupResponse struct {
	Removed int `json:"removed"`
}

// statusFor maps a domain error onto a response status
func statusFor(err error) Status {
	var status Status
	switch {
	case errors.Is(err, domain.ErrCustomTaskNotFound), errors.Is(err, domain.ErrHistoryEntryNotFound):
		status = NotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownOperation),
		errors.Is(err, domain.ErrPromptTooLong),
		errors.Is(err, domain.ErrEmptyInput),
		errors.Is(err, domain.ErrAudioFileNotFound),
		errors.Is(err, domain.ErrMissingAPIKey):
		status = BadRequest
	case errors.Is(err, domain.ErrProviderHTTP),
		errors.Is(err, domain.ErrProviderParse),
		errors.Is(err, domain.ErrTransport):
		status = BadGateway
	default:
		status = InternalServerError
	}
	status.Message = []string{err.Error()}
	return status
}
