package http

import "ai-anywhere/internal/domain"

type (
	// OperationRequest struct - HTTP request DTO for running an operation
	OperationRequest struct {
		OperationType string            `json:"operationType" validate:"required,max=100"`
		Prompt        string            `json:"prompt" validate:"omitempty"`
		SelectedText  *string           `json:"selectedText" validate:"omitempty"`
		Options       map[string]string `json:"options" validate:"omitempty"`
		AudioFilePath *string           `json:"audioFilePath" validate:"omitempty"`
	}

	// OptionRequest struct - HTTP request DTO for one custom task option
	OptionRequest struct {
		Key          string   `json:"key" validate:"required,max=100"`
		Name         string   `json:"name" validate:"omitempty,max=200"`
		Type         string   `json:"type" validate:"required,optiontype"`
		Values       []string `json:"values" validate:"omitempty"`
		DefaultValue string   `json:"defaultValue" validate:"omitempty"`
		Required     bool     `json:"required"`
	}

	// CustomTaskRequest struct - HTTP request DTO for creating or updating a custom task
	CustomTaskRequest struct {
		Name         string          `json:"name" validate:"required,max=200"`
		Description  string          `json:"description" validate:"omitempty"`
		SystemPrompt string          `json:"systemPrompt" validate:"required"`
		Options      []OptionRequest `json:"options" validate:"omitempty,dive"`
	}

	// QueryHistoryRequest struct - HTTP query request DTO
	QueryHistoryRequest struct {
		Q     *string `json:"q" form:"q" query:"q"`
		Limit *int    `json:"limit,omitempty" validate:"omitempty,gte=1,lte=500" form:"limit" query:"limit"`
		Page  *int    `json:"page,omitempty" validate:"omitempty,gte=1" form:"page" query:"page"`
	}

	// RecordHistoryRequest struct - HTTP request DTO for storing a finished operation
	RecordHistoryRequest struct {
		Request OperationRequest       `json:"request"`
		Result  domain.OperationResult `json:"result"`
	}
)

// toDomain converts the HTTP request to the domain request
func (r OperationRequest) toDomain() domain.OperationRequest {
	return domain.OperationRequest{
		OperationType: r.OperationType,
		Prompt:        r.Prompt,
		SelectedText:  r.SelectedText,
		Options:       r.Options,
		AudioFilePath: r.AudioFilePath,
	}
}

// toDomain converts the HTTP request to a domain task
func (r CustomTaskRequest) toDomain() domain.CustomTask {
	options := make([]domain.OperationOption, 0, len(r.Options))
	for _, o := range r.Options {
		options = append(options, domain.OperationOption{
			Key:          o.Key,
			Name:         o.Name,
			Type:         domain.OptionType(o.Type),
			Values:       o.Values,
			DefaultValue: o.DefaultValue,
			Required:     o.Required,
		})
	}
	return domain.CustomTask{
		Name:         r.Name,
		Description:  r.Description,
		SystemPrompt: r.SystemPrompt,
		Options:      options,
	}
}

const defaultHistoryLimit = 50

// Pagination returns limit and offset with defaults applied
func (q QueryHistoryRequest) Pagination() (limit, page, offset int) {
	limit, page = defaultHistoryLimit, 1
	if q.Limit != nil {
		limit = *q.Limit
	}
	if q.Page != nil {
		page = *q.Page
	}
	return limit, page, (page - 1) * limit
}
