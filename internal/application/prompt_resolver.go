package application

import (
	"errors"
	"fmt"

	"ai-anywhere/internal/domain"
	"ai-anywhere/internal/ports/output"

	"github.com/google/uuid"
)

// PromptResolver struct - turns an operation kind into its substituted system prompt
type PromptResolver struct {
	tasks output.CustomTaskRepository
}

// NewPromptResolver func - Creates new prompt resolver
func NewPromptResolver(tasks output.CustomTaskRepository) *PromptResolver {
	return &PromptResolver{
		tasks: tasks,
	}
}

// Resolve looks the kind up among built-ins first, then among custom tasks,
// and substitutes options (over the schema defaults) into the template.
func (r *PromptResolver) Resolve(kind domain.OperationKind, options map[string]string, overrides map[string]string) (string, error) {
	if kind.IsBuiltIn() {
		op, ok := domain.BuiltInOperation(kind.BuiltIn, overrides)
		if !ok {
			return "", fmt.Errorf("%w: %s", domain.ErrUnknownOperation, kind)
		}
		return domain.SubstitutePlaceholders(op.SystemPrompt, domain.WithDefaults(options, op.Options)), nil
	}

	task, err := r.customTask(kind.CustomID)
	if err != nil {
		return "", err
	}
	return domain.SubstitutePlaceholders(task.SystemPrompt, domain.WithDefaults(options, task.Options)), nil
}

func (r *PromptResolver) customTask(rawID string) (*domain.CustomTask, error) {
	id, err := uuid.Parse(rawID)
	if err != nil || r.tasks == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, rawID)
	}
	task, err := r.tasks.Get(id)
	if errors.Is(err, domain.ErrCustomTaskNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, rawID)
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}
