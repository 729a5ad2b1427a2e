package validator

import (
	"testing"
)

type option struct {
	Key  string `validate:"required"`
	Type string `validate:"required,optiontype"`
}

type task struct {
	Name    string   `validate:"required,max=5"`
	Limit   *int     `validate:"omitempty,gte=1"`
	Options []option `validate:"omitempty,dive"`
}

// TestValidateStruct_Valid tests a struct that passes validation
func TestValidateStruct_Valid(t *testing.T) {
	limit := 3
	err := New().ValidateStruct(task{Name: "ok", Limit: &limit, Options: []option{{Key: "a", Type: "select"}}})

	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

// TestValidateStruct_ReadableMessages tests the joined messages for each failing rule
func TestValidateStruct_ReadableMessages(t *testing.T) {
	zero := 0
	err := New().ValidateStruct(task{Name: "toolong", Limit: &zero, Options: []option{{Type: "slider"}}})

	if err == nil {
		t.Fatal("expected validation error")
	}
	expected := "Name must be at most 5 characters; Limit must be at least 1; " +
		"Options[0].Key is required; Options[0].Type must be one of select, text, number, textarea, checkbox"
	if err.Error() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, err.Error())
	}
}
