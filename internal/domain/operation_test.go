package domain

import "testing"

// TestParseOperationKind tests parsing of built-in and custom operation ids
func TestParseOperationKind(t *testing.T) {
	kind := ParseOperationKind("textRewrite")
	if !kind.IsBuiltIn() || kind.BuiltIn != TextRewrite {
		t.Errorf("expected built-in textRewrite, got: %+v", kind)
	}

	custom := ParseOperationKind("7f1c1c9e-55a1-4c3b-9d1e-2a4f9b0c1d2e")
	if custom.IsBuiltIn() {
		t.Errorf("expected custom kind, got: %+v", custom)
	}
	if custom.String() != "7f1c1c9e-55a1-4c3b-9d1e-2a4f9b0c1d2e" {
		t.Errorf("expected id to round trip, got: %s", custom.String())
	}
}

// TestOperationKindFamily tests the call family of each built-in operation
func TestOperationKindFamily(t *testing.T) {
	tests := map[string]CallFamily{
		"imageGeneration": FamilyImage,
		"speechToText":    FamilySpeechToText,
		"textToSpeech":    FamilyTextToSpeech,
		"generalChat":     FamilyChat,
		"emailReply":      FamilyChat,
		"my-custom-task":  FamilyChat,
	}
	for raw, want := range tests {
		if got := ParseOperationKind(raw).Family(); got != want {
			t.Errorf("%s: expected %s, got: %s", raw, want, got)
		}
	}
	if FamilyImage.Streams() || FamilySpeechToText.Streams() || FamilyTextToSpeech.Streams() {
		t.Error("expected media families to never stream")
	}
	if !FamilyChat.Streams() {
		t.Error("expected chat family to stream")
	}
}

// TestBuiltInOperationOverride tests that prompt overrides replace the built-in system prompt
func TestBuiltInOperationOverride(t *testing.T) {
	op, ok := BuiltInOperation(TextRewrite, map[string]string{"textrewrite": "Rewrite in {tone}"})
	if !ok {
		t.Fatal("expected textRewrite to exist")
	}
	if op.SystemPrompt != "Rewrite in {tone}" {
		t.Errorf("expected override prompt, got: %s", op.SystemPrompt)
	}

	op, _ = BuiltInOperation(TextRewrite, map[string]string{"textrewrite": "   "})
	if op.SystemPrompt != DefaultSystemPrompt(TextRewrite) {
		t.Error("expected blank override to fall back to the default prompt")
	}
}

// TestBuiltInPromptsMatchOptionSchemas tests that every built-in prompt uses exactly its declared options
func TestBuiltInPromptsMatchOptionSchemas(t *testing.T) {
	for _, op := range BuiltInOperations(nil) {
		declared := map[string]bool{}
		for _, o := range op.Options {
			declared[o.Key] = true
		}
		for _, key := range Placeholders(op.SystemPrompt) {
			if !declared[key] {
				t.Errorf("%s: placeholder {%s} has no option", op.Type, key)
			}
		}
	}
}

// TestWithDefaults tests merging caller options over schema defaults
func TestWithDefaults(t *testing.T) {
	op, _ := BuiltInOperation(TextSummarization, nil)
	merged := WithDefaults(map[string]string{"length": "brief"}, op.Options)
	if merged["length"] != "brief" {
		t.Errorf("expected caller value to win, got: %s", merged["length"])
	}
	if merged["format"] != "bullet points" {
		t.Errorf("expected default format, got: %s", merged["format"])
	}
}
