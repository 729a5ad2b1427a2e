package domain

// BuiltInKind enumerates the operations shipped with the application
type BuiltInKind string

const (
	// GeneralChat const
	GeneralChat BuiltInKind = "generalChat"
	// ImageGeneration const
	ImageGeneration BuiltInKind = "imageGeneration"
	// TextRewrite const
	TextRewrite BuiltInKind = "textRewrite"
	// TextTranslation const
	TextTranslation BuiltInKind = "textTranslation"
	// TextSummarization const
	TextSummarization BuiltInKind = "textSummarization"
	// TextToSpeech const
	TextToSpeech BuiltInKind = "textToSpeech"
	// EmailReply const
	EmailReply BuiltInKind = "emailReply"
	// WhatsAppResponse const
	WhatsAppResponse BuiltInKind = "whatsAppResponse"
	// SpeechToText const
	SpeechToText BuiltInKind = "speechToText"
	// UnicodeSymbols const
	UnicodeSymbols BuiltInKind = "unicodeSymbols"
)

// BuiltInKinds lists every built-in kind in catalog order
var BuiltInKinds = []BuiltInKind{
	GeneralChat,
	EmailReply,
	ImageGeneration,
	SpeechToText,
	TextRewrite,
	TextSummarization,
	TextToSpeech,
	TextTranslation,
	UnicodeSymbols,
	WhatsAppResponse,
}

// CallFamily is the provider endpoint an operation ends up calling
type CallFamily int

const (
	// FamilyChat covers every text operation, built-in or custom
	FamilyChat CallFamily = iota
	// FamilyImage const
	FamilyImage
	// FamilySpeechToText const
	FamilySpeechToText
	// FamilyTextToSpeech const
	FamilyTextToSpeech
)

func (f CallFamily) String() string {
	switch f {
	case FamilyImage:
		return "image"
	case FamilySpeechToText:
		return "speech-to-text"
	case FamilyTextToSpeech:
		return "text-to-speech"
	default:
		return "chat"
	}
}

// Streams reports whether the family can be served by the streaming engine
func (f CallFamily) Streams() bool {
	return f == FamilyChat
}

// OperationKind is either a built-in kind or the id of a custom task.
// Exactly one of BuiltIn and CustomID is set.
type OperationKind struct {
	BuiltIn  BuiltInKind
	CustomID string
}

// ParseOperationKind classifies a raw operation identifier once.
// Anything that is not a built-in kind is treated as a custom task id;
// its existence is checked when the prompt is resolved.
func ParseOperationKind(raw string) OperationKind {
	for _, k := range BuiltInKinds {
		if string(k) == raw {
			return OperationKind{BuiltIn: k}
		}
	}
	return OperationKind{CustomID: raw}
}

// IsBuiltIn func
func (k OperationKind) IsBuiltIn() bool {
	return k.BuiltIn != ""
}

// String returns the identifier the kind was parsed from
func (k OperationKind) String() string {
	if k.IsBuiltIn() {
		return string(k.BuiltIn)
	}
	return k.CustomID
}

// Family returns the provider call family. Custom tasks are always chat.
func (k OperationKind) Family() CallFamily {
	switch k.BuiltIn {
	case ImageGeneration:
		return FamilyImage
	case SpeechToText:
		return FamilySpeechToText
	case TextToSpeech:
		return FamilyTextToSpeech
	default:
		return FamilyChat
	}
}

// OptionType type
type OptionType string

const (
	// OptionSelect const
	OptionSelect OptionType = "select"
	// OptionText const
	OptionText OptionType = "text"
	// OptionNumber const
	OptionNumber OptionType = "number"
	// OptionTextarea const
	OptionTextarea OptionType = "textarea"
	// OptionCheckbox const
	OptionCheckbox OptionType = "checkbox"
)

// OperationOption describes one user-selectable value of an operation
type OperationOption struct {
	Key          string     `json:"key"`
	Name         string     `json:"name"`
	Type         OptionType `json:"type"`
	Values       []string   `json:"values,omitempty"`
	DefaultValue string     `json:"defaultValue,omitempty"`
	Required     bool       `json:"required"`
}

// Operation is a catalog entry shown to the user
type Operation struct {
	Type         string            `json:"type"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	SystemPrompt string            `json:"systemPrompt"`
	Options      []OperationOption `json:"options"`
	Custom       bool              `json:"custom"`
}

// OperationRequest is one user-triggered action; it is not modified once built
type OperationRequest struct {
	OperationType string
	Prompt        string
	SelectedText  *string
	Options       map[string]string
	AudioFilePath *string
}

// Kind parses the operation identifier
func (r OperationRequest) Kind() OperationKind {
	return ParseOperationKind(r.OperationType)
}

// Option returns the option value or fallback when absent or blank
func (r OperationRequest) Option(key, fallback string) string {
	if v, ok := r.Options[key]; ok && v != "" {
		return v
	}
	return fallback
}

// WithDefaults returns the options merged over the schema defaults
func WithDefaults(options map[string]string, schema []OperationOption) map[string]string {
	merged := make(map[string]string, len(options)+len(schema))
	for _, o := range schema {
		if o.DefaultValue != "" {
			merged[o.Key] = o.DefaultValue
		}
	}
	for k, v := range options {
		merged[k] = v
	}
	return merged
}
