package domain

import "strings"

var defaultSystemPrompts = map[BuiltInKind]string{
	GeneralChat: `LANGUAGE RULE: Always respond in the same language as the user's input text.

TASK: Provide helpful assistance without interaction.

RULES:
1. Use the EXACT same language as the user's input
2. NO greetings, introductions, or opening phrases
3. NO questions or requests for clarification
4. Make reasonable assumptions and respond immediately
5. Choose the most logical interpretation if unclear
6. Provide complete, substantive answers

Start your response directly with the helpful content.`,

	ImageGeneration: `LANGUAGE RULE: Use the same language as the user's description for any text in the image.

TASK: Generate an image based on the user's description.

RULES:
1. Create exactly what is described
2. If text appears in the image, use the same language as the input
3. Follow the description precisely
4. Make the image high quality and detailed

Generate the image now.`,

	TextTranslation: `CRITICAL: You are translating TO {language}. The output must be in {language} only.

TASK: Translate the provided text to {language}.

TRANSLATION RULES:
1. Output language: {language} ONLY
2. Keep the original writing style and tone
3. Maintain the same formality level
4. Preserve the original meaning exactly
5. NO explanations or comments
6. Return ONLY the translated text

Translate this text to {language}:`,

	TextRewrite: `LANGUAGE RULE: Keep the EXACT same language as the original text.

TASK: Rewrite text to improve quality while maintaining {tone} tone.

REWRITING RULES:
1. Use the SAME language as the input text
2. Apply {tone} tone consistently
3. Fix grammar, spelling, and punctuation errors
4. Improve clarity and flow
5. Keep the same meaning - NO new ideas
6. Maintain similar length (+/-20%)
7. Use natural, native-level phrasing
8. NO explanations or comments

Return ONLY the rewritten text:`,

	TextSummarization: `LANGUAGE RULE: Use the EXACT same language as the original text.

TASK: Create a {length} summary in {format} format.

SUMMARY RULES:
1. Use the SAME language as the input text
2. Length: {length} (BRIEF=2-3 sentences, MEDIUM=1 paragraph, DETAILED=2-3 paragraphs)
3. Format: {format} (PARAGRAPH=flowing text, BULLET POINTS=clear bullets, EXECUTIVE SUMMARY=overview+findings, KEY TAKEAWAYS=main insights)
4. Keep core message and critical details
5. Use clear, professional language
6. Focus on facts and actionable items
7. NO explanations or meta-commentary

Create the {length} {format} summary:`,

	TextToSpeech: `TASK: Convert text to speech audio file.

TEXT-TO-SPEECH RULES:
1. Use the provided text exactly as given
2. Apply the selected voice and speed settings
3. Generate high-quality audio output
4. Maintain natural speech patterns and pronunciation
5. Process the complete text without truncation

Convert this text to speech:`,

	EmailReply: `LANGUAGE RULE: Write your reply in the EXACT same language as the original email.

TASK: Generate an email reply with {tone} tone and {length} length.

EMAIL REPLY RULES:
1. Use the SAME language as the original email
2. Apply {tone} tone: PROFESSIONAL=business-appropriate, FRIENDLY=warm but professional, FORMAL=traditional business, URGENT=time-sensitive, APOLOGETIC=acknowledges issues, ENTHUSIASTIC=positive energy
3. Length: {length} (BRIEF=2-4 sentences, STANDARD=1-2 paragraphs, DETAILED=2-3 paragraphs)
4. Structure: Greeting -> Acknowledge original -> Address key points -> Next steps -> Professional closing + [Your Name]
5. Address ALL questions from the original email
6. Match the formality level of the original
7. NO subject line (replies keep original subject)
8. NO explanations or meta-commentary

Write a proper reply for this email message:`,

	WhatsAppResponse: `LANGUAGE RULE: Respond in the EXACT same language as the original message.

TASK: Generate a WhatsApp-style response with {tone} tone and {length} length.

WHATSAPP RESPONSE RULES:
1. Use the SAME language as the original message
2. Apply {tone} tone: CASUAL=relaxed everyday chat, FRIENDLY=warm and welcoming, ENTHUSIASTIC=excited and energetic, SUPPORTIVE=encouraging and helpful, HUMOROUS=light and funny, PROFESSIONAL=polite but approachable
3. Length: {length} (SHORT=1-2 sentences, MEDIUM=2-4 sentences, LONG=4-6 sentences)
4. Use natural, conversational language typical of WhatsApp
5. Include appropriate emojis when they fit naturally (don't overuse)
6. Match the informality level of the original message
7. Be responsive to the context and emotion of the message
8. NO formal greetings or closings unless appropriate
9. Keep it authentic and human-like
10. NO explanations or meta-commentary

Generate a natural WhatsApp response to this message:`,

	SpeechToText: `TASK: Transcribe the provided audio file to text.

TRANSCRIPTION RULES:
1. Return only the transcribed text, no explanations
2. Use proper punctuation and formatting
3. Maintain speaker distinctions if multiple speakers
4. Keep the same language as the audio
5. Include relevant non-speech sounds in [brackets] if significant

Transcribe this audio:`,

	UnicodeSymbols: `You are a helpful assistant that suggests relevant Unicode symbols and emojis for any given concept.
Provide several accurate, diverse options (with brief explanations if useful) and favor characters that display consistently across platforms.
Answer in plain text only, no markdown.
Now provide unicode symbols and/or emojis for representing the following: `,
}

func selectOption(key, name, def string, required bool, values ...string) OperationOption {
	return OperationOption{Key: key, Name: name, Type: OptionSelect, Values: values, DefaultValue: def, Required: required}
}

var builtInCatalog = map[BuiltInKind]Operation{
	GeneralChat: {
		Name:        "Custom Task",
		Description: "Flexible AI help for any task or question",
	},
	EmailReply: {
		Name:        "Email Reply",
		Description: "Generate professional email replies",
		Options: []OperationOption{
			selectOption("tone", "Tone", "PROFESSIONAL", true, "PROFESSIONAL", "FRIENDLY", "FORMAL", "URGENT", "APOLOGETIC", "ENTHUSIASTIC"),
			selectOption("length", "Length", "STANDARD", false, "BRIEF", "STANDARD", "DETAILED"),
		},
	},
	ImageGeneration: {
		Name:        "Image Generation",
		Description: "Generate images with AI",
		Options: []OperationOption{
			selectOption("size", "Image Size", "512x768 (2:3 Portrait)", true,
				"512x512 (1:1 Square)", "768x768 (1:1 Square)", "1024x1024 (1:1 Square)",
				"512x768 (2:3 Portrait)", "768x1152 (2:3 Portrait)", "832x1248 (2:3 Portrait)", "896x1344 (2:3 Portrait)",
				"768x512 (3:2 Landscape)", "1152x768 (3:2 Landscape)", "1248x832 (3:2 Landscape)", "1344x896 (3:2 Landscape)",
				"768x1024 (3:4 Portrait)", "936x1248 (3:4 Portrait)",
				"1024x768 (4:3 Landscape)", "1248x936 (4:3 Landscape)"),
			selectOption("quality", "Quality", "hd", false, "standard", "hd"),
			selectOption("style", "Style", "vivid", false, "vivid", "natural"),
		},
	},
	SpeechToText: {
		Name:        "Speech-to-Text (STT)",
		Description: "Convert audio files to text",
		Options: []OperationOption{
			selectOption("language", "Language (optional)", "auto", false,
				"auto", "en", "es", "fr", "de", "it", "pt", "ru", "ja", "ko", "zh", "ar", "hi"),
		},
	},
	TextRewrite: {
		Name:        "Text Correction & Rewrite",
		Description: "Rewrite and improve text",
		Options: []OperationOption{
			selectOption("tone", "Writing Tone", "professional", true,
				"academic", "casual", "creative", "formal", "informal", "professional"),
		},
	},
	TextSummarization: {
		Name:        "Text Summarization",
		Description: "Condense text into key points",
		Options: []OperationOption{
			selectOption("length", "Summary Length", "medium", true, "brief", "medium", "detailed"),
			selectOption("format", "Format", "bullet points", true, "paragraph", "bullet points", "executive summary", "key takeaways"),
		},
	},
	TextToSpeech: {
		Name:        "Text-to-Speech (TTS)",
		Description: "Convert text to audio speech",
		Options: []OperationOption{
			selectOption("voice", "Voice", "alloy", true, "alloy", "ash", "ballad", "coral", "echo", "sage", "shimmer", "verse"),
			selectOption("speed", "Speed", "1.0", false, "0.25", "0.5", "0.75", "1.0", "1.25", "1.5", "1.75", "2.0"),
			selectOption("format", "Output Format", "mp3", false, "mp3", "opus", "aac", "flac"),
			selectOption("language", "Language", "pt", false,
				"en", "es", "fr", "de", "it", "pt", "pl", "tr", "ru", "cs", "ar", "zh-cn", "nl", "hi"),
			selectOption("model", "Model", "tts-1-hd", true, "tts-1", "tts-1-hd", "xtts"),
		},
	},
	TextTranslation: {
		Name:        "Text Translation",
		Description: "Translate text to another language",
		Options: []OperationOption{
			selectOption("language", "Target Language", "Portuguese", true,
				"Arabic", "Bengali", "Chinese", "English", "French", "German", "Hindi", "Italian",
				"Japanese", "Korean", "Portuguese", "Punjabi", "Russian", "Spanish"),
		},
	},
	UnicodeSymbols: {
		Name:        "Unicode Symbols",
		Description: "Generate unicode symbols/emojis representing text",
	},
	WhatsAppResponse: {
		Name:        "WhatsApp Response",
		Description: "Generate casual WhatsApp-style responses",
		Options: []OperationOption{
			selectOption("tone", "Response Tone", "FRIENDLY", true, "CASUAL", "FRIENDLY", "ENTHUSIASTIC", "SUPPORTIVE", "HUMOROUS", "PROFESSIONAL"),
			selectOption("length", "Response Length", "SHORT", false, "SHORT", "MEDIUM", "LONG"),
		},
	},
}

// DefaultSystemPrompt returns the shipped prompt for a built-in kind
func DefaultSystemPrompt(kind BuiltInKind) string {
	return defaultSystemPrompts[kind]
}

// BuiltInOperation returns the catalog entry for kind with the effective
// system prompt. overrides is keyed by operation kind, compared case-insensitively.
func BuiltInOperation(kind BuiltInKind, overrides map[string]string) (Operation, bool) {
	op, ok := builtInCatalog[kind]
	if !ok {
		return Operation{}, false
	}
	op.Type = string(kind)
	op.SystemPrompt = defaultSystemPrompts[kind]
	for k, v := range overrides {
		if strings.EqualFold(k, string(kind)) && strings.TrimSpace(v) != "" {
			op.SystemPrompt = v
			break
		}
	}
	op.Options = append([]OperationOption(nil), op.Options...)
	return op, true
}

// BuiltInOperations returns the whole catalog in display order
func BuiltInOperations(overrides map[string]string) []Operation {
	ops := make([]Operation, 0, len(BuiltInKinds))
	for _, kind := range BuiltInKinds {
		op, _ := BuiltInOperation(kind, overrides)
		ops = append(ops, op)
	}
	return ops
}
