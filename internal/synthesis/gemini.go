// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/phantasm/internal/httputil"
	"github.com/pdiddy/phantasm/pkg/types"
)

// geminiAPIBase is the Generative AI API endpoint. Package-level var for
// test substitution.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta"

const (
	defaultModel       = "gemini-3-flash-preview"
	defaultSpeechModel = "gemini-2.5-flash-preview-tts"
	defaultVoice       = "Charon"

	// emptySyllabusFallback is returned when the model produces no text for
	// a syllabus request; an empty document is not an error.
	emptySyllabusFallback = "The spirits remained silent. No syllabus could be conjured."
)

// GeminiBackend implements Backend against the Gemini REST API.
type GeminiBackend struct {
	cfg    types.AIConfig
	voice  string
	client *http.Client
}

// NewGeminiBackend builds a backend from AI settings, applying model and
// voice defaults.
func NewGeminiBackend(cfg types.AIConfig, voice string) *GeminiBackend {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.SpeechModel == "" {
		cfg.SpeechModel = defaultSpeechModel
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = 8192
	}
	if voice == "" {
		voice = defaultVoice
	}
	return &GeminiBackend{
		cfg:    cfg,
		voice:  voice,
		client: httputil.NewClient(types.HTTPConfig{Timeout: cfg.Timeout}),
	}
}

// --- wire types (request) ---

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	Tools            []geminiTool            `json:"tools,omitempty"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mimeType"`
	// Data is base64-encoded bytes, carried verbatim.
	Data string `json:"data"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens    int                 `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType   string              `json:"responseMimeType,omitempty"`
	ResponseSchema     *geminiSchema       `json:"responseSchema,omitempty"`
	ResponseModalities []string            `json:"responseModalities,omitempty"`
	SpeechConfig       *geminiSpeechConfig `json:"speechConfig,omitempty"`
}

type geminiSchema struct {
	Type        string                   `json:"type"`
	Description string                   `json:"description,omitempty"`
	Properties  map[string]*geminiSchema `json:"properties,omitempty"`
	Required    []string                 `json:"required,omitempty"`
	Items       *geminiSchema            `json:"items,omitempty"`
}

type geminiSpeechConfig struct {
	VoiceConfig geminiVoiceConfig `json:"voiceConfig"`
}

type geminiVoiceConfig struct {
	PrebuiltVoiceConfig geminiPrebuiltVoice `json:"prebuiltVoiceConfig"`
}

type geminiPrebuiltVoice struct {
	VoiceName string `json:"voiceName"`
}

// --- wire types (response) ---

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// text concatenates the text parts of the first candidate.
func (r geminiResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// inlineData returns the first inline data blob of the first candidate.
func (r geminiResponse) inlineData() *geminiInlineData {
	if len(r.Candidates) == 0 {
		return nil
	}
	for _, part := range r.Candidates[0].Content.Parts {
		if part.InlineData != nil {
			return part.InlineData
		}
	}
	return nil
}

// generate posts one generateContent request for the model and decodes the
// response. 429 responses are retried with backoff.
func (b *GeminiBackend) generate(ctx context.Context, model string, reqBody geminiRequest) (geminiResponse, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return geminiResponse{}, fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", geminiAPIBase, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return geminiResponse{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", b.cfg.APIKey)

	client := b.client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 2)
	if err != nil {
		return geminiResponse{}, fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return geminiResponse{}, fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, string(body))
	}

	var gResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return geminiResponse{}, fmt.Errorf("decoding Gemini response: %w", err)
	}
	return gResp, nil
}

// GenerateSyllabus synthesizes the Ghost Syllabus Markdown document.
func (b *GeminiBackend) GenerateSyllabus(ctx context.Context, req SyllabusRequest) (string, error) {
	prompt, err := syllabusPrompt(req)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	parts := []geminiPart{{Text: prompt}}
	if req.Attachment != nil {
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MIMEType: req.Attachment.MIMEType,
			Data:     req.Attachment.Base64(),
		}})
	}

	resp, err := b.generate(ctx, b.cfg.Model, geminiRequest{
		Contents:         []geminiContent{{Parts: parts}},
		GenerationConfig: &geminiGenerationConfig{MaxOutputTokens: b.cfg.MaxOutputTokens},
	})
	if err != nil {
		return "", err
	}

	if text := resp.text(); text != "" {
		return text, nil
	}
	return emptySyllabusFallback, nil
}

// GenerateCramPlan synthesizes a structured cram plan and normalizes the
// model's JSON before returning it.
func (b *GeminiBackend) GenerateCramPlan(ctx context.Context, req CramRequest) (types.CramPlan, error) {
	prompt, err := cramPrompt(req)
	if err != nil {
		return types.CramPlan{}, fmt.Errorf("rendering prompt: %w", err)
	}

	resp, err := b.generate(ctx, b.cfg.Model, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{
			MaxOutputTokens:  b.cfg.MaxOutputTokens,
			ResponseMIMEType: "application/json",
			ResponseSchema:   cramPlanSchema,
		},
	})
	if err != nil {
		return types.CramPlan{}, err
	}

	return NormalizeCramPlan(resp.text(), req.ExamType, req.HoursAvailable)
}

// GenerateBriefing synthesizes the radio briefing and returns the base64
// PCM16 payload.
func (b *GeminiBackend) GenerateBriefing(ctx context.Context, syllabusText string) (string, error) {
	prompt, err := briefingPrompt(syllabusText)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	resp, err := b.generate(ctx, b.cfg.SpeechModel, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &geminiSpeechConfig{
				VoiceConfig: geminiVoiceConfig{
					PrebuiltVoiceConfig: geminiPrebuiltVoice{VoiceName: b.voice},
				},
			},
		},
	})
	if err != nil {
		return "", err
	}

	data := resp.inlineData()
	if data == nil || data.Data == "" {
		return "", fmt.Errorf("no audio in Gemini response")
	}
	return data.Data, nil
}

// ProfessorRating looks up review scores, grounding the model with search
// and guarding against hallucinated numbers.
func (b *GeminiBackend) ProfessorRating(ctx context.Context, university, professor string) (types.ProfessorRating, error) {
	prompt, err := ratingPrompt(university, professor)
	if err != nil {
		return types.ProfessorRating{}, fmt.Errorf("rendering prompt: %w", err)
	}

	resp, err := b.generate(ctx, b.cfg.Model, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		Tools:    []geminiTool{{GoogleSearch: &struct{}{}}},
		GenerationConfig: &geminiGenerationConfig{
			MaxOutputTokens:  b.cfg.MaxOutputTokens,
			ResponseMIMEType: "application/json",
			ResponseSchema:   ratingSchema,
		},
	})
	if err != nil {
		// A search error still yields a renderable not-found card.
		return notFoundRating(professor, "Search error."), nil
	}

	return ParseRating(resp.text(), professor), nil
}

// cramPlanSchema is the response schema for cram plan generation.
var cramPlanSchema = &geminiSchema{
	Type: "OBJECT",
	Properties: map[string]*geminiSchema{
		"examType":   {Type: "STRING"},
		"totalHours": {Type: "STRING"},
		"strategy":   {Type: "STRING"},
		"schedule": {
			Type: "ARRAY",
			Items: &geminiSchema{
				Type: "OBJECT",
				Properties: map[string]*geminiSchema{
					"timeblock": {Type: "STRING"},
					"action":    {Type: "STRING"},
					"priority":  {Type: "STRING"},
					"notes":     {Type: "STRING"},
					"videoSuggestion": {
						Type: "OBJECT",
						Properties: map[string]*geminiSchema{
							"title": {Type: "STRING"},
							"url":   {Type: "STRING"},
						},
						Required: []string{"title", "url"},
					},
				},
				Required: []string{"timeblock", "action", "priority", "notes", "videoSuggestion"},
			},
		},
	},
	Required: []string{"examType", "totalHours", "strategy", "schedule"},
}

// ratingSchema is the response schema for professor rating lookups.
var ratingSchema = &geminiSchema{
	Type: "OBJECT",
	Properties: map[string]*geminiSchema{
		"found":      {Type: "BOOLEAN"},
		"name":       {Type: "STRING", Description: "The correct full name of the professor found on the profile."},
		"quality":    {Type: "STRING", Description: "The overall quality score (e.g. '4.2')"},
		"difficulty": {Type: "STRING", Description: "The difficulty score (e.g. '3.5')"},
		"takeAgain":  {Type: "STRING", Description: "The would take again percentage (e.g. '80%')"},
		"summary":    {Type: "STRING", Description: "A one-sentence summary of the reviews."},
	},
}
