// Package vision implements the image-based extraction strategy: the raw
// card image goes straight to a vision-capable model with a strict JSON
// response schema. It shares nothing with the heuristic path except the
// output type.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cardscan/internal/config"
	"cardscan/internal/domain"
	"cardscan/internal/jsonx"
	"cardscan/internal/port"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Extractor implements port.ImageExtractor using the Gemini API.
type Extractor struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewExtractor creates a vision extractor.
func NewExtractor(cfg *config.ProviderConfig) *Extractor {
	return newExtractor(cfg, "")
}

// NewExtractorWithEndpoint creates an extractor pointing at a custom API
// endpoint (for testing).
func NewExtractorWithEndpoint(cfg *config.ProviderConfig, endpoint string) *Extractor {
	return newExtractor(cfg, endpoint)
}

func newExtractor(cfg *config.ProviderConfig, endpoint string) *Extractor {
	model := cfg.DefaultModel
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Extractor{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// visionPayload is the shape the model is instructed to return.
type visionPayload struct {
	Transcript string             `json:"transcript"`
	Fields     domain.ContactCard `json:"fields"`
}

// ExtractImage sends the base64 image to the model and decodes the
// structured response, repairing truncated JSON once before giving up.
func (e *Extractor) ExtractImage(ctx context.Context, input port.ImageInput) (*domain.ContactCard, error) {
	if strings.TrimSpace(input.ImageBase64) == "" {
		return nil, fmt.Errorf("%w: image payload is empty", domain.ErrMalformedInput)
	}
	if _, ok := domain.AllowedImageContentTypes[input.MimeType]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedImageType, input.MimeType)
	}
	if _, err := base64.StdEncoding.DecodeString(input.ImageBase64); err != nil {
		return nil, fmt.Errorf("%w: image payload is not valid base64: %v", domain.ErrMalformedInput, err)
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{
						"inline_data": map[string]interface{}{
							"mime_type": input.MimeType,
							"data":      input.ImageBase64,
						},
					},
					{
						"text": BuildVisionPrompt(),
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"responseSchema":   responseSchema(),
			"maxOutputTokens":  8192,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: calling vision API: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: vision API status %d: %s", domain.ErrUpstreamUnavailable, resp.StatusCode, truncate(string(respBody), 300))
	}

	return decodeResponse(respBody)
}

// generateResponse models the Gemini API response.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func decodeResponse(body []byte) (*domain.ContactCard, error) {
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates in response", domain.ErrMalformedResponse)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := sb.String()
	if text == "" {
		return nil, fmt.Errorf("%w: no text parts in response", domain.ErrMalformedResponse)
	}

	candidate := jsonx.StripFences(text)
	obj, ok := jsonx.FirstObject(candidate)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in model output (response length %d)", domain.ErrMalformedResponse, len(text))
	}

	repaired, err := jsonx.Repair(obj)
	if err != nil {
		return nil, err
	}
	if err := jsonx.ValidateVisionPayload(repaired); err != nil {
		return nil, err
	}

	var payload visionPayload
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		return nil, fmt.Errorf("%w: decoding repaired payload: %v", domain.ErrMalformedResponse, err)
	}

	card := payload.Fields
	if card.Extras == nil {
		card.Extras = map[string]string{}
	}
	if card.InterestedProducts == nil {
		card.InterestedProducts = []string{}
	}
	card.Extras["transcript"] = payload.Transcript
	card.Extras["vision_raw"] = text
	return &card, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
