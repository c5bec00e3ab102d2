// Package suggest implements the listing-metadata suggestion service on
// top of the Gemini generateContent REST API.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"descu/config"
	"descu/internal/domain/entity"
	domainerrors "descu/internal/domain/errors"
	"descu/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultModel   = "gemini-3-flash-preview"
	defaultTimeout = 30 * time.Second
)

// productSchema constrains the model output to the submission form shape.
//
//nolint:gochecknoglobals
var productSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"title": map[string]any{
			"type":        "STRING",
			"description": "A concise, attractive title for the second-hand product.",
		},
		"description": map[string]any{
			"type":        "STRING",
			"description": "A detailed, persuasive description highlighting features and condition.",
		},
		"category": map[string]any{
			"type":        "STRING",
			"enum":        []string{"electronics", "furniture", "clothing", "books", "sports", "vehicles", "real_estate", "services", "other"},
			"description": "The most appropriate category key for the item.",
		},
		"suggestedPrice": map[string]any{
			"type":        "NUMBER",
			"description": "An estimated price in local currency based on the item appearance (integer only). For vehicles or real estate, estimate market value.",
		},
		"suggestedDeliveryType": map[string]any{
			"type":        "STRING",
			"enum":        []string{"meetup", "shipping", "both"},
			"description": "Suggest 'meetup' for large items (furniture, cars) or services. Suggest 'shipping' or 'both' for small shippable items.",
		},
	},
	"required": []string{"title", "description", "category", "suggestedPrice", "suggestedDeliveryType"},
}

type geminiClient struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGeminiClient creates a SuggestionService backed by the Gemini REST API.
// A nil or endpoint-less configuration yields a disabled service whose
// calls fail with ErrSuggestionDisabled; callers treat that as non-fatal.
func NewGeminiClient(cfg *config.Config, logger *slog.Logger) service.SuggestionService {
	sc := cfg.Suggestion
	if sc == nil || sc.Endpoint == "" {
		logger.Info("Suggestion service not configured, submissions proceed without analysis")

		return &disabledClient{}
	}

	model := sc.Model
	if model == "" {
		model = defaultModel
	}
	timeout := sc.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &geminiClient{
		endpoint:   sc.Endpoint,
		apiKey:     sc.APIKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   any     `json:"responseSchema,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// SuggestFromImage analyzes a base64-encoded JPEG image and proposes
// listing metadata in the requested locale.
func (c *geminiClient) SuggestFromImage(ctx context.Context, imageBase64 string, locale entity.Locale) (*service.ListingSuggestion, error) {
	if imageBase64 == "" {
		return nil, domainerrors.ErrInvalidImage
	}

	reqBody := generateContentRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: "image/jpeg", Data: imageBase64}},
				{Text: analysisPrompt(locale)},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   productSchema,
			Temperature:      0.4,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "suggestion request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("Suggestion service returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(payload)),
		)

		return nil, errors.Errorf("suggestion service returned status %d", resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "decode suggestion response")
	}

	text := firstText(parsed)
	if text == "" {
		return nil, errors.New("empty suggestion response")
	}

	var suggestion service.ListingSuggestion
	if err := json.Unmarshal([]byte(text), &suggestion); err != nil {
		return nil, errors.Wrap(err, "unmarshal suggestion payload")
	}

	return &suggestion, nil
}

func firstText(resp generateContentResponse) string {
	for _, candidate := range resp.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}

	return ""
}

func analysisPrompt(locale entity.Locale) string {
	return fmt.Sprintf(`You are an expert marketplace assistant for DESCU in Mexico.
SAFETY INSTRUCTIONS:
- Do not generate descriptions for items containing hate speech, Nazi symbols, or extremist political propaganda.
- Do not generate descriptions for items promoting political misinformation or election interference.
- If the image contains sensitive political figures or controversial propaganda, return a neutral but firm description refusing the listing due to safety policies.

TASK: Analyze this image and generate a listing. The title and description MUST be in %s. The category must be one of the enum values provided. If it looks like a car, use 'vehicles'. If it looks like a house/apartment, use 'real_estate'. For large items, suggest 'meetup' as delivery type.`, languageName(locale))
}

func languageName(locale entity.Locale) string {
	switch locale.OrDefault() {
	case entity.LocaleChinese:
		return "Chinese"
	case entity.LocaleEnglish:
		return "English"
	default:
		return "Spanish (Mexico)"
	}
}

// disabledClient rejects every analysis request.
type disabledClient struct{}

func (c *disabledClient) SuggestFromImage(_ context.Context, _ string, _ entity.Locale) (*service.ListingSuggestion, error) {
	return nil, domainerrors.ErrSuggestionDisabled
}
