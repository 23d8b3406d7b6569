// Package recognize wraps the text, voice and image recognition services and
// reshapes their responses into the client's classification result.
package recognize

import (
	"context"
	"log/slog"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/u-share/sortflow/internal/api"
	"github.com/u-share/sortflow/internal/model"
)

// MaxTextLength bounds a free-text classification query, in characters.
const MaxTextLength = 100

// Per-operation timeouts reflect expected backend latency: text lookups are
// fast, image recognition slower, speech transcription slowest.
const (
	textTimeout    = 10 * time.Second
	imageTimeout   = 20 * time.Second
	voiceTimeout   = 30 * time.Second
	historyTimeout = 10 * time.Second
)

var audioContentTypes = map[string]struct{}{
	"audio/wav":  {},
	"audio/mp3":  {},
	"audio/mpeg": {},
	"audio/webm": {},
	"audio/ogg":  {},
}

var imageContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// Client calls the recognition services through the shared adapter.
type Client struct {
	api *api.Client
}

// NewClient creates a recognition client on top of the shared adapter.
func NewClient(apiClient *api.Client) *Client {
	return &Client{api: apiClient}
}

// ClassifyByText classifies a waste item by name.
func (c *Client) ClassifyByText(ctx context.Context, text string) (model.ClassificationResult, error) {
	const operation = "text recognition"

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.ClassificationResult{}, api.ValidationError(operation, "please enter the name of the item to classify")
	}
	if utf8.RuneCountInString(trimmed) > MaxTextLength {
		return model.ClassificationResult{}, api.ValidationError(operation,
			"input must not exceed "+strconv.Itoa(MaxTextLength)+" characters")
	}

	body := map[string]string{"text": trimmed}
	var resp struct {
		InputText string `json:"input_text"`
		Category  string `json:"category"`
	}
	if err := c.api.PostJSON(ctx, "/nlp/recognize/text", body, &resp, api.WithTimeout(textTimeout)); err != nil {
		slog.Debug("text recognition failed", "error", err)
		return model.ClassificationResult{}, api.Normalize(operation, err)
	}

	name := resp.InputText
	if name == "" {
		name = trimmed
	}
	return model.NewClassificationResult(name, model.Category(resp.Category)), nil
}

// SpeechToText transcribes an audio recording and classifies the named item.
func (c *Client) SpeechToText(ctx context.Context, up Upload) (model.ClassificationResult, error) {
	const operation = "voice recognition"

	if err := validateUpload(operation, up, audioContentTypes,
		"unsupported audio format, use WAV, MP3, WebM or OGG"); err != nil {
		return model.ClassificationResult{}, err
	}

	var resp struct {
		Result   string `json:"result"`
		Category string `json:"category"`
	}
	err := c.api.PostMultipart(ctx, "/nlp/recognize/voice", "file", up.Filename, up.ContentType,
		up.Reader, &resp, api.WithTimeout(voiceTimeout))
	if err != nil {
		slog.Debug("voice recognition failed", "error", err)
		return model.ClassificationResult{}, api.Normalize(operation, err)
	}

	transcript := strings.TrimSpace(resp.Result)
	if transcript == "" {
		return model.ClassificationResult{}, api.SemanticError(operation,
			"speech recognition returned no transcript, please record again")
	}
	return model.NewClassificationResult(transcript, model.Category(resp.Category)), nil
}

// RecognizeImage classifies the item in a photo. The result carries the
// backend's confidence scaled to 0-100 and similar-item suggestions.
func (c *Client) RecognizeImage(ctx context.Context, up Upload) (model.ClassificationResult, error) {
	const operation = "image recognition"

	if err := validateUpload(operation, up, imageContentTypes,
		"unsupported image format, use JPG, PNG, GIF or WebP"); err != nil {
		return model.ClassificationResult{}, err
	}

	var resp struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}
	err := c.api.PostMultipart(ctx, "/image/recognize/image", "file", up.Filename, up.ContentType,
		up.Reader, &resp, api.WithTimeout(imageTimeout))
	if err != nil {
		slog.Debug("image recognition failed", "error", err)
		return model.ClassificationResult{}, api.Normalize(operation, err)
	}

	confidence := int(math.Round(resp.Confidence * 100))
	category := model.Category(resp.Category)
	result := model.NewClassificationResult(
		"识别物品 ("+strconv.Itoa(confidence)+"% 置信度)", category)
	result.Confidence = confidence
	result.Similar = category.SimilarItems()
	return result, nil
}

// History fetches the user's recent recognition records.
func (c *Client) History(ctx context.Context, limit int) ([]model.RecognitionRecord, error) {
	const operation = "fetch recognition history"

	if limit <= 0 {
		limit = 10
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var records []model.RecognitionRecord
	if err := c.api.GetJSON(ctx, "/classification/history", query, &records, api.WithTimeout(historyTimeout)); err != nil {
		return nil, api.Normalize(operation, err)
	}
	return records, nil
}

// SaveRecord stores one recognition result in the user's history.
func (c *Client) SaveRecord(ctx context.Context, record model.RecognitionRecord) error {
	const operation = "save recognition record"

	if record.Name == "" {
		return api.ValidationError(operation, "record name is required")
	}
	if err := c.api.PostJSON(ctx, "/classification/record", record, nil, api.WithTimeout(historyTimeout)); err != nil {
		return api.Normalize(operation, err)
	}
	return nil
}

func validateUpload(operation string, up Upload, allowed map[string]struct{}, formatMsg string) error {
	if up.Reader == nil {
		return api.ValidationError(operation, "please provide a file to upload")
	}
	if _, ok := allowed[up.ContentType]; !ok {
		return api.ValidationError(operation, formatMsg)
	}
	if up.Size > MaxUploadSize {
		return api.ValidationError(operation, "file too large, choose one under 10MB")
	}
	return nil
}
