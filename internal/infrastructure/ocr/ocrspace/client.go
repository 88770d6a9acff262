// Package ocrspace calls the OCR.space HTTP API to read scanned
// insurance documents.
package ocrspace

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/sigortech/docuscan/internal/infrastructure/resilience"
)

type Config struct {
	BaseURL  string
	APIKey   string
	Language string
	Engine   int

	// RequestsPerSecond throttles outbound calls; the free tier rejects
	// bursts well below its advertised quota.
	RequestsPerSecond float64
	Executor          *resilience.Executor
}

type Client struct {
	baseURL    string
	apiKey     string
	language   string
	engine     int
	httpClient *http.Client
	limiter    *rate.Limiter
	executor   *resilience.Executor
}

// Result is the recognized text plus a confidence estimate in [0,100).
type Result struct {
	Text       string
	Confidence float64
}

func New(cfg Config) *Client {
	language := cfg.Language
	if language == "" {
		language = "tur"
	}
	engine := cfg.Engine
	if engine == 0 {
		engine = 2
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		language:   language,
		engine:     engine,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		executor:   cfg.Executor,
	}
}

// ParseImage sends the document to OCR.space and returns the parsed
// text. The scan is shipped inline as a base64 data URI, which is what
// the API expects for non-URL sources.
func (c *Client) ParseImage(ctx context.Context, filename, mimeType string, data []byte) (Result, error) {
	form := url.Values{}
	form.Set("apikey", c.apiKey)
	form.Set("language", c.language)
	form.Set("OCREngine", strconv.Itoa(c.engine))
	form.Set("scale", "true")
	form.Set("isTable", "true")
	form.Set("detectOrientation", "true")
	form.Set("filetype", fileType(filename, mimeType))
	form.Set("base64Image", fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)))

	var parsed ocrResponse
	call := func(ctx context.Context) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("ocr rate limit wait: %w", err)
		}
		return c.postForm(ctx, "/parse/image", form, &parsed, "parse")
	}

	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, "ocrspace.parse", call, classifyOCRError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return Result{}, err
	}

	return parsed.toResult()
}

type ocrResponse struct {
	ParsedResults []struct {
		ParsedText        string `json:"ParsedText"`
		FileParseExitCode int    `json:"FileParseExitCode"`
		TextOverlay       struct {
			Lines []struct {
				LineText string `json:"LineText"`
			} `json:"Lines"`
		} `json:"TextOverlay"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool `json:"IsErroredOnProcessing"`
	ErrorMessage          any  `json:"ErrorMessage"`
}

func (r ocrResponse) toResult() (Result, error) {
	if r.IsErroredOnProcessing || len(r.ParsedResults) == 0 {
		return Result{}, fmt.Errorf("ocr processing failed: %s", formatErrorMessage(r.ErrorMessage))
	}
	first := r.ParsedResults[0]
	if first.FileParseExitCode != 1 {
		return Result{}, fmt.Errorf("ocr parse exit code %d", first.FileParseExitCode)
	}
	text := strings.TrimSpace(first.ParsedText)
	if text == "" {
		return Result{}, fmt.Errorf("ocr returned empty text")
	}
	return Result{
		Text:       text,
		Confidence: estimateConfidence(text, len(first.TextOverlay.Lines)),
	}, nil
}

// estimateConfidence scores the read from its shape, since OCR.space
// reports no per-word confidence. Longer, line-structured output reads
// higher; the cap stays under 100 so a perfect score is never claimed.
func estimateConfidence(text string, overlayLines int) float64 {
	score := 60.0
	if len(text) > 200 {
		score += 15
	}
	if len(text) > 1000 {
		score += 10
	}
	score += float64(overlayLines) * 0.5
	if score > 99.99 {
		score = 99.99
	}
	return score
}

func formatErrorMessage(msg any) string {
	switch v := msg.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, "; ")
	default:
		return "unknown error"
	}
}

func fileType(filename, mimeType string) string {
	switch mimeType {
	case "application/pdf":
		return "PDF"
	case "image/png":
		return "PNG"
	case "image/jpeg", "image/jpg":
		return "JPG"
	}
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return strings.ToUpper(filename[i+1:])
	}
	return "PDF"
}
