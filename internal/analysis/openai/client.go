package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ttbcheck/labelverify/internal/analysis"
)

// AnalyzeLabel implements analysis.Analyzer using chat/completions with an
// inline image part. The label image is read from disk and sent as a data
// URL; the response is validated against the label-fields schema before it
// is trusted.
func (c *Client) AnalyzeLabel(ctx context.Context, req analysis.AnalyzeRequest) (analysis.LabelFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("analysis.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"image_path", req.ImagePath,
		"allowed_beverage_types", len(req.AllowedBeverageTypes),
	)

	imageURL, err := encodeImageDataURL(req.ImagePath)
	if err != nil {
		c.log.Error("analysis.image_read_error", "req_id", rid, "error", err)
		return analysis.LabelFields{}, nil, fmt.Errorf("read label image: %w", err)
	}

	schema := analysis.BuildLabelJSONSchema(req.AllowedBeverageTypes)
	sys := buildSystemPrompt(req)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": buildUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."},
				{"type": "image_url", "image_url": map[string]any{"url": imageURL}},
			}},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("analysis.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return analysis.LabelFields{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("analysis.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return analysis.LabelFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("analysis.no_choices", "req_id", rid, "raw", string(raw))
		return analysis.LabelFields{}, raw, fmt.Errorf("no choices in openai response")
	}
	rawContent := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := analysis.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		c.log.Error("analysis.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(rawContent),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return analysis.LabelFields{}, rawContent, fmt.Errorf("schema validation failed: %w", err)
	}

	var out analysis.LabelFields
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.log.Error("analysis.unmarshal_failed", "req_id", rid, "error", err)
		return analysis.LabelFields{}, rawContent, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.log.Info("analysis.ok",
		"req_id", rid,
		"brand", out.BrandName,
		"beverage_type", out.BeverageType,
		"discrepancies", len(out.Discrepancies),
		"confidence", out.ModelConfidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}

func buildSystemPrompt(req analysis.AnalyzeRequest) string {
	var typeLine string
	if len(req.AllowedBeverageTypes) > 0 {
		typeLine = "Allowed beverage types (enum): " + strings.Join(req.AllowedBeverageTypes, ", ") + ". "
	} else {
		typeLine = "beverage_type must be a short, sensible product class. "
	}
	return "You are a compliance analyst for alcohol-beverage labels. " +
		"Extract the mandatory label fields from the image and flag every " +
		"mismatch against the application data as a discrepancy. " + typeLine +
		"alcohol_content is the percent ABV as a bare decimal string. " +
		"has_government_warning is true only if the full GOVERNMENT WARNING " +
		"statement is present."
}

func buildUserPrompt(req analysis.AnalyzeRequest) string {
	var b strings.Builder
	b.WriteString("Analyze the attached label image.")
	app := req.Application
	if app.BrandName != "" || app.BeverageType != "" || app.AlcoholContent != "" {
		b.WriteString("\nApplication data to verify against:")
		if app.BrandName != "" {
			b.WriteString("\n- brand name: " + app.BrandName)
		}
		if app.BeverageType != "" {
			b.WriteString("\n- beverage type: " + app.BeverageType)
		}
		if app.AlcoholContent != "" {
			b.WriteString("\n- alcohol content: " + app.AlcoholContent + "% ABV")
		}
	}
	return b.String()
}

func encodeImageDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mime := "image/jpeg"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		mime = "image/png"
	case ".webp":
		mime = "image/webp"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
