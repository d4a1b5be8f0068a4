package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultModel is the generateContent model used when none is configured.
	DefaultModel = "gemini-2.5-flash"
)

// Gemini calls the generative-language generateContent endpoint for a short
// market commentary. With an empty key it answers with the fail-safe string
// instead of making a request.
type Gemini struct {
	baseURL    string
	model      string
	key        string
	httpClient *http.Client
}

func NewGemini(key, model string) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{
		baseURL: defaultBaseURL,
		model:   model,
		key:     key,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) Advise(ctx context.Context, req Request) (string, error) {
	if g.key == "" {
		return failsafe, nil
	}

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(req)}}}},
		GenerationConfig: generationConfig{
			MaxOutputTokens: 100,
			Temperature:     0.7,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("advisor: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.key)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("advisor: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("advisor: call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisor: model returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("advisor: decode response: %w", err)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "AI Analysis unavailable.", nil
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// buildPrompt renders the snapshot into the advisory prompt. The recent
// movement is the absolute close-to-close change across the supplied window.
func buildPrompt(req Request) string {
	var movement float64
	if len(req.Candles) > 1 {
		movement = math.Abs(req.Candles[len(req.Candles)-1].Close - req.Candles[0].Close)
	}

	return fmt.Sprintf(`You are an elite Forex and Crypto trading algorithm named "Sentinel".
Analyze this real-time market data snapshot:

Asset: %s
Current Price: %.4f
Detected Trend: %s
RSI (14): %.2f
Recent movement: %.4f

Instructions:
1. Determine if the market is Ranging (Sideways) or Trending.
2. Suggest a strategy: "Scalp" for ranging, "Swing" for trending.
3. Identify immediate support/resistance levels based on the price.
4. Be concise, technical, and direct (max 50 words). No disclaimers.`,
		req.Asset, req.Price, req.Trend, req.RSI, movement)
}
