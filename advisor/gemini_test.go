package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/sentinel/market"
)

func geminiAgainst(srv *httptest.Server, key string) *Gemini {
	g := NewGemini(key, "")
	g.baseURL = srv.URL
	return g
}

func TestGeminiAdvise(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := generateResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content content `json:"content"`
		}{Content: content{Parts: []part{{Text: "Ranging. Scalp between 2348 and 2352."}}}})
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	g := geminiAgainst(srv, "secret")
	text, err := g.Advise(context.Background(), Request{
		Asset: "XAUUSD",
		Price: 2350.5,
		Trend: market.TrendSideways,
		RSI:   48.2,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ranging. Scalp between 2348 and 2352.", text)
	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)

	assert.Equal(t, 100, gotReq.GenerationConfig.MaxOutputTokens)
	assert.Equal(t, 0.7, gotReq.GenerationConfig.Temperature)
	if assert.Len(t, gotReq.Contents, 1) && assert.Len(t, gotReq.Contents[0].Parts, 1) {
		prompt := gotReq.Contents[0].Parts[0].Text
		assert.Contains(t, prompt, "Asset: XAUUSD")
		assert.Contains(t, prompt, "Current Price: 2350.5000")
		assert.Contains(t, prompt, "Detected Trend: SIDEWAYS")
		assert.Contains(t, prompt, "RSI (14): 48.20")
	}
}

func TestGeminiMissingKeySkipsRequest(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request made without a key")
	}))
	defer srv.Close()

	g := geminiAgainst(srv, "")
	text, err := g.Advise(context.Background(), Request{Asset: "XAUUSD"})

	assert.NoError(t, err)
	assert.Equal(t, failsafe, text)
}

func TestGeminiUpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := geminiAgainst(srv, "secret")
	_, err := g.Advise(context.Background(), Request{Asset: "XAUUSD"})
	assert.ErrorContains(t, err, "status 429")
}

func TestGeminiEmptyCandidates(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewEncoder(w).Encode(generateResponse{}))
	}))
	defer srv.Close()

	g := geminiAgainst(srv, "secret")
	text, err := g.Advise(context.Background(), Request{Asset: "XAUUSD"})

	assert.NoError(t, err)
	assert.Equal(t, "AI Analysis unavailable.", text)
}

func TestBuildPromptMovement(t *testing.T) {
	t.Parallel()

	prompt := buildPrompt(Request{
		Asset: "BTCUSD",
		Price: 65200,
		Trend: market.TrendUp,
		RSI:   61,
		Candles: []market.Candle{
			{Close: 65000}, {Close: 65120}, {Close: 64950},
		},
	})
	assert.Contains(t, prompt, "Recent movement: 50.0000")

	// A single candle or none yields zero movement, never a panic.
	prompt = buildPrompt(Request{Asset: "BTCUSD", Candles: []market.Candle{{Close: 65000}}})
	assert.Contains(t, prompt, "Recent movement: 0.0000")
}
