package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/quochoi227/ai-english-app/internal/config"
)

// stubGenerator replaces the hosted model in tests. It counts calls so tests
// can assert that input validation happens before any upstream request.
type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func errGenerator() *stubGenerator {
	return &stubGenerator{err: errors.New("upstream down")}
}

func testConfig() *config.Config {
	return &config.Config{
		Port:          "3000",
		AppPassword:   "open-sesame",
		SessionSecret: "s3cret-signature",
		Env:           "development",
	}
}

func newTestApp(cfg *config.Config, gen *stubGenerator) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	Register(app, New(cfg, gen))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, cookie string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: config.SessionCookieName, Value: cookie})
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
