package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeminiService_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "cmpl-1",
			"object": "chat.completion",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "Xin chào!"}, "finish_reason": "stop"}
			]
		}`))
	}))
	defer server.Close()

	svc := NewGeminiService("test-key", server.URL+"/v1", "test-model")

	got, err := svc.Generate(context.Background(), "Chào")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if got != "Xin chào!" {
		t.Errorf("unexpected completion: %q", got)
	}
}

func TestGeminiService_GenerateNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cmpl-2", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	svc := NewGeminiService("test-key", server.URL+"/v1", "test-model")

	if _, err := svc.Generate(context.Background(), "Chào"); err == nil {
		t.Fatal("expected error for empty choice list")
	}
}

func TestGeminiService_GenerateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewGeminiService("test-key", server.URL+"/v1", "test-model")

	if _, err := svc.Generate(context.Background(), "Chào"); err == nil {
		t.Fatal("expected error for upstream failure")
	}
}
