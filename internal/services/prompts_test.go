package services

import (
	"strings"
	"testing"

	"github.com/quochoi227/ai-english-app/internal/models"
)

func TestBuildChatPromptTranscript(t *testing.T) {
	messages := []models.Message{
		{Role: "user", Content: "Xin chào"},
		{Role: "assistant", Content: "Chào bạn!"},
		{Role: "user", Content: "Hôm nay trời thế nào?"},
	}

	prompt := BuildChatPrompt(messages, "")

	if !strings.Contains(prompt, "User: Xin chào\n\nAssistant: Chào bạn!\n\nUser: Hôm nay trời thế nào?") {
		t.Errorf("transcript not rendered as blank-line separated turns:\n%s", prompt)
	}
	if !strings.Contains(prompt, defaultChatSystemPrompt) {
		t.Error("default system instruction missing")
	}
	if !strings.Contains(prompt, "tin nhắn cuối cùng") {
		t.Error("closing directive missing")
	}
}

func TestBuildChatPromptSystemOverride(t *testing.T) {
	messages := []models.Message{{Role: "user", Content: "Hello"}}

	prompt := BuildChatPrompt(messages, "Answer only in English.")

	if !strings.HasPrefix(prompt, "Answer only in English.") {
		t.Errorf("override not applied:\n%s", prompt)
	}
	if strings.Contains(prompt, defaultChatSystemPrompt) {
		t.Error("default instruction leaked in despite override")
	}
}

func TestBuildTranslatePrompt(t *testing.T) {
	prompt := BuildTranslatePrompt("Xin chào", "casual")

	for _, want := range []string{
		`"Xin chào"`,
		"casual",
		"translation",
		"explanation",
		"alternatives",
		"tối đa 2",
		"Chỉ trả về JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("translate prompt missing %q", want)
		}
	}
}

func TestBuildPracticePrompt(t *testing.T) {
	prompt := BuildPracticePrompt()

	for _, want := range []string{"7 đến 10 câu", "8-20 từ", "sentences", "topic", "Chỉ trả về JSON"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("practice prompt missing %q", want)
		}
	}
}

func TestBuildEvaluatePrompt(t *testing.T) {
	prompt := BuildEvaluatePrompt("Tôi đi học.", "I go to school.")

	for _, want := range []string{
		`"Tôi đi học."`,
		`"I go to school."`,
		"score",
		"feedback",
		"errors",
		"suggestedTranslation",
		"isCorrect",
		"điểm >= 7",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("evaluate prompt missing %q", want)
		}
	}
}
