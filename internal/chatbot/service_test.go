package chatbot

import (
	"context"
	"strings"
	"testing"
)

func TestReply_KeywordMatches(t *testing.T) {
	svc := NewService()
	cases := []struct {
		message string
		want    string
	}{
		{"Recommend mild spicy dishes", "Hell's Kitchen Pizza"},
		{"what is your SPICIEST item?", "Dragon's Breath Noodles"},
		{"help with my order", "track your order status"},
		{"Delivery information", "Free delivery for orders over RM25"},
		{"nutritional facts and calories", "calorie counts"},
	}
	for _, tc := range cases {
		got := svc.Reply(context.Background(), tc.message)
		if !strings.Contains(got, tc.want) {
			t.Fatalf("Reply(%q) = %q, want substring %q", tc.message, got, tc.want)
		}
	}
}

func TestReply_FirstMatchWins(t *testing.T) {
	svc := NewService()
	got := svc.Reply(context.Background(), "mild or spiciest?")
	if !strings.Contains(got, "mild heat") {
		t.Fatalf("expected the mild rule to win, got %q", got)
	}
}

func TestReply_AlwaysAnswers(t *testing.T) {
	svc := NewService()
	for _, message := range []string{"", "weather tomorrow?", "🤔"} {
		if got := svc.Reply(context.Background(), message); got == "" {
			t.Fatalf("expected non-empty reply for %q", message)
		}
	}
}

func TestReply_EmptyMessageGetsFallback(t *testing.T) {
	svc := NewService()
	if got := svc.Reply(context.Background(), "something unrelated"); !strings.Contains(got, "spice tolerance") {
		t.Fatalf("expected fallback reply, got %q", got)
	}
}
