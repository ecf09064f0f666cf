package middlewares

import (
	"context"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func TestMessagesOnly(t *testing.T) {
	tests := []struct {
		name   string
		update *models.Update
		want   bool
	}{
		{name: "no message", update: &models.Update{ID: 1}, want: false},
		{name: "channel post", update: &models.Update{ID: 2, Message: &models.Message{Text: "hi"}}, want: false},
		{
			name:   "user message",
			update: &models.Update{ID: 3, Message: &models.Message{Text: "hi", From: &models.User{ID: 7}}},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := MessagesOnly(func(context.Context, *bot.Bot, *models.Update) {
				called = true
			})

			handler(context.Background(), nil, tt.update)

			if called != tt.want {
				t.Fatalf("want called=%v, got %v", tt.want, called)
			}
		})
	}
}
