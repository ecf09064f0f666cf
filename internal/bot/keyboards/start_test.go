package botKeyboards

import "testing"

func TestStartReplyMarkup(t *testing.T) {
	markup := StartReplyMarkup("Фраза", "Картинка")

	if !markup.ResizeKeyboard {
		t.Fatal("keyboard must be resizable")
	}
	if len(markup.Keyboard) != 1 || len(markup.Keyboard[0]) != 2 {
		t.Fatalf("want one row with two buttons, got %+v", markup.Keyboard)
	}
	if markup.Keyboard[0][0].Text != "Фраза" || markup.Keyboard[0][1].Text != "Картинка" {
		t.Fatalf("unexpected buttons %+v", markup.Keyboard[0])
	}
}
