package handlersMatchers

import (
	"strings"

	"github.com/go-telegram/bot/models"
)

// Command matches a message starting with the given bot command. A payload ("/start ref")
// and a bot mention ("/start@NiaBot") still match.
func Command(command string) func(update *models.Update) bool {
	command = strings.TrimPrefix(command, "/")

	return func(update *models.Update) bool {
		if update.Message == nil {
			return false
		}

		text, ok := strings.CutPrefix(update.Message.Text, "/")
		if !ok {
			return false
		}

		if fields := strings.Fields(text); len(fields) > 0 {
			text = fields[0]
		} else {
			return false
		}

		name, _, _ := strings.Cut(text, "@")

		return name == command
	}
}
