package handlers

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"
)

// userLabel formats a sender as "<id> (<username>) [<full name>]".
func userLabel(user *models.User) string {
	if user == nil {
		return "unknown"
	}

	fullName := strings.TrimSpace(user.FirstName + " " + user.LastName)

	return fmt.Sprintf("%d (%s) [%s]", user.ID, user.Username, fullName)
}
