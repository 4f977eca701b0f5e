package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"polyglot-bot/internal/language"
)

// languageKeyboard lays the catalog out two names per row, like the
// original selection keyboard.
func languageKeyboard() tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	for i := 0; i < len(language.Catalog); i += 2 {
		var row []tgbotapi.KeyboardButton
		for j := i; j < i+2 && j < len(language.Catalog); j++ {
			row = append(row, tgbotapi.NewKeyboardButton(language.Catalog[j].Name))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewReplyKeyboard(rows...)
}

func changeTargetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnChangeTarget, changeTargetCmd),
		),
	)
}
