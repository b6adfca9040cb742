package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Messenger - адаптер domain.Messenger поверх Bot API.
// Destination принимаем строкой: либо числовой id ("-100..."), либо "@channel".
type Messenger struct {
	bot *tgbotapi.BotAPI
}

func NewMessenger(bot *tgbotapi.BotAPI) *Messenger {
	return &Messenger{bot: bot}
}

func (m *Messenger) VerifyDestination(dest string) error {
	_, err := m.bot.GetChat(tgbotapi.ChatInfoConfig{ChatConfig: chatConfig(dest)})
	return err
}

func (m *Messenger) SendText(dest, text string) (int, error) {
	msg := tgbotapi.MessageConfig{
		BaseChat: baseChat(dest),
		Text:     text,
	}

	sent, err := m.bot.Send(msg)
	if err != nil {
		return 0, err
	}

	return sent.MessageID, nil
}

func (m *Messenger) EditText(dest string, messageID int, text string) error {
	edit := tgbotapi.EditMessageTextConfig{
		BaseEdit: baseEdit(dest, messageID),
		Text:     text,
	}

	_, err := m.bot.Send(edit)
	return err
}

// --- Private Helpers ---

func chatConfig(dest string) tgbotapi.ChatConfig {
	if id, err := strconv.ParseInt(dest, 10, 64); err == nil {
		return tgbotapi.ChatConfig{ChatID: id}
	}
	return tgbotapi.ChatConfig{SuperGroupUsername: dest}
}

func baseChat(dest string) tgbotapi.BaseChat {
	if id, err := strconv.ParseInt(dest, 10, 64); err == nil {
		return tgbotapi.BaseChat{ChatID: id}
	}
	return tgbotapi.BaseChat{ChannelUsername: dest}
}

func baseEdit(dest string, messageID int) tgbotapi.BaseEdit {
	if id, err := strconv.ParseInt(dest, 10, 64); err == nil {
		return tgbotapi.BaseEdit{ChatID: id, MessageID: messageID}
	}
	return tgbotapi.BaseEdit{ChannelUsername: dest, MessageID: messageID}
}
