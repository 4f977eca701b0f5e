package telegram

import (
	"context"
	"errors"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"polyglot-bot/internal/language"
	"polyglot-bot/internal/pipeline"
	"polyglot-bot/internal/prefs"
)

const changeTargetCmd = "change_target"

type updateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Bot struct {
	updates updateSource
	s       sender
	prefs   prefs.Store
	runner  pipeline.Runner
}

func New(api *tgbotapi.BotAPI, prefStore prefs.Store, runner pipeline.Runner) *Bot {
	return &Bot{
		updates: api,
		s:       botAPISender{api: api},
		prefs:   prefStore,
		runner:  runner,
	}
}

// Start consumes updates until ctx is cancelled or the update channel
// closes.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.updates.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.updates.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			// Every item runs in its own goroutine; runs for different
			// users share nothing but the preference store.
			if update.Message != nil {
				go b.handleIncomingMessage(ctx, update.Message)
				continue
			}
			if update.CallbackQuery != nil {
				go b.handleCallback(ctx, update.CallbackQuery)
			}
		}
	}
}

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if msg.IsCommand() && msg.Command() == "start" {
		if err := b.prefs.Clear(userID); err != nil {
			log.Printf("failed to clear preference for %d: %v", userID, err)
			b.sendMessage(chatID, msgSelectionFailed)
			return
		}
		b.sendWithMarkup(chatID, msgWelcome, languageKeyboard())
		return
	}

	if l, ok := language.ByName(msg.Text); ok {
		if err := b.prefs.Set(userID, l.Code); err != nil {
			log.Printf("failed to store preference for %d: %v", userID, err)
			b.sendMessage(chatID, msgSelectionFailed)
			return
		}
		log.Printf("user %d selected target language %s", userID, l.Code)
		b.sendWithMarkup(chatID, msgEnterText, changeTargetKeyboard())
		return
	}

	item, ok := inboundFromMessage(msg)
	if !ok {
		b.sendMessage(chatID, msgUnsupported)
		return
	}

	log.Printf("incoming %s item from %d", item.Kind, userID)
	err := b.runner.Run(ctx, item, func(r pipeline.Result) error {
		return b.deliver(chatID, r)
	})
	if err != nil {
		log.Printf("run failed for user %d: %v", userID, err)
		b.sendMessage(chatID, userMessage(err))
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Data != changeTargetCmd {
		return
	}
	userID := cb.From.ID
	if err := b.prefs.Clear(userID); err != nil {
		log.Printf("failed to clear preference for %d: %v", userID, err)
		b.sendMessage(cb.Message.Chat.ID, msgSelectionFailed)
		return
	}
	b.sendWithMarkup(cb.Message.Chat.ID, msgSelectTarget, languageKeyboard())
}

// inboundFromMessage maps a Telegram message onto a pipeline item. Voice
// notes and plain audio both take the voice flow; videos and round video
// notes take the video flow.
func inboundFromMessage(msg *tgbotapi.Message) (pipeline.Inbound, bool) {
	item := pipeline.Inbound{UserID: msg.From.ID}
	switch {
	case msg.Voice != nil:
		item.Kind = pipeline.KindVoice
		item.FileRef = msg.Voice.FileID
	case msg.Audio != nil:
		item.Kind = pipeline.KindVoice
		item.FileRef = msg.Audio.FileID
	case msg.VideoNote != nil:
		item.Kind = pipeline.KindVideo
		item.FileRef = msg.VideoNote.FileID
	case msg.Video != nil:
		item.Kind = pipeline.KindVideo
		item.FileRef = msg.Video.FileID
	case msg.Text != "":
		item.Kind = pipeline.KindText
		item.Text = msg.Text
	default:
		return pipeline.Inbound{}, false
	}
	return item, true
}

// deliver sends the translated text, and the spoken translation when the
// run produced one. It runs inside the pipeline run, while the audio
// artifact still exists.
func (b *Bot) deliver(chatID int64, r pipeline.Result) error {
	msg := tgbotapi.NewMessage(chatID, msgTranslation+r.Text)
	if _, err := b.s.Send(msg); err != nil {
		return err
	}
	if r.AudioPath != "" {
		voice := tgbotapi.NewVoice(chatID, tgbotapi.FilePath(r.AudioPath))
		if _, err := b.s.Send(voice); err != nil {
			return err
		}
	}
	return nil
}

// userMessage maps a run failure to a single user-facing line. Internal
// detail never reaches the chat.
func userMessage(err error) string {
	switch {
	case errors.Is(err, pipeline.ErrPreferenceMissing):
		return msgSelectFirst
	case errors.Is(err, pipeline.ErrNoSpeechDetected):
		return msgNoSpeech
	case errors.Is(err, pipeline.ErrNoAudioTrack):
		return msgNoAudioTrack
	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout
	}
	var stageErr *pipeline.StageError
	if errors.As(err, &stageErr) {
		switch stageErr.Stage {
		case pipeline.StageFetch:
			return msgFetchFailed
		case pipeline.StageTranscode:
			return msgBadMedia
		}
	}
	return msgGenericError
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) sendWithMarkup(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
