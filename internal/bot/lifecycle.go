package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Start runs the bot in polling mode and blocks until the updates channel
// closes. A leftover webhook from a previous deployment would make polling
// return nothing, so it is removed first.
func (b *Bot) Start() error {
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		b.logger.Warn("Could not remove previous webhook", zap.Error(err))
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	b.logger.Info("Polling for updates")
	for update := range b.api.GetUpdatesChan(u) {
		b.HandleWebhookUpdate(update)
	}
	return nil
}

// StartWebhook registers the webhook with Telegram. Updates then arrive
// through the /telegram-webhook HTTP endpoint.
func (b *Bot) StartWebhook(webhookURL string) error {
	webhookConfig, err := tgbotapi.NewWebhook(webhookURL + "/telegram-webhook")
	if err != nil {
		return err
	}
	webhookConfig.MaxConnections = 40

	if _, err := b.api.Request(webhookConfig); err != nil {
		b.logger.Error("Failed to register webhook",
			zap.Error(err),
			zap.String("webhook_url", webhookURL),
		)
		return err
	}

	info, err := b.api.GetWebhookInfo()
	if err != nil {
		b.logger.Warn("Could not read back webhook info", zap.Error(err))
	} else {
		b.logger.Info("Webhook registered",
			zap.String("url", info.URL),
			zap.Int("pending_updates", info.PendingUpdateCount),
		)
	}
	return nil
}

// HandleWebhookUpdate authorizes and dispatches one update. Callers may run
// it on concurrent goroutines; updates from the same user are serialized
// through the per-user lock because a session only supports one command at a
// time.
func (b *Bot) HandleWebhookUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		userID := update.Message.From.ID
		if !b.allowedUsers[userID] {
			b.logger.Warn("Message from unauthorized user",
				zap.Int64("user_id", userID),
				zap.String("username", update.Message.From.UserName),
			)
			b.reply(update.Message.Chat.ID, "Sorry, you are not authorized to use this bot.")
			return
		}

		mu := b.userLock(userID)
		mu.Lock()
		b.handleMessage(update.Message)
		mu.Unlock()
	}

	if update.CallbackQuery != nil {
		userID := update.CallbackQuery.From.ID
		if !b.allowedUsers[userID] {
			b.logger.Warn("Callback from unauthorized user",
				zap.Int64("user_id", userID),
				zap.String("callback_data", update.CallbackQuery.Data),
			)
			return
		}

		mu := b.userLock(userID)
		mu.Lock()
		b.handleCallbackQuery(update.CallbackQuery)
		mu.Unlock()
	}
}
