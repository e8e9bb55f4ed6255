package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// handleMessage processes a single message
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	// Recover from panics to prevent bot crashes
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in handleMessage", zap.Any("panic", r))
			b.reply(message.Chat.ID, "An error occurred while processing your request. Please try again.")
		}
	}()

	userID := message.From.ID
	ctx := context.Background()

	// Check if user is in a conversation
	if state, ok := b.conversation(userID); ok {
		// If conversation is already complete (Step == -1), clean it up and process as new command
		if state.Step == -1 {
			b.clearConversation(userID)
		} else if message.IsCommand() {
			// Allow any command to interrupt/cancel an ongoing conversation
			b.clearConversation(userID)
			// Continue to process the new command below
		} else {
			// Not a command, continue the conversation
			b.handleConversation(ctx, message, state)
			return
		}
	}

	// Handle commands
	if message.IsCommand() {
		switch message.Command() {
		case "start":
			b.handleStart(ctx, message)
		case "login":
			b.handleLoginStart(ctx, message)
		case "signup":
			b.handleSignupStart(ctx, message)
		case "profiles":
			b.handleProfiles(ctx, message)
		case "newprofile":
			b.handleNewProfileStart(ctx, message)
		case "deleteprofile":
			b.handleDeleteProfileStart(ctx, message)
		case "newlesson":
			b.handleNewLessonStart(ctx, message)
		case "schedule", "staff", "calendar":
			b.handleTabCommand(ctx, message, message.Command())
		default:
			b.reply(message.Chat.ID, "Unknown command. Use /start to see available commands.")
		}
	}
}

// handleCallbackQuery processes inline keyboard button clicks
func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic in handleCallbackQuery", zap.Any("panic", r))
		}
	}()

	ctx := context.Background()

	// Answer the callback query to remove loading state
	callback := tgbotapi.NewCallback(query.ID, "")
	if b.api != nil {
		b.api.Request(callback)
	}

	// Handle callback based on prefix
	data := query.Data
	switch {
	case strings.HasPrefix(data, "profile:"):
		b.handleProfileCallback(ctx, query)
	case strings.HasPrefix(data, "delprofile:"):
		b.handleDeleteProfileCallback(ctx, query)
	case strings.HasPrefix(data, "tab:"):
		b.handleTabCallback(ctx, query)
	case strings.HasPrefix(data, "dellesson:"):
		b.handleDeleteLessonCallback(ctx, query)
	case strings.HasPrefix(data, "photo:"):
		b.handlePhotoCallback(ctx, query)
	}
}
