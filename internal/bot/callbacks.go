package bot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"strive/internal/models"
)

// handleProfileCallback processes a profile selection from the picker
func (b *Bot) handleProfileCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	c, err := b.session(ctx, query.From.ID)
	if err != nil {
		return
	}

	account := c.CurrentAccount()
	if account == nil {
		b.reply(query.Message.Chat.ID, "You are not signed in. Use /login or /signup first.")
		return
	}

	indexStr := strings.TrimPrefix(query.Data, "profile:")
	idx, err := strconv.Atoi(indexStr)
	if err != nil || idx < 0 || idx >= len(account.Profiles) {
		b.logger.Warn("Invalid profile selection",
			zap.String("callback_data", query.Data),
			zap.Int64("user_id", query.From.ID),
		)
		b.reply(query.Message.Chat.ID, "Invalid profile selection. Use /profiles to try again.")
		return
	}

	c.SelectProfile(account.Profiles[idx])
	b.renderMainScreen(query.Message.Chat.ID, c)
}

// handleDeleteProfileCallback deletes the selected profile by name
func (b *Bot) handleDeleteProfileCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	c, err := b.session(ctx, query.From.ID)
	if err != nil {
		return
	}

	account := c.CurrentAccount()
	if account == nil {
		return
	}

	indexStr := strings.TrimPrefix(query.Data, "delprofile:")
	idx, err := strconv.Atoi(indexStr)
	if err != nil || idx < 0 || idx >= len(account.Profiles) {
		b.reply(query.Message.Chat.ID, "Invalid selection. Use /deleteprofile to try again.")
		return
	}

	name := account.Profiles[idx].Name
	c.DeleteProfile(ctx, name)

	if c.State() == models.StateCreateProfile {
		// The active profile was deleted
		b.reply(query.Message.Chat.ID, "🗑 Profile "+name+" deleted. It was the active profile, create a new one with /newprofile")
		return
	}
	b.reply(query.Message.Chat.ID, "🗑 Profile "+name+" deleted.")
}

// handleTabCallback switches the active tab from the tab navigation row
func (b *Bot) handleTabCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	c, err := b.session(ctx, query.From.ID)
	if err != nil {
		return
	}

	tab := strings.TrimPrefix(query.Data, "tab:")
	switch models.Tab(tab) {
	case models.TabSchedule, models.TabStaff, models.TabCalendar:
		c.ChangeTab(models.Tab(tab))
		b.renderActiveTab(query.Message.Chat.ID, c)
	}
}

// handleDeleteLessonCallback removes a lesson from the schedule
func (b *Bot) handleDeleteLessonCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	c, err := b.session(ctx, query.From.ID)
	if err != nil {
		return
	}

	id := strings.TrimPrefix(query.Data, "dellesson:")
	c.DeleteLesson(id)
	b.renderScheduleTab(query.Message.Chat.ID, c)
}

// handlePhotoCallback handles the skip button in the photo/thumbnail step of
// the profile and lesson conversations
func (b *Bot) handlePhotoCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	state, ok := b.conversation(userID)
	if !ok {
		return
	}

	switch {
	case state.Command == "new_profile" && state.Step == 2:
		b.finishProfileCreation(ctx, query.Message.Chat.ID, userID, state, "")
	case state.Command == "new_lesson" && state.Step == 3:
		b.finishLessonCreation(ctx, query.Message.Chat.ID, userID, state, "")
	}

	// Clean up completed conversations
	if state.Step == -1 {
		b.clearConversation(userID)
	}
}
