package bot

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"strive/internal/models"
)

// handleStart shows the welcome screen and available commands
func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) {
	c, err := b.session(ctx, message.From.ID)
	if err != nil {
		b.reply(message.Chat.ID, "Could not start a session. Please try again later.")
		return
	}
	c.Navigate(models.StateWelcome)

	text := `Welcome to Stripe! 🎓

Available commands:
/login - Sign in to your account
/signup - Create a new account
/profiles - Pick a profile
/newprofile - Create a profile
/deleteprofile - Delete a profile
/newlesson - Add a lesson to the schedule
/schedule - Show the lesson schedule
/staff - Show the staff directory
/calendar - Show the school calendar`

	b.reply(message.Chat.ID, text)
}

// handleLoginStart initiates the login conversation
func (b *Bot) handleLoginStart(ctx context.Context, message *tgbotapi.Message) {
	c, err := b.session(ctx, message.From.ID)
	if err != nil {
		b.reply(message.Chat.ID, "Could not start a session. Please try again later.")
		return
	}
	c.Navigate(models.StateLogin)

	b.setConversation(message.From.ID, &ConversationState{
		Command: "login",
		Step:    1,
		Data:    make(map[string]interface{}),
	})

	b.reply(message.Chat.ID, "Please enter your email address:")
}

// handleSignupStart initiates the signup conversation
func (b *Bot) handleSignupStart(ctx context.Context, message *tgbotapi.Message) {
	c, err := b.session(ctx, message.From.ID)
	if err != nil {
		b.reply(message.Chat.ID, "Could not start a session. Please try again later.")
		return
	}
	c.Navigate(models.StateSignup)

	b.setConversation(message.From.ID, &ConversationState{
		Command: "signup",
		Step:    1,
		Data:    make(map[string]interface{}),
	})

	b.reply(message.Chat.ID, "Please enter your email address:")
}

// handleProfiles shows the profile picker for the authenticated account
func (b *Bot) handleProfiles(ctx context.Context, message *tgbotapi.Message) {
	c, err := b.session(ctx, message.From.ID)
	if err != nil {
		b.reply(message.Chat.ID, "Could not start a session. Please try again later.")
		return
	}

	account := c.CurrentAccount()
	if account == nil {
		b.reply(message.Chat.ID, "You are not signed in. Use /login or /signup first.")
		return
	}
	if len(account.Profiles) == 0 {
		b.reply(message.Chat.ID, "No profiles yet. Create one with /newprofile")
		return
	}

	c.Navigate(models.StateProfiles)

	msg := tgbotapi.NewMessage(message.Chat.ID, "👤 Who is watching?")
	msg.ReplyMarkup = profileKeyboard(account.Profiles, "profile")
	b.sendMessage(msg)
}

// handleNewProfileStart initiates the profile creation conversation
func (b *Bot) handleNewProfileStart(ctx context.Context, message *tgbotapi.Message) {
	c, err := b.session(ctx, message.From.ID)
	if err != nil {
		b.reply(message.Chat.ID, "Could not start a session. Please try again later.")
		return
	}

	if c.CurrentAccount() == nil {
		b.reply(message.Chat.ID, "You are not signed in. Use /login or /signup first.")
		return
	}

	c.Navigate(models.StateCreateProfile)

	b.setConversation(message.From.ID, &ConversationState{
		Command: "new_profile",
		Step:    1,
		Data:    make(map[string]interface{}),
	})

	b.reply(message.Chat.ID, "Please enter the profile name:")
}

// handleDeleteProfileStart shows the profiles of the authenticated account
// as delete buttons
func (b *Bot) handleDeleteProfileStart(ctx context.Context, message *tgbotapi.Message) {
	c, err := b.session(ctx, message.From.ID)
	if err != nil {
		b.reply(message.Chat.ID, "Could not start a session. Please try again later.")
		return
	}

	account := c.CurrentAccount()
	if account == nil {
		b.reply(message.Chat.ID, "You are not signed in. Use /login or /signup first.")
		return
	}
	if len(account.Profiles) == 0 {
		b.reply(message.Chat.ID, "No profiles to delete.")
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "🗑 Select a profile to delete:")
	msg.ReplyMarkup = profileKeyboard(account.Profiles, "delprofile")
	b.sendMessage(msg)
}

// handleNewLessonStart initiates the lesson creation conversation
func (b *Bot) handleNewLessonStart(ctx context.Context, message *tgbotapi.Message) {
	c, err := b.session(ctx, message.From.ID)
	if err != nil {
		b.reply(message.Chat.ID, "Could not start a session. Please try again later.")
		return
	}
	c.Navigate(models.StateCreateLesson)

	b.setConversation(message.From.ID, &ConversationState{
		Command: "new_lesson",
		Step:    1,
		Data:    make(map[string]interface{}),
	})

	b.reply(message.Chat.ID, "Please enter the lesson title:")
}

// handleTabCommand switches the active tab and renders it
func (b *Bot) handleTabCommand(ctx context.Context, message *tgbotapi.Message, tab string) {
	c, err := b.session(ctx, message.From.ID)
	if err != nil {
		b.reply(message.Chat.ID, "Could not start a session. Please try again later.")
		return
	}

	c.ChangeTab(models.Tab(tab))
	b.renderActiveTab(message.Chat.ID, c)
}

// profileKeyboard builds an inline keyboard over a profile collection, one
// button per profile, callback data "<prefix>:<index>"
func profileKeyboard(profiles []models.Profile, prefix string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var currentRow []tgbotapi.InlineKeyboardButton
	for i, p := range profiles {
		label := p.Avatar + " " + p.Name
		button := tgbotapi.NewInlineKeyboardButtonData(label, prefix+":"+strconv.Itoa(i))
		currentRow = append(currentRow, button)

		// Add row when we have 2 buttons or it's the last profile
		if len(currentRow) == 2 || i == len(profiles)-1 {
			rows = append(rows, currentRow)
			currentRow = []tgbotapi.InlineKeyboardButton{}
		}
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
