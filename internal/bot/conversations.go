package bot

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"strive/internal/controller"
	"strive/internal/models"
)

// handleConversation processes multi-step conversations
func (b *Bot) handleConversation(ctx context.Context, message *tgbotapi.Message, state *ConversationState) {
	userID := message.From.ID

	switch state.Command {
	case "login":
		b.handleLoginConversation(ctx, message, state)
	case "signup":
		b.handleSignupConversation(ctx, message, state)
	case "new_profile":
		b.handleNewProfileConversation(ctx, message, state)
	case "new_lesson":
		b.handleNewLessonConversation(ctx, message, state)
	}

	// Clean up completed conversations
	if state.Step == -1 {
		b.clearConversation(userID)
	}
}

// handleLoginConversation collects email and password, then runs the login
// command against the user's session
func (b *Bot) handleLoginConversation(ctx context.Context, message *tgbotapi.Message, state *ConversationState) {
	switch state.Step {
	case 1: // Waiting for email
		state.Data["email"] = message.Text
		state.Step = 2
		b.reply(message.Chat.ID, "Please enter your password:")

	case 2: // Waiting for password
		c, err := b.session(ctx, message.From.ID)
		if err != nil {
			b.reply(message.Chat.ID, "Could not start a session. Please try again later.")
			state.Step = -1
			return
		}

		email := state.Data["email"].(string)
		err = c.Login(email, message.Text)
		switch {
		case errors.Is(err, controller.ErrInvalidEmail):
			b.reply(message.Chat.ID, "❌ That email address does not look right. Use /login to try again.")
			state.Step = -1
		case errors.Is(err, controller.ErrWrongCredentials):
			b.reply(message.Chat.ID, "❌ Unknown email or wrong password. Use /login to try again or /signup to create an account.")
			state.Step = -1
		case err != nil:
			b.reply(message.Chat.ID, "❌ Login failed. Use /login to try again.")
			state.Step = -1
		default:
			account := c.CurrentAccount()
			b.reply(message.Chat.ID, "✅ Welcome back, "+account.Name+"!")
			state.Step = -1

			if c.State() == models.StateProfiles {
				msg := tgbotapi.NewMessage(message.Chat.ID, "👤 Who is watching?")
				msg.ReplyMarkup = profileKeyboard(account.Profiles, "profile")
				b.sendMessage(msg)
			} else {
				b.reply(message.Chat.ID, "You have no profiles yet. Create one with /newprofile")
			}
		}
	}
}

// handleSignupConversation collects email, password and display name, then
// runs the signup command
func (b *Bot) handleSignupConversation(ctx context.Context, message *tgbotapi.Message, state *ConversationState) {
	switch state.Step {
	case 1: // Waiting for email
		if !controller.ValidateEmail(message.Text) {
			b.reply(message.Chat.ID, "❌ That email address does not look right. Please enter a valid email:")
			return
		}
		state.Data["email"] = message.Text
		state.Step = 2
		b.reply(message.Chat.ID, "Please choose a password (at least 6 characters):")

	case 2: // Waiting for password
		if len(message.Text) < 6 {
			b.reply(message.Chat.ID, "❌ Password must be at least 6 characters. Please choose another:")
			return
		}
		state.Data["password"] = message.Text
		state.Step = 3
		b.reply(message.Chat.ID, "And your name:")

	case 3: // Waiting for display name
		c, err := b.session(ctx, message.From.ID)
		if err != nil {
			b.reply(message.Chat.ID, "Could not start a session. Please try again later.")
			state.Step = -1
			return
		}

		email := state.Data["email"].(string)
		password := state.Data["password"].(string)
		err = c.Signup(ctx, email, password, message.Text)
		switch {
		case errors.Is(err, controller.ErrEmailTaken):
			b.reply(message.Chat.ID, "❌ An account with this email already exists. Use /login instead.")
			state.Step = -1
		case err != nil:
			b.reply(message.Chat.ID, "❌ Signup failed. Use /signup to try again.")
			state.Step = -1
		default:
			b.reply(message.Chat.ID, "✅ Account created! Now create a profile with /newprofile")
			state.Step = -1
		}
	}
}

// handleNewProfileConversation collects the profile name and an optional
// photo reference
func (b *Bot) handleNewProfileConversation(ctx context.Context, message *tgbotapi.Message, state *ConversationState) {
	switch state.Step {
	case 1: // Waiting for profile name
		if strings.TrimSpace(message.Text) == "" {
			b.reply(message.Chat.ID, "❌ Profile name cannot be empty. Please enter a name:")
			return
		}
		state.Data["name"] = message.Text
		state.Step = 2

		msg := tgbotapi.NewMessage(message.Chat.ID, "Send a photo URL for the profile, or skip:")
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("⏭ Skip", "photo:skip"),
			),
		)
		b.sendMessage(msg)

	case 2: // Waiting for photo URL (or the skip button)
		b.finishProfileCreation(ctx, message.Chat.ID, message.From.ID, state, message.Text)
	}
}

// finishProfileCreation runs the create-profile command with the collected
// name and photo. Shared by the text path and the skip callback.
func (b *Bot) finishProfileCreation(ctx context.Context, chatID, userID int64, state *ConversationState, photo string) {
	c, err := b.session(ctx, userID)
	if err != nil {
		b.reply(chatID, "Could not start a session. Please try again later.")
		state.Step = -1
		return
	}

	name := state.Data["name"].(string)
	profile, err := c.CreateProfile(ctx, name, photo)
	switch {
	case errors.Is(err, controller.ErrDuplicateProfile):
		b.reply(chatID, "❌ A profile with this name already exists. Use /newprofile to pick another name.")
		state.Step = -1
	case errors.Is(err, controller.ErrNoAccount):
		b.reply(chatID, "You are not signed in. Use /login or /signup first.")
		state.Step = -1
	case err != nil:
		b.reply(chatID, "❌ Could not create the profile. Use /newprofile to try again.")
		state.Step = -1
	default:
		b.reply(chatID, "✅ Profile "+profile.Avatar+" "+profile.Name+" created! Pick it with /profiles")
		state.Step = -1
	}
}

// handleNewLessonConversation collects lesson title, time and an optional
// thumbnail reference
func (b *Bot) handleNewLessonConversation(ctx context.Context, message *tgbotapi.Message, state *ConversationState) {
	switch state.Step {
	case 1: // Waiting for lesson title
		if strings.TrimSpace(message.Text) == "" {
			b.reply(message.Chat.ID, "❌ Title cannot be empty. Please enter the lesson title:")
			return
		}
		state.Data["title"] = message.Text
		state.Step = 2
		b.reply(message.Chat.ID, "Please enter the lesson time (e.g. 09:00 - 10:00):")

	case 2: // Waiting for lesson time
		if strings.TrimSpace(message.Text) == "" {
			b.reply(message.Chat.ID, "❌ Time cannot be empty. Please enter the lesson time:")
			return
		}
		state.Data["time"] = message.Text
		state.Step = 3

		msg := tgbotapi.NewMessage(message.Chat.ID, "Send a thumbnail URL for the lesson, or skip:")
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("⏭ Skip", "photo:skip"),
			),
		)
		b.sendMessage(msg)

	case 3: // Waiting for thumbnail URL (or the skip button)
		b.finishLessonCreation(ctx, message.Chat.ID, message.From.ID, state, message.Text)
	}
}

// finishLessonCreation runs the create-lesson command with the collected
// title and time
func (b *Bot) finishLessonCreation(ctx context.Context, chatID, userID int64, state *ConversationState, thumbnail string) {
	c, err := b.session(ctx, userID)
	if err != nil {
		b.reply(chatID, "Could not start a session. Please try again later.")
		state.Step = -1
		return
	}

	title := state.Data["title"].(string)
	time := state.Data["time"].(string)
	lesson, err := c.CreateLesson(title, time, thumbnail)
	if err != nil {
		b.reply(chatID, "❌ Could not create the lesson. Use /newlesson to try again.")
		state.Step = -1
		return
	}

	b.reply(chatID, "✅ Lesson created!\n\n"+lesson.Name+" ("+lesson.Date+")\n"+lesson.Time+" · "+lesson.Room)
	state.Step = -1
	b.renderScheduleTab(chatID, c)
}
