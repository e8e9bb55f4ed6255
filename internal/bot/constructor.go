package bot

import (
	"context"
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"strive/internal/controller"
	"strive/internal/data"
	"strive/internal/storage"
)

// NewBot creates a new Telegram bot
func NewBot(token string, store storage.Storage, allowedUserIDs []int64, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Error("Failed to create bot API", zap.Error(err))
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	allowedUsers := make(map[int64]bool)
	for _, id := range allowedUserIDs {
		allowedUsers[id] = true
	}

	logger.Info("Bot created", zap.String("bot_username", api.Self.UserName))

	return &Bot{
		api:          api,
		store:        store,
		allowedUsers: allowedUsers,
		sessions:     make(map[int64]*controller.Controller),
		states:       make(map[int64]*ConversationState),
		userLocks:    make(map[int64]*sync.Mutex),
		logger:       logger,
	}, nil
}

// session returns the user's app session, creating it on first use. The write
// lock is held across the lookup and the create so two concurrent first calls
// for the same user cannot build two controllers.
func (b *Bot) session(ctx context.Context, userID int64) (*controller.Controller, error) {
	b.sessionsMu.Lock()
	defer b.sessionsMu.Unlock()

	if c, ok := b.sessions[userID]; ok {
		return c, nil
	}

	c, err := controller.New(ctx, b.store, controller.Seed{
		Lessons:  data.DefaultLessons(),
		Staff:    data.StaffSchedule(),
		Calendar: data.CalendarItems(),
		Date:     data.CurrentDate,
	}, b.logger)
	if err != nil {
		b.logger.Error("Failed to create session",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, err
	}

	b.sessions[userID] = c
	return c, nil
}

// userLock returns the mutex serializing update handling for one user. A
// session is not safe for concurrent commands, so webhook goroutines and Mini
// App requests for the same user must take turns.
func (b *Bot) userLock(userID int64) *sync.Mutex {
	b.userLocksMu.Lock()
	defer b.userLocksMu.Unlock()

	mu, ok := b.userLocks[userID]
	if !ok {
		mu = &sync.Mutex{}
		b.userLocks[userID] = mu
	}
	return mu
}

// conversation returns the user's in-flight conversation, if any
func (b *Bot) conversation(userID int64) (*ConversationState, bool) {
	b.statesMu.RLock()
	defer b.statesMu.RUnlock()
	state, ok := b.states[userID]
	return state, ok
}

// setConversation starts or replaces the user's conversation
func (b *Bot) setConversation(userID int64, state *ConversationState) {
	b.statesMu.Lock()
	b.states[userID] = state
	b.statesMu.Unlock()
}

// clearConversation ends the user's conversation
func (b *Bot) clearConversation(userID int64) {
	b.statesMu.Lock()
	delete(b.states, userID)
	b.statesMu.Unlock()
}

// GetAPI returns the bot API for testing
func (b *Bot) GetAPI() *tgbotapi.BotAPI {
	return b.api
}
