package bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"strive/internal/controller"
	"strive/internal/storage"
)

// Bot represents the Telegram bot wrapper. Every allowed user gets their own
// app session (controller) over the shared account store. Updates may arrive
// on concurrent goroutines in webhook mode, so the shared maps are guarded by
// mutexes and each user's updates are serialized through a per-user lock.
type Bot struct {
	api          *tgbotapi.BotAPI
	store        storage.Storage
	allowedUsers map[int64]bool
	sessions     map[int64]*controller.Controller
	sessionsMu   sync.RWMutex
	states       map[int64]*ConversationState
	statesMu     sync.RWMutex
	userLocks    map[int64]*sync.Mutex
	userLocksMu  sync.Mutex
	logger       *zap.Logger
	httpServer   *HTTPServer
}

// ConversationState tracks the state of multi-step commands
type ConversationState struct {
	Command string
	Step    int
	Data    map[string]interface{}
}
