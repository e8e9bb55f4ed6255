// Package controller implements the Strive session: a single-threaded state
// machine that owns all mutable app state and exposes the commands the UI
// calls. Each command validates its input, mutates the session on success and
// selects the next screen; on failure it returns a typed error and leaves the
// session untouched.
package controller

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"strive/internal/models"
	"strive/internal/storage"
)

// Seed holds the read-only reference collections injected at construction
type Seed struct {
	Lessons  []models.Lesson
	Staff    []models.StaffMember
	Calendar []models.CalendarItem
	Date     string
}

// Controller is one user session. It is not safe for concurrent use: the
// caller must finish one command before issuing the next, which the bot's
// update loop guarantees.
type Controller struct {
	store  storage.Storage
	logger *zap.Logger

	state          models.AppState
	activeTab      models.Tab
	currentDate    string
	accounts       []models.Account
	currentAccount string // account id, empty when not authenticated
	activeProfile  *models.Profile
	lessons        []models.Lesson
	staff          []models.StaffMember
	calendar       []models.CalendarItem

	newID func() string
}

// New creates a session, loading the account collection from the store
func New(ctx context.Context, store storage.Storage, seed Seed, logger *zap.Logger) (*Controller, error) {
	accounts, err := store.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	return &Controller{
		store:       store,
		logger:      logger,
		state:       models.StateWelcome,
		activeTab:   models.TabSchedule,
		currentDate: seed.Date,
		accounts:    accounts,
		lessons:     append([]models.Lesson(nil), seed.Lessons...),
		staff:       seed.Staff,
		calendar:    seed.Calendar,
		newID:       uuid.NewString,
	}, nil
}

// Navigate sets the active screen unconditionally
func (c *Controller) Navigate(state models.AppState) {
	c.state = state
}

// ChangeTab sets the active tab within the main app screen
func (c *Controller) ChangeTab(tab models.Tab) {
	c.activeTab = tab
}

// State returns the active screen
func (c *Controller) State() models.AppState {
	return c.state
}

// ActiveTab returns the active tab
func (c *Controller) ActiveTab() models.Tab {
	return c.activeTab
}

// CurrentDate returns the date label shown on the main app screen
func (c *Controller) CurrentDate() string {
	return c.currentDate
}

// CurrentAccount returns a copy of the authenticated account, or nil
func (c *Controller) CurrentAccount() *models.Account {
	i := c.accountIndex(c.currentAccount)
	if i < 0 {
		return nil
	}
	acc := c.accounts[i]
	acc.Profiles = append([]models.Profile(nil), acc.Profiles...)
	return &acc
}

// ActiveProfile returns a copy of the active profile, or nil
func (c *Controller) ActiveProfile() *models.Profile {
	if c.activeProfile == nil {
		return nil
	}
	p := *c.activeProfile
	return &p
}

// AccountCount returns the number of accounts in the session
func (c *Controller) AccountCount() int {
	return len(c.accounts)
}

// Lessons returns the lesson schedule. Lessons are global to the session and
// shared by every profile under every account.
func (c *Controller) Lessons() []models.Lesson {
	return append([]models.Lesson(nil), c.lessons...)
}

// Staff returns the staff directory
func (c *Controller) Staff() []models.StaffMember {
	return c.staff
}

// Calendar returns the school calendar
func (c *Controller) Calendar() []models.CalendarItem {
	return c.calendar
}

// accountIndex finds an account by id, -1 if absent or id is empty
func (c *Controller) accountIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range c.accounts {
		if c.accounts[i].ID == id {
			return i
		}
	}
	return -1
}

// persist writes the account collection to the store. Failures are logged
// and never fail the command that triggered the write.
func (c *Controller) persist(ctx context.Context) {
	if err := c.store.SaveAccounts(ctx, c.accounts); err != nil {
		c.logger.Error("Failed to persist accounts", zap.Error(err))
	}
}

// avatarInitial derives the immutable avatar letter from a profile name
func avatarInitial(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// trimmed is strings.TrimSpace, named for how the validation rules read
func trimmed(s string) string {
	return strings.TrimSpace(s)
}
