package controller

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"strive/internal/data"
	"strive/internal/models"
	"strive/internal/storage/stubs"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()

	c, err := New(context.Background(), stubs.NewMockDB(), Seed{
		Lessons:  data.DefaultLessons(),
		Staff:    data.StaffSchedule(),
		Calendar: data.CalendarItems(),
		Date:     data.CurrentDate,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create controller: %v", err)
	}
	return c
}

func TestController_InitialState(t *testing.T) {
	c := newTestController(t)

	if c.State() != models.StateWelcome {
		t.Errorf("Expected initial state %q, got %q", models.StateWelcome, c.State())
	}
	if c.ActiveTab() != models.TabSchedule {
		t.Errorf("Expected initial tab %q, got %q", models.TabSchedule, c.ActiveTab())
	}
	if c.CurrentAccount() != nil {
		t.Error("Expected no authenticated account on a fresh session")
	}
	if len(c.Lessons()) != len(data.DefaultLessons()) {
		t.Errorf("Expected seeded lessons, got %d", len(c.Lessons()))
	}
}

func TestController_SignupThenLogin(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	if err := c.Signup(ctx, "a@b.com", "secret1", "Ann"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if c.AccountCount() != 1 {
		t.Errorf("Expected 1 account, got %d", c.AccountCount())
	}
	if c.State() != models.StateCreateProfile {
		t.Errorf("Expected state %q after signup, got %q", models.StateCreateProfile, c.State())
	}
	account := c.CurrentAccount()
	if account == nil {
		t.Fatal("Expected authenticated account after signup")
	}

	// Login with the same credentials yields the same account id
	if err := c.Login("a@b.com", "secret1"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	again := c.CurrentAccount()
	if again == nil || again.ID != account.ID {
		t.Errorf("Expected login to yield account %q", account.ID)
	}
	// Account has no profiles yet, so login lands on profile creation
	if c.State() != models.StateCreateProfile {
		t.Errorf("Expected state %q, got %q", models.StateCreateProfile, c.State())
	}
}

func TestController_SignupRejectsDuplicateEmail(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	if err := c.Signup(ctx, "a@b.com", "secret1", "Ann"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	err := c.Signup(ctx, "a@b.com", "other123", "Bob")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
	if c.AccountCount() != 1 {
		t.Errorf("Expected account collection unchanged, got %d accounts", c.AccountCount())
	}
}

func TestController_SignupValidation(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	if err := c.Signup(ctx, "not-an-email", "secret1", "Ann"); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("Expected ErrInvalidEmail, got %v", err)
	}
	if err := c.Signup(ctx, "a@b.com", "short", "Ann"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("Expected ErrPasswordTooShort, got %v", err)
	}
	if c.AccountCount() != 0 {
		t.Errorf("Expected no accounts after rejected signups, got %d", c.AccountCount())
	}
}

func TestController_LoginFailureLeavesSessionUnchanged(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	if err := c.Signup(ctx, "a@b.com", "secret1", "Ann"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	before := c.CurrentAccount()
	c.Navigate(models.StateLogin)

	if err := c.Login("a@b.com", "wrong"); !errors.Is(err, ErrWrongCredentials) {
		t.Errorf("Expected ErrWrongCredentials, got %v", err)
	}
	if c.State() != models.StateLogin {
		t.Errorf("Expected state to remain %q, got %q", models.StateLogin, c.State())
	}
	after := c.CurrentAccount()
	if after == nil || after.ID != before.ID {
		t.Error("Expected authenticated account to be unchanged after failed login")
	}

	if err := c.Login("no whitespace@b.com", "secret1"); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("Expected ErrInvalidEmail, got %v", err)
	}
}

func TestController_LoginWithProfilesLandsOnPicker(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	if err := c.Signup(ctx, "a@b.com", "secret1", "Ann"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if _, err := c.CreateProfile(ctx, "Ann Profile", ""); err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}

	if err := c.Login("a@b.com", "secret1"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if c.State() != models.StateProfiles {
		t.Errorf("Expected state %q, got %q", models.StateProfiles, c.State())
	}
}

func TestController_CreateProfile(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	// No authenticated account yet
	if _, err := c.CreateProfile(ctx, "Ann Profile", ""); !errors.Is(err, ErrNoAccount) {
		t.Errorf("Expected ErrNoAccount, got %v", err)
	}

	if err := c.Signup(ctx, "a@b.com", "secret1", "Ann"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	profile, err := c.CreateProfile(ctx, "  ann profile  ", "")
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	if profile.Name != "ann profile" {
		t.Errorf("Expected trimmed name, got %q", profile.Name)
	}
	if profile.Avatar != "A" {
		t.Errorf("Expected avatar initial 'A', got %q", profile.Avatar)
	}
	if c.State() != models.StateProfiles {
		t.Errorf("Expected state %q, got %q", models.StateProfiles, c.State())
	}
	account := c.CurrentAccount()
	if account == nil || len(account.Profiles) != 1 {
		t.Fatal("Expected account to own exactly one profile")
	}
	if account.Profiles[0].AccountID != account.ID {
		t.Error("Expected profile back-reference to point at the owning account")
	}

	// Duplicate name under the same account is rejected and nothing is added
	if _, err := c.CreateProfile(ctx, "ann profile", ""); !errors.Is(err, ErrDuplicateProfile) {
		t.Errorf("Expected ErrDuplicateProfile, got %v", err)
	}
	if got := len(c.CurrentAccount().Profiles); got != 1 {
		t.Errorf("Expected profile collection length 1, got %d", got)
	}

	// Whitespace-only name is rejected
	if _, err := c.CreateProfile(ctx, "   ", ""); !errors.Is(err, ErrEmptyProfileName) {
		t.Errorf("Expected ErrEmptyProfileName, got %v", err)
	}
}

func TestController_DeleteProfile(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	if err := c.Signup(ctx, "a@b.com", "secret1", "Ann"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	first, err := c.CreateProfile(ctx, "First", "")
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	if _, err := c.CreateProfile(ctx, "Second", ""); err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}

	c.SelectProfile(first)
	if c.State() != models.StateApp {
		t.Errorf("Expected state %q after profile select, got %q", models.StateApp, c.State())
	}

	// Deleting a non-active profile keeps the active one and the screen
	c.DeleteProfile(ctx, "Second")
	if c.ActiveProfile() == nil || c.ActiveProfile().Name != "First" {
		t.Error("Expected active profile to be untouched")
	}
	if c.State() != models.StateApp {
		t.Errorf("Expected screen unchanged, got %q", c.State())
	}

	// Deleting the active profile clears the selection and falls back
	c.DeleteProfile(ctx, "First")
	if c.ActiveProfile() != nil {
		t.Error("Expected active profile to be cleared")
	}
	if c.State() != models.StateCreateProfile {
		t.Errorf("Expected state %q, got %q", models.StateCreateProfile, c.State())
	}
	if got := len(c.CurrentAccount().Profiles); got != 0 {
		t.Errorf("Expected no profiles left, got %d", got)
	}

	// Deleting an unknown name is a no-op
	c.DeleteProfile(ctx, "Nobody")
}

func TestController_LessonRoundTrip(t *testing.T) {
	c := newTestController(t)

	before := c.Lessons()

	lesson, err := c.CreateLesson("Math", "09:00 - 10:00", "")
	if err != nil {
		t.Fatalf("CreateLesson failed: %v", err)
	}
	if lesson.Room != "TBD" {
		t.Errorf("Expected room 'TBD', got %q", lesson.Room)
	}
	if lesson.Date != "Nieuw" {
		t.Errorf("Expected date 'Nieuw', got %q", lesson.Date)
	}
	if c.State() != models.StateApp {
		t.Errorf("Expected state %q, got %q", models.StateApp, c.State())
	}
	if len(c.Lessons()) != len(before)+1 {
		t.Errorf("Expected lesson collection to grow by 1, got %d", len(c.Lessons()))
	}

	c.DeleteLesson(lesson.ID)
	after := c.Lessons()
	if len(after) != len(before) {
		t.Fatalf("Expected lesson collection restored to %d entries, got %d", len(before), len(after))
	}
	for i := range after {
		if after[i].ID != before[i].ID {
			t.Errorf("Expected membership restored, entry %d is %q", i, after[i].ID)
		}
	}
}

func TestController_CreateLessonValidation(t *testing.T) {
	c := newTestController(t)
	c.Navigate(models.StateCreateLesson)

	if _, err := c.CreateLesson("", "09:00 - 10:00", ""); !errors.Is(err, ErrEmptyLessonField) {
		t.Errorf("Expected ErrEmptyLessonField, got %v", err)
	}
	if _, err := c.CreateLesson("Math", "   ", ""); !errors.Is(err, ErrEmptyLessonField) {
		t.Errorf("Expected ErrEmptyLessonField, got %v", err)
	}
	if c.State() != models.StateCreateLesson {
		t.Errorf("Expected state to remain %q, got %q", models.StateCreateLesson, c.State())
	}
}

func TestController_DeleteLessonUnknownIDIsNoop(t *testing.T) {
	c := newTestController(t)

	before := len(c.Lessons())
	c.DeleteLesson("does-not-exist")
	if len(c.Lessons()) != before {
		t.Errorf("Expected lesson collection unchanged, got %d", len(c.Lessons()))
	}
}

func TestController_NavigationAndTabs(t *testing.T) {
	c := newTestController(t)

	c.Navigate(models.StateLogin)
	if c.State() != models.StateLogin {
		t.Errorf("Expected state %q, got %q", models.StateLogin, c.State())
	}

	// manage-profiles is a declared state with no behavior behind it yet
	c.Navigate(models.StateManageProfiles)
	if c.State() != models.StateManageProfiles {
		t.Errorf("Expected state %q, got %q", models.StateManageProfiles, c.State())
	}

	c.ChangeTab(models.TabCalendar)
	if c.ActiveTab() != models.TabCalendar {
		t.Errorf("Expected tab %q, got %q", models.TabCalendar, c.ActiveTab())
	}
	// Tab changes never move the screen
	if c.State() != models.StateManageProfiles {
		t.Errorf("Expected screen unchanged, got %q", c.State())
	}
}

func TestController_SignupScenario(t *testing.T) {
	// Full walk of the happy path from an empty system
	c := newTestController(t)
	ctx := context.Background()

	if err := c.Signup(ctx, "a@b.com", "secret1", "Ann"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if c.AccountCount() != 1 {
		t.Fatalf("Expected 1 account, got %d", c.AccountCount())
	}
	if c.State() != models.StateCreateProfile {
		t.Fatalf("Expected state %q, got %q", models.StateCreateProfile, c.State())
	}

	profile, err := c.CreateProfile(ctx, "Ann Profile", "")
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	if c.State() != models.StateProfiles {
		t.Fatalf("Expected state %q, got %q", models.StateProfiles, c.State())
	}
	if got := len(c.CurrentAccount().Profiles); got != 1 {
		t.Fatalf("Expected 1 profile, got %d", got)
	}

	c.SelectProfile(profile)
	if c.State() != models.StateApp {
		t.Fatalf("Expected state %q, got %q", models.StateApp, c.State())
	}
	if c.ActiveProfile() == nil || c.ActiveProfile().ID != profile.ID {
		t.Fatal("Expected the selected profile to be active")
	}
}

func TestController_AccountsPersistAcrossSessions(t *testing.T) {
	store := stubs.NewMockDB()
	ctx := context.Background()
	seed := Seed{Date: data.CurrentDate}

	c1, err := New(ctx, store, seed, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create controller: %v", err)
	}
	if err := c1.Signup(ctx, "a@b.com", "secret1", "Ann"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if _, err := c1.CreateProfile(ctx, "Ann Profile", ""); err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}

	// A second session over the same store sees the saved accounts
	c2, err := New(ctx, store, seed, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create controller: %v", err)
	}
	if err := c2.Login("a@b.com", "secret1"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	account := c2.CurrentAccount()
	if account == nil || len(account.Profiles) != 1 {
		t.Fatal("Expected persisted account with one profile")
	}
	if account.Profiles[0].Name != "Ann Profile" {
		t.Errorf("Expected persisted profile name 'Ann Profile', got %q", account.Profiles[0].Name)
	}
}

func TestController_UniqueIDs(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	if err := c.Signup(ctx, "a@b.com", "secret1", "Ann"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	seen := make(map[string]bool)
	seen[c.CurrentAccount().ID] = true
	for i := 0; i < 50; i++ {
		lesson, err := c.CreateLesson("Lesson", "09:00 - 10:00", "")
		if err != nil {
			t.Fatalf("CreateLesson failed: %v", err)
		}
		if seen[lesson.ID] {
			t.Fatalf("Duplicate id generated: %s", lesson.ID)
		}
		seen[lesson.ID] = true
	}
}
