package models

// AppState identifies the screen the session is currently on
type AppState string

const (
	StateWelcome        AppState = "welcome"
	StateLogin          AppState = "login"
	StateSignup         AppState = "signup"
	StateProfiles       AppState = "profiles"
	StateApp            AppState = "app"
	StateManageProfiles AppState = "manage-profiles"
	StateCreateProfile  AppState = "create-profile"
	StateCreateLesson   AppState = "create-lesson"
)

// Tab identifies the active tab within the main app screen
type Tab string

const (
	TabSchedule Tab = "schedule"
	TabStaff    Tab = "staff"
	TabCalendar Tab = "calendar"
)

// Account represents a login identity with its owned profiles
type Account struct {
	ID       string
	Email    string
	Password string
	Name     string
	Profiles []Profile
}

// Profile represents a named persona under an account
type Profile struct {
	ID        string
	Name      string
	Avatar    string // uppercased first character of the name, fixed at creation
	AccountID string
	Photo     string // optional photo reference, empty if none
}

// Lesson represents a schedule entry
type Lesson struct {
	ID        string
	Name      string
	Time      string // free text, e.g. "09:00 - 10:00"
	Room      string
	Date      string
	Teacher   string
	Subject   string
	Thumbnail string
}

// StaffMember represents an entry in the staff directory
type StaffMember struct {
	ID      string
	Name    string
	Subject string
	Room    string
	Time    string
	Avatar  string
}

// CalendarItem represents an event on the school calendar
type CalendarItem struct {
	ID     string
	Date   string
	Time   string
	Title  string
	Status string
}
