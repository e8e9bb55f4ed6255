package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"strive/internal/controller"
	"strive/internal/models"
)

// renderMainScreen shows the main app header and the active tab
func (b *Bot) renderMainScreen(chatID int64, c *controller.Controller) {
	profile := c.ActiveProfile()
	if profile == nil {
		b.reply(chatID, "No active profile. Pick one with /profiles")
		return
	}

	header := fmt.Sprintf("Hi %s! 👋\n%s\n", profile.Name, c.CurrentDate())
	b.reply(chatID, header)
	b.renderActiveTab(chatID, c)
}

// renderActiveTab renders the session's active tab with tab-switch buttons
func (b *Bot) renderActiveTab(chatID int64, c *controller.Controller) {
	switch c.ActiveTab() {
	case models.TabStaff:
		b.renderStaffTab(chatID, c)
	case models.TabCalendar:
		b.renderCalendarTab(chatID, c)
	default:
		b.renderScheduleTab(chatID, c)
	}
}

// renderScheduleTab lists the lessons with a delete button per lesson
func (b *Bot) renderScheduleTab(chatID int64, c *controller.Controller) {
	lessons := c.Lessons()
	if len(lessons) == 0 {
		b.reply(chatID, "The schedule is empty. Add a lesson with /newlesson")
		return
	}

	var text strings.Builder
	text.WriteString("📅 Rooster\n\n")
	for i, lesson := range lessons {
		text.WriteString(fmt.Sprintf("%d. %s (%s)\n   %s · %s\n",
			i+1, lesson.Name, lesson.Date, lesson.Time, lesson.Room))
		if lesson.Teacher != "" {
			text.WriteString(fmt.Sprintf("   %s\n", lesson.Teacher))
		}
	}

	msg := tgbotapi.NewMessage(chatID, text.String())

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, lesson := range lessons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🗑 %d. %s", i+1, lesson.Name),
				"dellesson:"+lesson.ID,
			),
		))
	}
	rows = append(rows, tabRow())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.sendMessage(msg)
}

// renderStaffTab lists the staff directory
func (b *Bot) renderStaffTab(chatID int64, c *controller.Controller) {
	var text strings.Builder
	text.WriteString("👩‍🏫 Docenten\n\n")
	for _, s := range c.Staff() {
		text.WriteString(fmt.Sprintf("%s %s — %s\n   %s · %s\n",
			s.Avatar, s.Name, s.Subject, s.Room, s.Time))
	}

	msg := tgbotapi.NewMessage(chatID, text.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tabRow())
	b.sendMessage(msg)
}

// renderCalendarTab lists the school calendar
func (b *Bot) renderCalendarTab(chatID int64, c *controller.Controller) {
	var text strings.Builder
	text.WriteString("🗓 Kalender\n\n")
	for _, item := range c.Calendar() {
		text.WriteString(fmt.Sprintf("%s %s — %s (%s)\n",
			item.Date, item.Time, item.Title, item.Status))
	}

	msg := tgbotapi.NewMessage(chatID, text.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tabRow())
	b.sendMessage(msg)
}

// tabRow is the tab navigation shown under every tab rendering
func tabRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📅 Rooster", "tab:schedule"),
		tgbotapi.NewInlineKeyboardButtonData("👩‍🏫 Docenten", "tab:staff"),
		tgbotapi.NewInlineKeyboardButtonData("🗓 Kalender", "tab:calendar"),
	)
}
