// Package data holds the read-only reference collections the app is seeded
// with: the default lesson schedule, the staff directory and the school
// calendar. The controller receives copies at construction time.
package data

import "strive/internal/models"

// CurrentDate is the date label shown on the main app screen
const CurrentDate = "woensdag 9 maart"

// DefaultLessons returns the lesson schedule the app starts with
func DefaultLessons() []models.Lesson {
	return []models.Lesson{
		{ID: "1", Name: "Wiskunde", Time: "08:30 - 09:20", Room: "Lokaal 2.04", Date: "Vandaag", Teacher: "Dhr. Bakker", Subject: "Wiskunde"},
		{ID: "2", Name: "Nederlands", Time: "09:25 - 10:15", Room: "Lokaal 1.12", Date: "Vandaag", Teacher: "Mevr. de Vries", Subject: "Nederlands"},
		{ID: "3", Name: "Engels", Time: "10:30 - 11:20", Room: "Lokaal 3.01", Date: "Vandaag", Teacher: "Mevr. Jansen", Subject: "Engels"},
		{ID: "4", Name: "Geschiedenis", Time: "11:25 - 12:15", Room: "Lokaal 2.08", Date: "Vandaag", Teacher: "Dhr. Visser", Subject: "Geschiedenis"},
		{ID: "5", Name: "Gym", Time: "13:00 - 14:40", Room: "Sporthal", Date: "Vandaag", Teacher: "Dhr. Smit", Subject: "Lichamelijke opvoeding"},
	}
}

// StaffSchedule returns the staff directory
func StaffSchedule() []models.StaffMember {
	return []models.StaffMember{
		{ID: "1", Name: "Dhr. Bakker", Subject: "Wiskunde", Room: "Lokaal 2.04", Time: "08:30 - 16:00", Avatar: "B"},
		{ID: "2", Name: "Mevr. de Vries", Subject: "Nederlands", Room: "Lokaal 1.12", Time: "08:30 - 15:00", Avatar: "V"},
		{ID: "3", Name: "Mevr. Jansen", Subject: "Engels", Room: "Lokaal 3.01", Time: "09:00 - 16:30", Avatar: "J"},
		{ID: "4", Name: "Dhr. Visser", Subject: "Geschiedenis", Room: "Lokaal 2.08", Time: "08:30 - 14:30", Avatar: "V"},
		{ID: "5", Name: "Dhr. Smit", Subject: "Lichamelijke opvoeding", Room: "Sporthal", Time: "08:00 - 17:00", Avatar: "S"},
	}
}

// CalendarItems returns the school calendar
func CalendarItems() []models.CalendarItem {
	return []models.CalendarItem{
		{ID: "1", Date: "10 maart", Time: "14:00", Title: "Oudergesprekken", Status: "Gepland"},
		{ID: "2", Date: "12 maart", Time: "09:00", Title: "Toetsweek wiskunde", Status: "Gepland"},
		{ID: "3", Date: "15 maart", Time: "19:30", Title: "Schoolfeest", Status: "Gepland"},
		{ID: "4", Date: "18 maart", Time: "13:00", Title: "Sportdag", Status: "Gepland"},
	}
}
