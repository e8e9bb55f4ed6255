package controller

import "strive/internal/models"

// Defaults for newly created lessons: the room is not assigned yet and the
// date carries the "new" sentinel label until the schedule is reworked.
const (
	newLessonRoom = "TBD"
	newLessonDate = "Nieuw"
)

// CreateLesson appends a lesson to the schedule and returns it. Title and
// time must be non-empty after trimming. On success the session moves back
// to the main app screen.
func (c *Controller) CreateLesson(title, time, thumbnail string) (models.Lesson, error) {
	title = trimmed(title)
	time = trimmed(time)
	if title == "" || time == "" {
		return models.Lesson{}, ErrEmptyLessonField
	}

	lesson := models.Lesson{
		ID:        c.newID(),
		Name:      title,
		Time:      time,
		Room:      newLessonRoom,
		Date:      newLessonDate,
		Thumbnail: thumbnail,
	}

	c.lessons = append(c.lessons, lesson)
	c.state = models.StateApp
	return lesson, nil
}

// DeleteLesson removes the lesson with the given id. Unknown ids are a
// no-op. The screen is unchanged.
func (c *Controller) DeleteLesson(id string) {
	kept := c.lessons[:0]
	for _, l := range c.lessons {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	c.lessons = kept
}
