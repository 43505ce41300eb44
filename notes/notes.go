// Package notes is the compiled-in syllabus tree consumed by the topic
// pickers: Subject -> Semester -> Chapter, where each chapter carries its
// study notes as markdown with LaTeX math. The tree is read-only.
package notes

import "studylab/models"

// Subjects returns the whole syllabus tree.
func Subjects() []models.Subject {
	return syllabus
}

// ChaptersFor returns the chapters of one semester of a subject, or nil when
// the subject or semester is unknown.
func ChaptersFor(subject string, semester int) []models.Chapter {
	for _, s := range syllabus {
		if s.Name != subject {
			continue
		}
		for _, sem := range s.Semesters {
			if sem.Semester == semester {
				return sem.Chapters
			}
		}
	}
	return nil
}

// FindChapter looks up a single chapter by id within a subject's semester.
func FindChapter(subject string, semester, id int) (models.Chapter, bool) {
	for _, c := range ChaptersFor(subject, semester) {
		if c.ID == id {
			return c, true
		}
	}
	return models.Chapter{}, false
}
