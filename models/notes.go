package models

// Chapter is one syllabus chapter with its study notes as markdown/LaTeX text.
type Chapter struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Semester struct {
	Semester int       `json:"semester"`
	Chapters []Chapter `json:"chapters"`
}

type Subject struct {
	Name      string     `json:"name"`
	Semesters []Semester `json:"semesters"`
}
