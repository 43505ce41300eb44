package models

// QuizQuestion is a single multiple-choice question produced by the tutor.
// AnswerIndex is always a valid index into Options once a response has passed
// boundary validation.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
	Explanation string   `json:"explanation"`
	Hint        string   `json:"hint"`
}

// SubjectiveQuestion is an open-ended question with a model answer.
type SubjectiveQuestion struct {
	Question    string `json:"question"`
	IdealAnswer string `json:"idealAnswer"`
	Explanation string `json:"explanation"`
	Hint        string `json:"hint"`
}

// ChatMessage is one prior turn of a tutoring conversation.
// Role is either "user" or "model".
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
