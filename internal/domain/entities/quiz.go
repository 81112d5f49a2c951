package entities

// QuizQuestion is a single-answer multiple-choice question
type QuizQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  string   `json:"-"`
}

// Quiz is a static named question set verifying one skill
type Quiz struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Skill     string         `json:"-"`
	Badge     string         `json:"-"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizSubmission maps question IDs to chosen options. Unanswered
// questions count as incorrect.
type QuizSubmission struct {
	QuizID  string            `json:"quizId" binding:"required"`
	Answers map[string]string `json:"answers"`
}

// QuizResult is returned for every submission, pass or fail
type QuizResult struct {
	Passed  bool   `json:"passed"`
	Score   int    `json:"score"`
	Total   int    `json:"total"`
	Message string `json:"message"`
}
