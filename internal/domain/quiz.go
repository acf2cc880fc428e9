package domain

// QuizPhase is the state of a quiz attempt.
type QuizPhase string

const (
	QuizPhaseIntro     QuizPhase = "intro"
	QuizPhaseAnswering QuizPhase = "answering"
	QuizPhaseReviewing QuizPhase = "reviewing"
	QuizPhaseSummary   QuizPhase = "summary"
)

// QuestionView is a question without its answer key.
type QuestionView struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// AnswerResult is the review of one answered question.
type AnswerResult struct {
	QuestionID         int    `json:"questionId"`
	SelectedOption     int    `json:"selectedOption"`
	CorrectOptionIndex int    `json:"correctOptionIndex"`
	Correct            bool   `json:"correct"`
	Awarded            int    `json:"awarded"`
	Explanation        string `json:"explanation"`
	SupplementalFact   string `json:"supplementalFact"`
}

// QuizSessionView is a snapshot of a quiz attempt for clients.
type QuizSessionView struct {
	SessionID      string        `json:"sessionId"`
	UserID         string        `json:"userId"`
	LevelID        int           `json:"levelId"`
	LevelName      string        `json:"levelName"`
	Tier           AgeTier       `json:"tier"`
	Attempt        int           `json:"attempt"`
	Phase          QuizPhase     `json:"phase"`
	QuestionIndex  int           `json:"questionIndex"`
	QuestionCount  int           `json:"questionCount"`
	Question       *QuestionView `json:"question,omitempty"`
	LastAnswer     *AnswerResult `json:"lastAnswer,omitempty"`
	CorrectCount   int           `json:"correctCount"`
	EarnedPoints   int           `json:"earnedPoints"`
	PassThreshold  int           `json:"passThreshold"`
	Passed         bool          `json:"passed"`
	LevelCompleted bool          `json:"levelCompleted"`
}
