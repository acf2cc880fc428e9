package app

import (
	"sync"
	"time"

	"justice-play/internal/domain"
)

// QuizSession is one user's run through a level's question set. Each attempt is scored
// independently; Restart starts a new attempt on the same session.
type QuizSession struct {
	id        string
	userID    string
	tier      domain.AgeTier
	level     domain.LevelDefinition
	createdAt time.Time

	mu             sync.Mutex
	attempt        int
	phase          domain.QuizPhase
	index          int
	correct        int
	earned         int
	lastAnswer     *domain.AnswerResult
	passed         bool
	levelCompleted bool
}

func newQuizSession(id, userID string, tier domain.AgeTier, level domain.LevelDefinition, now time.Time) *QuizSession {
	return &QuizSession{
		id:        id,
		userID:    userID,
		tier:      tier,
		level:     level,
		createdAt: now,
		attempt:   1,
		phase:     domain.QuizPhaseIntro,
	}
}

// ID returns the session identifier.
func (s *QuizSession) ID() string {
	return s.id
}

// UserID returns the owner of the session.
func (s *QuizSession) UserID() string {
	return s.userID
}

// PassThreshold is the number of correct answers needed to pass: ceil(n/2).
func PassThreshold(questionCount int) int {
	return (questionCount + 1) / 2
}

// PointsPerQuestion is the award for one correct answer. The remainder of the division is never awarded.
func PointsPerQuestion(pointsToEarn, questionCount int) int {
	if questionCount == 0 {
		return 0
	}
	return pointsToEarn / questionCount
}

func (s *QuizSession) questionCount() int {
	return len(s.level.Questions)
}

func (s *QuizSession) beginLocked() error {
	if s.phase != domain.QuizPhaseIntro {
		return domain.ErrInvalidPhase
	}
	s.phase = domain.QuizPhaseAnswering
	s.index = 0
	return nil
}

// gradeLocked checks an answer for the current question without changing state.
func (s *QuizSession) gradeLocked(option int) (domain.AnswerResult, error) {
	if s.phase != domain.QuizPhaseAnswering {
		return domain.AnswerResult{}, domain.ErrInvalidPhase
	}
	q := s.level.Questions[s.index]
	if option < 0 || option >= len(q.Options) {
		return domain.AnswerResult{}, domain.ErrOptionNotFound
	}
	result := domain.AnswerResult{
		QuestionID:         q.ID,
		SelectedOption:     option,
		CorrectOptionIndex: q.CorrectOptionIndex,
		Correct:            option == q.CorrectOptionIndex,
		Explanation:        q.Explanation,
		SupplementalFact:   q.SupplementalFact,
	}
	if result.Correct {
		result.Awarded = PointsPerQuestion(s.level.PointsToEarn, s.questionCount())
	}
	return result, nil
}

// applyAnswerLocked moves Answering to Reviewing. The transition is terminal for the question.
func (s *QuizSession) applyAnswerLocked(result domain.AnswerResult) {
	if result.Correct {
		s.correct++
		s.earned += result.Awarded
	}
	s.lastAnswer = &result
	s.phase = domain.QuizPhaseReviewing
}

// advanceLocked moves Reviewing to the next question or to Summary and reports the latter.
func (s *QuizSession) advanceLocked() (bool, error) {
	if s.phase != domain.QuizPhaseReviewing {
		return false, domain.ErrInvalidPhase
	}
	if s.index < s.questionCount()-1 {
		s.index++
		s.lastAnswer = nil
		s.phase = domain.QuizPhaseAnswering
		return false, nil
	}
	s.phase = domain.QuizPhaseSummary
	s.passed = s.correct >= PassThreshold(s.questionCount())
	return true, nil
}

func (s *QuizSession) restartLocked() {
	s.attempt++
	s.phase = domain.QuizPhaseIntro
	s.index = 0
	s.correct = 0
	s.earned = 0
	s.lastAnswer = nil
	s.passed = false
	s.levelCompleted = false
}

func (s *QuizSession) viewLocked() domain.QuizSessionView {
	view := domain.QuizSessionView{
		SessionID:      s.id,
		UserID:         s.userID,
		LevelID:        s.level.ID,
		LevelName:      s.level.Name,
		Tier:           s.tier,
		Attempt:        s.attempt,
		Phase:          s.phase,
		QuestionIndex:  s.index,
		QuestionCount:  s.questionCount(),
		CorrectCount:   s.correct,
		EarnedPoints:   s.earned,
		PassThreshold:  PassThreshold(s.questionCount()),
		Passed:         s.passed,
		LevelCompleted: s.levelCompleted,
	}
	if s.phase == domain.QuizPhaseAnswering || s.phase == domain.QuizPhaseReviewing {
		q := s.level.Questions[s.index]
		view.Question = &domain.QuestionView{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Options: append([]string(nil), q.Options...),
		}
	}
	if s.lastAnswer != nil {
		answer := *s.lastAnswer
		view.LastAnswer = &answer
	}
	return view
}

// View returns a snapshot of the session.
func (s *QuizSession) View() domain.QuizSessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// NewQuizSessionForTest is test-only; it builds a session on a one-question level.
func NewQuizSessionForTest(id, userID string) *QuizSession {
	level := domain.LevelDefinition{
		ID:           1,
		Name:         "Test Level",
		PointsToEarn: 10,
		Questions: []domain.Question{
			{ID: 1, Prompt: "Pick A", Options: []string{"A", "B", "C", "D"}},
		},
	}
	return newQuizSession(id, userID, domain.AgeTierJunior, level, time.Now())
}
