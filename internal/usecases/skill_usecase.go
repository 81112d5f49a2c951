package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"collabhub.backend/internal/domain/entities"
	domainerrors "collabhub.backend/internal/domain/errors"
	"collabhub.backend/internal/domain/repositories"
)

// quizzes holds the static quiz definitions. Answer keys never leave
// this package; the JSON tags on the entity hide them from responses.
var quizzes = map[string]*entities.Quiz{
	"react-hooks": {
		ID:    "react-hooks",
		Title: "React Hooks Mastery",
		Skill: "React Hooks",
		Badge: "Trial Proven",
		Questions: []entities.QuizQuestion{
			{
				ID:       "q1",
				Question: "Which hook is used for side effects?",
				Options:  []string{"useState", "useEffect", "useContext", "useReducer"},
				Correct:  "useEffect",
			},
			{
				ID:       "q2",
				Question: "What does useState return?",
				Options:  []string{"A value", "A function", "An array with value and setter", "An object"},
				Correct:  "An array with value and setter",
			},
			{
				ID:       "q3",
				Question: "When does useEffect run by default?",
				Options:  []string{"Only on mount", "Only on unmount", "After every render", "Never"},
				Correct:  "After every render",
			},
			{
				ID:       "q4",
				Question: "What is the purpose of the dependency array in useEffect?",
				Options:  []string{"To pass props", "To control when effect runs", "To declare state", "To import modules"},
				Correct:  "To control when effect runs",
			},
			{
				ID:       "q5",
				Question: "Which hook is used for complex state logic?",
				Options:  []string{"useState", "useEffect", "useReducer", "useMemo"},
				Correct:  "useReducer",
			},
		},
	},
}

// externalSyncSkills is the fixed skill set the mocked external
// verification vouches for.
var externalSyncSkills = []string{"JavaScript", "React", "Node.js", "TypeScript"}

const externalSyncBadge = "Code Synced"

// passPercent is the minimum share of correct answers to pass a quiz.
const passPercent = 80

// SkillUsecase is the skill ledger plus the quiz engine that feeds it
type SkillUsecase struct {
	skillRepo repositories.SkillRepository
}

// NewSkillUsecase creates a new skill usecase
func NewSkillUsecase(skillRepo repositories.SkillRepository) *SkillUsecase {
	return &SkillUsecase{skillRepo: skillRepo}
}

// GetQuiz returns a quiz definition, answer keys excluded by encoding
func (u *SkillUsecase) GetQuiz(quizID string) (*entities.Quiz, error) {
	quiz, ok := quizzes[quizID]
	if !ok {
		return nil, domainerrors.NotFound("quiz not found")
	}
	return quiz, nil
}

// SubmitQuiz scores a submission. Unanswered questions count as
// incorrect. Passing upserts the quiz's subject skill as verified; a
// failed attempt changes nothing and still reports the score.
func (u *SkillUsecase) SubmitQuiz(ctx context.Context, userID uuid.UUID, submission *entities.QuizSubmission) (*entities.QuizResult, error) {
	quiz, ok := quizzes[submission.QuizID]
	if !ok {
		return nil, domainerrors.NotFound("quiz not found")
	}

	score := 0
	for _, q := range quiz.Questions {
		if submission.Answers[q.ID] == q.Correct {
			score++
		}
	}

	total := len(quiz.Questions)
	needed := (total*passPercent + 99) / 100
	passed := score >= needed

	result := &entities.QuizResult{Passed: passed, Score: score, Total: total}
	if !passed {
		result.Message = fmt.Sprintf("Try again. Need %d/%d to pass.", needed, total)
		return result, nil
	}
	result.Message = "Congratulations! Skill verified."

	err := u.skillRepo.Upsert(ctx, userID, entities.Skill{
		Name:     quiz.Skill,
		Verified: true,
		Method:   entities.VerificationQuiz,
		Badge:    quiz.Badge,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SyncExternal runs the mocked external verification: a fixed skill set
// is upserted verified. Re-running reaches the same end state.
func (u *SkillUsecase) SyncExternal(ctx context.Context, userID uuid.UUID) ([]string, error) {
	for _, name := range externalSyncSkills {
		err := u.skillRepo.Upsert(ctx, userID, entities.Skill{
			Name:     name,
			Verified: true,
			Method:   entities.VerificationExternalSync,
			Badge:    externalSyncBadge,
		})
		if err != nil {
			return nil, err
		}
	}
	return externalSyncSkills, nil
}

// ListSkills returns the user's skill ledger
func (u *SkillUsecase) ListSkills(ctx context.Context, userID uuid.UUID) ([]entities.Skill, error) {
	return u.skillRepo.ListByUser(ctx, userID)
}
