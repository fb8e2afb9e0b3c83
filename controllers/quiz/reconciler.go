package quizController

import (
	"finlit/config"
	"finlit/models"
	"finlit/utils"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// ApplyAnswerRewards is the post-write hook run after a new UserAnswer row is
// created, inside the same transaction. Incorrect answers are a no-op. Correct
// answers credit the question's XP reward to the profile, then the user's
// correct-answer count for the question's scenario is recomputed from scratch;
// reaching the solve threshold promotes the progress row to SOLVED. The
// recompute makes the promotion self-healing: a missed promotion is retried on
// the next correct answer.
func ApplyAnswerRewards(tx *gorm.DB, user models.User, answer models.UserAnswer, question models.QuizQuestion) error {
	if !answer.IsCorrect {
		return nil
	}

	// Every user gets a profile at registration; a missing row is a data
	// integrity violation and fails the whole submission.
	var profile models.UserProfile
	if err := tx.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return fmt.Errorf("profile missing for user %d: %w", user.ID, err)
	}

	profile.XP += question.XPReward
	if err := tx.Save(&profile).Error; err != nil {
		return fmt.Errorf("failed to credit XP: %w", err)
	}

	utils.PushEvent(utils.XPEvent{
		Event:    "XP_CREDITED",
		Username: user.Username,
		Amount:   question.XPReward,
		XPTotal:  profile.XP,
	})

	var correctCount int64
	err := tx.Model(&models.UserAnswer{}).
		Joins("JOIN quiz_questions ON quiz_questions.id = user_answers.question_id").
		Where("user_answers.user_id = ? AND user_answers.is_correct = ? AND quiz_questions.scenario_id = ?",
			user.ID, true, question.ScenarioID).
		Count(&correctCount).Error
	if err != nil {
		return fmt.Errorf("failed to count correct answers: %w", err)
	}

	if int(correctCount) < config.AppConfig.SolveThreshold {
		return nil
	}

	var progress models.UserScenarioProgress
	err = tx.Where("user_id = ? AND scenario_id = ?", user.ID, question.ScenarioID).First(&progress).Error
	if err != nil {
		progress = models.UserScenarioProgress{
			UserID:     user.ID,
			ScenarioID: question.ScenarioID,
			Status:     models.StatusSolved,
		}
		if err := tx.Create(&progress).Error; err != nil {
			return fmt.Errorf("failed to create progress row: %w", err)
		}
	} else if progress.Status != models.StatusSolved {
		progress.Status = models.StatusSolved
		if err := tx.Save(&progress).Error; err != nil {
			return fmt.Errorf("failed to promote progress: %w", err)
		}
	} else {
		// Already SOLVED, terminal state
		return nil
	}

	var scenario models.Scenario
	if err := tx.Where("id = ?", question.ScenarioID).First(&scenario).Error; err == nil {
		utils.PushEvent(utils.XPEvent{
			Event:    "SCENARIO_SOLVED",
			Username: user.Username,
			Scenario: scenario.Name,
			XPTotal:  profile.XP,
		})
	} else {
		log.Printf("Scenario %d missing while pushing solve event: %v", question.ScenarioID, err)
	}

	return nil
}
