package models

import "gorm.io/gorm"

// Progress status enum values
const (
	StatusUnsolved   = "UNSOLVED"
	StatusInProgress = "IN_PROGRESS"
	StatusSolved     = "SOLVED"
)

// UserScenarioProgress tracks one user's status on one scenario. Rows are
// created lazily on the first completion-relevant event and never deleted.
// SOLVED is terminal.
type UserScenarioProgress struct {
	gorm.Model
	UserID     uint   `json:"user" gorm:"index:idx_user_scenario,unique;not null"`
	ScenarioID uint   `json:"scenario" gorm:"index:idx_user_scenario,unique;not null"`
	Status     string `json:"status" gorm:"type:varchar(20);default:'UNSOLVED'"` // UNSOLVED, IN_PROGRESS, SOLVED
}

func (UserScenarioProgress) TableName() string {
	return "user_scenario_progresses"
}

// ValidProgressStatus reports whether code is one of the closed status set
func ValidProgressStatus(code string) bool {
	switch code {
	case StatusUnsolved, StatusInProgress, StatusSolved:
		return true
	}
	return false
}
