package models

import "gorm.io/gorm"

// Avatar enum values
const (
	AvatarClara = "CLARA"
	AvatarMaya  = "MAYA"
)

// Goal enum values
const (
	GoalFamilyFund     = "FAMILY FUND"
	GoalCareerBreak    = "CAREER BREAK"
	GoalWealthBuilding = "WEALTH BUILDING"
)

// UserProfile is the 1:1 extension record for a user. Every user gets one at
// registration; XP changes only through the answer reconciler or the admin
// add_xp endpoint.
type UserProfile struct {
	gorm.Model
	UserID uint   `json:"user" gorm:"uniqueIndex;not null"`
	Avatar string `json:"avatar" gorm:"type:varchar(10);default:'CLARA'"` // CLARA, MAYA
	Goal   string `json:"goal" gorm:"type:varchar(100);default:'WEALTH BUILDING'"`
	XP     int    `json:"xp" gorm:"default:0"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// ValidAvatar reports whether code is one of the closed avatar set
func ValidAvatar(code string) bool {
	switch code {
	case AvatarClara, AvatarMaya:
		return true
	}
	return false
}

// ValidGoal reports whether code is one of the closed goal set
func ValidGoal(code string) bool {
	switch code {
	case GoalFamilyFund, GoalCareerBreak, GoalWealthBuilding:
		return true
	}
	return false
}
