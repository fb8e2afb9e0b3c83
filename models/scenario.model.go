package models

import "gorm.io/gorm"

// Scenario name enum values
const (
	ScenarioNiya   = "NIYA"
	ScenarioRachel = "RACHEL"
	ScenarioTina   = "TINA"
)

// scenarioDisplayNames maps scenario codes to their human-readable labels
var scenarioDisplayNames = map[string]string{
	ScenarioNiya:   "Bank Manager",
	ScenarioRachel: "Financial Advisor",
	ScenarioTina:   "Stock Enthusiast",
}

// Scenario is a narrative role grouping quiz questions. The name column is
// restricted to a closed set; descriptions are free text.
type Scenario struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null;type:varchar(20)"` // NIYA, RACHEL, TINA
	Description string `json:"description" gorm:"type:text"`
}

// ValidScenarioName reports whether code is one of the closed scenario set
func ValidScenarioName(code string) bool {
	_, ok := scenarioDisplayNames[code]
	return ok
}

// DisplayName returns the human-readable label for the scenario code
func (s Scenario) DisplayName() string {
	if label, ok := scenarioDisplayNames[s.Name]; ok {
		return label
	}
	return s.Name
}
