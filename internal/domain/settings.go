package domain

// GoalSettings holds the user's goal configuration. Streak is a cache
// recomputed from goal data after mutations; the goal collection stays
// authoritative.
type GoalSettings struct {
	WeeklyGoals        map[string]int `json:"weeklyGoals"` // areaID -> weekly point target
	LastCompletionDate string         `json:"lastCompletionDate,omitempty"`
	DailyPointGoal     int            `json:"dailyPointGoal"`
	Streak             int            `json:"streak"`
}

// DefaultGoalSettings returns the settings used before the user
// configures anything.
func DefaultGoalSettings() *GoalSettings {
	return &GoalSettings{
		DailyPointGoal: 10,
		WeeklyGoals:    make(map[string]int),
	}
}

// WeightReminder configures the optional daily weigh-in notification.
type WeightReminder struct {
	Enabled bool `json:"enabled"`
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
}
