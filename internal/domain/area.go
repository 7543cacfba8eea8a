package domain

// SelfCareArea is a user-defined category tag for goals, carrying a
// color/icon and an optional weekly point target in GoalSettings.
type SelfCareArea struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
