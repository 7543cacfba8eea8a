// Package state is the typed (de)serialization boundary between the
// domain and the key-value store. Each persisted slice has a fixed
// storage key and a codec that converts date fields to and from ISO
// strings, rejecting malformed records on load.
package state

// Storage keys, one per persisted domain slice.
const (
	KeyProjects        = "timeTracking_projects"
	KeyTasks           = "timeTracking_tasks"
	KeyEntries         = "timeTracking_entries"
	KeyTimerState      = "timeTracking_timerState"
	KeyGoals           = "goals"
	KeyAreas           = "selfcare_areas"
	KeyGoalSettings    = "goals_settings"
	KeyLister          = "lister_state_v1"
	KeyOrgTasks        = "org_tasks"
	KeyOrgLists        = "org_lists"
	KeyWeightEntries   = "weight_entries"
	KeyWeightReminder  = "weight_reminder"
	KeyCalorieMeals    = "calorie_meals"
	KeyCalorieSettings = "calorie_settings"
)
