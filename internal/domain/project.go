// Package domain contains core business entities and interfaces.
package domain

import "time"

// Project groups time-tracking tasks under a name and color.
type Project struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
}

// Task is a trackable unit of work belonging to exactly one project.
type Task struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ProjectID string    `json:"projectId"`
	Color     string    `json:"color,omitempty"`
}
