// Package dto defines data transfer objects for the tasks HTTP API.
package dto

import "time"

// CreateTaskReq represents the request body for POST /tasks.
// Title and description are required; priority and due date are optional.
type CreateTaskReq struct {
	Title       string     `json:"title" binding:"required,min=3"`
	Description string     `json:"description" binding:"required"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTaskReq represents the request body for PUT /tasks/:id.
// Every field is optional; nil means "leave unchanged". Only the fields
// listed here are mutable, so a caller can never overwrite owner or ID.
type UpdateTaskReq struct {
	Title       *string    `json:"title" binding:"omitempty,min=3"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   *bool      `json:"completed"`
}
