package dtos

import "time"

type CreateTaskRequest struct {
	Title    string    `json:"title" validate:"required"`
	DueDate  time.Time `json:"dueDate" validate:"required"`
	LeadID   string    `json:"leadId"`
	LeadName string    `json:"leadName"`
	Priority string    `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

type UpdateTaskRequest struct {
	Title     string    `json:"title" validate:"required"`
	DueDate   time.Time `json:"dueDate" validate:"required"`
	Completed bool      `json:"completed"`
	LeadID    string    `json:"leadId"`
	LeadName  string    `json:"leadName"`
	Priority  string    `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}
