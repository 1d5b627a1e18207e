package models

import "time"

type Task struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	DueDate   time.Time      `json:"due_date"`
	Completed bool           `json:"completed"`
	LeadID    string         `json:"leadId,omitempty"`
	LeadName  string         `json:"leadName,omitempty"`
	Priority  TicketPriority `json:"priority"`
	CreatedAt time.Time      `json:"created_at"`
}
