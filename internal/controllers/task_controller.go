package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eburon/crm-service/internal/dtos"
	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/services"
	"github.com/eburon/crm-service/internal/utils"
)

type TaskController struct {
	svc services.TaskService
}

func NewTaskController(svc services.TaskService) *TaskController {
	return &TaskController{svc: svc}
}

// -----------------------------------------------------------------------------
// GET /api/v1/tasks
// -----------------------------------------------------------------------------
func (c *TaskController) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.svc.GetTasks(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tasks)
}

// -----------------------------------------------------------------------------
// POST /api/v1/tasks
// -----------------------------------------------------------------------------
func (c *TaskController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	priority, err := models.ParseTicketPriority(req.Priority)
	if err != nil {
		priority = models.PriorityMedium
	}

	task := &models.Task{
		Title:    req.Title,
		DueDate:  req.DueDate,
		LeadID:   req.LeadID,
		LeadName: req.LeadName,
		Priority: priority,
	}
	if err := c.svc.CreateTask(r.Context(), task); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeBackendUnavailable, err.Error(), nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, task)
}

// -----------------------------------------------------------------------------
// PUT /api/v1/tasks/{id}
// -----------------------------------------------------------------------------
func (c *TaskController) Update(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	priority, err := models.ParseTicketPriority(req.Priority)
	if err != nil {
		priority = models.PriorityMedium
	}

	task := &models.Task{
		ID:        mux.Vars(r)["id"],
		Title:     req.Title,
		DueDate:   req.DueDate,
		Completed: req.Completed,
		LeadID:    req.LeadID,
		LeadName:  req.LeadName,
		Priority:  priority,
	}
	if err := c.svc.UpdateTask(r.Context(), task); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeBackendUnavailable, err.Error(), nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, task)
}
