package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hr-records-api/internal/domain"
	"github.com/hr-records-api/internal/dto"
	"github.com/hr-records-api/internal/service"
)

type TaskHandler struct {
	baseHandler
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(logger),
		taskService: taskService,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	task, err := h.taskService.Create(r.Context(), caller, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toTaskResponse(task))
}

func (h *TaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, err := h.extractID(r, "/tasks/")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid task id", err.Error())
		return
	}

	task, err := h.taskService.GetByID(r.Context(), caller, id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toTaskResponse(task))
}

// Update обслуживает PUT и PATCH: непереданные поля остаются без изменений
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, err := h.extractID(r, "/tasks/")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid task id", err.Error())
		return
	}

	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	task, err := h.taskService.Update(r.Context(), caller, id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toTaskResponse(task))
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, err := h.extractID(r, "/tasks/")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid task id", err.Error())
		return
	}

	if err := h.taskService.Delete(r.Context(), caller, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTaskResponse(task *domain.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:         task.ID,
		Name:       task.Name,
		ProjectID:  task.ProjectID,
		ExecutorID: task.ExecutorID,
		StartDate:  task.StartDate.Format("2006-01-02"),
		EndDate:    task.EndDate.Format("2006-01-02"),
		Status:     string(task.Status),
	}
}
