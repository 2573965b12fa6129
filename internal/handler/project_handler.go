package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hr-records-api/internal/domain"
	"github.com/hr-records-api/internal/dto"
	"github.com/hr-records-api/internal/service"
)

type ProjectHandler struct {
	baseHandler
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		baseHandler:    newBaseHandler(logger),
		projectService: projectService,
	}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	project, err := h.projectService.Create(r.Context(), caller, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toProjectResponse(project))
}

func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, err := h.extractID(r, "/projects/")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid project id", err.Error())
		return
	}

	project, err := h.projectService.GetByID(r.Context(), caller, id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toProjectResponse(project))
}

// Update обслуживает PUT и PATCH: непереданные поля остаются без изменений
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, err := h.extractID(r, "/projects/")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid project id", err.Error())
		return
	}

	var req dto.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	project, err := h.projectService.Update(r.Context(), caller, id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toProjectResponse(project))
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, err := h.extractID(r, "/projects/")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid project id", err.Error())
		return
	}

	if err := h.projectService.Delete(r.Context(), caller, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toProjectResponse(project *domain.Project) dto.ProjectResponse {
	resp := dto.ProjectResponse{
		ID:               project.ID,
		Name:             project.Name,
		ProjectManagerID: project.ProjectManagerID,
	}

	if project.StartDate != nil {
		start := project.StartDate.Format("2006-01-02")
		resp.StartDate = &start
	}
	if project.EndDate != nil {
		end := project.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}

	return resp
}
