package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hr-records-api/internal/domain"
	"github.com/hr-records-api/internal/dto"
	"github.com/hr-records-api/internal/middleware"
)

// baseHandler содержит общие для всех хендлеров зависимости и хелперы
type baseHandler struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newBaseHandler(logger *slog.Logger) baseHandler {
	return baseHandler{
		validator: validator.New(),
		logger:    logger,
	}
}

// caller извлекает вызывающего из контекста запроса. Отсутствие вызывающего
// после Authenticate - ошибка конфигурации маршрутов
func (h *baseHandler) caller(w http.ResponseWriter, r *http.Request) (domain.Caller, bool) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authorization required", "")
	}
	return caller, ok
}

func (h *baseHandler) extractID(r *http.Request, prefix string) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, prefix)
	path = strings.Trim(path, "/")
	if path == "" {
		return 0, errors.New("id is required")
	}
	return strconv.ParseInt(path, 10, 64)
}

// handleServiceError отображает бизнес-ошибку в HTTP статус
func (h *baseHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrDepartmentNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		h.respondError(w, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrUsernameTaken):
		h.respondError(w, http.StatusConflict, err.Error(), "")
	case errors.Is(err, domain.ErrUsernameInUse),
		errors.Is(err, domain.ErrDuplicateDepartmentName),
		errors.Is(err, domain.ErrDuplicateProjectName),
		errors.Is(err, domain.ErrInvalidReference):
		h.respondError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, domain.ErrForbidden):
		h.respondError(w, http.StatusForbidden, err.Error(), "")
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken):
		h.respondError(w, http.StatusUnauthorized, err.Error(), "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *baseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *baseHandler) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
