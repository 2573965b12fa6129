package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/hr-records-api/internal/middleware"
)

// Router настраивает маршруты API
type Router struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	authHandler  *AuthHandler
	empHandler   *EmployeeHandler
	deptHandler  *DepartmentHandler
	projHandler  *ProjectHandler
	taskHandler  *TaskHandler
	authenticate func(http.Handler) http.Handler
}

// NewRouter создаёт новый роутер
func NewRouter(
	authHandler *AuthHandler,
	empHandler *EmployeeHandler,
	deptHandler *DepartmentHandler,
	projHandler *ProjectHandler,
	taskHandler *TaskHandler,
	authenticate func(http.Handler) http.Handler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:          http.NewServeMux(),
		logger:       logger,
		authHandler:  authHandler,
		empHandler:   empHandler,
		deptHandler:  deptHandler,
		projHandler:  projHandler,
		taskHandler:  taskHandler,
		authenticate: authenticate,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// Выпуск и проверка токенов доступны без аутентификации
	r.mux.HandleFunc("/auth/token", r.postOnly(r.authHandler.ObtainPair))
	r.mux.HandleFunc("/auth/token/refresh", r.postOnly(r.authHandler.Refresh))
	r.mux.HandleFunc("/auth/token/verify", r.postOnly(r.authHandler.Verify))

	// Ресурсные маршруты требуют bearer-токен
	r.handleResource("/employees", r.employeesRouter)
	r.handleResource("/departments", r.departmentsRouter)
	r.handleResource("/projects", r.projectsRouter)
	r.handleResource("/tasks", r.tasksRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

func (r *Router) handleResource(prefix string, fn http.HandlerFunc) {
	protected := r.authenticate(fn)
	r.mux.Handle(prefix, protected)
	r.mux.Handle(prefix+"/", protected)
}

func (r *Router) postOnly(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}
		fn(w, req)
	}
}

// resourceRouter обрабатывает стандартную пару маршрутов:
// POST /{resource} и GET|PUT|PATCH|DELETE /{resource}/{id}
func (r *Router) resourceRouter(prefix string, create, get, update, del http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		path := strings.TrimPrefix(req.URL.Path, prefix)
		path = strings.Trim(path, "/")

		if path == "" {
			if req.Method == http.MethodPost {
				create(w, req)
				return
			}
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}

		if strings.Contains(path, "/") {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}

		switch req.Method {
		case http.MethodGet:
			get(w, req)
		case http.MethodPut, http.MethodPatch:
			update(w, req)
		case http.MethodDelete:
			del(w, req)
		default:
			http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		}
	}
}

func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	r.resourceRouter("/employees",
		r.empHandler.Create, r.empHandler.GetByID, r.empHandler.Update, r.empHandler.Delete)(w, req)
}

func (r *Router) departmentsRouter(w http.ResponseWriter, req *http.Request) {
	r.resourceRouter("/departments",
		r.deptHandler.Create, r.deptHandler.GetByID, r.deptHandler.Update, r.deptHandler.Delete)(w, req)
}

func (r *Router) projectsRouter(w http.ResponseWriter, req *http.Request) {
	r.resourceRouter("/projects",
		r.projHandler.Create, r.projHandler.GetByID, r.projHandler.Update, r.projHandler.Delete)(w, req)
}

func (r *Router) tasksRouter(w http.ResponseWriter, req *http.Request) {
	r.resourceRouter("/tasks",
		r.taskHandler.Create, r.taskHandler.GetByID, r.taskHandler.Update, r.taskHandler.Delete)(w, req)
}
