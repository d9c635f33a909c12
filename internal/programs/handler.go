package programs

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/trainerhub/internal/auth"
	"github.com/2beens/trainerhub/internal/request"
	"github.com/2beens/trainerhub/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=programs_test

type programService interface {
	CreateProgram(ctx context.Context, trainerID int64, req CreateProgramRequest) (*Program, error)
	ListPrograms(ctx context.Context, trainerID int64, filter ProgramFilter) ([]Program, error)
	GetProgram(ctx context.Context, trainerID, id int64) (*Program, error)
	UpdateProgram(ctx context.Context, trainerID, id int64, req UpdateProgramRequest) (*Program, error)
	DeleteProgram(ctx context.Context, trainerID, id int64) (DeleteReport, error)
	DuplicateProgram(ctx context.Context, trainerID, id int64, req DuplicateProgramRequest) (*Program, error)

	CreateWeek(ctx context.Context, trainerID, programID int64, req CreateWeekRequest) (*Week, error)
	GetWeek(ctx context.Context, trainerID, id int64) (*Week, error)
	UpdateWeek(ctx context.Context, trainerID, id int64, req UpdateWeekRequest) (*Week, error)
	DeleteWeek(ctx context.Context, trainerID, id int64) (DeleteReport, error)
	DuplicateWeek(ctx context.Context, trainerID, id int64, weekNumber int) (*Week, error)

	CreateDay(ctx context.Context, trainerID, weekID int64, req CreateDayRequest) (*Day, error)
	GetDay(ctx context.Context, trainerID, id int64) (*Day, error)
	UpdateDay(ctx context.Context, trainerID, id int64, req UpdateDayRequest) (*Day, error)
	DeleteDay(ctx context.Context, trainerID, id int64) (DeleteReport, error)
	DuplicateDay(ctx context.Context, trainerID, id int64, dayNumber int) (*Day, error)

	CreateCircuit(ctx context.Context, trainerID, dayID int64, req CreateCircuitRequest) (*Circuit, error)
	UpdateCircuit(ctx context.Context, trainerID, id int64, req UpdateCircuitRequest) (*Circuit, error)
	DeleteCircuit(ctx context.Context, trainerID, id int64) (DeleteReport, error)

	CreateExercise(ctx context.Context, trainerID, circuitID int64, req CreateExerciseRequest) (*Exercise, error)
	UpdateExercise(ctx context.Context, trainerID, id int64, req UpdateExerciseRequest) (*Exercise, error)
	DeleteExercise(ctx context.Context, trainerID, id int64) (DeleteReport, error)
	ReorderExercises(ctx context.Context, trainerID, circuitID int64, orders []ExerciseOrder) ([]Exercise, error)

	CreateSet(ctx context.Context, trainerID, exerciseID int64, req CreateSetRequest) (*Set, error)
	UpdateSet(ctx context.Context, trainerID, id int64, req UpdateSetRequest) (*Set, error)
	DeleteSet(ctx context.Context, trainerID, id int64) (DeleteReport, error)
}

type Handler struct {
	service   programService
	validator *request.Validator
}

func NewHandler(service programService, validator *request.Validator) *Handler {
	return &Handler{
		service:   service,
		validator: validator,
	}
}

// SetupRoutes registers the program builder routes on the /api subrouter.
func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/programs", h.handleListPrograms).Methods("GET").Name("list-programs")
	r.HandleFunc("/programs", h.handleCreateProgram).Methods("POST").Name("create-program")
	r.HandleFunc("/programs/{id}", h.handleGetProgram).Methods("GET").Name("get-program")
	r.HandleFunc("/programs/{id}", h.handleUpdateProgram).Methods("PUT").Name("update-program")
	r.HandleFunc("/programs/{id}", h.handleDeleteProgram).Methods("DELETE").Name("delete-program")
	r.HandleFunc("/programs/{id}/duplicate", h.handleDuplicateProgram).Methods("POST").Name("duplicate-program")
	r.HandleFunc("/programs/{id}/weeks", h.handleCreateWeek).Methods("POST").Name("create-week")

	r.HandleFunc("/weeks/{id}", h.handleGetWeek).Methods("GET").Name("get-week")
	r.HandleFunc("/weeks/{id}", h.handleUpdateWeek).Methods("PUT").Name("update-week")
	r.HandleFunc("/weeks/{id}", h.handleDeleteWeek).Methods("DELETE").Name("delete-week")
	r.HandleFunc("/weeks/{id}/duplicate", h.handleDuplicateWeek).Methods("POST").Name("duplicate-week")
	r.HandleFunc("/weeks/{id}/days", h.handleCreateDay).Methods("POST").Name("create-day")

	r.HandleFunc("/days/{id}", h.handleGetDay).Methods("GET").Name("get-day")
	r.HandleFunc("/days/{id}", h.handleUpdateDay).Methods("PUT").Name("update-day")
	r.HandleFunc("/days/{id}", h.handleDeleteDay).Methods("DELETE").Name("delete-day")
	r.HandleFunc("/days/{id}/duplicate", h.handleDuplicateDay).Methods("POST").Name("duplicate-day")
	r.HandleFunc("/days/{id}/circuits", h.handleCreateCircuit).Methods("POST").Name("create-circuit")

	r.HandleFunc("/circuits/{id}", h.handleUpdateCircuit).Methods("PUT").Name("update-circuit")
	r.HandleFunc("/circuits/{id}", h.handleDeleteCircuit).Methods("DELETE").Name("delete-circuit")
	r.HandleFunc("/circuits/{id}/exercises", h.handleCreateExercise).Methods("POST").Name("create-exercise")
	r.HandleFunc("/circuits/{id}/exercises/reorder", h.handleReorderExercises).Methods("POST").Name("reorder-exercises")

	r.HandleFunc("/exercises/{id}", h.handleUpdateExercise).Methods("PUT").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", h.handleDeleteExercise).Methods("DELETE").Name("delete-exercise")
	r.HandleFunc("/exercises/{id}/sets", h.handleCreateSet).Methods("POST").Name("create-set")

	r.HandleFunc("/sets/{id}", h.handleUpdateSet).Methods("PUT").Name("update-set")
	r.HandleFunc("/sets/{id}", h.handleDeleteSet).Methods("DELETE").Name("delete-set")
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		request.WriteValidationError(w, validationErr)
	case errors.Is(err, ErrInvalidInput):
		request.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		request.WriteError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, ErrNotFound):
		request.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrOrdinalTaken):
		request.WriteError(w, http.StatusConflict, err.Error())
	default:
		log.Errorf("%s %s failed: %s", r.Method, r.URL.Path, err)
		request.WriteError(w, http.StatusInternalServerError, "something went wrong")
	}
}

func writeOK(w http.ResponseWriter, status int, key string, value any) {
	pkg.WriteJSON(w, status, map[string]any{
		"success": true,
		key:       value,
	})
}

// requestScope resolves the acting trainer and the {id} path variable.
// On failure the error response is already written.
func requestScope(w http.ResponseWriter, r *http.Request) (trainerID, id int64, ok bool) {
	trainerID, ok = auth.TrainerIDFromContext(r.Context())
	if !ok {
		request.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return 0, 0, false
	}

	idStr, found := mux.Vars(r)["id"]
	if !found {
		return trainerID, 0, true
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, NewValidationError("id", "must be a positive integer"))
		return 0, 0, false
	}
	return trainerID, id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := h.validator.Decode(w, r, dst); err != nil {
		writeError(w, r, err)
		return false
	}
	return true
}

func writeDeleted(w http.ResponseWriter, r *http.Request, report DeleteReport, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "deleted", report)
}

// programs

func (h *Handler) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	trainerID, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	var filter ProgramFilter
	query := r.URL.Query()
	filter.TemplatesOnly = query.Get("templates") == "true"
	if clientIDStr := query.Get("client_id"); clientIDStr != "" {
		clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
		if err != nil || clientID <= 0 {
			writeError(w, r, NewValidationError("client_id", "must be a positive integer"))
			return
		}
		filter.ClientID = &clientID
	}

	programs, err := h.service.ListPrograms(r.Context(), trainerID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if programs == nil {
		programs = []Program{}
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"programs": programs,
		"total":    len(programs),
	})
}

func (h *Handler) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	trainerID, _, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req CreateProgramRequest
	if !h.decode(w, r, &req) {
		return
	}

	p, err := h.service.CreateProgram(r.Context(), trainerID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	log.Debugf("trainer %d created program %d", trainerID, p.ID)
	writeOK(w, http.StatusCreated, "program", p)
}

func (h *Handler) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	p, err := h.service.GetProgram(r.Context(), trainerID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "program", p)
}

func (h *Handler) handleUpdateProgram(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req UpdateProgramRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.service.UpdateProgram(r.Context(), trainerID, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "program", p)
}

func (h *Handler) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	report, err := h.service.DeleteProgram(r.Context(), trainerID, id)
	writeDeleted(w, r, report, err)
}

func (h *Handler) handleDuplicateProgram(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req DuplicateProgramRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.service.DuplicateProgram(r.Context(), trainerID, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	log.Debugf("trainer %d duplicated program %d into %d", trainerID, id, p.ID)
	writeOK(w, http.StatusCreated, "program", p)
}

// weeks

func (h *Handler) handleCreateWeek(w http.ResponseWriter, r *http.Request) {
	trainerID, programID, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req CreateWeekRequest
	if !h.decode(w, r, &req) {
		return
	}
	week, err := h.service.CreateWeek(r.Context(), trainerID, programID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, "week", week)
}

func (h *Handler) handleGetWeek(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	week, err := h.service.GetWeek(r.Context(), trainerID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "week", week)
}

func (h *Handler) handleUpdateWeek(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req UpdateWeekRequest
	if !h.decode(w, r, &req) {
		return
	}
	week, err := h.service.UpdateWeek(r.Context(), trainerID, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "week", week)
}

func (h *Handler) handleDeleteWeek(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	report, err := h.service.DeleteWeek(r.Context(), trainerID, id)
	writeDeleted(w, r, report, err)
}

func (h *Handler) handleDuplicateWeek(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req DuplicateWeekRequest
	if !h.decode(w, r, &req) {
		return
	}
	week, err := h.service.DuplicateWeek(r.Context(), trainerID, id, req.WeekNumber)
	if err != nil {
		writeError(w, r, err)
		return
	}
	log.Debugf("trainer %d duplicated week %d into %d", trainerID, id, week.ID)
	writeOK(w, http.StatusCreated, "week", week)
}

// days

func (h *Handler) handleCreateDay(w http.ResponseWriter, r *http.Request) {
	trainerID, weekID, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req CreateDayRequest
	if !h.decode(w, r, &req) {
		return
	}
	day, err := h.service.CreateDay(r.Context(), trainerID, weekID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, "day", day)
}

func (h *Handler) handleGetDay(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	day, err := h.service.GetDay(r.Context(), trainerID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "day", day)
}

func (h *Handler) handleUpdateDay(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req UpdateDayRequest
	if !h.decode(w, r, &req) {
		return
	}
	day, err := h.service.UpdateDay(r.Context(), trainerID, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "day", day)
}

func (h *Handler) handleDeleteDay(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	report, err := h.service.DeleteDay(r.Context(), trainerID, id)
	writeDeleted(w, r, report, err)
}

func (h *Handler) handleDuplicateDay(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req DuplicateDayRequest
	if !h.decode(w, r, &req) {
		return
	}
	day, err := h.service.DuplicateDay(r.Context(), trainerID, id, req.DayNumber)
	if err != nil {
		writeError(w, r, err)
		return
	}
	log.Debugf("trainer %d duplicated day %d into %d", trainerID, id, day.ID)
	writeOK(w, http.StatusCreated, "day", day)
}

// circuits

func (h *Handler) handleCreateCircuit(w http.ResponseWriter, r *http.Request) {
	trainerID, dayID, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req CreateCircuitRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.service.CreateCircuit(r.Context(), trainerID, dayID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, "circuit", c)
}

func (h *Handler) handleUpdateCircuit(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req UpdateCircuitRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.service.UpdateCircuit(r.Context(), trainerID, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "circuit", c)
}

func (h *Handler) handleDeleteCircuit(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	report, err := h.service.DeleteCircuit(r.Context(), trainerID, id)
	writeDeleted(w, r, report, err)
}

// exercises

func (h *Handler) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	trainerID, circuitID, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req CreateExerciseRequest
	if !h.decode(w, r, &req) {
		return
	}
	e, err := h.service.CreateExercise(r.Context(), trainerID, circuitID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, "exercise", e)
}

func (h *Handler) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req UpdateExerciseRequest
	if !h.decode(w, r, &req) {
		return
	}
	e, err := h.service.UpdateExercise(r.Context(), trainerID, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "exercise", e)
}

func (h *Handler) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	report, err := h.service.DeleteExercise(r.Context(), trainerID, id)
	writeDeleted(w, r, report, err)
}

func (h *Handler) handleReorderExercises(w http.ResponseWriter, r *http.Request) {
	trainerID, circuitID, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req ReorderExercisesRequest
	if !h.decode(w, r, &req) {
		return
	}
	exercises, err := h.service.ReorderExercises(r.Context(), trainerID, circuitID, req.Exercises)
	if err != nil {
		writeError(w, r, err)
		return
	}
	log.Debugf("trainer %d reordered %d exercises of circuit %d", trainerID, len(req.Exercises), circuitID)
	writeOK(w, http.StatusOK, "exercises", exercises)
}

// sets

func (h *Handler) handleCreateSet(w http.ResponseWriter, r *http.Request) {
	trainerID, exerciseID, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req CreateSetRequest
	if !h.decode(w, r, &req) {
		return
	}
	s, err := h.service.CreateSet(r.Context(), trainerID, exerciseID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, "set", s)
}

func (h *Handler) handleUpdateSet(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	var req UpdateSetRequest
	if !h.decode(w, r, &req) {
		return
	}
	s, err := h.service.UpdateSet(r.Context(), trainerID, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "set", s)
}

func (h *Handler) handleDeleteSet(w http.ResponseWriter, r *http.Request) {
	trainerID, id, ok := requestScope(w, r)
	if !ok {
		return
	}
	report, err := h.service.DeleteSet(r.Context(), trainerID, id)
	writeDeleted(w, r, report, err)
}
