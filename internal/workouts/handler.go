package workouts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/trainerhub/internal/request"
	"github.com/2beens/trainerhub/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	catalog   *Catalog
	validator *request.Validator
}

func NewHandler(catalog *Catalog, validator *request.Validator) *Handler {
	return &Handler{
		catalog:   catalog,
		validator: validator,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts", h.handleList).Methods("GET").Name("list-workouts")
	r.HandleFunc("/workouts", h.handleAdd).Methods("POST").Name("add-workout")
	r.HandleFunc("/workouts/{id}", h.handleGet).Methods("GET").Name("get-workout")
	r.HandleFunc("/workouts/{id}", h.handleDelete).Methods("DELETE").Name("delete-workout")
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.catalog.List(r.Context())
	if err != nil {
		log.Errorf("list workouts: %s", err)
		request.WriteError(w, http.StatusInternalServerError, "something went wrong")
		return
	}
	if len(workouts) == 0 {
		workouts = []Workout{}
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"workouts": workouts,
		"total":    len(workouts),
	})
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req AddWorkoutRequest
	if err := h.validator.Decode(w, r, &req); err != nil {
		var validationErr *request.ValidationError
		if errors.As(err, &validationErr) {
			request.WriteValidationError(w, validationErr)
			return
		}
		request.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	workout, err := h.catalog.Add(r.Context(), req)
	if err != nil {
		log.Errorf("add workout [%s]: %s", req.Name, err)
		request.WriteError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	log.Debugf("new workout added: %d [%s]", workout.ID, workout.Name)
	pkg.WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"workout": workout,
	})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		request.WriteValidationError(w, request.NewValidationError("id", "must be a positive integer"))
		return
	}

	workout, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			request.WriteError(w, http.StatusNotFound, "not found")
			return
		}
		log.Errorf("get workout %d: %s", id, err)
		request.WriteError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"workout": workout,
	})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		request.WriteValidationError(w, request.NewValidationError("id", "must be a positive integer"))
		return
	}

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			request.WriteError(w, http.StatusNotFound, "not found")
			return
		}
		if errors.Is(err, ErrWorkoutInUse) {
			request.WriteError(w, http.StatusConflict, ErrWorkoutInUse.Error())
			return
		}
		log.Errorf("delete workout %d: %s", id, err)
		request.WriteError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
	})
}
