package workouts

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/legday/internal/apierr"
	"github.com/2beens/legday/internal/auth"
	"github.com/2beens/legday/internal/telemetry/tracing"
	"github.com/2beens/legday/internal/units"
	"github.com/2beens/legday/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	RecordWorkout(ctx context.Context, userID string, req RecordWorkoutRequest) (*Workout, error)
	ListWorkouts(ctx context.Context, userID string, dateID int) ([]Workout, error)
	RecordSet(ctx context.Context, userID string, workoutID int, req RecordSetRequest) (*Set, error)
	Sets(ctx context.Context, userID string, workoutID int, display units.Metric) ([]SetView, error)
	LatestSet(ctx context.Context, userID string, workoutID int) (*Set, error)
}

type ListWorkoutsResponse struct {
	Workouts []Workout `json:"workouts"`
}

type SetsResponse struct {
	Sets []SetView `json:"sets"`
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts", handler.HandleRecordWorkout).Methods("POST", "OPTIONS").Name("record-workout")
	router.HandleFunc("/days/{id}/workouts", handler.HandleListWorkouts).Methods("GET").Name("list-workouts")
	router.HandleFunc("/workouts/{id}/sets", handler.HandleRecordSet).Methods("POST", "OPTIONS").Name("record-set")
	router.HandleFunc("/workouts/{id}/sets", handler.HandleSets).Methods("GET").Name("get-sets")
	router.HandleFunc("/workouts/{id}/sets/latest", handler.HandleLatestSet).Methods("GET").Name("latest-set")
}

func (handler *Handler) HandleRecordWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.record")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req RecordWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("record workout, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.RecordWorkout(ctx, userID, req)
	if err != nil {
		log.Errorf("record workout for [%s], exercise %d: %s", userID, req.ExerciseID, err)
		apierr.WriteHTTP(w, err)
		return
	}

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("marshal workout: %s", err)
		http.Error(w, "error, failed to record workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout recorded for [%s]: %d", userID, workout.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	dateID, ok := pathID(w, r)
	if !ok {
		return
	}

	workouts, err := handler.service.ListWorkouts(ctx, userID, dateID)
	if err != nil {
		log.Tracef("list workouts of day %d for [%s]: %s", dateID, userID, err)
		apierr.WriteHTTP(w, err)
		return
	}

	respJson, err := json.Marshal(ListWorkoutsResponse{Workouts: workouts})
	if err != nil {
		log.Errorf("marshal workouts: %s", err)
		http.Error(w, "error, failed to list workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleRecordSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.recordSet")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	workoutID, ok := pathID(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req RecordSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("record set, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	set, err := handler.service.RecordSet(ctx, userID, workoutID, req)
	if err != nil {
		log.Errorf("record set of workout %d for [%s]: %s", workoutID, userID, err)
		apierr.WriteHTTP(w, err)
		return
	}

	setJson, err := json.Marshal(set)
	if err != nil {
		log.Errorf("marshal set: %s", err)
		http.Error(w, "error, failed to record set", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, setJson, http.StatusCreated)
}

func (handler *Handler) HandleSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.sets")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	workoutID, ok := pathID(w, r)
	if !ok {
		return
	}

	display := units.Metric(strings.ToLower(r.URL.Query().Get("unit")))
	sets, err := handler.service.Sets(ctx, userID, workoutID, display)
	if err != nil {
		log.Tracef("get sets of workout %d for [%s]: %s", workoutID, userID, err)
		apierr.WriteHTTP(w, err)
		return
	}

	respJson, err := json.Marshal(SetsResponse{Sets: sets})
	if err != nil {
		log.Errorf("marshal sets: %s", err)
		http.Error(w, "error, failed to get sets", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleLatestSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.latestSet")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	workoutID, ok := pathID(w, r)
	if !ok {
		return
	}

	set, err := handler.service.LatestSet(ctx, userID, workoutID)
	if err != nil {
		log.Tracef("get latest set for workout %d of [%s]: %s", workoutID, userID, err)
		apierr.WriteHTTP(w, err)
		return
	}

	setJson, err := json.Marshal(set)
	if err != nil {
		log.Errorf("marshal latest set: %s", err)
		http.Error(w, "error, failed to get latest set", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, setJson, http.StatusOK)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
