package days

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/legday/internal/apierr"
	"github.com/2beens/legday/internal/auth"
	"github.com/2beens/legday/internal/telemetry/tracing"
	"github.com/2beens/legday/internal/validation"
	"github.com/2beens/legday/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=days_mocks_test.go -package=days_test

type dayResolver interface {
	ResolveDayID(ctx context.Context, userID string, date time.Time, splitID *int) (Resolution, error)
}

type daysRepo interface {
	ListDays(ctx context.Context, userID string) ([]Day, error)
	GetDay(ctx context.Context, userID string, dayID int) (*DayWithSplit, error)
}

type splitRememberer interface {
	SetLastSplit(ctx context.Context, userID string, splitID int) error
}

type ResolveRequest struct {
	Date    string `json:"date"`
	SplitID *int   `json:"splitId"`
}

type ListResponse struct {
	Days []Day `json:"days"`
}

type Handler struct {
	resolver dayResolver
	repo     daysRepo
	prefs    splitRememberer
}

func NewHandler(resolver dayResolver, repo daysRepo, prefs splitRememberer) *Handler {
	return &Handler{
		resolver: resolver,
		repo:     repo,
		prefs:    prefs,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/days/resolve", handler.HandleResolve).Methods("POST", "OPTIONS").Name("resolve-day")
	router.HandleFunc("/days", handler.HandleList).Methods("GET").Name("list-days")
	router.HandleFunc("/days/{id}", handler.HandleGet).Methods("GET").Name("get-day")
}

func (handler *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.resolve")
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

	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("resolve day, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	if req.Date == "" {
		apierr.WriteHTTP(w, validation.NewFieldError("date", "please select a date"))
		return
	}
	date, err := ParseDate(req.Date)
	if err != nil {
		apierr.WriteHTTP(w, validation.NewFieldError("date", err.Error()))
		return
	}

	resolution, err := handler.resolver.ResolveDayID(ctx, userID, date, req.SplitID)
	if err != nil {
		log.Errorf("resolve day [%s] for [%s]: %s", req.Date, userID, err)
		apierr.WriteHTTP(w, err)
		return
	}

	if req.SplitID != nil && handler.prefs != nil {
		if err := handler.prefs.SetLastSplit(ctx, userID, *req.SplitID); err != nil {
			// the day is resolved, forgetting the split is not fatal
			log.Errorf("remember split %d for [%s]: %s", *req.SplitID, userID, err)
		}
	}

	respJson, err := json.Marshal(resolution)
	if err != nil {
		log.Errorf("marshal day resolution: %s", err)
		http.Error(w, "error, failed to resolve day", http.StatusInternalServerError)
		return
	}

	statusCode := http.StatusOK
	if resolution.Created {
		statusCode = http.StatusCreated
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	days, err := handler.repo.ListDays(ctx, userID)
	if err != nil {
		log.Errorf("list days for [%s]: %s", userID, err)
		apierr.WriteHTTP(w, err)
		return
	}

	respJson, err := json.Marshal(ListResponse{Days: days})
	if err != nil {
		log.Errorf("marshal days: %s", err)
		http.Error(w, "error, failed to list days", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.days.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	day, err := handler.repo.GetDay(ctx, userID, id)
	if err != nil {
		log.Tracef("get day %d for [%s]: %s", id, userID, err)
		apierr.WriteHTTP(w, err)
		return
	}

	dayJson, err := json.Marshal(day)
	if err != nil {
		log.Errorf("marshal day %d: %s", id, err)
		http.Error(w, "error, failed to get day", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dayJson, http.StatusOK)
}
