package preferences

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/legday/internal/apierr"
	"github.com/2beens/legday/internal/auth"
	"github.com/2beens/legday/internal/telemetry/tracing"
	"github.com/2beens/legday/internal/units"
	"github.com/2beens/legday/internal/validation"
	"github.com/2beens/legday/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=preferences_mocks_test.go -package=preferences_test

type preferencesStore interface {
	Get(ctx context.Context, userID string) (Preferences, error)
	SetLastSplit(ctx context.Context, userID string, splitID int) error
	SetDisplayMetric(ctx context.Context, userID string, metric units.Metric) error
}

type UpdateRequest struct {
	LastSplitID   *int    `json:"lastSplitId"`
	DisplayMetric *string `json:"displayMetric"`
}

type Handler struct {
	store preferencesStore
}

func NewHandler(store preferencesStore) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/preferences", handler.HandleGet).Methods("GET").Name("get-preferences")
	router.HandleFunc("/preferences", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-preferences")
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	prefs, err := handler.store.Get(ctx, userID)
	if err != nil {
		log.Errorf("get preferences of [%s]: %s", userID, err)
		http.Error(w, "error, failed to get preferences", http.StatusInternalServerError)
		return
	}

	handler.writePrefs(w, prefs)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.preferences.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update preferences, unmarshal json params: %s", err)
		http.Error(w, "error, invalid request", http.StatusBadRequest)
		return
	}

	var errs validation.Errors
	var metric units.Metric
	if req.LastSplitID != nil {
		errs.Check(*req.LastSplitID > 0, "lastSplitId", "please select a split")
	}
	if req.DisplayMetric != nil {
		m, err := units.ParseMetric(*req.DisplayMetric)
		if err != nil {
			errs.Add("displayMetric", units.ErrUnknownMetric.Error())
		}
		metric = m
	}
	if err := errs.Err(); err != nil {
		apierr.WriteHTTP(w, err)
		return
	}

	if req.LastSplitID != nil {
		if err := handler.store.SetLastSplit(ctx, userID, *req.LastSplitID); err != nil {
			log.Errorf("set last split of [%s]: %s", userID, err)
			http.Error(w, "error, failed to update preferences", http.StatusInternalServerError)
			return
		}
	}
	if req.DisplayMetric != nil {
		if err := handler.store.SetDisplayMetric(ctx, userID, metric); err != nil {
			log.Errorf("set display metric of [%s]: %s", userID, err)
			http.Error(w, "error, failed to update preferences", http.StatusInternalServerError)
			return
		}
	}

	prefs, err := handler.store.Get(ctx, userID)
	if err != nil {
		log.Errorf("get preferences of [%s]: %s", userID, err)
		http.Error(w, "error, failed to get preferences", http.StatusInternalServerError)
		return
	}

	handler.writePrefs(w, prefs)
}

func (handler *Handler) writePrefs(w http.ResponseWriter, prefs Preferences) {
	prefsJson, err := json.Marshal(prefs)
	if err != nil {
		log.Errorf("marshal preferences: %s", err)
		http.Error(w, "error, failed to get preferences", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, prefsJson, http.StatusOK)
}
