package selection

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/legday/internal/apierr"
	"github.com/2beens/legday/internal/auth"
	"github.com/2beens/legday/internal/catalog"
	"github.com/2beens/legday/internal/preferences"
	"github.com/2beens/legday/internal/telemetry/tracing"
	"github.com/2beens/legday/internal/validation"
	"github.com/2beens/legday/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=selection_mocks_test.go -package=selection_test

type catalogSource interface {
	GetCatalog(ctx context.Context) (catalog.Catalog, error)
}

type preferencesReader interface {
	Get(ctx context.Context, userID string) (preferences.Preferences, error)
}

type Handler struct {
	src    catalogSource
	prefs  preferencesReader
	engine *Engine
}

// NewHandler serves the option lists for a selection. When the request
// carries a user and no split, the user's last split is used.
func NewHandler(src catalogSource, prefs preferencesReader, engine *Engine) *Handler {
	return &Handler{
		src:    src,
		prefs:  prefs,
		engine: engine,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/catalog/select", handler.HandleSelect).Methods("GET").Name("catalog-select")
}

func (handler *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.selection.select")
	defer span.End()

	query := r.URL.Query()
	var errs validation.Errors
	sel := Selection{
		SplitID:    queryID(query.Get("split"), "split", &errs),
		BodyID:     queryID(query.Get("body"), "body", &errs),
		ExerciseID: queryID(query.Get("exercise"), "exercise", &errs),
	}
	opts := handler.engine.Options()
	opts.BodyFacet = queryBool(query.Get("facet"), opts.BodyFacet, "facet", &errs)
	opts.IncludeUnscopedExercises = queryBool(query.Get("unscoped"), opts.IncludeUnscopedExercises, "unscoped", &errs)
	if err := errs.Err(); err != nil {
		apierr.WriteHTTP(w, err)
		return
	}

	if sel.SplitID == 0 && !query.Has("split") {
		sel.SplitID = handler.rememberedSplit(ctx)
	}

	span.SetAttributes(
		attribute.Int("split_id", sel.SplitID),
		attribute.Int("body_id", sel.BodyID),
		attribute.Int("exercise_id", sel.ExerciseID),
	)

	c, err := handler.src.GetCatalog(ctx)
	if err != nil {
		log.Errorf("select options, get catalog: %s", err)
		apierr.WriteHTTP(w, err)
		return
	}

	result := Resolve(c, sel, opts)
	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal selection result: %s", err)
		http.Error(w, "error, failed to select options", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func (handler *Handler) rememberedSplit(ctx context.Context) int {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok || handler.prefs == nil {
		return 0
	}
	prefs, err := handler.prefs.Get(ctx, userID)
	if err != nil {
		log.Warnf("get remembered split of [%s]: %s", userID, err)
		return 0
	}
	return prefs.LastSplitID
}

func queryID(value, field string, errs *validation.Errors) int {
	if value == "" {
		return 0
	}
	id, err := strconv.Atoi(value)
	if err != nil || id < 0 {
		errs.Add(field, "must be a non-negative integer")
		return 0
	}
	return id
}

func queryBool(value string, fallback bool, field string, errs *validation.Errors) bool {
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		errs.Add(field, "must be true or false")
		return fallback
	}
	return b
}
