package catalog

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/legday/internal/apierr"
	"github.com/2beens/legday/internal/telemetry/tracing"
	"github.com/2beens/legday/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type catalogSource interface {
	GetCatalog(ctx context.Context) (Catalog, error)
	GetSplits(ctx context.Context, programID int) ([]Split, error)
}

type SplitsResponse struct {
	Splits []Split `json:"splits"`
}

type Handler struct {
	src       catalogSource
	programID int
}

// NewHandler serves the catalog of the given program. Program id 0 serves
// the splits of all programs.
func NewHandler(src catalogSource, programID int) *Handler {
	return &Handler{
		src:       src,
		programID: programID,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/catalog/options", handler.HandleOptions).Methods("GET").Name("catalog-options")
	router.HandleFunc("/catalog/splits", handler.HandleSplits).Methods("GET").Name("catalog-splits")
}

func (handler *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.options")
	defer span.End()

	catalog, err := handler.src.GetCatalog(ctx)
	if err != nil {
		log.Errorf("get catalog options: %s", err)
		apierr.WriteHTTP(w, err)
		return
	}

	catalogJson, err := json.Marshal(catalog)
	if err != nil {
		log.Errorf("marshal catalog: %s", err)
		http.Error(w, "error, failed to get catalog", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, catalogJson, http.StatusOK)
}

func (handler *Handler) HandleSplits(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.splits")
	defer span.End()

	splits, err := handler.src.GetSplits(ctx, handler.programID)
	if err != nil {
		log.Errorf("get splits for program %d: %s", handler.programID, err)
		apierr.WriteHTTP(w, err)
		return
	}

	splitsJson, err := json.Marshal(SplitsResponse{Splits: splits})
	if err != nil {
		log.Errorf("marshal splits: %s", err)
		http.Error(w, "error, failed to get splits", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, splitsJson, http.StatusOK)
}
