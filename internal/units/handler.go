package units

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/legday/internal/apierr"
	"github.com/2beens/legday/internal/telemetry/tracing"
	"github.com/2beens/legday/internal/validation"
	"github.com/2beens/legday/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ConvertResponse struct {
	Value  float64 `json:"value"`
	From   Metric  `json:"from"`
	To     Metric  `json:"to"`
	Result float64 `json:"result"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/units/convert", handler.HandleConvert).Methods("GET").Name("units-convert")
}

func (handler *Handler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.units.convert")
	defer span.End()

	query := r.URL.Query()

	var errs validation.Errors
	value, err := strconv.ParseFloat(query.Get("value"), 64)
	if err != nil || !ValidWeight(value) {
		errs.Add("value", ErrInvalidWeight.Error())
	}
	from, err := ParseMetric(query.Get("from"))
	if err != nil {
		errs.Add("from", ErrUnknownMetric.Error())
	}
	to, err := ParseMetric(query.Get("to"))
	if err != nil {
		errs.Add("to", ErrUnknownMetric.Error())
	}
	if err := errs.Err(); err != nil {
		log.Tracef("convert units, invalid params [%s]: %s", r.URL.RawQuery, err)
		apierr.WriteHTTP(w, err)
		return
	}

	result, err := Convert(value, from, to)
	if err != nil {
		log.Errorf("convert %v %s to %s: %s", value, from, to, err)
		http.Error(w, "error, failed to convert", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ConvertResponse{
		Value:  value,
		From:   from,
		To:     to,
		Result: result,
	})
	if err != nil {
		log.Errorf("marshal convert response: %s", err)
		http.Error(w, "error, failed to convert", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
