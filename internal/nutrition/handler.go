package nutrition

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vprekovic/fitlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Handler struct {
	nutritionApi *Api
}

func NewHandler(nutritionApi *Api) *Handler {
	return &Handler{
		nutritionApi: nutritionApi,
	}
}

func (handler *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "nutrition.handleSearch")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")

	query := r.URL.Query().Get("q")
	if query == "" {
		span.SetStatus(codes.Error, "missing query param")
		http.Error(w, "error, query [q] param empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("query", query))

	pageSize := 0
	if pageSizeParam := r.URL.Query().Get("pageSize"); pageSizeParam != "" {
		var err error
		pageSize, err = strconv.Atoi(pageSizeParam)
		if err != nil || pageSize <= 0 {
			http.Error(w, "error, invalid pageSize param", http.StatusBadRequest)
			return
		}
	}

	searchResponse, err := handler.nutritionApi.Search(ctx, query, pageSize)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("error getting food search results: %s", err)
		http.Error(w, "food api error", http.StatusInternalServerError)
		return
	}

	searchResponseBytes, err := json.Marshal(searchResponse)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("error marshaling food search results for %q: %s", query, err)
		http.Error(w, "food api marshal error", http.StatusInternalServerError)
		return
	}

	if _, err = w.Write(searchResponseBytes); err != nil {
		log.Errorf("failed to write response for food search: %s", err)
	}
}
