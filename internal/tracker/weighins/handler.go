package weighins

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vprekovic/fitlog/internal/telemetry/metrics"
	"github.com/vprekovic/fitlog/internal/telemetry/tracing"
	"github.com/vprekovic/fitlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=weighins_mocks_test.go -package=weighins_test

type service interface {
	Add(ctx context.Context, req AddWeighInRequest) (*WeighIn, error)
	Get(ctx context.Context, id int) (*WeighIn, error)
	Latest(ctx context.Context) (*WeighIn, error)
	List(ctx context.Context, params WeighInParams) ([]WeighIn, error)
	Delete(ctx context.Context, id int) error
}

type DeleteWeighInResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	WeighIns []WeighInView `json:"weighIns"`
	Total    int           `json:"total"`
}

type Handler struct {
	service service
	metrics *metrics.Manager
}

func NewHandler(service service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metricsManager,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weighins.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var addReq AddWeighInRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		log.Tracef("new weigh-in, unmarshal json params: %s", err)
		http.Error(w, "add weigh-in failed", http.StatusBadRequest)
		return
	}

	weighIn, err := h.service.Add(ctx, addReq)
	if err != nil {
		if errors.Is(err, ErrInvalidWeight) {
			http.Error(w, "error, invalid weight", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add new weigh-in: %s", err)
		http.Error(w, "error, failed to add new weigh-in", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterWeighIns.Inc()

	weighInJson, err := json.Marshal(NewWeighInView(*weighIn))
	if err != nil {
		log.Errorf("failed to marshal new weigh-in: %s", err)
		http.Error(w, "error, failed to add new weigh-in", http.StatusInternalServerError)
		return
	}

	log.Debugf("new weigh-in added: %s", weighInJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, weighInJson, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weighins.get")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	weighIn, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWeighInNotFound) {
			http.Error(w, "weigh-in not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get weigh-in %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	weighInJson, err := json.Marshal(NewWeighInView(*weighIn))
	if err != nil {
		log.Errorf("failed to marshal weigh-in: %s", err)
		http.Error(w, "failed to marshal weigh-in", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, weighInJson, http.StatusOK)
}

func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weighins.latest")
	defer span.End()

	weighIn, err := h.service.Latest(ctx)
	if err != nil {
		if errors.Is(err, ErrWeighInNotFound) {
			http.Error(w, "no weigh-ins yet", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get latest weigh-in: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	weighInJson, err := json.Marshal(NewWeighInView(*weighIn))
	if err != nil {
		log.Errorf("failed to marshal weigh-in: %s", err)
		http.Error(w, "failed to marshal weigh-in", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, weighInJson, http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weighins.list")
	defer span.End()

	params := WeighInParams{}
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := pkg.ParseTimestamp(fromStr)
		if err != nil {
			http.Error(w, "error, invalid <from> param", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := pkg.ParseTimestamp(toStr)
		if err != nil {
			http.Error(w, "error, invalid <to> param", http.StatusBadRequest)
			return
		}
		params.To = &to
	}

	weighIns, err := h.service.List(ctx, params)
	if err != nil {
		log.Errorf("list weigh-ins error: %s", err)
		http.Error(w, "failed to get weigh-ins", http.StatusInternalServerError)
		return
	}

	views := make([]WeighInView, 0, len(weighIns))
	for _, weighIn := range weighIns {
		views = append(views, NewWeighInView(weighIn))
	}

	listResponseJson, err := json.Marshal(ListResponse{
		WeighIns: views,
		Total:    len(views),
	})
	if err != nil {
		log.Errorf("marshal weigh-ins error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weighins.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrWeighInNotFound) {
			http.Error(w, "weigh-in not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete weigh-in %d: %s", id, err)
		http.Error(w, "weigh-in not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteWeighInResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
