package lifts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vprekovic/fitlog/internal/telemetry/metrics"
	"github.com/vprekovic/fitlog/internal/telemetry/tracing"
	"github.com/vprekovic/fitlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=lifts_mocks_test.go -package=lifts_test

type liftsRepo interface {
	Add(ctx context.Context, lift Lift) (*Lift, error)
	Get(ctx context.Context, id int) (*Lift, error)
	ListAll(ctx context.Context, params LiftParams) ([]Lift, error)
	PersonalBests(ctx context.Context) ([]Lift, error)
	Delete(ctx context.Context, id int) error
}

type AddLiftResponse struct {
	Lift
	// NewBest is true when this lift is the heaviest recorded for its movement.
	NewBest bool `json:"newBest"`
}

type DeleteLiftResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListResponse struct {
	Lifts []Lift `json:"lifts"`
	Total int    `json:"total"`
}

type Handler struct {
	repo    liftsRepo
	metrics *metrics.Manager
}

func NewHandler(repo liftsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifts.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var lift Lift
	if err := json.NewDecoder(r.Body).Decode(&lift); err != nil {
		log.Tracef("new lift, unmarshal json params: %s", err)
		http.Error(w, "add lift failed", http.StatusBadRequest)
		return
	}

	if lift.Movement == "" {
		http.Error(w, "error, movement empty", http.StatusBadRequest)
		return
	}
	if lift.Kilos <= 0 || lift.Reps <= 0 {
		http.Error(w, "error, kilos and reps must be positive", http.StatusBadRequest)
		return
	}

	if lift.AchievedAt.IsZero() {
		lift.AchievedAt = time.Now()
	}

	addedLift, err := h.repo.Add(ctx, lift)
	if err != nil {
		log.Errorf("failed to add new lift [%s]: %s", lift.Movement, err)
		http.Error(w, "error, failed to add new lift", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterLifts.Inc()

	newBest := false
	bests, err := h.repo.PersonalBests(ctx)
	if err != nil {
		// just log the error, no need to return error to the client
		log.Errorf("failed to get personal bests: %s", err)
	} else {
		for _, best := range bests {
			if best.Movement == addedLift.Movement && best.ID == addedLift.ID {
				newBest = true
				break
			}
		}
	}

	addLiftRespJson, err := json.Marshal(AddLiftResponse{
		Lift:    *addedLift,
		NewBest: newBest,
	})
	if err != nil {
		log.Errorf("failed to marshal new lift: %s", err)
		http.Error(w, "error, failed to add new lift", http.StatusInternalServerError)
		return
	}

	log.Debugf("new lift added: %s", addLiftRespJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addLiftRespJson, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifts.get")
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

	lift, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLiftNotFound) {
			http.Error(w, "lift not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get lift %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	liftJson, err := json.Marshal(lift)
	if err != nil {
		log.Errorf("failed to marshal lift: %s", err)
		http.Error(w, "failed to marshal lift", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, liftJson, http.StatusOK)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifts.list")
	defer span.End()

	lifts, err := h.repo.ListAll(ctx, LiftParams{
		Movement: r.URL.Query().Get("movement"),
	})
	if err != nil {
		log.Errorf("list lifts error: %s", err)
		http.Error(w, "failed to get lifts", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Lifts: lifts,
		Total: len(lifts),
	})
	if err != nil {
		log.Errorf("marshal lifts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (h *Handler) HandlePersonalBests(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifts.personalbests")
	defer span.End()

	bests, err := h.repo.PersonalBests(ctx)
	if err != nil {
		log.Errorf("get personal bests error: %s", err)
		http.Error(w, "failed to get personal bests", http.StatusInternalServerError)
		return
	}

	bestsJson, err := json.Marshal(ListResponse{
		Lifts: bests,
		Total: len(bests),
	})
	if err != nil {
		log.Errorf("marshal personal bests error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, bestsJson, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.lifts.delete")
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

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrLiftNotFound) {
			http.Error(w, "lift not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete lift %d: %s", id, err)
		http.Error(w, "lift not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteLiftResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
