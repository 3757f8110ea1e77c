package intake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vprekovic/fitlog/internal/progress"
	"github.com/vprekovic/fitlog/internal/telemetry/metrics"
	"github.com/vprekovic/fitlog/internal/telemetry/tracing"
	"github.com/vprekovic/fitlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=intake_mocks_test.go -package=intake_test

type intakeRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	Get(ctx context.Context, id int) (*Entry, error)
	List(ctx context.Context, params ListParams) (_ []Entry, total int, err error)
	ListAll(ctx context.Context, params EntryParams) (_ []Entry, err error)
	Update(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id int) error
	EntriesCount(ctx context.Context, params ListParams) (int, error)
}

type DeleteEntryResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdateEntryResponse struct {
	UpdatedID int `json:"updatedId"`
}

type AddEntryResponse struct {
	Entry
	TodayTotal float64 `json:"todayTotal"`
}

type ListResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type Handler struct {
	repo    intakeRepo
	metrics *metrics.Manager
}

func NewHandler(repo intakeRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.intake.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Tracef("new intake entry, unmarshal json params: %s", err)
		http.Error(w, "add intake entry failed", http.StatusBadRequest)
		return
	}

	if !entry.Quantity.IsValid() {
		http.Error(w, "error, invalid quantity", http.StatusBadRequest)
		return
	}
	if entry.Value <= 0 {
		http.Error(w, "error, value must be positive", http.StatusBadRequest)
		return
	}

	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	addedEntry, err := handler.repo.Add(ctx, entry)
	if err != nil {
		log.Errorf("failed to add new intake entry [%s]: %s", entry.Quantity, err)
		http.Error(w, "error, failed to add new intake entry", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterIntakeEntries.Inc()

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	entriesToday, err := handler.repo.ListAll(ctx, EntryParams{
		Quantity: addedEntry.Quantity,
		From:     &todayStart,
		To:       &tomorrowStart,
	})
	if err != nil {
		// just log the error, no need to return error to the client
		log.Errorf("failed to get today entries [%s]: %s", addedEntry.Quantity, err)
	}

	progressEntries := make([]progress.Entry, 0, len(entriesToday))
	for _, e := range entriesToday {
		progressEntries = append(progressEntries, progress.Entry{
			Value:      e.Value,
			RecordedAt: e.RecordedAt,
		})
	}
	totals := progress.BucketByDay(progressEntries)

	addEntryResponse := AddEntryResponse{
		Entry:      *addedEntry,
		TodayTotal: progress.DayTotal(totals, progress.DateKey(now)),
	}

	addedEntryJson, err := json.Marshal(addEntryResponse)
	if err != nil {
		log.Errorf("failed to marshal new intake entry: %s", err)
		http.Error(w, "error, failed to add new intake entry", http.StatusInternalServerError)
		return
	}

	log.Debugf("new intake entry added: %s", addedEntryJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedEntryJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.intake.get")
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

	e, err := handler.repo.Get(ctx, id)
	if err != nil {
		log.Errorf("failed to get intake entry %d: %s", id, err)
		http.Error(w, "intake entry not found", http.StatusBadRequest)
		return
	}

	entryJson, err := json.Marshal(e)
	if err != nil {
		log.Errorf("failed to marshal intake entry: %s", err)
		http.Error(w, "failed to marshal intake entry", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.intake.delete")
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

	entry, err := handler.repo.Get(ctx, id)
	if err != nil && !errors.Is(err, ErrEntryNotFound) {
		log.Errorf("failed to get intake entry %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrEntryNotFound) {
		log.Debugf("intake entry %d not found", id)
		http.Error(w, "intake entry not found", http.StatusNotFound)
		return
	}

	log.Debugf("deleting intake entry %+v", entry)

	if err := handler.repo.Delete(ctx, id); err != nil {
		log.Errorf("failed to delete intake entry %d: %s", id, err)
		http.Error(w, "intake entry not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteEntryResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.intake.list")
	defer span.End()

	vars := mux.Vars(r)
	pageStr := vars["page"]
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		log.Tracef("handle list intake entries, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	sizeStr := vars["size"]
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		log.Tracef("handle list intake entries, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	quantity := Quantity(r.URL.Query().Get("quantity"))
	if quantity != "" && !quantity.IsValid() {
		http.Error(w, "error, invalid quantity", http.StatusBadRequest)
		return
	}

	listParams := ListParams{
		EntryParams: EntryParams{
			Quantity: quantity,
		},
		Page: page,
		Size: size,
	}

	entries, total, err := handler.repo.List(ctx, listParams)
	if err != nil {
		log.Errorf("list intake entries error: %s", err)
		http.Error(w, "failed to get intake entries", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Entries: entries,
		Total:   total,
	})
	if err != nil {
		log.Errorf("marshal intake entries error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.intake.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("update intake entry, unmarshal json params: %s", err)
		http.Error(w, "update intake entry failed", http.StatusBadRequest)
		return
	}

	if !entry.Quantity.IsValid() {
		http.Error(w, "error, invalid quantity", http.StatusBadRequest)
		return
	}

	currentEntry, err := handler.repo.Get(ctx, entry.ID)
	if err != nil && !errors.Is(err, ErrEntryNotFound) {
		log.Errorf("failed to get intake entry %d: %s", entry.ID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrEntryNotFound) {
		log.Debugf("intake entry %d not found", entry.ID)
		http.Error(w, "intake entry not found", http.StatusNotFound)
		return
	}
	log.Debugf("update intake entry %+v -> %+v", currentEntry, entry)

	if err := handler.repo.Update(ctx, &entry); err != nil {
		log.Errorf("failed to update intake entry [%d]: %s", entry.ID, err)
		http.Error(w, "error, failed to update intake entry", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateEntryResponse{
		UpdatedID: entry.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("intake entry updated: [%s]: %d", entry.Quantity, entry.ID)
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}
