package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vprekovic/fitlog/internal/progress"
	"github.com/vprekovic/fitlog/internal/tracker/goals"
	"github.com/vprekovic/fitlog/internal/tracker/intake"
	"github.com/vprekovic/fitlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsAnalyzer interface {
	DailyTotals(ctx context.Context, quantity intake.Quantity, from, to *time.Time) (map[progress.DayKey]float64, error)
	CalendarMonth(ctx context.Context, quantity intake.Quantity, year int, month time.Month, goalOverride *float64) (*CalendarMonthStats, error)
	Streak(ctx context.Context, quantity intake.Quantity, goalOverride *float64) (*StreakStats, error)
}

type DailyTotalsResponse struct {
	Quantity intake.Quantity             `json:"quantity"`
	Totals   map[progress.DayKey]float64 `json:"totals"`
}

type Handler struct {
	analyzer statsAnalyzer
}

func NewHandler(analyzer statsAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	quantity, ok := quantityFromRequest(w, r)
	if !ok {
		return
	}

	var from, to *time.Time
	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		fromTime, err := pkg.ParseTimestamp(fromParam)
		if err != nil {
			http.Error(w, "error, invalid from param", http.StatusBadRequest)
			return
		}
		from = &fromTime
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		toTime, err := pkg.ParseTimestamp(toParam)
		if err != nil {
			http.Error(w, "error, invalid to param", http.StatusBadRequest)
			return
		}
		to = &toTime
	}

	totals, err := handler.analyzer.DailyTotals(r.Context(), quantity, from, to)
	if err != nil {
		log.Errorf("get daily totals: %s", err)
		http.Error(w, "failed to get daily totals", http.StatusInternalServerError)
		return
	}

	resp := DailyTotalsResponse{
		Quantity: quantity,
		Totals:   totals,
	}
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal daily totals response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	quantity, ok := quantityFromRequest(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "error, year nan", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "error, invalid month", http.StatusBadRequest)
		return
	}

	goalOverride, ok := goalOverrideFromRequest(w, r)
	if !ok {
		return
	}

	monthStats, err := handler.analyzer.CalendarMonth(r.Context(), quantity, year, time.Month(month), goalOverride)
	if err != nil {
		if errors.Is(err, goals.ErrGoalNotFound) {
			http.Error(w, "error, no goal set for quantity", http.StatusBadRequest)
			return
		}
		log.Errorf("get calendar month stats: %s", err)
		http.Error(w, "failed to get calendar month stats", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(monthStats)
	if err != nil {
		log.Errorf("marshal calendar month response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	quantity, ok := quantityFromRequest(w, r)
	if !ok {
		return
	}

	goalOverride, ok := goalOverrideFromRequest(w, r)
	if !ok {
		return
	}

	streakStats, err := handler.analyzer.Streak(r.Context(), quantity, goalOverride)
	if err != nil {
		if errors.Is(err, goals.ErrGoalNotFound) {
			http.Error(w, "error, no goal set for quantity", http.StatusBadRequest)
			return
		}
		log.Errorf("get streak stats: %s", err)
		http.Error(w, "failed to get streak stats", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(streakStats)
	if err != nil {
		log.Errorf("marshal streak response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

func quantityFromRequest(w http.ResponseWriter, r *http.Request) (intake.Quantity, bool) {
	quantity := intake.Quantity(mux.Vars(r)["quantity"])
	if !quantity.IsValid() {
		http.Error(w, fmt.Sprintf("error, invalid quantity: %s", quantity), http.StatusBadRequest)
		return "", false
	}
	return quantity, true
}

func goalOverrideFromRequest(w http.ResponseWriter, r *http.Request) (*float64, bool) {
	goalParam := r.URL.Query().Get("goal")
	if goalParam == "" {
		return nil, true
	}
	goal, err := strconv.ParseFloat(goalParam, 64)
	if err != nil || goal <= 0 {
		http.Error(w, "error, invalid goal param", http.StatusBadRequest)
		return nil, false
	}
	return &goal, true
}
