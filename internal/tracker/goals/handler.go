package goals

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
	"github.com/vprekovic/fitlog/internal/tracker/intake"
	"github.com/vprekovic/fitlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

type goalsRepo interface {
	AddGoal(ctx context.Context, goal Goal) (*Goal, error)
	UpdateGoal(ctx context.Context, goal Goal) error
	GetGoal(ctx context.Context, quantity string) (*Goal, error)
	ListGoals(ctx context.Context) ([]Goal, error)
	DeleteGoal(ctx context.Context, id int) error
	AddMilestone(ctx context.Context, milestone Milestone) (*Milestone, error)
	GetMilestone(ctx context.Context, id int) (*Milestone, error)
	ListMilestones(ctx context.Context) ([]Milestone, error)
	MarkComplete(ctx context.Context, id int, completedAt time.Time) error
	DeleteMilestone(ctx context.Context, id int) error
}

type entriesLister interface {
	ListAll(ctx context.Context, params intake.EntryParams) ([]intake.Entry, error)
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type MilestoneProgressResponse struct {
	Milestone Milestone         `json:"milestone"`
	Progress  progress.Progress `json:"progress"`
	Goal      float64           `json:"goal"`
}

type Handler struct {
	repo    goalsRepo
	entries entriesLister
	engine  *progress.Engine
	metrics *metrics.Manager
}

func NewHandler(
	repo goalsRepo,
	entries entriesLister,
	engine *progress.Engine,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:    repo,
		entries: entries,
		engine:  engine,
		metrics: metricsManager,
	}
}

// HandleSetGoal creates the daily goal for a quantity, or updates the
// threshold if one is already set.
func (h *Handler) HandleSetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.set")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var goal Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Tracef("set goal, unmarshal json params: %s", err)
		http.Error(w, "set goal failed", http.StatusBadRequest)
		return
	}

	if !goal.Quantity.IsValid() {
		http.Error(w, "error, invalid quantity", http.StatusBadRequest)
		return
	}
	if goal.Threshold <= 0 {
		http.Error(w, "error, threshold must be positive", http.StatusBadRequest)
		return
	}

	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}

	statusCode := http.StatusCreated
	addedGoal, err := h.repo.AddGoal(ctx, goal)
	if errors.Is(err, ErrGoalExists) {
		existing, getErr := h.repo.GetGoal(ctx, string(goal.Quantity))
		if getErr != nil {
			log.Errorf("failed to get existing goal [%s]: %s", goal.Quantity, getErr)
			http.Error(w, "error, failed to set goal", http.StatusInternalServerError)
			return
		}
		existing.Threshold = goal.Threshold
		if updErr := h.repo.UpdateGoal(ctx, *existing); updErr != nil {
			log.Errorf("failed to update goal [%s]: %s", goal.Quantity, updErr)
			http.Error(w, "error, failed to set goal", http.StatusInternalServerError)
			return
		}
		addedGoal = existing
		statusCode = http.StatusOK
	} else if err != nil {
		log.Errorf("failed to add goal [%s]: %s", goal.Quantity, err)
		http.Error(w, "error, failed to set goal", http.StatusInternalServerError)
		return
	}

	goalJson, err := json.Marshal(addedGoal)
	if err != nil {
		log.Errorf("failed to marshal goal: %s", err)
		http.Error(w, "error, failed to set goal", http.StatusInternalServerError)
		return
	}

	log.Debugf("goal set: %s", goalJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, statusCode)
}

func (h *Handler) HandleListGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	goals, err := h.repo.ListGoals(ctx)
	if err != nil {
		log.Errorf("list goals error: %s", err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	goalsJson, err := json.Marshal(goals)
	if err != nil {
		log.Errorf("marshal goals error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalsJson, http.StatusOK)
}

func (h *Handler) HandleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteGoal(ctx, id); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete goal %d: %s", id, err)
		http.Error(w, "goal not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (h *Handler) HandleAddMilestone(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.milestones.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var milestone Milestone
	if err := json.NewDecoder(r.Body).Decode(&milestone); err != nil {
		log.Tracef("new milestone, unmarshal json params: %s", err)
		http.Error(w, "add milestone failed", http.StatusBadRequest)
		return
	}

	if milestone.Name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}
	if !milestone.Quantity.IsValid() {
		http.Error(w, "error, invalid quantity", http.StatusBadRequest)
		return
	}
	if milestone.Mode == "" {
		milestone.Mode = progress.StreakModeConsecutive
	}
	if !milestone.Mode.IsValid() {
		http.Error(w, "error, invalid mode", http.StatusBadRequest)
		return
	}
	if milestone.TargetDays <= 0 {
		http.Error(w, "error, target days must be positive", http.StatusBadRequest)
		return
	}

	now := time.Now()
	if milestone.StartDate.IsZero() {
		milestone.StartDate = now
	}
	if milestone.CreatedAt.IsZero() {
		milestone.CreatedAt = now
	}
	// completion is never accepted from the client
	milestone.CompletedAt = nil

	addedMilestone, err := h.repo.AddMilestone(ctx, milestone)
	if err != nil {
		log.Errorf("failed to add milestone [%s]: %s", milestone.Name, err)
		http.Error(w, "error, failed to add milestone", http.StatusInternalServerError)
		return
	}

	milestoneJson, err := json.Marshal(addedMilestone)
	if err != nil {
		log.Errorf("failed to marshal milestone: %s", err)
		http.Error(w, "error, failed to add milestone", http.StatusInternalServerError)
		return
	}

	log.Debugf("new milestone added: %s", milestoneJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, milestoneJson, http.StatusCreated)
}

func (h *Handler) HandleListMilestones(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.milestones.list")
	defer span.End()

	milestones, err := h.repo.ListMilestones(ctx)
	if err != nil {
		log.Errorf("list milestones error: %s", err)
		http.Error(w, "failed to get milestones", http.StatusInternalServerError)
		return
	}

	milestonesJson, err := json.Marshal(milestones)
	if err != nil {
		log.Errorf("marshal milestones error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, milestonesJson, http.StatusOK)
}

func (h *Handler) HandleDeleteMilestone(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.milestones.delete")
	defer span.End()

	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteMilestone(ctx, id); err != nil {
		if errors.Is(err, ErrMilestoneNotFound) {
			http.Error(w, "milestone not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete milestone %d: %s", id, err)
		http.Error(w, "milestone not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

// HandleMilestoneProgress evaluates a milestone against the recorded
// intake entries. A milestone found to be complete is stamped, and the
// stamped date stays the streak anchor from then on.
func (h *Handler) HandleMilestoneProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.milestones.progress")
	defer span.End()

	id, err := idFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	milestone, err := h.repo.GetMilestone(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMilestoneNotFound) {
			http.Error(w, "milestone not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get milestone %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	goalThreshold, err := h.goalThreshold(ctx, r, milestone.Quantity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	anchor := h.engine.Today()
	if milestone.CompletedAt != nil {
		anchor = *milestone.CompletedAt
	}

	from := milestone.StartDate
	to := anchor.AddDate(0, 0, 1)
	entries, err := h.entries.ListAll(ctx, intake.EntryParams{
		Quantity: milestone.Quantity,
		From:     &from,
		To:       &to,
	})
	if err != nil {
		log.Errorf("failed to list entries for milestone %d: %s", id, err)
		http.Error(w, "failed to evaluate milestone", http.StatusInternalServerError)
		return
	}

	progressEntries := make([]progress.Entry, 0, len(entries))
	for _, e := range entries {
		progressEntries = append(progressEntries, progress.Entry{
			Value:      e.Value,
			RecordedAt: e.RecordedAt,
		})
	}
	totals := progress.BucketByDay(progressEntries)

	var anchorDate *time.Time
	if milestone.CompletedAt != nil {
		anchorDate = milestone.CompletedAt
	}
	prog := h.engine.RewardProgress(totals, goalThreshold, progress.StreakConfig{
		Mode:       milestone.Mode,
		TargetDays: milestone.TargetDays,
		StartDate:  milestone.StartDate,
		AnchorDate: anchorDate,
	})

	if prog.Complete && milestone.CompletedAt == nil {
		completedAt := h.engine.Today()
		if err := h.repo.MarkComplete(ctx, milestone.ID, completedAt); err != nil {
			log.Errorf("failed to mark milestone %d complete: %s", milestone.ID, err)
		} else {
			milestone.CompletedAt = &completedAt
			h.metrics.CounterMilestonesComplete.Inc()
			log.Infof("milestone %d [%s] complete", milestone.ID, milestone.Name)
		}
	}

	respJson, err := json.Marshal(MilestoneProgressResponse{
		Milestone: *milestone,
		Progress:  prog,
		Goal:      goalThreshold,
	})
	if err != nil {
		log.Errorf("failed to marshal milestone progress: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// goalThreshold resolves the goal for a quantity, with an optional
// <goal> query param override.
func (h *Handler) goalThreshold(ctx context.Context, r *http.Request, quantity intake.Quantity) (float64, error) {
	if goalStr := r.URL.Query().Get("goal"); goalStr != "" {
		goalOverride, err := strconv.ParseFloat(goalStr, 64)
		if err != nil || goalOverride <= 0 {
			return 0, errors.New("error, invalid <goal> param")
		}
		return goalOverride, nil
	}

	goal, err := h.repo.GetGoal(ctx, string(quantity))
	if errors.Is(err, ErrGoalNotFound) {
		return 0, errors.New("error, no goal set for quantity")
	}
	if err != nil {
		log.Errorf("failed to get goal [%s]: %s", quantity, err)
		return 0, errors.New("error, failed to get goal")
	}
	return goal.Threshold, nil
}

func idFromRequest(r *http.Request) (int, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("error, id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("error, id NaN")
	}
	return id, nil
}
