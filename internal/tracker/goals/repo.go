package goals

import (
	"context"
	"errors"
	"time"

	"github.com/vprekovic/fitlog/internal/telemetry/tracing"
	"github.com/vprekovic/fitlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrGoalExists        = errors.New("goal for quantity already exists")
	ErrMilestoneNotFound = errors.New("milestone not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddGoal(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO goal (quantity, threshold, created_at)
		VALUES ($1, $2, $3)
		RETURNING id;`,
		goal.Quantity, goal.Threshold, goal.CreatedAt,
	).Scan(&goal.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrGoalExists
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("goal.id", goal.ID))
	return &goal, nil
}

func (r *Repo) UpdateGoal(ctx context.Context, goal Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", goal.ID))

	tag, err := r.db.Exec(ctx, `
		UPDATE goal SET quantity = $1, threshold = $2 WHERE id = $3;`,
		goal.Quantity, goal.Threshold, goal.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) GetGoal(ctx context.Context, quantity string) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("quantity", quantity))

	goal := &Goal{}
	err = r.db.QueryRow(ctx, `
		SELECT id, quantity, threshold, created_at
		FROM goal
		WHERE quantity = $1;`, quantity,
	).Scan(&goal.ID, &goal.Quantity, &goal.Threshold, &goal.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *Repo) ListGoals(ctx context.Context) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, quantity, threshold, created_at
		FROM goal
		ORDER BY quantity;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	goals := make([]Goal, 0)
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.Quantity, &g.Threshold, &g.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func (r *Repo) DeleteGoal(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM goal WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) AddMilestone(ctx context.Context, milestone Milestone) (_ *Milestone, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO milestone (name, quantity, mode, target_days, start_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`,
		milestone.Name, milestone.Quantity, milestone.Mode,
		milestone.TargetDays, milestone.StartDate, milestone.CreatedAt,
	).Scan(&milestone.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("milestone.id", milestone.ID))
	return &milestone, nil
}

func (r *Repo) GetMilestone(ctx context.Context, id int) (_ *Milestone, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	milestone := &Milestone{}
	err = r.db.QueryRow(ctx, `
		SELECT id, name, quantity, mode, target_days, start_date, completed_at, created_at
		FROM milestone
		WHERE id = $1;`, id,
	).Scan(
		&milestone.ID, &milestone.Name, &milestone.Quantity, &milestone.Mode,
		&milestone.TargetDays, &milestone.StartDate, &milestone.CompletedAt, &milestone.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMilestoneNotFound
	}
	if err != nil {
		return nil, err
	}
	return milestone, nil
}

func (r *Repo) ListMilestones(ctx context.Context) (_ []Milestone, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, quantity, mode, target_days, start_date, completed_at, created_at
		FROM milestone
		ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	milestones := make([]Milestone, 0)
	for rows.Next() {
		var m Milestone
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Quantity, &m.Mode,
			&m.TargetDays, &m.StartDate, &m.CompletedAt, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}
	return milestones, nil
}

// MarkComplete stamps a milestone completed. Completion is one-way,
// a milestone already marked complete keeps its original timestamp.
func (r *Repo) MarkComplete(ctx context.Context, id int, completedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.markcomplete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `
		UPDATE milestone SET completed_at = $2
		WHERE id = $1 AND completed_at IS NULL;`,
		id, completedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// either already complete or missing, disambiguate
		if _, err := r.GetMilestone(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) DeleteMilestone(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.milestones.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM milestone WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMilestoneNotFound
	}
	return nil
}
