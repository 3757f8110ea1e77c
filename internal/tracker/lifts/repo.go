package lifts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vprekovic/fitlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrLiftNotFound = errors.New("lift not found")

type LiftParams struct {
	Movement string
	From     *time.Time
	To       *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, lift Lift) (_ *Lift, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO lift (movement, kilos, reps, achieved_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		lift.Movement, lift.Kilos, lift.Reps, lift.AchievedAt,
	).Scan(&lift.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("lift.id", lift.ID))
	return &lift, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Lift, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	lift := &Lift{}
	err = r.db.QueryRow(ctx, `
		SELECT id, movement, kilos, reps, achieved_at
		FROM lift
		WHERE id = $1;`, id,
	).Scan(&lift.ID, &lift.Movement, &lift.Kilos, &lift.Reps, &lift.AchievedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLiftNotFound
	}
	if err != nil {
		return nil, err
	}
	return lift, nil
}

func (r *Repo) ListAll(ctx context.Context, params LiftParams) (_ []Lift, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("movement", params.Movement))

	rows, err := r.db.Query(ctx, `
		SELECT id, movement, kilos, reps, achieved_at
		FROM lift
			WHERE ($1::text = '' OR movement = $1)
			AND ($2::timestamp IS NULL OR achieved_at >= $2)
			AND ($3::timestamp IS NULL OR achieved_at <= $3)
		ORDER BY achieved_at DESC;`,
		params.Movement, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2lifts(rows)
}

// PersonalBests returns the heaviest lift per movement.
func (r *Repo) PersonalBests(ctx context.Context) (_ []Lift, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifts.personalbests")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (movement)
			id, movement, kilos, reps, achieved_at
		FROM lift
		ORDER BY movement, kilos DESC, achieved_at ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2lifts(rows)
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.lifts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM lift WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLiftNotFound
	}
	return nil
}

func (r *Repo) rows2lifts(rows pgx.Rows) ([]Lift, error) {
	lifts := make([]Lift, 0)
	for rows.Next() {
		var l Lift
		if err := rows.Scan(&l.ID, &l.Movement, &l.Kilos, &l.Reps, &l.AchievedAt); err != nil {
			return nil, err
		}
		lifts = append(lifts, l)
	}
	return lifts, nil
}
