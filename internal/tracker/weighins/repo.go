package weighins

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

var ErrWeighInNotFound = errors.New("weigh-in not found")

type WeighInParams struct {
	From *time.Time
	To   *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, weighIn WeighIn) (_ *WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(ctx, `
		INSERT INTO weigh_in (total_pounds, note, recorded_at)
		VALUES ($1, $2, $3)
		RETURNING id;`,
		weighIn.TotalPounds, weighIn.Note, weighIn.RecordedAt,
	).Scan(&weighIn.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("weighin.id", weighIn.ID))
	return &weighIn, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	weighIn := &WeighIn{}
	err = r.db.QueryRow(ctx, `
		SELECT id, total_pounds, note, recorded_at
		FROM weigh_in
		WHERE id = $1;`, id,
	).Scan(&weighIn.ID, &weighIn.TotalPounds, &weighIn.Note, &weighIn.RecordedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWeighInNotFound
	}
	if err != nil {
		return nil, err
	}
	return weighIn, nil
}

// Latest returns the most recent weigh-in.
func (r *Repo) Latest(ctx context.Context) (_ *WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	weighIn := &WeighIn{}
	err = r.db.QueryRow(ctx, `
		SELECT id, total_pounds, note, recorded_at
		FROM weigh_in
		ORDER BY recorded_at DESC
		LIMIT 1;`,
	).Scan(&weighIn.ID, &weighIn.TotalPounds, &weighIn.Note, &weighIn.RecordedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWeighInNotFound
	}
	if err != nil {
		return nil, err
	}
	return weighIn, nil
}

func (r *Repo) ListAll(ctx context.Context, params WeighInParams) (_ []WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, total_pounds, note, recorded_at
		FROM weigh_in
			WHERE ($1::timestamp IS NULL OR recorded_at >= $1)
			AND ($2::timestamp IS NULL OR recorded_at <= $2)
		ORDER BY recorded_at DESC;`,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	weighIns := make([]WeighIn, 0)
	for rows.Next() {
		var w WeighIn
		if err := rows.Scan(&w.ID, &w.TotalPounds, &w.Note, &w.RecordedAt); err != nil {
			return nil, err
		}
		weighIns = append(weighIns, w)
	}

	return weighIns, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weighins.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM weigh_in WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWeighInNotFound
	}
	return nil
}
