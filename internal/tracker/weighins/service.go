package weighins

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vprekovic/fitlog/internal/progress"
	"github.com/vprekovic/fitlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/codes"
)

var ErrInvalidWeight = errors.New("invalid weight")

type weighInsRepo interface {
	Add(ctx context.Context, weighIn WeighIn) (*WeighIn, error)
	Get(ctx context.Context, id int) (*WeighIn, error)
	Latest(ctx context.Context) (*WeighIn, error)
	ListAll(ctx context.Context, params WeighInParams) ([]WeighIn, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo weighInsRepo
}

func NewService(repo weighInsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Add resolves the request weight to total pounds and stores the weigh-in.
func (s *Service) Add(ctx context.Context, req AddWeighInRequest) (_ *WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weighins.add")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	totalPounds, err := resolveTotalPounds(req)
	if err != nil {
		return nil, err
	}

	recordedAt := time.Now()
	if req.RecordedAt != nil && !req.RecordedAt.IsZero() {
		recordedAt = *req.RecordedAt
	}

	weighIn, err := s.repo.Add(ctx, WeighIn{
		TotalPounds: totalPounds,
		Note:        req.Note,
		RecordedAt:  recordedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("add weigh-in: %w", err)
	}
	return weighIn, nil
}

func (s *Service) Get(ctx context.Context, id int) (_ *WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weighins.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	weighIn, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get weigh-in: %w", err)
	}
	return weighIn, nil
}

func (s *Service) Latest(ctx context.Context) (_ *WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weighins.latest")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	weighIn, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest weigh-in: %w", err)
	}
	return weighIn, nil
}

func (s *Service) List(ctx context.Context, params WeighInParams) (_ []WeighIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weighins.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	weighIns, err := s.repo.ListAll(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list weigh-ins: %w", err)
	}
	return weighIns, nil
}

func (s *Service) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weighins.delete")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete weigh-in: %w", err)
	}
	return nil
}

func resolveTotalPounds(req AddWeighInRequest) (float64, error) {
	switch {
	case req.TotalPounds != nil:
		if *req.TotalPounds <= 0 {
			return 0, ErrInvalidWeight
		}
		return *req.TotalPounds, nil
	case req.Kilograms != nil:
		if *req.Kilograms <= 0 {
			return 0, ErrInvalidWeight
		}
		return progress.KilogramsToPounds(*req.Kilograms), nil
	case req.Stone != nil || req.Pounds != nil:
		var stone, pounds float64
		if req.Stone != nil {
			stone = float64(*req.Stone)
		}
		if req.Pounds != nil {
			pounds = *req.Pounds
		}
		if stone < 0 || pounds < 0 {
			return 0, ErrInvalidWeight
		}
		totalPounds := progress.TotalPounds(stone, pounds)
		if totalPounds <= 0 {
			return 0, ErrInvalidWeight
		}
		return totalPounds, nil
	default:
		return 0, ErrInvalidWeight
	}
}
