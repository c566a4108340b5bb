package service

//go:generate mockgen -destination=../../mocks/mock_flag_repository.go -package=mocks github.com/taskforge/todo-service/internal/featureflag/domain FlagRepository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskforge/todo-service/internal/audit"
	autherror "github.com/taskforge/todo-service/internal/errors"
	"github.com/taskforge/todo-service/internal/featureflag/cache"
	"github.com/taskforge/todo-service/internal/featureflag/domain"
	"github.com/taskforge/todo-service/internal/featureflag/dto"
	"github.com/taskforge/todo-service/pkg/constant"
)

type FlagService struct {
	repo     domain.FlagRepository
	cache    *cache.Cache
	recorder *audit.Recorder
}

func NewFlagService(repo domain.FlagRepository, cache *cache.Cache, recorder *audit.Recorder) *FlagService {
	return &FlagService{repo: repo, cache: cache, recorder: recorder}
}

// Evaluate answers whether a flag is on, consulting the cache first. Unknown
// keys evaluate to disabled rather than erroring so callers can ship lookups
// for flags that do not exist yet.
func (s *FlagService) Evaluate(ctx context.Context, key string) (*dto.EvaluationOutput, error) {
	if enabled, found := s.cache.GetEnabled(ctx, key); found {
		return &dto.EvaluationOutput{Key: key, Enabled: enabled}, nil
	}

	flag, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	enabled := flag != nil && flag.Enabled
	s.cache.SetEnabled(ctx, key, enabled)

	return &dto.EvaluationOutput{Key: key, Enabled: enabled}, nil
}

func (s *FlagService) Create(ctx context.Context, actorID string, input dto.CreateFlagInput) (*dto.FlagOutput, error) {
	existing, err := s.repo.GetByKey(ctx, input.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrFlagKeyTaken
	}

	now := time.Now()
	flag := &domain.FeatureFlag{
		ID:        uuid.NewString(),
		Key:       input.Key,
		Enabled:   input.Enabled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Description != "" {
		flag.Description = &input.Description
	}

	if err := s.repo.Create(ctx, flag); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, flag.Key)
	s.recordAudit(ctx, actorID, "flag_created", flag.ID)

	out := flagOutput(flag)

	return &out, nil
}

func (s *FlagService) List(ctx context.Context) ([]dto.FlagOutput, error) {
	flags, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.FlagOutput, 0, len(flags))
	for i := range flags {
		out = append(out, flagOutput(&flags[i]))
	}

	return out, nil
}

func (s *FlagService) Update(ctx context.Context, actorID, id string, input dto.UpdateFlagInput) (*dto.FlagOutput, error) {
	flag, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flag == nil {
		return nil, autherror.ErrFlagNotFound
	}

	if input.Enabled != nil {
		flag.Enabled = *input.Enabled
	}
	if input.Description != nil {
		flag.Description = input.Description
	}
	flag.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, flag); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, flag.Key)
	s.recordAudit(ctx, actorID, "flag_updated", flag.ID)

	out := flagOutput(flag)

	return &out, nil
}

func (s *FlagService) Delete(ctx context.Context, actorID, id string) error {
	flag, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if flag == nil {
		return autherror.ErrFlagNotFound
	}

	if err := s.repo.SoftDelete(ctx, id, time.Now()); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, flag.Key)
	s.recordAudit(ctx, actorID, "flag_deleted", flag.ID)

	return nil
}

func (s *FlagService) recordAudit(ctx context.Context, actorID, action, flagID string) {
	s.recorder.Record(ctx, audit.Entry{
		ActorID:    &actorID,
		ActorType:  constant.RevokedByUser,
		Action:     action,
		EntityType: "feature_flag",
		EntityID:   flagID,
	})
}

func flagOutput(f *domain.FeatureFlag) dto.FlagOutput {
	out := dto.FlagOutput{
		ID:        f.ID,
		Key:       f.Key,
		Enabled:   f.Enabled,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.Description != nil {
		out.Description = *f.Description
	}

	return out
}
