package repos

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/edubot-backend/internal/domain"
	pkgerrors "github.com/yungbote/edubot-backend/internal/pkg/errors"
	"github.com/yungbote/edubot-backend/internal/platform/logger"
)

// TopicRegistry stores one record per generated course. Records are never mutated.
type TopicRegistry interface {
	Register(ctx context.Context, rec *domain.TopicRecord) error
	ListAll(ctx context.Context) ([]*domain.TopicRecord, error)
	Get(ctx context.Context, id string) (*domain.TopicRecord, error)
}

type memoryTopicRegistry struct {
	log   *logger.Logger
	mu    sync.RWMutex
	byID  map[string]*domain.TopicRecord
	order []string
}

func NewMemoryTopicRegistry(baseLog *logger.Logger) TopicRegistry {
	return &memoryTopicRegistry{
		log:  baseLog.With("repo", "MemoryTopicRegistry"),
		byID: map[string]*domain.TopicRecord{},
	}
}

func (r *memoryTopicRegistry) Register(ctx context.Context, rec *domain.TopicRecord) error {
	if rec == nil || rec.ID == "" {
		return fmt.Errorf("%w: topic record id required", pkgerrors.ErrInvalidArgument)
	}
	cp := *rec

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[cp.ID]; ok {
		return fmt.Errorf("%w: %s", pkgerrors.ErrTopicExists, cp.ID)
	}
	r.byID[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

// ListAll returns copies in insertion order.
func (r *memoryTopicRegistry) ListAll(ctx context.Context) ([]*domain.TopicRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.TopicRecord, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryTopicRegistry) Get(ctx context.Context, id string) (*domain.TopicRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: topic %s", pkgerrors.ErrNotFound, id)
	}
	cp := *rec
	return &cp, nil
}

type gormTopicRegistry struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewGormTopicRegistry expects the topic_record table to exist (db.Service.AutoMigrateAll).
func NewGormTopicRegistry(db *gorm.DB, baseLog *logger.Logger) TopicRegistry {
	return &gormTopicRegistry{db: db, log: baseLog.With("repo", "GormTopicRegistry")}
}

func (r *gormTopicRegistry) Register(ctx context.Context, rec *domain.TopicRecord) error {
	if rec == nil || rec.ID == "" {
		return fmt.Errorf("%w: topic record id required", pkgerrors.ErrInvalidArgument)
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", pkgerrors.ErrTopicExists, rec.ID)
	}
	return nil
}

func (r *gormTopicRegistry) ListAll(ctx context.Context) ([]*domain.TopicRecord, error) {
	var results []*domain.TopicRecord
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	if results == nil {
		results = []*domain.TopicRecord{}
	}
	return results, nil
}

func (r *gormTopicRegistry) Get(ctx context.Context, id string) (*domain.TopicRecord, error) {
	var rec domain.TopicRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: topic %s", pkgerrors.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
