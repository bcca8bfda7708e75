// Package admin содержит бизнес-логику панели администратора:
// сводную статистику, модерацию пользователей и отзывов.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/leaflog/internal/lib/search"
	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
	"github.com/magabrotheeeer/leaflog/internal/lib/stats"
	"github.com/magabrotheeeer/leaflog/internal/models"
)

// Repository определяет методы хранилища, нужные администратору.
type Repository interface {
	ListUsers(ctx context.Context) ([]models.AdminUser, error)
	SetUserStatus(ctx context.Context, id string, status models.UserStatus) (*models.AdminUser, error)
	ListFeedback(ctx context.Context) ([]models.Feedback, error)
	SetFeedbackStatus(ctx context.Context, id string, status models.FeedbackStatus) (*models.Feedback, error)
	ListPlants(ctx context.Context) ([]models.Plant, error)
	ListReminders(ctx context.Context) ([]models.Reminder, error)
}

// Cache описывает методы для кеширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(keys ...string) error
}

// Service реализует операции администратора.
type Service struct {
	repo   Repository
	cache  Cache
	log    *slog.Logger
	ttl    time.Duration
	prefix string
	now    func() time.Time
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithKeyPrefix добавляет prefix к ключам кеша.
func WithKeyPrefix(prefix string) Option {
	return func(s *Service) {
		s.prefix = prefix
	}
}

// NewService создаёт сервис. ttl время жизни сводки по пользователям в кеше.
func NewService(repo Repository, cache Cache, log *slog.Logger, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		cache: cache,
		log:   log,
		ttl:   ttl,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ключ зависит от месяца: NewUsersThisMonth меняется при смене месяца.
func (s *Service) statsKey(now time.Time) string {
	return fmt.Sprintf("%sstats:users:%s", s.prefix, now.Format("2006-01"))
}

// Stats считает сводку. Часть по пользователям и отзывам берётся из кеша,
// число растений и доля выполненных напоминаний считаются каждый раз.
func (s *Service) Stats(ctx context.Context) (stats.Stats, error) {
	const op = "services.admin.Stats"
	now := s.now()
	key := s.statsKey(now)

	var base stats.Stats
	found, err := s.cache.Get(key, &base)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
	}
	if !found {
		users, err := s.repo.ListUsers(ctx)
		if err != nil {
			return stats.Stats{}, fmt.Errorf("%s: %w", op, err)
		}
		feedback, err := s.repo.ListFeedback(ctx)
		if err != nil {
			return stats.Stats{}, fmt.Errorf("%s: %w", op, err)
		}
		base = stats.Calculate(users, feedback, now)
		if err := s.cache.Set(key, base, s.ttl); err != nil {
			s.log.Warn("failed to cache stats", slog.String("key", key), sl.Err(err))
		}
	}

	plants, err := s.repo.ListPlants(ctx)
	if err != nil {
		return stats.Stats{}, fmt.Errorf("%s: %w", op, err)
	}
	reminders, err := s.repo.ListReminders(ctx)
	if err != nil {
		return stats.Stats{}, fmt.Errorf("%s: %w", op, err)
	}
	return stats.CalculateGarden(base, plants, reminders), nil
}

// ListUsers ищет пользователей по имени и почте.
func (s *Service) ListUsers(ctx context.Context, query string) ([]models.AdminUser, error) {
	const op = "services.admin.ListUsers"

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return search.Users(users, query), nil
}

// SetUserStatus активирует или деактивирует пользователя.
func (s *Service) SetUserStatus(ctx context.Context, id string, status models.UserStatus) (models.AdminUser, error) {
	const op = "services.admin.SetUserStatus"

	u, err := s.repo.SetUserStatus(ctx, id, status)
	if err != nil {
		return models.AdminUser{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user status changed", slog.String("id", id), slog.String("status", string(status)))
	s.invalidateStats()
	return *u, nil
}

// ListFeedback ищет отзывы по автору и тексту.
func (s *Service) ListFeedback(ctx context.Context, query string) ([]models.Feedback, error) {
	const op = "services.admin.ListFeedback"

	feedback, err := s.repo.ListFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return search.Feedback(feedback, query), nil
}

// RespondFeedback отмечает отзыв как отвеченный.
func (s *Service) RespondFeedback(ctx context.Context, id string) (models.Feedback, error) {
	const op = "services.admin.RespondFeedback"

	f, err := s.repo.SetFeedbackStatus(ctx, id, models.FeedbackResponded)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("feedback responded", slog.String("id", id))
	s.invalidateStats()
	return *f, nil
}

func (s *Service) invalidateStats() {
	key := s.statsKey(s.now())
	if err := s.cache.Invalidate(key); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", key), sl.Err(err))
	}
}
