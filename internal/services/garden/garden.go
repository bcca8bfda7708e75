// Package garden содержит бизнес-логику трекера растений: учёт растений,
// журналы ухода, напоминания и их статусы относительно текущей даты.
package garden

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/leaflog/internal/lib/datestatus"
	"github.com/magabrotheeeer/leaflog/internal/lib/search"
	"github.com/magabrotheeeer/leaflog/internal/lib/sl"
	"github.com/magabrotheeeer/leaflog/internal/lib/stats"
	"github.com/magabrotheeeer/leaflog/internal/models"
)

// WateringIntervalDays через сколько дней после полива назначается следующий.
const WateringIntervalDays = 3

// ErrEmptyName возвращается при попытке задать растению пустое имя или вид.
var ErrEmptyName = errors.New("name and type must not be empty")

// Repository определяет методы хранилища растений и напоминаний.
type Repository interface {
	CreatePlant(ctx context.Context, p models.Plant) (models.Plant, error)
	ReadPlant(ctx context.Context, id string) (*models.Plant, error)
	ListPlants(ctx context.Context) ([]models.Plant, error)
	UpdatePlant(ctx context.Context, id string, patch models.PlantPatch) (*models.Plant, error)
	AppendGrowthLog(ctx context.Context, id string, entry models.GrowthLogEntry) (*models.Plant, error)
	AppendFertilizerRecord(ctx context.Context, id string, rec models.FertilizerRecord) (*models.Plant, error)
	RemovePlant(ctx context.Context, id string) (int, error)
	CreateReminder(ctx context.Context, r models.Reminder) (models.Reminder, error)
	ListReminders(ctx context.Context) ([]models.Reminder, error)
	CompleteReminder(ctx context.Context, id string) (*models.Reminder, error)
}

// Cache описывает методы для кеширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(keys ...string) error
}

// Recorder принимает события для метрик.
type Recorder interface {
	PlantAdded()
	PlantRemoved()
	ReminderCreated()
	ReminderCompleted()
	RemindersCascaded(n int)
	CareEvent(kind string)
}

// Service реализует операции над растениями и напоминаниями.
type Service struct {
	repo    Repository
	cache   Cache
	metrics Recorder
	log     *slog.Logger
	ttl     time.Duration
	prefix  string
	now     func() time.Time
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithKeyPrefix добавляет prefix ко всем ключам кеша. Так несколько хранилищ
// могут делить один Redis, не читая записи друг друга.
func WithKeyPrefix(prefix string) Option {
	return func(s *Service) {
		s.prefix = prefix
	}
}

// NewService создаёт сервис. ttl время жизни карточки растения в кеше.
func NewService(repo Repository, cache Cache, metrics Recorder, log *slog.Logger, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
		log:     log,
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) plantKey(id string) string {
	return fmt.Sprintf("%splant:%s", s.prefix, id)
}

func trimDate(d *string) *string {
	if d == nil {
		return nil
	}
	t := strings.TrimSpace(*d)
	return &t
}

func validateDates(dates ...string) error {
	for _, d := range dates {
		if d == "" {
			continue
		}
		if _, err := datestatus.ParseDate(d); err != nil {
			return err
		}
	}
	return nil
}

// CreatePlant добавляет растение с новым идентификатором. Пустое изображение
// и стадия роста заменяются значениями по умолчанию.
func (s *Service) CreatePlant(ctx context.Context, req models.DummyPlant) (models.Plant, error) {
	const op = "services.garden.CreatePlant"

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Type) == "" {
		return models.Plant{}, fmt.Errorf("%s: %w", op, ErrEmptyName)
	}
	req.LastWatered = strings.TrimSpace(req.LastWatered)
	req.NextWatering = strings.TrimSpace(req.NextWatering)
	if err := validateDates(req.LastWatered, req.NextWatering); err != nil {
		return models.Plant{}, fmt.Errorf("%s: %w", op, err)
	}

	plant := req.ToPlant()
	if plant.Image == "" {
		plant.Image = models.DefaultPlantImage
	}
	if plant.GrowthStage == "" {
		plant.GrowthStage = models.StageSeedling
	}

	created, err := s.repo.CreatePlant(ctx, plant)
	if err != nil {
		return models.Plant{}, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.PlantAdded()
	s.log.Info("created new plant", slog.String("id", created.ID), slog.String("name", created.Name))

	s.cachePlant(created)
	return created, nil
}

// GetPlant возвращает растение со статусом полива, используя кеш или хранилище.
func (s *Service) GetPlant(ctx context.Context, id string) (models.PlantView, error) {
	const op = "services.garden.GetPlant"

	var cached models.Plant
	found, err := s.cache.Get(s.plantKey(id), &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", s.plantKey(id)), sl.Err(err))
	}
	if found {
		return s.view(cached), nil
	}

	plant, err := s.repo.ReadPlant(ctx, id)
	if err != nil {
		return models.PlantView{}, fmt.Errorf("%s: %w", op, err)
	}
	s.cachePlant(*plant)
	return s.view(*plant), nil
}

// ListPlants возвращает растения, подходящие под поисковый запрос по имени и виду.
func (s *Service) ListPlants(ctx context.Context, query string) ([]models.PlantView, error) {
	const op = "services.garden.ListPlants"

	plants, err := s.repo.ListPlants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	found := search.Plants(plants, query)
	out := make([]models.PlantView, 0, len(found))
	for _, p := range found {
		out = append(out, s.view(p))
	}
	return out, nil
}

// UpdatePlant применяет частичное обновление и сбрасывает кеш растения.
func (s *Service) UpdatePlant(ctx context.Context, id string, patch models.PlantPatch) (models.Plant, error) {
	const op = "services.garden.UpdatePlant"

	if (patch.Name != nil && strings.TrimSpace(*patch.Name) == "") ||
		(patch.Type != nil && strings.TrimSpace(*patch.Type) == "") {
		return models.Plant{}, fmt.Errorf("%s: %w", op, ErrEmptyName)
	}
	patch.LastWatered = trimDate(patch.LastWatered)
	patch.NextWatering = trimDate(patch.NextWatering)
	if err := validateDates(patch.Dates()...); err != nil {
		return models.Plant{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.UpdatePlant(ctx, id, patch)
	if err != nil {
		return models.Plant{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated plant", slog.String("id", id))
	s.invalidatePlant(id)
	return *updated, nil
}

// WaterPlant отмечает полив сегодня и назначает следующий через WateringIntervalDays.
func (s *Service) WaterPlant(ctx context.Context, id string) (models.Plant, error) {
	const op = "services.garden.WaterPlant"

	today := datestatus.Today(s.now())
	last := datestatus.Format(today)
	next := datestatus.Format(today.AddDate(0, 0, WateringIntervalDays))

	updated, err := s.repo.UpdatePlant(ctx, id, models.PlantPatch{
		LastWatered:  &last,
		NextWatering: &next,
	})
	if err != nil {
		return models.Plant{}, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.CareEvent("water")
	s.log.Info("plant watered", slog.String("id", id), slog.String("next_watering", next))
	s.invalidatePlant(id)
	return *updated, nil
}

// AddGrowthLog добавляет запись в журнал роста. Без даты берётся сегодняшняя.
func (s *Service) AddGrowthLog(ctx context.Context, id string, req models.DummyGrowthLogEntry) (models.Plant, error) {
	const op = "services.garden.AddGrowthLog"

	entry := models.GrowthLogEntry{
		Date:  s.dateOrToday(req.Date),
		Image: req.Image,
		Notes: req.Notes,
	}
	if err := validateDates(entry.Date); err != nil {
		return models.Plant{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.AppendGrowthLog(ctx, id, entry)
	if err != nil {
		return models.Plant{}, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.CareEvent("growth_log")
	s.invalidatePlant(id)
	return *updated, nil
}

// AddFertilizerRecord добавляет запись о подкормке. Без даты берётся сегодняшняя.
func (s *Service) AddFertilizerRecord(ctx context.Context, id string, req models.DummyFertilizerRecord) (models.Plant, error) {
	const op = "services.garden.AddFertilizerRecord"

	rec := models.FertilizerRecord{
		Date:     s.dateOrToday(req.Date),
		Type:     req.Type,
		Quantity: req.Quantity,
		Notes:    req.Notes,
	}
	if err := validateDates(rec.Date); err != nil {
		return models.Plant{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.repo.AppendFertilizerRecord(ctx, id, rec)
	if err != nil {
		return models.Plant{}, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.CareEvent("fertilizer")
	s.invalidatePlant(id)
	return *updated, nil
}

// RemovePlant удаляет растение вместе с его напоминаниями и возвращает
// количество удалённых напоминаний.
func (s *Service) RemovePlant(ctx context.Context, id string) (int, error) {
	const op = "services.garden.RemovePlant"

	s.invalidatePlant(id)
	removed, err := s.repo.RemovePlant(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	// GetPlant мог закешировать растение между первой инвалидацией и удалением.
	s.invalidatePlant(id)
	s.metrics.PlantRemoved()
	s.metrics.RemindersCascaded(removed)
	s.log.Info("removed plant", slog.String("id", id), slog.Int("reminders_removed", removed))
	return removed, nil
}

// CreateReminder создаёт напоминание для существующего растения.
func (s *Service) CreateReminder(ctx context.Context, req models.DummyReminder) (models.Reminder, error) {
	const op = "services.garden.CreateReminder"

	if _, err := datestatus.ParseDate(req.DueDate); err != nil {
		return models.Reminder{}, fmt.Errorf("%s: %w", op, err)
	}
	r, err := s.repo.CreateReminder(ctx, models.Reminder{
		PlantID: req.PlantID,
		Task:    strings.TrimSpace(req.Task),
		DueDate: strings.TrimSpace(req.DueDate),
	})
	if err != nil {
		return models.Reminder{}, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.ReminderCreated()
	s.log.Info("created reminder", slog.String("id", r.ID), slog.String("plant_id", r.PlantID))
	return r, nil
}

// ReminderList результат выборки напоминаний со сводкой по всем напоминаниям.
type ReminderList struct {
	Reminders []models.ReminderView `json:"reminders"`
	Summary   stats.Summary         `json:"summary"`
}

// ListReminders ищет напоминания по имени растения и задаче, фильтрует по статусу,
// сортирует по сроку и дополняет каждое статусом относительно сегодняшнего дня.
func (s *Service) ListReminders(ctx context.Context, query, status string) (ReminderList, error) {
	const op = "services.garden.ListReminders"

	reminders, err := s.repo.ListReminders(ctx)
	if err != nil {
		return ReminderList{}, fmt.Errorf("%s: %w", op, err)
	}
	now := s.now()
	found := search.SortByDue(search.Reminders(reminders, query, search.ParseStatusFilter(status)))

	views := make([]models.ReminderView, 0, len(found))
	for _, r := range found {
		views = append(views, s.reminderView(r, now))
	}
	return ReminderList{
		Reminders: views,
		Summary:   stats.ReminderSummary(reminders, now),
	}, nil
}

// CompleteReminder отмечает напоминание выполненным.
func (s *Service) CompleteReminder(ctx context.Context, id string) (models.ReminderView, error) {
	const op = "services.garden.CompleteReminder"

	r, err := s.repo.CompleteReminder(ctx, id)
	if err != nil {
		return models.ReminderView{}, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.ReminderCompleted()
	s.log.Info("completed reminder", slog.String("id", id))
	return s.reminderView(*r, s.now()), nil
}

func (s *Service) reminderView(r models.Reminder, now time.Time) models.ReminderView {
	v := models.ReminderView{Reminder: r}
	days, err := datestatus.DaysUntilDate(r.DueDate, now)
	if err != nil {
		s.log.Warn("reminder has invalid due date", slog.String("id", r.ID), sl.Err(err))
		return v
	}
	v.DaysUntil = days
	v.DueStatus = datestatus.Classify(days, string(r.Status))
	if v.DueStatus == datestatus.Completed {
		v.Label = "Completed"
	} else {
		v.Label = datestatus.Describe(days)
	}
	return v
}

func (s *Service) view(p models.Plant) models.PlantView {
	v := models.PlantView{Plant: p.Clone()}
	if p.NextWatering == "" {
		return v
	}
	days, err := datestatus.DaysUntilDate(p.NextWatering, s.now())
	if err != nil {
		s.log.Warn("plant has invalid watering date", slog.String("id", p.ID), sl.Err(err))
		return v
	}
	v.Watering = &models.WateringStatus{
		DaysUntil: days,
		Status:    datestatus.Classify(days, ""),
		Label:     datestatus.Describe(days),
	}
	return v
}

func (s *Service) dateOrToday(d string) string {
	if d = strings.TrimSpace(d); d != "" {
		return d
	}
	return datestatus.Format(datestatus.Today(s.now()))
}

func (s *Service) cachePlant(p models.Plant) {
	if err := s.cache.Set(s.plantKey(p.ID), p, s.ttl); err != nil {
		s.log.Warn("failed to cache plant", slog.String("key", s.plantKey(p.ID)), sl.Err(err))
	}
}

func (s *Service) invalidatePlant(id string) {
	if err := s.cache.Invalidate(s.plantKey(id)); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", s.plantKey(id)), sl.Err(err))
	}
}
