// Package memory реализует хранилище растений, напоминаний, пользователей
// и отзывов в памяти процесса. Storage единственный владелец коллекций:
// записи сериализуются мьютексом, наружу отдаются только копии.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/leaflog/internal/models"
	"github.com/magabrotheeeer/leaflog/internal/storage"
)

// Storage хранит коллекции в порядке добавления.
type Storage struct {
	mu        sync.RWMutex
	newID     func() string
	plants    []models.Plant
	reminders []models.Reminder
	users     []models.AdminUser
	feedback  []models.Feedback
}

// Option настраивает Storage.
type Option func(*Storage)

// WithIDGenerator заменяет генератор идентификаторов (по умолчанию UUID v4).
func WithIDGenerator(gen func() string) Option {
	return func(s *Storage) {
		s.newID = gen
	}
}

// New создаёт пустое хранилище.
func New(opts ...Option) *Storage {
	s := &Storage{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed заменяет содержимое хранилища фикстурами.
func (s *Storage) Seed(f Fixtures) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plants = make([]models.Plant, 0, len(f.Plants))
	for _, p := range f.Plants {
		s.plants = append(s.plants, p.Clone())
	}
	s.reminders = slices.Clone(f.Reminders)
	s.users = slices.Clone(f.Users)
	s.feedback = slices.Clone(f.Feedback)
}

func checkCtx(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
		return nil
	}
}

// CreatePlant присваивает растению новый идентификатор и добавляет его в конец списка.
func (s *Storage) CreatePlant(ctx context.Context, p models.Plant) (models.Plant, error) {
	const op = "storage.memory.CreatePlant"
	if err := checkCtx(ctx, op); err != nil {
		return models.Plant{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p = p.Clone()
	p.ID = s.newID()
	s.plants = append(s.plants, p)
	return p.Clone(), nil
}

// ReadPlant возвращает копию растения по ID.
func (s *Storage) ReadPlant(ctx context.Context, id string) (*models.Plant, error) {
	const op = "storage.memory.ReadPlant"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.plantIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPlantNotFound)
	}
	p := s.plants[i].Clone()
	return &p, nil
}

// ListPlants возвращает копии всех растений.
func (s *Storage) ListPlants(ctx context.Context) ([]models.Plant, error) {
	const op = "storage.memory.ListPlants"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Plant, 0, len(s.plants))
	for _, p := range s.plants {
		out = append(out, p.Clone())
	}
	return out, nil
}

// UpdatePlant применяет патч к растению. При смене имени обновляется
// денормализованное имя во всех напоминаниях этого растения.
func (s *Storage) UpdatePlant(ctx context.Context, id string, patch models.PlantPatch) (*models.Plant, error) {
	const op = "storage.memory.UpdatePlant"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.plantIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPlantNotFound)
	}
	updated := patch.Apply(s.plants[i])
	if updated.Name != s.plants[i].Name {
		for j := range s.reminders {
			if s.reminders[j].PlantID == id {
				s.reminders[j].PlantName = updated.Name
			}
		}
	}
	s.plants[i] = updated
	p := updated.Clone()
	return &p, nil
}

// AppendGrowthLog добавляет запись в журнал роста растения.
func (s *Storage) AppendGrowthLog(ctx context.Context, id string, entry models.GrowthLogEntry) (*models.Plant, error) {
	const op = "storage.memory.AppendGrowthLog"
	return s.mutatePlant(ctx, op, id, func(p *models.Plant) {
		p.GrowthLog = append(p.GrowthLog, entry)
	})
}

// AppendFertilizerRecord добавляет запись о подкормке.
func (s *Storage) AppendFertilizerRecord(ctx context.Context, id string, rec models.FertilizerRecord) (*models.Plant, error) {
	const op = "storage.memory.AppendFertilizerRecord"
	return s.mutatePlant(ctx, op, id, func(p *models.Plant) {
		p.FertilizerRecords = append(p.FertilizerRecords, rec)
	})
}

func (s *Storage) mutatePlant(ctx context.Context, op, id string, fn func(*models.Plant)) (*models.Plant, error) {
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.plantIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPlantNotFound)
	}
	p := s.plants[i].Clone()
	fn(&p)
	s.plants[i] = p
	out := p.Clone()
	return &out, nil
}

// RemovePlant удаляет растение и все его напоминания.
// Возвращает количество удалённых напоминаний.
func (s *Storage) RemovePlant(ctx context.Context, id string) (int, error) {
	const op = "storage.memory.RemovePlant"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.plantIndex(id)
	if i < 0 {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrPlantNotFound)
	}
	s.plants = slices.Delete(s.plants, i, i+1)

	before := len(s.reminders)
	s.reminders = slices.DeleteFunc(s.reminders, func(r models.Reminder) bool {
		return r.PlantID == id
	})
	return before - len(s.reminders), nil
}

// CreateReminder добавляет напоминание для существующего растения
// со статусом pending и текущим именем растения.
func (s *Storage) CreateReminder(ctx context.Context, r models.Reminder) (models.Reminder, error) {
	const op = "storage.memory.CreateReminder"
	if err := checkCtx(ctx, op); err != nil {
		return models.Reminder{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.plantIndex(r.PlantID)
	if i < 0 {
		return models.Reminder{}, fmt.Errorf("%s: %w", op, storage.ErrPlantNotFound)
	}
	r.ID = s.newID()
	r.PlantName = s.plants[i].Name
	r.Status = models.ReminderPending
	s.reminders = append(s.reminders, r)
	return r, nil
}

// ListReminders возвращает копию списка напоминаний.
func (s *Storage) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	const op = "storage.memory.ListReminders"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reminders), nil
}

// CompleteReminder отмечает напоминание выполненным. Повторный вызов ничего не меняет.
func (s *Storage) CompleteReminder(ctx context.Context, id string) (*models.Reminder, error) {
	const op = "storage.memory.CompleteReminder"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.reminders, func(r models.Reminder) bool { return r.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrReminderNotFound)
	}
	s.reminders[i].Status = models.ReminderCompleted
	r := s.reminders[i]
	return &r, nil
}

// ListUsers возвращает копию списка пользователей.
func (s *Storage) ListUsers(ctx context.Context) ([]models.AdminUser, error) {
	const op = "storage.memory.ListUsers"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users), nil
}

// SetUserStatus меняет статус пользователя.
func (s *Storage) SetUserStatus(ctx context.Context, id string, status models.UserStatus) (*models.AdminUser, error) {
	const op = "storage.memory.SetUserStatus"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.users, func(u models.AdminUser) bool { return u.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}
	s.users[i].Status = status
	u := s.users[i]
	return &u, nil
}

// ListFeedback возвращает копию списка отзывов.
func (s *Storage) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	const op = "storage.memory.ListFeedback"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.feedback), nil
}

// SetFeedbackStatus меняет статус отзыва.
func (s *Storage) SetFeedbackStatus(ctx context.Context, id string, status models.FeedbackStatus) (*models.Feedback, error) {
	const op = "storage.memory.SetFeedbackStatus"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.feedback, func(f models.Feedback) bool { return f.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrFeedbackNotFound)
	}
	s.feedback[i].Status = status
	f := s.feedback[i]
	return &f, nil
}

func (s *Storage) plantIndex(id string) int {
	return slices.IndexFunc(s.plants, func(p models.Plant) bool { return p.ID == id })
}
