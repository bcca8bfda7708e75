// Package models содержит доменные структуры трекера растений: растения,
// записи журнала роста, подкормки, напоминания, пользователей и отзывы,
// а также структуры для приёма данных из JSON-запросов.
package models

import "github.com/magabrotheeeer/leaflog/internal/lib/datestatus"

// Стадии роста по умолчанию. Поле GrowthStage остаётся свободным текстом.
const (
	StageSeedling = "Seedling"
	StageGrowing  = "Growing"
	StageMature   = "Mature"
)

// DefaultPlantImage подставляется, если изображение не указано.
const DefaultPlantImage = "https://images.unsplash.com/photo-1596364725424-7673f05f64b1?w=300"

// Plant представляет растение пользователя.
// Пустая строка в LastWatered означает, что растение ещё не поливали,
// пустая NextWatering означает, что полив не запланирован.
type Plant struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Type              string             `json:"type"`
	Image             string             `json:"image"`
	LastWatered       string             `json:"lastWatered"`
	NextWatering      string             `json:"nextWatering"`
	GrowthStage       string             `json:"growthStage"`
	CareSchedule      CareSchedule       `json:"careSchedule"`
	GrowthLog         []GrowthLogEntry   `json:"growthLog"`
	FertilizerRecords []FertilizerRecord `json:"fertilizerRecords"`
}

// CareSchedule график ухода, все поля свободный текст.
type CareSchedule struct {
	Watering   string `json:"watering"`
	Fertilizer string `json:"fertilizer"`
	Sunlight   string `json:"sunlight"`
}

// GrowthLogEntry запись журнала роста.
type GrowthLogEntry struct {
	Date  string `json:"date"`
	Image string `json:"image,omitempty"`
	Notes string `json:"notes"`
}

// FertilizerRecord запись о подкормке.
type FertilizerRecord struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Quantity string `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// Clone возвращает копию растения, не разделяющую срезы с оригиналом.
// Пустые журналы всегда непустые срезы, чтобы в JSON был [] а не null.
func (p Plant) Clone() Plant {
	out := p
	out.GrowthLog = append(make([]GrowthLogEntry, 0, len(p.GrowthLog)), p.GrowthLog...)
	out.FertilizerRecords = append(make([]FertilizerRecord, 0, len(p.FertilizerRecords)), p.FertilizerRecords...)
	return out
}

// HasBeenWatered сообщает, был ли хотя бы один полив.
func (p Plant) HasBeenWatered() bool {
	return p.LastWatered != ""
}

// LastFertilized дата последней подкормки или пустая строка.
func (p Plant) LastFertilized() string {
	if len(p.FertilizerRecords) == 0 {
		return ""
	}
	return p.FertilizerRecords[len(p.FertilizerRecords)-1].Date
}

// PlantPatch частичное обновление растения: nil означает «не менять».
type PlantPatch struct {
	Name              *string
	Type              *string
	Image             *string
	LastWatered       *string
	NextWatering      *string
	GrowthStage       *string
	CareSchedule      *CareSchedule
	GrowthLog         *[]GrowthLogEntry
	FertilizerRecords *[]FertilizerRecord
}

// Apply возвращает растение с применёнными полями патча. ID не меняется.
func (pp PlantPatch) Apply(p Plant) Plant {
	out := p.Clone()
	if pp.Name != nil {
		out.Name = *pp.Name
	}
	if pp.Type != nil {
		out.Type = *pp.Type
	}
	if pp.Image != nil {
		out.Image = *pp.Image
	}
	if pp.LastWatered != nil {
		out.LastWatered = *pp.LastWatered
	}
	if pp.NextWatering != nil {
		out.NextWatering = *pp.NextWatering
	}
	if pp.GrowthStage != nil {
		out.GrowthStage = *pp.GrowthStage
	}
	if pp.CareSchedule != nil {
		out.CareSchedule = *pp.CareSchedule
	}
	if pp.GrowthLog != nil {
		out.GrowthLog = append([]GrowthLogEntry{}, (*pp.GrowthLog)...)
	}
	if pp.FertilizerRecords != nil {
		out.FertilizerRecords = append([]FertilizerRecord{}, (*pp.FertilizerRecords)...)
	}
	return out
}

// Dates возвращает все даты патча, которые нужно проверить на формат.
// Пустая строка допустима и означает сброс значения.
func (pp PlantPatch) Dates() []string {
	var dates []string
	if pp.LastWatered != nil && *pp.LastWatered != "" {
		dates = append(dates, *pp.LastWatered)
	}
	if pp.NextWatering != nil && *pp.NextWatering != "" {
		dates = append(dates, *pp.NextWatering)
	}
	if pp.GrowthLog != nil {
		for _, e := range *pp.GrowthLog {
			dates = append(dates, e.Date)
		}
	}
	if pp.FertilizerRecords != nil {
		for _, r := range *pp.FertilizerRecords {
			dates = append(dates, r.Date)
		}
	}
	return dates
}

// DummyPlant используется для приёма данных нового растения из JSON-запроса.
type DummyPlant struct {
	Name         string       `json:"name" validate:"required"`
	Type         string       `json:"type" validate:"required"`
	Image        string       `json:"image" validate:"omitempty"`
	LastWatered  string       `json:"lastWatered" validate:"omitempty"`
	NextWatering string       `json:"nextWatering" validate:"omitempty"`
	GrowthStage  string       `json:"growthStage" validate:"omitempty"`
	CareSchedule CareSchedule `json:"careSchedule"`
}

// ToPlant переводит запрос в растение без идентификатора.
func (d DummyPlant) ToPlant() Plant {
	return Plant{
		Name:         d.Name,
		Type:         d.Type,
		Image:        d.Image,
		LastWatered:  d.LastWatered,
		NextWatering: d.NextWatering,
		GrowthStage:  d.GrowthStage,
		CareSchedule: d.CareSchedule,
	}
}

// DummyPlantPatch частичное обновление из JSON: отсутствующее поле не меняется.
type DummyPlantPatch struct {
	Name         *string       `json:"name,omitempty"`
	Type         *string       `json:"type,omitempty"`
	Image        *string       `json:"image,omitempty"`
	LastWatered  *string       `json:"lastWatered,omitempty"`
	NextWatering *string       `json:"nextWatering,omitempty"`
	GrowthStage  *string       `json:"growthStage,omitempty"`
	CareSchedule *CareSchedule `json:"careSchedule,omitempty"`
}

// ToPatch переводит запрос в PlantPatch.
func (d DummyPlantPatch) ToPatch() PlantPatch {
	return PlantPatch{
		Name:         d.Name,
		Type:         d.Type,
		Image:        d.Image,
		LastWatered:  d.LastWatered,
		NextWatering: d.NextWatering,
		GrowthStage:  d.GrowthStage,
		CareSchedule: d.CareSchedule,
	}
}

// DummyGrowthLogEntry новая запись журнала роста. Пустая дата заменяется сегодняшней.
type DummyGrowthLogEntry struct {
	Date  string `json:"date" validate:"omitempty"`
	Image string `json:"image" validate:"omitempty"`
	Notes string `json:"notes" validate:"required"`
}

// DummyFertilizerRecord новая запись о подкормке. Пустая дата заменяется сегодняшней.
type DummyFertilizerRecord struct {
	Date     string `json:"date" validate:"omitempty"`
	Type     string `json:"type" validate:"required"`
	Quantity string `json:"quantity" validate:"required"`
	Notes    string `json:"notes" validate:"omitempty"`
}

// WateringStatus срок следующего полива относительно сегодняшнего дня.
type WateringStatus struct {
	DaysUntil int               `json:"daysUntil"`
	Status    datestatus.Status `json:"status"`
	Label     string            `json:"label"`
}

// PlantView растение со статусом полива для отображения.
// Watering равен nil, если полив не запланирован.
type PlantView struct {
	Plant
	Watering *WateringStatus `json:"watering,omitempty"`
}
