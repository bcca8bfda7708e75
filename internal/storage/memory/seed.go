package memory

import "github.com/magabrotheeeer/leaflog/internal/models"

// Fixtures начальные данные хранилища.
type Fixtures struct {
	Plants    []models.Plant
	Reminders []models.Reminder
	Users     []models.AdminUser
	Feedback  []models.Feedback
}

// DefaultFixtures демонстрационные данные, которые загружаются при старте, если не задан disable_seed.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Plants: []models.Plant{
			{
				ID:           "1",
				Name:         "Fiddle Leaf Fig",
				Type:         "Ficus lyrata",
				Image:        models.DefaultPlantImage,
				LastWatered:  "2025-08-05",
				NextWatering: "2025-08-08",
				GrowthStage:  models.StageMature,
				CareSchedule: models.CareSchedule{
					Watering:   "Every 3 days",
					Fertilizer: "Monthly",
					Sunlight:   "Bright indirect light",
				},
				GrowthLog: []models.GrowthLogEntry{
					{Date: "2025-08-01", Image: models.DefaultPlantImage, Notes: "New growth spotted on top leaves"},
				},
				FertilizerRecords: []models.FertilizerRecord{
					{Date: "2025-07-15", Type: "Liquid fertilizer", Quantity: "10ml", Notes: "Monthly feeding"},
				},
			},
			{
				ID:           "2",
				Name:         "Snake Plant",
				Type:         "Sansevieria",
				Image:        "https://images.unsplash.com/photo-1654609678730-d241a2b2eb8d?w=300",
				LastWatered:  "2025-08-01",
				NextWatering: "2025-08-08",
				GrowthStage:  models.StageMature,
				CareSchedule: models.CareSchedule{
					Watering:   "Every 7 days",
					Fertilizer: "Bi-monthly",
					Sunlight:   "Low to bright light",
				},
			},
		},
		Reminders: []models.Reminder{
			{ID: "1", PlantID: "1", PlantName: "Fiddle Leaf Fig", Task: "Water", DueDate: "2025-08-08", Status: models.ReminderPending},
			{ID: "2", PlantID: "2", PlantName: "Snake Plant", Task: "Water", DueDate: "2025-08-08", Status: models.ReminderPending},
		},
		Users: []models.AdminUser{
			{User: models.User{ID: "1", Name: "John Doe", Email: "john@example.com"}, Status: models.UserActive, JoinDate: "2025-01-15"},
			{User: models.User{ID: "2", Name: "Jane Smith", Email: "jane@example.com"}, Status: models.UserActive, JoinDate: "2025-02-10"},
			{User: models.User{ID: "3", Name: "Bob Johnson", Email: "bob@example.com"}, Status: models.UserInactive, JoinDate: "2024-12-20"},
			{User: models.User{ID: "4", Name: "Alice Williams", Email: "alice@example.com"}, Status: models.UserActive, JoinDate: "2025-03-05"},
			{User: models.User{ID: "5", Name: "Mike Davis", Email: "mike@example.com"}, Status: models.UserActive, JoinDate: "2025-02-28"},
		},
		Feedback: []models.Feedback{
			{ID: "1", UserName: "Plant Lover", Email: "plantlover@example.com", Message: "Love the app! Could you add a feature to track fertilizer schedules?", Date: "2025-08-06", Status: models.FeedbackNew},
			{ID: "2", UserName: "Green Thumb", Email: "greenthumb@example.com", Message: "The growth tracking feature is amazing. Thank you!", Date: "2025-08-05", Status: models.FeedbackResponded},
			{ID: "3", UserName: "Garden Enthusiast", Email: "garden@example.com", Message: "Would love to see plant identification features in the future.", Date: "2025-08-04", Status: models.FeedbackNew},
			{ID: "4", UserName: "Nature Lover", Email: "nature@example.com", Message: "Great app! The reminder system is very helpful.", Date: "2025-08-03", Status: models.FeedbackResponded},
		},
	}
}
