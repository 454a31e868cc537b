package catalog

import "time"

// Class types match the values stored in gym_classes.class_type.
const (
	ClassTypePersonal  = "PERSONAL"
	ClassTypeGroup     = "GROUP"
	ClassTypeYoga      = "YOGA"
	ClassTypeStrength  = "STRENGTH"
	ClassTypeCardio    = "CARDIO"
	ClassTypeNutrition = "NUTRITION"
)

func ValidClassType(classType string) bool {
	switch classType {
	case ClassTypePersonal, ClassTypeGroup, ClassTypeYoga, ClassTypeStrength, ClassTypeCardio, ClassTypeNutrition:
		return true
	}
	return false
}

type GymClass struct {
	ID              int       `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	ClassType       string    `db:"class_type" json:"class_type"`
	Description     string    `db:"description" json:"description"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	MaxParticipants int       `db:"max_participants" json:"max_participants"`
	Instructor      string    `db:"instructor" json:"instructor"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type TimeSlot struct {
	ID             int       `db:"id" json:"id"`
	GymClassID     int       `db:"gym_class_id" json:"gym_class"`
	StartTime      time.Time `db:"start_time" json:"start_time"`
	EndTime        time.Time `db:"end_time" json:"end_time"`
	AvailableSpots int       `db:"available_spots" json:"available_spots"`
	IsAvailable    bool      `db:"is_available" json:"is_available"`
}

// TimeSlotWithClass is a slot joined with the class fields the API and the
// reservation engine need in one read.
type TimeSlotWithClass struct {
	TimeSlot
	ClassName       string `db:"class_name" json:"class_name"`
	ClassType       string `db:"class_type" json:"class_type"`
	Instructor      string `db:"instructor" json:"instructor"`
	DurationMinutes int    `db:"duration_minutes" json:"duration_minutes"`
	MaxParticipants int    `db:"max_participants" json:"max_participants"`
	ClassIsActive   bool   `db:"class_is_active" json:"-"`
}

type CreateClassRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	ClassType       string `json:"class_type" binding:"required"`
	Description     string `json:"description" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	MaxParticipants int    `json:"max_participants" binding:"required,min=1"`
	Instructor      string `json:"instructor" binding:"required,max=100"`
}

type CreateTimeSlotRequest struct {
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	AvailableSpots int    `json:"available_spots" binding:"required,min=1"`
}
