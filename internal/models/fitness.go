package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealPlan struct {
	ID          uuid.UUID      `json:"mealPlanId" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID      `json:"userId" gorm:"type:uuid;not null;index"`
	Username    string         `json:"username"`
	UserProfile string         `json:"userProfile"`
	MealType    string         `json:"mealType"`
	MealName    string         `json:"mealName"`
	Protein     int            `json:"protein"`
	Fats        int            `json:"fats"`
	Carbs       int            `json:"carbs"`
	Calories    int            `json:"calories"`
	Description string         `json:"description" gorm:"type:text"`
	Date        string         `json:"date"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

type WorkoutPlan struct {
	ID              uuid.UUID      `json:"workoutPlanId" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID      `json:"userId" gorm:"type:uuid;not null;index"`
	Username        string         `json:"username"`
	UserProfile     string         `json:"userProfile"`
	WorkoutPlanName string         `json:"workoutPlanName"`
	Routine         string         `json:"routine"`
	Exercises       string         `json:"exercises"`
	Sets            int            `json:"sets"`
	Repetitions     int            `json:"repetitions"`
	Description     string         `json:"description" gorm:"type:text"`
	Date            string         `json:"date"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

type WorkoutStatus struct {
	ID          uuid.UUID      `json:"statusId" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID      `json:"userId" gorm:"type:uuid;not null;index"`
	Username    string         `json:"username"`
	UserProfile string         `json:"userProfile"`
	Distance    float64        `json:"distance"`
	PushUps     int            `json:"pushUps"`
	Weight      float64        `json:"weight"`
	Description string         `json:"description" gorm:"type:text"`
	Date        string         `json:"date"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (MealPlan) TableName() string {
	return "meal_plans"
}

func (WorkoutPlan) TableName() string {
	return "workout_plans"
}

func (WorkoutStatus) TableName() string {
	return "workout_statuses"
}

// OwnedLog 是三类健身记录的公共行为：归属用户快照与主键回写。
// 三个实体的增删改查形态完全一致，服务层用同一份泛型实现。
type OwnedLog interface {
	LogID() uuid.UUID
	OwnerID() uuid.UUID
	Stamp(owner *User)
	ForceID(id uuid.UUID)
}

func (m *MealPlan) LogID() uuid.UUID { return m.ID }

func (m *MealPlan) OwnerID() uuid.UUID { return m.UserID }

func (m *MealPlan) Stamp(owner *User) {
	m.UserID = owner.ID
	m.Username = owner.Name
	m.UserProfile = owner.ProfileImage
}

func (m *MealPlan) ForceID(id uuid.UUID) { m.ID = id }

func (w *WorkoutPlan) LogID() uuid.UUID { return w.ID }

func (w *WorkoutPlan) OwnerID() uuid.UUID { return w.UserID }

func (w *WorkoutPlan) Stamp(owner *User) {
	w.UserID = owner.ID
	w.Username = owner.Name
	w.UserProfile = owner.ProfileImage
}

func (w *WorkoutPlan) ForceID(id uuid.UUID) { w.ID = id }

func (s *WorkoutStatus) LogID() uuid.UUID { return s.ID }

func (s *WorkoutStatus) OwnerID() uuid.UUID { return s.UserID }

func (s *WorkoutStatus) Stamp(owner *User) {
	s.UserID = owner.ID
	s.Username = owner.Name
	s.UserProfile = owner.ProfileImage
}

func (s *WorkoutStatus) ForceID(id uuid.UUID) { s.ID = id }
