package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// RegistrationSource 注册来源
type RegistrationSource string

const (
	SourceCredential RegistrationSource = "CREDENTIAL"
	SourceGoogle     RegistrationSource = "GOOGLE"
)

type User struct {
	ID             uuid.UUID          `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string             `json:"name" gorm:"not null"`
	Email          string             `json:"email" gorm:"uniqueIndex;not null"`
	Password       string             `json:"-"`
	ProfileImage   string             `json:"profileImage"`
	Source         RegistrationSource `json:"source"`
	Active         bool               `json:"active" gorm:"default:false"`
	FollowedUsers  pq.StringArray     `json:"followedUsers" gorm:"type:text[]"`
	FollowingUsers pq.StringArray     `json:"followingUsers" gorm:"type:text[]"`
	FollowersCount int64              `json:"followersCount" gorm:"default:0"`
	FollowingCount int64              `json:"followingCount" gorm:"default:0"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt     `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// Follows 判断 u 是否已关注目标用户
func (u *User) Follows(targetID string) bool {
	for _, id := range u.FollowedUsers {
		if id == targetID {
			return true
		}
	}
	return false
}

// AddFollowed 双向维护关注集合与计数：u 关注 target
func (u *User) AddFollowed(target *User) {
	u.FollowedUsers = append(u.FollowedUsers, target.ID.String())
	target.FollowingUsers = append(target.FollowingUsers, u.ID.String())
	u.FollowingCount++
	target.FollowersCount++
}

// RemoveFollowed 双向维护关注集合与计数：u 取消关注 target
func (u *User) RemoveFollowed(target *User) {
	u.FollowedUsers = removeString(u.FollowedUsers, target.ID.String())
	target.FollowingUsers = removeString(target.FollowingUsers, u.ID.String())
	if u.FollowingCount > 0 {
		u.FollowingCount--
	}
	if target.FollowersCount > 0 {
		target.FollowersCount--
	}
}

func removeString(list []string, value string) []string {
	result := make([]string, 0, len(list))
	for _, v := range list {
		if v != value {
			result = append(result, v)
		}
	}
	return result
}
