package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Post struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID      `json:"userId" gorm:"type:uuid;not null;index"`
	Username    string         `json:"username"`
	UserProfile string         `json:"userProfile"`
	Title       string         `json:"title"`
	Description string         `json:"description" gorm:"type:text"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Video       string         `json:"video"`
	LikedBy     pq.StringArray `json:"likedBy" gorm:"type:text[]"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

type Comment struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PostID           uuid.UUID      `json:"postId" gorm:"type:uuid;not null;index"`
	Content          string         `json:"content" gorm:"type:text;not null"`
	CommentBy        string         `json:"commentBy"`
	CommentByID      string         `json:"commentById"`
	CommentByProfile string         `json:"commentByProfile"`
	Media            string         `json:"media"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// PostSnapshot 分享时固化的帖子字段，不随原帖更新
type PostSnapshot struct {
	AuthorID    string         `json:"userId"`
	AuthorName  string         `json:"username"`
	AuthorImage string         `json:"userProfile"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Video       string         `json:"video"`
}

// UserSnapshot 分享者的展示字段快照
type UserSnapshot struct {
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage"`
}

type SharePost struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PostID      uuid.UUID      `json:"postId" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID      `json:"userId" gorm:"type:uuid;not null;index"`
	Description string         `json:"description" gorm:"type:text"`
	Shared      string         `json:"shared"`
	Post        PostSnapshot   `json:"post" gorm:"embedded;embeddedPrefix:post_"`
	SharedBy    UserSnapshot   `json:"sharedBy" gorm:"embedded;embeddedPrefix:shared_by_"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Post) TableName() string {
	return "posts"
}

func (Comment) TableName() string {
	return "comments"
}

func (SharePost) TableName() string {
	return "share_posts"
}

// SnapshotOf 从原帖取分享快照
func SnapshotOf(post *Post) PostSnapshot {
	return PostSnapshot{
		AuthorID:    post.UserID.String(),
		AuthorName:  post.Username,
		AuthorImage: post.UserProfile,
		Title:       post.Title,
		Description: post.Description,
		Images:      post.Images,
		Video:       post.Video,
	}
}

// Liked 判断用户是否已点赞
func (p *Post) Liked(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike 点赞/取消点赞，返回切换后是否为点赞状态
func (p *Post) ToggleLike(userID string) bool {
	if p.Liked(userID) {
		p.LikedBy = removeString(p.LikedBy, userID)
		return false
	}
	p.LikedBy = append(p.LikedBy, userID)
	return true
}
