package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel mirrors the 'messages' table. Messages carry no foreign key to users.
type MessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Description string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
