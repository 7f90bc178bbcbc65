package models

import (
    "time"

    "gorm.io/gorm"
)

type Group struct {
    ID        uint           `gorm:"primaryKey" json:"id"`
    CreatedAt time.Time      `json:"created_at"`
    UpdatedAt time.Time      `json:"updated_at"`
    DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

    Name       string `gorm:"not null" json:"name"`
    InviteCode string `gorm:"uniqueIndex;not null" json:"invite_code"`
    CreatedBy  uint   `gorm:"not null" json:"created_by"`
}

// GroupMember links a user to a group. The composite unique index is what
// makes concurrent duplicate joins collapse into a single membership.
type GroupMember struct {
    ID       uint      `gorm:"primaryKey" json:"id"`
    GroupID  uint      `gorm:"uniqueIndex:idx_group_members_group_user;not null" json:"group_id"`
    UserID   uint      `gorm:"uniqueIndex:idx_group_members_group_user;not null" json:"user_id"`
    JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}
