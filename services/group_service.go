package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/shra1-honade/protein-calorie-tracker/models"
	"github.com/shra1-honade/protein-calorie-tracker/utils"
)

const inviteCodeLength = 8

type GroupService struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

type GroupSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	InviteCode  string `json:"invite_code"`
	MemberCount int64  `json:"member_count"`
	CreatedBy   uint   `json:"created_by"`
}

// Create allocates an invite code and inserts the group together with the
// creator's membership in one transaction, so a group never exists without
// its creator as a member.
func (s *GroupService) Create(userID uint, name string) (*GroupSummary, error) {
	group := models.Group{
		Name:       name,
		InviteCode: utils.GenerateInviteCode(inviteCodeLength),
		CreatedBy:  userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		return tx.Create(&models.GroupMember{GroupID: group.ID, UserID: userID}).Error
	})
	if err != nil {
		return nil, err
	}

	return &GroupSummary{
		ID:          group.ID,
		Name:        group.Name,
		InviteCode:  group.InviteCode,
		MemberCount: 1,
		CreatedBy:   userID,
	}, nil
}

// Join resolves a group by invite code and adds the caller if absent.
// Losing a concurrent duplicate-join race is treated as success.
func (s *GroupService) Join(userID uint, inviteCode string) (*GroupSummary, error) {
	var group models.Group
	err := s.db.Where("invite_code = ?", inviteCode).First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}

	var existing int64
	if err := s.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", group.ID, userID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing == 0 {
		err := s.db.Create(&models.GroupMember{GroupID: group.ID, UserID: userID}).Error
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}

	var count int64
	if err := s.db.Model(&models.GroupMember{}).
		Where("group_id = ?", group.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}

	return &GroupSummary{
		ID:          group.ID,
		Name:        group.Name,
		InviteCode:  group.InviteCode,
		MemberCount: count,
		CreatedBy:   group.CreatedBy,
	}, nil
}

// ListForUser returns the caller's groups with member counts, newest first.
func (s *GroupService) ListForUser(userID uint) ([]GroupSummary, error) {
	var rows []GroupSummary
	err := s.db.
		Table("groups g").
		Select("g.id, g.name, g.invite_code, g.created_by, COUNT(gm2.id) AS member_count").
		Joins("JOIN group_members gm ON gm.group_id = g.id AND gm.user_id = ?", userID).
		Joins("JOIN group_members gm2 ON gm2.group_id = g.id").
		Where("g.deleted_at IS NULL").
		Group("g.id, g.name, g.invite_code, g.created_by, g.created_at").
		Order("g.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

type LeaderboardEntry struct {
	UserID       uint    `json:"user_id"`
	DisplayName  string  `json:"display_name"`
	AvatarURL    string  `json:"avatar_url"`
	TotalProtein float64 `json:"total_protein"`
	Rank         int     `json:"rank"`
}

// Leaderboard ranks every member of the group by summed protein over the
// window ("daily" = the reference date, "weekly" = the 7 days ending there),
// descending, ties broken by ascending user id. Members with nothing logged
// appear with zero.
func (s *GroupService) Leaderboard(groupID, userID uint, period string, today time.Time) ([]LeaderboardEntry, error) {
	var member int64
	if err := s.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&member).Error; err != nil {
		return nil, err
	}
	if member == 0 {
		return nil, ErrNotGroupMember
	}

	start := today
	if period == "weekly" {
		start = today.AddDate(0, 0, -6)
	}

	var rows []LeaderboardEntry
	err := s.db.
		Table("group_members gm").
		Select("u.id AS user_id, u.display_name, u.avatar_url, COALESCE(SUM(fe.protein_g), 0) AS total_protein").
		Joins("JOIN users u ON u.id = gm.user_id").
		Joins("LEFT JOIN food_entries fe ON fe.user_id = u.id AND fe.deleted_at IS NULL AND DATE(fe.logged_at) BETWEEN ? AND ?",
			start.Format("2006-01-02"), today.Format("2006-01-02")).
		Where("gm.group_id = ?", groupID).
		Group("u.id, u.display_name, u.avatar_url").
		Order("total_protein DESC, u.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].TotalProtein = round1(rows[i].TotalProtein)
		rows[i].Rank = i + 1
	}
	return rows, nil
}
