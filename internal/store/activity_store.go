package store

import (
	"errors"

	"seasoncal/internal/models"
	"seasoncal/internal/season"

	"gorm.io/gorm"
)

// TypeGroup 月份页上的一个活动类型分组
type TypeGroup struct {
	Type  string
	Label string
	Items []models.Activity
}

// ActivityInput 创建/更新活动的表单字段
type ActivityInput struct {
	Month        int
	ActivityType string
	Category     string
	Title        string
	Description  string
}

func (in ActivityInput) validate() error {
	if !season.ValidMonth(in.Month) {
		return ErrInvalidMonth
	}
	if !models.IsValidActivityType(in.ActivityType) {
		return ErrInvalidType
	}
	if in.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

type ActivityStore struct {
	db *gorm.DB
}

func NewActivityStore(db *gorm.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

// Create 新建活动。季节永远由月份表推导,不信任表单里的值。
func (s *ActivityStore) Create(userID uint, in ActivityInput) (*models.Activity, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	activity := models.Activity{
		UserID:       userID,
		Month:        in.Month,
		Season:       season.NameForMonth(in.Month),
		ActivityType: in.ActivityType,
		Category:     in.Category,
		Title:        in.Title,
		Description:  in.Description,
	}

	if err := s.db.Create(&activity).Error; err != nil {
		return nil, err
	}

	return &activity, nil
}

// Get 查找当前用户的一条活动。
// 记录不存在和记录属于别人返回同一个 ErrNotFound。
func (s *ActivityStore) Get(userID, id uint) (*models.Activity, error) {
	var activity models.Activity
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

// Update 整体更新一条活动,先按归属查找再写入,季节重新推导。
func (s *ActivityStore) Update(userID, id uint, in ActivityInput) (*models.Activity, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	activity, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	activity.Month = in.Month
	activity.Season = season.NameForMonth(in.Month)
	activity.ActivityType = in.ActivityType
	activity.Category = in.Category
	activity.Title = in.Title
	activity.Description = in.Description

	if err := s.db.Save(activity).Error; err != nil {
		return nil, err
	}

	return activity, nil
}

// Delete 删除当前用户的一条活动,归属隐藏契约同 Get
func (s *ActivityStore) Delete(userID, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Activity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListGrouped 按活动类型分组返回某用户某月的活动,四个分组顺序固定。
// 历史数据里未识别的类型不参与展示,新写入已被枚举校验挡住。
func (s *ActivityStore) ListGrouped(userID uint, month int) ([]TypeGroup, error) {
	var activities []models.Activity
	err := s.db.Where("user_id = ? AND month = ?", userID, month).
		Order("created_at ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}

	byType := make(map[string][]models.Activity)
	for _, a := range activities {
		byType[a.ActivityType] = append(byType[a.ActivityType], a)
	}

	groups := make([]TypeGroup, 0, len(models.ActivityTypes))
	for _, t := range models.ActivityTypes {
		groups = append(groups, TypeGroup{
			Type:  t,
			Label: models.ActivityTypeLabels[t],
			Items: byType[t],
		})
	}

	return groups, nil
}

// CountByMonth 返回某用户 12 个月各自的活动数,空月补零
func (s *ActivityStore) CountByMonth(userID uint) (map[int]int64, error) {
	type countRow struct {
		Month int
		Count int64
	}
	var rows []countRow
	err := s.db.Model(&models.Activity{}).
		Select("month, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, 12)
	for m := 1; m <= 12; m++ {
		counts[m] = 0
	}
	for _, r := range rows {
		counts[r.Month] = r.Count
	}

	return counts, nil
}
