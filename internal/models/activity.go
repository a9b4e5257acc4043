package models

import (
	"time"
)

// 活动类型(同伴类型)为封闭枚举,写入时校验
const (
	ActivityTypeAlone   = "alone"   // 独自
	ActivityTypeFriends = "friends" // 朋友
	ActivityTypeFamily  = "family"  // 家人
	ActivityTypeElderly = "elderly" // 长辈
)

// ActivityTypes 固定展示顺序
var ActivityTypes = []string{
	ActivityTypeAlone,
	ActivityTypeFriends,
	ActivityTypeFamily,
	ActivityTypeElderly,
}

// ActivityTypeLabels 界面显示名
var ActivityTypeLabels = map[string]string{
	ActivityTypeAlone:   "独自",
	ActivityTypeFriends: "朋友",
	ActivityTypeFamily:  "家人",
	ActivityTypeElderly: "长辈",
}

// IsValidActivityType 检查是否为合法的活动类型
func IsValidActivityType(t string) bool {
	for _, v := range ActivityTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Activity 季节活动点子 - 每条记录归属唯一用户
type Activity struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Month        int       `gorm:"not null" json:"month"`                    // 1-12
	Season       string    `gorm:"size:20;not null" json:"season"`           // 由 Month 推导,不信任输入
	ActivityType string    `gorm:"size:50;not null" json:"activity_type"`    // alone/friends/family/elderly
	Category     string    `gorm:"size:50;not null" json:"category"`         // 外出、家、食事 等自由短文本
	Title        string    `gorm:"size:100;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
