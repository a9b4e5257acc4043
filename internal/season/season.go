// Package season 提供月份到季节的固定映射。
// 表在进程启动时就是常量,任何地方都不允许修改。
package season

// Info 某个月份对应的季节信息
type Info struct {
	Name  string // winter/spring/summer/autumn,存库用
	Label string // 界面显示名
	Color string // 界面主题色
}

var table = map[int]Info{
	1:  {Name: "winter", Label: "冬", Color: "#87CEEB"},
	2:  {Name: "winter", Label: "冬", Color: "#87CEEB"},
	3:  {Name: "spring", Label: "春", Color: "#90EE90"},
	4:  {Name: "spring", Label: "春", Color: "#90EE90"},
	5:  {Name: "spring", Label: "春", Color: "#90EE90"},
	6:  {Name: "summer", Label: "夏", Color: "#FFB6C1"},
	7:  {Name: "summer", Label: "夏", Color: "#FFB6C1"},
	8:  {Name: "summer", Label: "夏", Color: "#FFB6C1"},
	9:  {Name: "autumn", Label: "秋", Color: "#DDA0DD"},
	10: {Name: "autumn", Label: "秋", Color: "#DDA0DD"},
	11: {Name: "autumn", Label: "秋", Color: "#DDA0DD"},
	12: {Name: "winter", Label: "冬", Color: "#87CEEB"},
}

// ValidMonth 月份是否在 1-12 范围内
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// ForMonth 返回月份对应的季节信息,月份非法时 ok 为 false
func ForMonth(month int) (Info, bool) {
	info, ok := table[month]
	return info, ok
}

// NameForMonth 返回月份对应的季节名,月份非法时返回空串
func NameForMonth(month int) string {
	info, ok := table[month]
	if !ok {
		return ""
	}
	return info.Name
}
