package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"seasoncal/internal/db"
	"seasoncal/internal/middleware"
	"seasoncal/internal/models"
	"seasoncal/internal/season"
	"seasoncal/internal/store"
	"seasoncal/internal/utils"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activities *store.ActivityStore
}

func NewActivityHandler() *ActivityHandler {
	return &ActivityHandler{
		activities: store.NewActivityStore(db.DB),
	}
}

// MonthCard 首页日历格子
type MonthCard struct {
	Month     int
	Season    season.Info
	Count     int64
	IsCurrent bool
}

// ActivityView 月份页上的一条活动,描述已渲染为安全 HTML
type ActivityView struct {
	models.Activity
	DescriptionHTML template.HTML
}

// GroupView 月份页上的一个类型分组
type GroupView struct {
	Type  string
	Label string
	Items []ActivityView
}

// MonthOption 表单里的月份下拉项
type MonthOption struct {
	Month  int
	Season season.Info
}

func monthOptions() []MonthOption {
	options := make([]MonthOption, 0, 12)
	for m := 1; m <= 12; m++ {
		info, _ := season.ForMonth(m)
		options = append(options, MonthOption{Month: m, Season: info})
	}
	return options
}

// TypeOption 表单里的活动类型选项
type TypeOption struct {
	Value string
	Label string
}

func typeOptions() []TypeOption {
	options := make([]TypeOption, 0, len(models.ActivityTypes))
	for _, t := range models.ActivityTypes {
		options = append(options, TypeOption{Value: t, Label: models.ActivityTypeLabels[t]})
	}
	return options
}

func countsCacheKey(userID uint) string {
	return fmt.Sprintf("activity:counts:%d", userID)
}

// Dashboard 首页 - 12 个月的日历概览,当前月高亮
func (h *ActivityHandler) Dashboard(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	// 月度统计带缓存,写操作时主动失效
	var counts map[int]int64
	if cached := utils.GetCache().Get(countsCacheKey(user.ID)); cached != nil {
		counts = cached.(map[int]int64)
	} else {
		var err error
		counts, err = h.activities.CountByMonth(user.ID)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "加载数据失败,请稍后再试")
			return
		}
		utils.GetCache().Set(countsCacheKey(user.ID), counts, 5*time.Minute)
	}

	currentMonth := int(time.Now().Month())
	cards := make([]MonthCard, 0, 12)
	for m := 1; m <= 12; m++ {
		info, _ := season.ForMonth(m)
		cards = append(cards, MonthCard{
			Month:     m,
			Season:    info,
			Count:     counts[m],
			IsCurrent: m == currentMonth,
		})
	}

	Render(c, http.StatusOK, "dashboard/index.html", gin.H{
		"Title":        "季节活动日历",
		"Cards":        cards,
		"CurrentMonth": currentMonth,
	})
}

// MonthDetail 月份详情页 - 按活动类型分组展示
func (h *ActivityHandler) MonthDetail(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	month := utils.StringToInt(c.Param("month"))
	if !season.ValidMonth(month) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	groups, err := h.activities.ListGrouped(user.ID, month)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "加载数据失败,请稍后再试")
		return
	}

	groupViews := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		gv := GroupView{Type: g.Type, Label: g.Label}
		for _, a := range g.Items {
			gv.Items = append(gv.Items, ActivityView{
				Activity:        a,
				DescriptionHTML: utils.RenderMarkdown(a.Description),
			})
		}
		groupViews = append(groupViews, gv)
	}

	info, _ := season.ForMonth(month)
	Render(c, http.StatusOK, "activity/month.html", gin.H{
		"Title":  fmt.Sprintf("%d月的活动", month),
		"Month":  month,
		"Season": info,
		"Groups": groupViews,
	})
}

// ShowAdd 新增活动表单,从月份页进入时预选月份
func (h *ActivityHandler) ShowAdd(c *gin.Context) {
	selected := utils.StringToInt(c.Query("month"))
	if !season.ValidMonth(selected) {
		selected = int(time.Now().Month())
	}

	Render(c, http.StatusOK, "activity/add.html", gin.H{
		"Title":         "添加活动",
		"Months":        monthOptions(),
		"Types":         typeOptions(),
		"SelectedMonth": selected,
	})
}

// Add 提交新增活动
func (h *ActivityHandler) Add(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	in := activityInputFromForm(c)

	activity, err := h.activities.Create(user.ID, in)
	if err != nil {
		if isInputError(err) {
			Render(c, http.StatusBadRequest, "activity/add.html", gin.H{
				"Title":         "添加活动",
				"Error":         err.Error(),
				"Months":        monthOptions(),
				"Types":         typeOptions(),
				"SelectedMonth": in.Month,
				"Input":         in,
			})
			return
		}
		RenderError(c, http.StatusInternalServerError, "保存失败,请稍后再试")
		return
	}

	utils.GetCache().Delete(countsCacheKey(user.ID))
	SetFlash(c, "success", "活动点子已添加!")
	c.Redirect(http.StatusFound, fmt.Sprintf("/month/%d", activity.Month))
}

// ShowEdit 编辑表单,非本人的记录一律 404
func (h *ActivityHandler) ShowEdit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.StringToUint(c.Param("id"))
	if !ok {
		RenderError(c, http.StatusNotFound, "活动不存在")
		return
	}

	activity, err := h.activities.Get(user.ID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "活动不存在")
			return
		}
		RenderError(c, http.StatusInternalServerError, "加载数据失败,请稍后再试")
		return
	}

	Render(c, http.StatusOK, "activity/edit.html", gin.H{
		"Title":    "编辑活动",
		"Activity": activity,
		"Months":   monthOptions(),
		"Types":    typeOptions(),
	})
}

// Edit 提交更新,季节按新月份重新推导
func (h *ActivityHandler) Edit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.StringToUint(c.Param("id"))
	if !ok {
		RenderError(c, http.StatusNotFound, "活动不存在")
		return
	}

	in := activityInputFromForm(c)
	activity, err := h.activities.Update(user.ID, id, in)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			RenderError(c, http.StatusNotFound, "活动不存在")
		case isInputError(err):
			// 重新加载原记录供表单回显
			current, getErr := h.activities.Get(user.ID, id)
			if getErr != nil {
				RenderError(c, http.StatusNotFound, "活动不存在")
				return
			}
			Render(c, http.StatusBadRequest, "activity/edit.html", gin.H{
				"Title":    "编辑活动",
				"Error":    err.Error(),
				"Activity": current,
				"Months":   monthOptions(),
				"Types":    typeOptions(),
			})
		default:
			RenderError(c, http.StatusInternalServerError, "保存失败,请稍后再试")
		}
		return
	}

	utils.GetCache().Delete(countsCacheKey(user.ID))
	SetFlash(c, "success", "活动点子已更新!")
	c.Redirect(http.StatusFound, fmt.Sprintf("/month/%d", activity.Month))
}

// Delete 删除活动。只接受 POST,归属隐藏契约同编辑。
func (h *ActivityHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	id, ok := utils.StringToUint(c.Param("id"))
	if !ok {
		RenderError(c, http.StatusNotFound, "活动不存在")
		return
	}

	// 先查出月份用于删除后跳转
	activity, err := h.activities.Get(user.ID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "活动不存在")
			return
		}
		RenderError(c, http.StatusInternalServerError, "加载数据失败,请稍后再试")
		return
	}

	if err := h.activities.Delete(user.ID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RenderError(c, http.StatusNotFound, "活动不存在")
			return
		}
		RenderError(c, http.StatusInternalServerError, "删除失败,请稍后再试")
		return
	}

	utils.GetCache().Delete(countsCacheKey(user.ID))
	SetFlash(c, "info", "活动点子已删除")
	c.Redirect(http.StatusFound, fmt.Sprintf("/month/%d", activity.Month))
}

func activityInputFromForm(c *gin.Context) store.ActivityInput {
	return store.ActivityInput{
		Month:        utils.StringToInt(c.PostForm("month")),
		ActivityType: c.PostForm("activity_type"),
		Category:     c.PostForm("category"),
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
	}
}

func isInputError(err error) bool {
	return errors.Is(err, store.ErrInvalidMonth) ||
		errors.Is(err, store.ErrInvalidType) ||
		errors.Is(err, store.ErrEmptyTitle)
}
