package router

import (
	"seasoncal/internal/handlers"
	"seasoncal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	activityHandler := handlers.NewActivityHandler()

	// 游客路由 - 已登录用户访问时回首页
	guest := r.Group("/")
	guest.Use(middleware.GuestOnly())
	{
		guest.GET("/login", authHandler.ShowLogin)       // 登录页面
		guest.POST("/login", authHandler.Login)          // 提交登录
		guest.GET("/register", authHandler.ShowRegister) // 注册页面
		guest.POST("/register", authHandler.Register)    // 提交注册,成功后自动登录
	}

	// 受保护路由 (Protected Routes)
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/", activityHandler.Dashboard)               // 首页 - 月历概览
		authorized.GET("/logout", authHandler.Logout)                // 退出登录
		authorized.GET("/month/:month", activityHandler.MonthDetail) // 月份详情
		authorized.GET("/add_activity", activityHandler.ShowAdd)     // 添加活动页面
		authorized.POST("/add_activity", activityHandler.Add)        // 提交添加
		authorized.GET("/edit_activity/:id", activityHandler.ShowEdit)
		authorized.POST("/edit_activity/:id", activityHandler.Edit)
		// 删除只走 POST,页面上用确认表单触发
		authorized.POST("/delete_activity/:id", activityHandler.Delete)
	}
}
