package handlers

import (
	"seasoncal/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// 闪现消息类别,语义沿用 success/error/info 三档
var flashCategories = []string{"success", "error", "info"}

// SetFlash 写入一条一次性提示,下一次 Render 时取出并清空
func SetFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	session.Save()
}

// Render helper to inject common variables like 'current user' and flashes
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}

	// 取出并清空闪现消息
	session := sessions.Default(c)
	flashes := make(map[string][]string)
	dirty := false
	for _, category := range flashCategories {
		for _, f := range session.Flashes(category) {
			if msg, ok := f.(string); ok {
				flashes[category] = append(flashes[category], msg)
			}
			dirty = true
		}
	}
	if dirty {
		session.Save()
	}
	obj["Flashes"] = flashes

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError 通用错误页
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}
