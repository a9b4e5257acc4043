package handlers

import (
	"errors"
	"net/http"
	"strings"

	"seasoncal/internal/db"
	"seasoncal/internal/store"
	"seasoncal/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *store.UserStore
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		users: store.NewUserStore(db.DB),
	}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	confirm := c.PostForm("confirm")

	// 表单校验失败时保留用户名和邮箱,密码字段不回填
	renderErr := func(message string) {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Error":    message,
			"Username": username,
			"Email":    email,
		})
	}

	if username == "" || email == "" {
		renderErr("用户名和邮箱不能为空")
		return
	}
	if !strings.Contains(email, "@") {
		renderErr("邮箱格式不正确")
		return
	}
	if err := utils.ValidatePassword(password); err != nil {
		renderErr(err.Error())
		return
	}
	if password != confirm {
		renderErr("两次输入的密码不一致")
		return
	}

	user, err := h.users.Register(username, email, password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken), errors.Is(err, store.ErrEmailTaken):
			renderErr(err.Error())
		default:
			RenderError(c, http.StatusInternalServerError, "注册失败,请稍后再试")
		}
		return
	}

	// 注册成功直接登录
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.AddFlash("注册成功,欢迎使用!", "success")
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.users.Authenticate(username, password)
	if err != nil {
		// 不区分是用户名错还是密码错
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Error":    "用户名或密码错误",
			"Username": username,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}
