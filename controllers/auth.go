package controllers

import (
	"errors"
	"net/http"
	"strings"

	dbpkg "oficios/db"
	"oficios/session"
	"oficios/tools"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgLoginInvalido = "Usuário ou senha inválidos"

type LoginRequest struct {
	Email string `form:"email"`
	Senha string `form:"senha"`
}

// GET /
// Com autoLogin a visita autentica a sessão direto, sem credenciais.
func Raiz(autoLogin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !autoLogin {
			RespondPage(c, "form.html", gin.H{})
			return
		}
		if err := session.Default(c).Autenticar(); err != nil {
			RespondStoreFailure(c, "Erro ao fazer login", err)
			return
		}
		c.Redirect(http.StatusFound, "/home")
	}
}

// GET /form
func FormLogin(c *gin.Context) {
	RespondPage(c, "form.html", gin.H{})
}

// POST /login
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		loginFailed(c, req.Email, http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Senha == "" {
		loginFailed(c, req.Email, http.StatusUnauthorized)
		return
	}

	b, ok := backend(c)
	if !ok {
		return
	}

	login, err := b.FindLogin(c.Request.Context(), req.Email)
	if errors.Is(err, dbpkg.ErrNotFound) {
		zap.L().Info("Usuário ou senha inválidos", zap.String("email", req.Email))
		loginFailed(c, req.Email, http.StatusUnauthorized)
		return
	}
	if err != nil {
		RespondStoreFailure(c, "Erro ao fazer login", err)
		return
	}
	if !tools.ComparePassword(login.Senha, req.Senha) {
		zap.L().Info("Usuário ou senha inválidos", zap.String("email", req.Email))
		loginFailed(c, req.Email, http.StatusUnauthorized)
		return
	}

	if err := session.Default(c).Autenticar(); err != nil {
		RespondStoreFailure(c, "Erro ao fazer login", err)
		return
	}
	c.Redirect(http.StatusFound, "/home")
}

func loginFailed(c *gin.Context, email string, code int) {
	c.HTML(code, "form.html", gin.H{"erro": msgLoginInvalido, "email": email})
}

// GET /logout
func Logout(c *gin.Context) {
	if err := session.Default(c).Destruir(); err != nil {
		zap.L().Warn("falha ao destruir sessão", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/")
}
