package router

import (
	"net/http"

	"oficios/session"

	"github.com/gin-gonic/gin"
)

// Autenticado bloqueia as rotas protegidas: sem sessão autenticada, redireciona para o login.
func Autenticado() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Default(c).Autenticado() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
