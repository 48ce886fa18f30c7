package controllers

import (
	"net/http"

	dbpkg "oficios/db"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RespondError(c *gin.Context, msg string, code int) {
	c.String(code, msg)
}

func RespondPage(c *gin.Context, name string, data any) {
	c.HTML(http.StatusOK, name, data)
}

// RespondStoreFailure registra a falha do banco e responde 500 com msg.
func RespondStoreFailure(c *gin.Context, msg string, err error) {
	zap.L().Error(msg,
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)
	RespondError(c, msg, http.StatusInternalServerError)
}

// backend devolve o banco colocado no contexto por db.SetBackendToContext.
func backend(c *gin.Context) (dbpkg.Backend, bool) {
	b := dbpkg.Instance(c)
	if b == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return nil, false
	}
	return b, true
}
