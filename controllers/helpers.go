package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func ParamID(c *gin.Context, name string) (string, bool) {
	v := strings.TrimSpace(c.Param(name))
	if v == "" {
		RespondError(c, name+" é obrigatório", http.StatusBadRequest)
		return "", false
	}
	return v, true
}
