package db

import (
	"github.com/gin-gonic/gin"
)

const backendKey = "backend"

// Use este middleware no setup do gin
func SetBackendToContext(b Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(backendKey, b)
		c.Next()
	}
}

func Instance(c *gin.Context) Backend {
	v, ok := c.Get(backendKey)
	if !ok {
		return nil
	}
	b, _ := v.(Backend)
	return b
}
