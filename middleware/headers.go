package middleware

import "github.com/gin-gonic/gin"

// NoCache impede que páginas protegidas fiquem no cache do navegador depois do
// logout, e bloqueia o carregamento das páginas em frames de outros sites.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		header.Set("Pragma", "no-cache")
		header.Set("X-Frame-Options", "DENY")
		header.Set("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}
