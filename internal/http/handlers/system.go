package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// GET /health
func (h Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": h.Service})
}

// Routes lists the routes registered on r.
func Routes(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		out := make([]gin.H, 0, len(routes))
		for _, rt := range routes {
			out = append(out, gin.H{
				"method": rt.Method,
				"path":   rt.Path,
			})
		}
		sort.Slice(out, func(i, j int) bool {
			pi, pj := out[i]["path"].(string), out[j]["path"].(string)
			if pi != pj {
				return pi < pj
			}
			return out[i]["method"].(string) < out[j]["method"].(string)
		})
		c.JSON(http.StatusOK, gin.H{"routes": out})
	}
}

func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":  "route not found",
		"detail": "Not Found",
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	})
}

func NoMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"error":  "method not allowed",
		"detail": "Method Not Allowed",
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	})
}
