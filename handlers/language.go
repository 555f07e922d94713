package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type NameResolver interface {
	Resolve(code string) string
}

func LanguageHandler(c *gin.Context, names NameResolver) {
	code := c.Param("code")
	c.JSON(http.StatusOK, gin.H{"code": code, "name": names.Resolve(code)})
}
