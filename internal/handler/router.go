package handler

import (
	"github.com/gin-gonic/gin"

	"journal/internal/middleware"
)

type RouterDeps struct {
	Auth      *AuthHandler
	Entries   *EntryHandler
	JWTSecret []byte
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/auth/sign-up", deps.Auth.SignUp)
	api.POST("/auth/sign-in", deps.Auth.SignIn)

	authGroup := api.Group("")
	authGroup.Use(middleware.JWTAuth(deps.JWTSecret))
	authGroup.GET("/entries", deps.Entries.List)
	authGroup.GET("/entries/:entryId", deps.Entries.Get)
	authGroup.POST("/entries", deps.Entries.Create)
	authGroup.PUT("/entries/:entryId", deps.Entries.Update)
	authGroup.DELETE("/entries/:entryId", deps.Entries.Delete)
}
