package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes wires every API route onto the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(h.Authenticate())

	api := r.Group("/api")
	{
		api.GET("/properties", h.ListProperties)
		api.GET("/properties/:id", h.GetProperty)
		api.GET("/facets", h.GetFacets)
		api.GET("/search", h.SearchProperties)

		api.POST("/set-language", h.SetLanguage)
		api.GET("/set-language", h.SetLanguage)

		api.POST("/auth/register", h.RateLimit(), h.Register)
		api.POST("/auth/login", h.RateLimit(), h.Login)
		api.POST("/auth/logout", h.Logout)

		authed := api.Group("", RequireAuth())
		{
			authed.POST("/properties", h.CreateProperty)
			authed.PUT("/properties/:id", h.UpdateProperty)
			authed.DELETE("/properties/:id", h.DeleteProperty)

			authed.GET("/profile", h.GetProfile)
			authed.PUT("/profile", h.UpdateProfile)
		}

		admin := api.Group("/admin", RequireAdmin())
		{
			admin.GET("/stats", h.GetStats)
			admin.POST("/reindex", h.TriggerReindex)
		}
	}
}
