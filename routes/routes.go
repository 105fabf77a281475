package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-inventory/controllers"
	"hotel-inventory/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	rcc *controllers.RoomConfigurationController,
	cc *controllers.CatalogController,
	uc *controllers.UserController,
	rc *controllers.RoleController,
	db *gorm.DB,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.GET("/me", middleware.RequireAuth(db), ac.Me)
		}

		// Catalogs are readable without a token; writes are admin-only.
		api.GET("/room-types", cc.ListRoomTypes)
		api.GET("/room-types/:id", cc.ShowRoomType)
		api.GET("/accommodations", cc.ListAccommodations)
		api.GET("/accommodations/:id", cc.ShowAccommodation)
		api.GET("/cities", cc.ListCities)

		catalogAdmin := api.Group("", middleware.RequireAuth(db), middleware.RequireAdmin())
		{
			catalogAdmin.POST("/room-types", cc.StoreRoomType)
			catalogAdmin.PUT("/room-types/:id", cc.UpdateRoomType)
			catalogAdmin.DELETE("/room-types/:id", cc.DestroyRoomType)
			catalogAdmin.POST("/accommodations", cc.StoreAccommodation)
			catalogAdmin.PUT("/accommodations/:id", cc.UpdateAccommodation)
			catalogAdmin.DELETE("/accommodations/:id", cc.DestroyAccommodation)
		}

		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.Index)
			hotels.GET("/:id", hc.Show)
			hotels.GET("/:id/rooms", rcc.Index)

			authed := hotels.Group("", middleware.RequireAuth(db))
			{
				authed.POST("", hc.Store)
				authed.PUT("/:id", hc.Update)
				authed.DELETE("/:id", hc.Destroy)
				authed.POST("/:id/rooms", rcc.Store)
			}
		}

		rooms := api.Group("/rooms", middleware.RequireAuth(db))
		{
			rooms.PUT("/:id", rcc.Update)
			rooms.DELETE("/:id", rcc.Destroy)
		}

		users := api.Group("/users", middleware.RequireAuth(db))
		{
			users.GET("", uc.Index)
			users.GET("/:id", uc.Show)
			users.PUT("/:id", uc.Update)
			users.POST("/:id/role", uc.AssignRole)
			users.DELETE("/:id", uc.Destroy)
		}

		roles := api.Group("/roles", middleware.RequireAuth(db))
		{
			roles.GET("", rc.Index)
			roles.POST("", middleware.RequireAdmin(), rc.Store)
		}
	}

	return r
}
