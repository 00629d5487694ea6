package routes

import (
	"net/http"

	"github.com/ankit-0705/Macrology/config"
	"github.com/ankit-0705/Macrology/controllers"
	"github.com/ankit-0705/Macrology/middlewares"
	"github.com/ankit-0705/Macrology/pkg/logger"
	"github.com/ankit-0705/Macrology/services"
	"github.com/ankit-0705/Macrology/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers and registers every route.
func SetupRouter(cfg *config.Config, db *gorm.DB, log *logger.Logger, images *utils.ImageStore) *gin.Engine {
	r := gin.Default()
	r.Use(cors())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	secret := []byte(cfg.JWT.Secret)

	authSvc := services.NewAuthService(db, secret, cfg.JWT.TokenTTL, images)
	userSvc := services.NewUserService(db, images)
	foodSvc := services.NewFoodService(db)
	macroSvc := services.NewMacroService(db)
	goalSvc := services.NewGoalService(db)

	authCtl := controllers.NewAuthController(authSvc, log)
	userCtl := controllers.NewUserController(userSvc, log)
	foodCtl := controllers.NewFoodController(foodSvc, log)
	macroCtl := controllers.NewMacroController(macroSvc, log)
	goalCtl := controllers.NewGoalController(goalSvc, log)

	api := r.Group("/api")

	user := api.Group("/user")
	{
		user.POST("/register", authCtl.Register)
		user.POST("/login", authCtl.Login)
		user.POST("/getuser", middlewares.AuthRequired(secret), userCtl.GetUser)
		user.PUT("/updateuser", middlewares.AuthRequired(secret), userCtl.UpdateUser)
	}

	macros := api.Group("/macros")
	{
		macros.GET("/search", foodCtl.Search)
		macros.POST("/add", macroCtl.Add)
		macros.GET("/logs", macroCtl.Logs)
		macros.DELETE("/logs", middlewares.AuthRequired(secret), macroCtl.DeleteMine)
		macros.DELETE("/deleteAll",
			middlewares.AuthRequired(secret),
			middlewares.AdminRequired(cfg.Admin.APIKey),
			macroCtl.DeleteAll)
	}

	goals := api.Group("/goals", middlewares.AuthRequired(secret))
	{
		goals.GET("", goalCtl.Get)
		goals.PUT("", goalCtl.Put)
		goals.GET("/progress", goalCtl.Progress)
	}

	return r
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, auth-token, admin-key")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
