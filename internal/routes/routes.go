package routes

import (
	"github.com/sukiejosh/heyfood-assesment-backend/internal/config"
	"github.com/sukiejosh/heyfood-assesment-backend/internal/controllers"
	"github.com/sukiejosh/heyfood-assesment-backend/internal/middlewares"
	"github.com/sukiejosh/heyfood-assesment-backend/internal/repository"
	"github.com/sukiejosh/heyfood-assesment-backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	restaurantRepo := repository.NewRestaurantRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// サービスを作成
	restaurantService := services.NewRestaurantService(restaurantRepo, tagRepo)
	tagService := services.NewTagService(tagRepo)

	// コントローラーを作成
	restaurantController := controllers.NewRestaurantController(restaurantService)
	tagController := controllers.NewTagController(tagService)
	healthController := controllers.NewHealthController()

	// APIグループを作成
	api := r.Group("/api")
	{
		// API情報とヘルスチェック (認証不要)
		api.GET("", healthController.Info)
		api.GET("/health", healthController.Check)

		// レストランルート
		restaurants := api.Group("/restaurants")
		{
			restaurants.GET("", restaurantController.List)
			restaurants.GET("/:id", restaurantController.GetByID)
		}

		// タグルート
		tags := api.Group("/tags")
		{
			tags.GET("", tagController.List)
			tags.GET("/popular", tagController.Popular)
			tags.GET("/:id", tagController.GetByID)
		}
	}

	return r
}
