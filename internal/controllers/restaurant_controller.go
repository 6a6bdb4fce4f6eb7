package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sukiejosh/heyfood-assesment-backend/internal/repository"
	"github.com/sukiejosh/heyfood-assesment-backend/internal/services"
	"github.com/sukiejosh/heyfood-assesment-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RestaurantController レストランに関するコントローラー
type RestaurantController struct {
	restaurantService services.RestaurantService
}

// NewRestaurantController RestaurantControllerを作成
func NewRestaurantController(restaurantService services.RestaurantService) *RestaurantController {
	return &RestaurantController{
		restaurantService: restaurantService,
	}
}

// List レストラン一覧を取得
func (c *RestaurantController) List(ctx *gin.Context) {
	// クエリパラメータを取得
	search := ctx.Query("search")
	sortBy := ctx.DefaultQuery("sortBy", "rating")
	sortOrder := ctx.DefaultQuery("sortOrder", "desc")
	page := utils.ParsePage(ctx.DefaultQuery("page", "1"))
	limit := utils.ParseLimit(ctx.DefaultQuery("limit", "20"))
	tags := parseTags(ctx.QueryArray("tags"))

	// 一覧を取得
	result, err := c.restaurantService.List(services.RestaurantListParams{
		Search: search,
		Tags:   tags,
		Sort: repository.SortOption{
			Key:       repository.SortKey(sortBy),
			Direction: repository.SortDirection(sortOrder),
		},
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "レストラン一覧の取得に失敗しました",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       result.Restaurants,
		"pagination": result.Pagination,
		"filters": gin.H{
			"search":    search,
			"tags":      tags,
			"sortBy":    sortBy,
			"sortOrder": sortOrder,
		},
	})
}

// GetByID IDでレストランを取得
func (c *RestaurantController) GetByID(ctx *gin.Context) {
	// IDを解析
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "無効なIDです",
		})
		return
	}

	// レストランを取得
	restaurant, err := c.restaurantService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "レストランが見つかりません",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "レストランの取得に失敗しました",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    restaurant,
	})
}

// parseTags tagsパラメータを解析 (繰り返し指定とカンマ区切りの両方に対応)
func parseTags(values []string) []string {
	var tags []string
	for _, value := range values {
		for _, name := range strings.Split(value, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				tags = append(tags, name)
			}
		}
	}
	return tags
}
