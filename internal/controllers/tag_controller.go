package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sukiejosh/heyfood-assesment-backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TagController タグに関するコントローラー
type TagController struct {
	tagService services.TagService
}

// NewTagController TagControllerを作成
func NewTagController(tagService services.TagService) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

// List 全タグをレストラン数付きで取得
func (c *TagController) List(ctx *gin.Context) {
	tags, err := c.tagService.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "タグ一覧の取得に失敗しました",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tags,
		"total":   len(tags),
	})
}

// Popular 人気タグを取得
func (c *TagController) Popular(ctx *gin.Context) {
	tags, err := c.tagService.ListPopular()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "人気タグの取得に失敗しました",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tags,
		"total":   len(tags),
	})
}

// GetByID IDでタグを取得
func (c *TagController) GetByID(ctx *gin.Context) {
	// IDを解析
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "無効なIDです",
		})
		return
	}

	// タグを取得
	tag, err := c.tagService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "タグが見つかりません",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "タグの取得に失敗しました",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tag,
	})
}
