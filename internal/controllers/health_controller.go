package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController ヘルスチェックに関するコントローラー
type HealthController struct {
	startTime time.Time
}

// NewHealthController HealthControllerを作成
func NewHealthController() *HealthController {
	return &HealthController{
		startTime: time.Now(),
	}
}

// HealthStatus ヘルスステータスレスポンス
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// Check ヘルスチェック
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &HealthStatus{
		Status:    "OK",
		Message:   "HeyFood Backend API is running",
		Uptime:    time.Since(c.startTime).String(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Info APIのエンドポイント一覧を取得
func (c *HealthController) Info(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "HeyFood API v1.0",
		"version": "1.0.0",
		"endpoints": gin.H{
			"restaurants": "/api/restaurants",
			"tags":        "/api/tags",
			"health":      "/api/health",
		},
	})
}
