package models

import (
	"time"
)

// Restaurant レストランモデル
type Restaurant struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Slug         string    `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	Description  string    `json:"description"`
	Image        string    `json:"image" gorm:"size:255"`
	Rating       float64   `json:"rating" gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount  int       `json:"review_count" gorm:"not null;default:0"`
	DeliveryTime string    `json:"delivery_time" gorm:"size:50"`
	DeliveryFee  *float64  `json:"delivery_fee" gorm:"type:decimal(10,2)"`
	MinimumOrder *float64  `json:"minimum_order" gorm:"type:decimal(10,2)"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	IsOpen       bool      `json:"is_open" gorm:"not null;default:true"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone" gorm:"size:20"`
	Email        string    `json:"email" gorm:"size:100"`
	OpeningTime  string    `json:"opening_time" gorm:"size:10"`
	ClosingTime  string    `json:"closing_time" gorm:"size:10"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// リレーション
	Tags []Tag `json:"-" gorm:"many2many:restaurant_tags;"`

	// タグ名一覧 (JSONレスポンス用)
	TagNames []string `json:"tags" gorm:"-"`
}

// IsVisible 一覧やランキングに表示してよいかどうか
// リポジトリ側のis_active条件と同じ規則 (変更する場合は両方を合わせること)
func (r *Restaurant) IsVisible() bool {
	return r.IsActive
}

// Tag タグモデル
type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Slug      string    `json:"slug" gorm:"size:50;uniqueIndex;not null"`
	Icon      string    `json:"icon" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// リレーション
	Restaurants []Restaurant `json:"-" gorm:"many2many:restaurant_tags;"`

	// 紐づく公開中レストラン数 (集計クエリで読み取り)
	RestaurantCount int64 `json:"restaurant_count" gorm:"->;-:migration"`
}

// RestaurantTag レストランとタグの中間テーブル
type RestaurantTag struct {
	RestaurantID uint `gorm:"primaryKey"`
	TagID        uint `gorm:"primaryKey"`
	CreatedAt    time.Time
}

// TableName テーブル名指定
func (RestaurantTag) TableName() string {
	return "restaurant_tags"
}
