package repository

import (
	"github.com/sukiejosh/heyfood-assesment-backend/internal/models"

	"gorm.io/gorm"
)

// RestaurantListOptions レストラン一覧の検索条件
type RestaurantListOptions struct {
	Search string
	IDs    []uint // nilの場合はIDで絞り込まない
	Sort   SortOption
	Offset int
	Limit  int
}

// RestaurantRepository レストランに関するデータベース操作を行うインターフェース
type RestaurantRepository interface {
	List(opts RestaurantListOptions) ([]models.Restaurant, int64, error)
	FindByID(id uint) (*models.Restaurant, error)
}

// restaurantRepository RestaurantRepositoryの実装
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository RestaurantRepositoryを作成
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

// List レストラン一覧を取得
func (r *restaurantRepository) List(opts RestaurantListOptions) ([]models.Restaurant, int64, error) {
	var restaurants []models.Restaurant
	var total int64

	// 公開中のレストランのみを対象にする
	query := r.db.Model(&models.Restaurant{}).Where("is_active = ?", true)

	// 店名で部分一致検索 (大文字小文字を区別しない)
	if opts.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+opts.Search+"%")
	}

	// タグ絞り込みで解決済みのIDを適用
	if opts.IDs != nil {
		query = query.Where("id IN ?", opts.IDs)
	}

	// ページング前の合計数を取得
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// データを取得 (タグは1クエリでまとめてプリロード)
	if err := query.
		Order(opts.Sort.OrderClause()).
		Offset(opts.Offset).
		Limit(opts.Limit).
		Preload("Tags").
		Find(&restaurants).Error; err != nil {
		return nil, 0, err
	}

	return restaurants, total, nil
}

// FindByID IDでレストランを検索
func (r *restaurantRepository) FindByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.Preload("Tags").First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}
