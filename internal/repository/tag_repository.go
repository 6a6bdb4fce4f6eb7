package repository

import (
	"github.com/sukiejosh/heyfood-assesment-backend/internal/models"

	"gorm.io/gorm"
)

// TagRepository タグに関するデータベース操作を行うインターフェース
type TagRepository interface {
	ListWithCounts() ([]models.Tag, error)
	ListPopular(limit int) ([]models.Tag, error)
	FindByID(id uint) (*models.Tag, error)
	FindRestaurantIDsWithAll(names []string) ([]uint, error)
}

// tagRepository TagRepositoryの実装
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository TagRepositoryを作成
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// countQuery 公開中レストラン数の集計を含むタグクエリを作成
// 可視性の条件はJOIN側に置き、該当レストランが0件のタグも残す
func (r *tagRepository) countQuery() *gorm.DB {
	return r.db.Model(&models.Tag{}).
		Select("tags.*, COUNT(DISTINCT restaurants.id) AS restaurant_count").
		Joins("LEFT JOIN restaurant_tags ON restaurant_tags.tag_id = tags.id").
		Joins("LEFT JOIN restaurants ON restaurants.id = restaurant_tags.restaurant_id AND restaurants.is_active = ?", true).
		Group("tags.id")
}

// ListWithCounts 全タグをレストラン数付きで取得
func (r *tagRepository) ListWithCounts() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.countQuery().
		Order("restaurant_count DESC, tags.name ASC").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ListPopular レストランが紐づくタグのみを人気順に取得
func (r *tagRepository) ListPopular(limit int) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.countQuery().
		Having("COUNT(DISTINCT restaurants.id) > 0").
		Order("restaurant_count DESC, tags.name ASC").
		Limit(limit).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// FindByID IDでタグをレストラン数付きで検索
func (r *tagRepository) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.countQuery().
		Where("tags.id = ?", id).
		First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindRestaurantIDsWithAll 指定された全タグを持つレストランのIDを取得
// 一致したタグ数と指定数の一致で判定する (OR条件ではなくAND条件)
func (r *tagRepository) FindRestaurantIDsWithAll(names []string) ([]uint, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var ids []uint
	if err := r.db.Model(&models.RestaurantTag{}).
		Joins("JOIN tags ON tags.id = restaurant_tags.tag_id").
		Where("tags.name IN ?", names).
		Group("restaurant_tags.restaurant_id").
		Having("COUNT(DISTINCT restaurant_tags.tag_id) = ?", len(names)).
		Pluck("restaurant_tags.restaurant_id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}
