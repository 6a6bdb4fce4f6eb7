package services

import (
	"github.com/sukiejosh/heyfood-assesment-backend/internal/models"
	"github.com/sukiejosh/heyfood-assesment-backend/internal/repository"
)

// popularTagLimit 人気タグの最大件数
const popularTagLimit = 10

// TagService タグに関するサービスインターフェース
type TagService interface {
	List() ([]models.Tag, error)
	ListPopular() ([]models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
}

// tagService TagServiceの実装
type tagService struct {
	tagRepo repository.TagRepository
}

// NewTagService TagServiceを作成
func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{
		tagRepo: tagRepo,
	}
}

// List 全タグをレストラン数付きで取得
func (s *tagService) List() ([]models.Tag, error) {
	tags, err := s.tagRepo.ListWithCounts()
	if err != nil {
		return nil, err
	}

	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

// ListPopular 人気タグを取得 (レストランが紐づくタグの上位のみ)
func (s *tagService) ListPopular() ([]models.Tag, error) {
	tags, err := s.tagRepo.ListPopular(popularTagLimit)
	if err != nil {
		return nil, err
	}

	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

// GetByID IDでタグを取得
func (s *tagService) GetByID(id uint) (*models.Tag, error) {
	return s.tagRepo.FindByID(id)
}
