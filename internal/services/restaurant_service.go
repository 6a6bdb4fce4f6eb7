package services

import (
	"github.com/sukiejosh/heyfood-assesment-backend/internal/models"
	"github.com/sukiejosh/heyfood-assesment-backend/internal/repository"
	"github.com/sukiejosh/heyfood-assesment-backend/internal/utils"
)

// RestaurantListParams レストラン一覧の取得条件
type RestaurantListParams struct {
	Search string
	Tags   []string
	Sort   repository.SortOption
	Page   int
	Limit  int
}

// RestaurantListResult レストラン一覧の取得結果
type RestaurantListResult struct {
	Restaurants []models.Restaurant
	Pagination  utils.Pagination
}

// RestaurantService レストランに関するサービスインターフェース
type RestaurantService interface {
	List(params RestaurantListParams) (*RestaurantListResult, error)
	GetByID(id uint) (*models.Restaurant, error)
}

// restaurantService RestaurantServiceの実装
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	tagRepo        repository.TagRepository
}

// NewRestaurantService RestaurantServiceを作成
func NewRestaurantService(restaurantRepo repository.RestaurantRepository, tagRepo repository.TagRepository) RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		tagRepo:        tagRepo,
	}
}

// List レストラン一覧を取得
func (s *restaurantService) List(params RestaurantListParams) (*RestaurantListResult, error) {
	// タグ指定があれば、指定された全タグを持つレストランIDを先に解決
	var ids []uint
	if len(params.Tags) > 0 {
		resolved, err := s.tagRepo.FindRestaurantIDsWithAll(uniqueNames(params.Tags))
		if err != nil {
			return nil, err
		}

		// 該当がなければ以降のクエリを実行せずに空ページを返す
		if len(resolved) == 0 {
			return &RestaurantListResult{
				Restaurants: []models.Restaurant{},
				Pagination:  utils.NewPagination(params.Page, params.Limit, 0),
			}, nil
		}
		ids = resolved
	}

	offset := (params.Page - 1) * params.Limit

	restaurants, total, err := s.restaurantRepo.List(repository.RestaurantListOptions{
		Search: params.Search,
		IDs:    ids,
		Sort:   params.Sort,
		Offset: offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return nil, err
	}

	// タグ名を各レストランに載せる
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	for i := range restaurants {
		restaurants[i].TagNames = tagNamesOf(&restaurants[i])
	}

	return &RestaurantListResult{
		Restaurants: restaurants,
		Pagination:  utils.NewPagination(params.Page, params.Limit, total),
	}, nil
}

// GetByID IDでレストランを取得
func (s *restaurantService) GetByID(id uint) (*models.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	restaurant.TagNames = tagNamesOf(restaurant)
	return restaurant, nil
}

// uniqueNames 重複を除いたタグ名を返す
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}

// tagNamesOf レストランに紐づくタグ名を重複なしで返す (タグがなければ空スライス)
func tagNamesOf(restaurant *models.Restaurant) []string {
	names := make([]string, 0, len(restaurant.Tags))
	seen := make(map[string]struct{}, len(restaurant.Tags))
	for _, tag := range restaurant.Tags {
		if _, ok := seen[tag.Name]; ok {
			continue
		}
		seen[tag.Name] = struct{}{}
		names = append(names, tag.Name)
	}
	return names
}
