package repository

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

// タグ絞り込みで解決したIDに可視性条件が重なることを検証する
// (全タグを持っていても非公開なら一覧に出ない)
func TestRestaurantListVisibilityWithTagFilter(t *testing.T) {
	db := newTestDB(t)
	tagRepo := NewTagRepository(db)
	repo := NewRestaurantRepository(db)

	rice := createTag(t, db, "Rice")
	chicken := createTag(t, db, "Chicken")

	visible := createRestaurant(t, db, "Hexagon Rice Samonda", true, 4.3, rice, chicken)
	createRestaurant(t, db, "Richmix", true, 5.0, rice)
	createRestaurant(t, db, "Closed Kitchen", false, 4.0, rice, chicken)

	ids, err := tagRepo.FindRestaurantIDsWithAll([]string{"Rice", "Chicken"})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	// 解決段階では非公開の店も含まれる
	if len(ids) != 2 {
		t.Fatalf("解決されたID数 = %d, 期待値 2", len(ids))
	}

	restaurants, total, err := repo.List(RestaurantListOptions{IDs: ids, Limit: 20})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if total != 1 {
		t.Errorf("合計数 = %d, 期待値 1", total)
	}
	if len(restaurants) != 1 || restaurants[0].ID != visible {
		t.Errorf("一覧 = %v, 公開中の1件のみが期待値", restaurants)
	}
}

// 空のIDスライスは0件、nilは絞り込みなしとして扱われることを検証する
func TestRestaurantListIDFilterSemantics(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)

	createRestaurant(t, db, "Richmix", true, 5.0)
	createRestaurant(t, db, "Mama Cass Kitchen", true, 4.6)

	_, total, err := repo.List(RestaurantListOptions{IDs: nil, Limit: 20})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if total != 2 {
		t.Errorf("nil指定の合計数 = %d, 期待値 2", total)
	}

	_, total, err = repo.List(RestaurantListOptions{IDs: []uint{}, Limit: 20})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if total != 0 {
		t.Errorf("空スライス指定の合計数 = %d, 期待値 0", total)
	}
}

// 店名検索が大文字小文字を区別しない部分一致であることを検証する
func TestRestaurantListSearchCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)

	match := createRestaurant(t, db, "Hexagon Rice Samonda", true, 4.3)
	createRestaurant(t, db, "Juice Paradise", true, 4.0)
	createRestaurant(t, db, "Rice Palace", false, 4.5)

	for _, search := range []string{"rice", "RICE", "Rice"} {
		restaurants, total, err := repo.List(RestaurantListOptions{Search: search, Limit: 20})
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if total != 1 || len(restaurants) != 1 || restaurants[0].ID != match {
			t.Errorf("検索 %q の結果 = %v (total=%d), 公開中の1件のみが期待値", search, restaurants, total)
		}
	}
}

// 並び替えとページングの組み合わせを検証する (合計数はページング前の値)
func TestRestaurantListSortAndPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)

	low := createRestaurant(t, db, "Campus Bites", true, 3.2)
	mid := createRestaurant(t, db, "Richmix", true, 4.5)
	high := createRestaurant(t, db, "Mama Cass Kitchen", true, 4.8)

	sort := SortOption{Key: SortByRating, Direction: SortDesc}

	restaurants, total, err := repo.List(RestaurantListOptions{Sort: sort, Offset: 0, Limit: 2})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if total != 3 {
		t.Errorf("合計数 = %d, 期待値 3", total)
	}
	if len(restaurants) != 2 || restaurants[0].ID != high || restaurants[1].ID != mid {
		t.Errorf("1ページ目 = %v, 評価の降順2件が期待値", restaurants)
	}

	restaurants, _, err = repo.List(RestaurantListOptions{Sort: sort, Offset: 2, Limit: 2})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if len(restaurants) != 1 || restaurants[0].ID != low {
		t.Errorf("2ページ目 = %v, 残りの1件が期待値", restaurants)
	}

	// 名前の昇順
	nameSort := SortOption{Key: SortByName, Direction: SortAsc}
	restaurants, _, err = repo.List(RestaurantListOptions{Sort: nameSort, Limit: 20})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if len(restaurants) != 3 || restaurants[0].ID != low || restaurants[1].ID != high || restaurants[2].ID != mid {
		t.Errorf("名前順 = %v", restaurants)
	}
}

// IDでの取得とタグのプリロードを検証する
func TestRestaurantFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewRestaurantRepository(db)

	rice := createTag(t, db, "Rice")
	chicken := createTag(t, db, "Chicken")
	id := createRestaurant(t, db, "Hexagon Rice Samonda", true, 4.3, rice, chicken)

	restaurant, err := repo.FindByID(id)
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if restaurant.Name != "Hexagon Rice Samonda" {
		t.Errorf("Name = %q", restaurant.Name)
	}
	if len(restaurant.Tags) != 2 {
		t.Errorf("プリロードされたタグ数 = %d, 期待値 2", len(restaurant.Tags))
	}

	if _, err := repo.FindByID(999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("エラー = %v, 期待値 gorm.ErrRecordNotFound", err)
	}
}
