package repository

// SortKey レストラン一覧の並び替えキー
type SortKey string

// SortDirection 並び替え方向
type SortDirection string

const (
	SortByRating       SortKey = "rating"
	SortByReviewCount  SortKey = "reviewCount"
	SortByDeliveryTime SortKey = "deliveryTime"
	SortByDeliveryFee  SortKey = "deliveryFee"
	SortByName         SortKey = "name"

	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// defaultOrder 不明なキーが指定された場合の並び順
const defaultOrder = "rating DESC"

// sortColumns 並び替えキーとカラムの対応表
var sortColumns = map[SortKey]string{
	SortByRating:       "rating",
	SortByReviewCount:  "review_count",
	SortByDeliveryTime: "delivery_time",
	SortByDeliveryFee:  "delivery_fee",
	SortByName:         "name",
}

// SortOption レストラン一覧の並び替え指定
type SortOption struct {
	Key       SortKey
	Direction SortDirection
}

// OrderClause 並び替え指定をORDER BY句に解決
// 不明なキーは評価順の降順、不明な方向は降順として扱う
func (o SortOption) OrderClause() string {
	column, ok := sortColumns[o.Key]
	if !ok {
		return defaultOrder
	}

	if o.Direction == SortAsc {
		return column + " ASC"
	}
	return column + " DESC"
}
