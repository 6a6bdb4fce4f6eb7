package utils

import (
	"strconv"
)

// DefaultPageSize 1ページあたりの既定件数
const DefaultPageSize = 20

// Pagination ページング情報
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination 合計件数からページング情報を計算
// 範囲外のページ指定はエラーにせず空ページとして扱う
func NewPagination(page, limit int, total int64) Pagination {
	if limit < 1 {
		limit = DefaultPageSize
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// Offset スライスの開始位置を取得
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePage ページ番号を解析 (数値でない値や1未満は1にする)
func ParsePage(s string) int {
	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ParseLimit 1ページあたりの件数を解析 (数値でない値や0以下は既定値にする)
func ParseLimit(s string) int {
	limit, err := strconv.Atoi(s)
	if err != nil || limit < 1 {
		return DefaultPageSize
	}
	return limit
}
