package utils

import (
	"testing"
)

// ページング計算を検証する
func TestNewPagination(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		limit       int
		total       int64
		totalPages  int
		hasNextPage bool
		hasPrevPage bool
	}{
		{"1ページに収まる", 1, 20, 5, 1, false, false},
		{"ちょうど1ページ", 1, 20, 20, 1, false, false},
		{"2ページ目が最終ページ", 2, 20, 25, 2, false, true},
		{"次ページあり", 1, 20, 25, 2, true, false},
		{"0件", 1, 20, 0, 0, false, false},
		{"0件で2ページ目を指定", 2, 20, 0, 0, false, true},
		{"範囲外のページ", 5, 20, 25, 2, false, true},
		{"中間ページ", 2, 10, 35, 4, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)

			if p.Page != tt.page || p.Limit != tt.limit || p.Total != tt.total {
				t.Errorf("入力値が保持されていません: %+v", p)
			}
			if p.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, 期待値 %d", p.TotalPages, tt.totalPages)
			}
			if p.HasNextPage != tt.hasNextPage {
				t.Errorf("HasNextPage = %v, 期待値 %v", p.HasNextPage, tt.hasNextPage)
			}
			if p.HasPrevPage != tt.hasPrevPage {
				t.Errorf("HasPrevPage = %v, 期待値 %v", p.HasPrevPage, tt.hasPrevPage)
			}
		})
	}
}

// 0以下の件数指定でも既定値に補正されて計算できることを検証する
func TestNewPaginationClampsInvalidLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
	}{
		{"0件指定", 0},
		{"負の件数指定", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(1, tt.limit, 25)

			if p.Limit != DefaultPageSize {
				t.Errorf("Limit = %d, 期待値 %d", p.Limit, DefaultPageSize)
			}
			if p.TotalPages != 2 {
				t.Errorf("TotalPages = %d, 期待値 2", p.TotalPages)
			}
			if !p.HasNextPage || p.HasPrevPage {
				t.Errorf("ページフラグが不正です: %+v", p)
			}
		})
	}
}

// スライス開始位置の計算を検証する
func TestPaginationOffset(t *testing.T) {
	tests := []struct {
		page   int
		limit  int
		offset int
	}{
		{1, 20, 0},
		{2, 20, 20},
		{3, 10, 20},
		{5, 20, 80},
	}

	for _, tt := range tests {
		p := NewPagination(tt.page, tt.limit, 100)
		if got := p.Offset(); got != tt.offset {
			t.Errorf("Offset(page=%d, limit=%d) = %d, 期待値 %d", tt.page, tt.limit, got, tt.offset)
		}
	}
}

// ページ番号の解析と補正を検証する
func TestParsePage(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1", 1},
		{"3", 3},
		{"0", 1},
		{"-2", 1},
		{"abc", 1},
		{"", 1},
	}

	for _, tt := range tests {
		if got := ParsePage(tt.input); got != tt.want {
			t.Errorf("ParsePage(%q) = %d, 期待値 %d", tt.input, got, tt.want)
		}
	}
}

// 件数の解析と補正を検証する
func TestParseLimit(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"20", 20},
		{"5", 5},
		{"0", DefaultPageSize},
		{"-1", DefaultPageSize},
		{"xyz", DefaultPageSize},
		{"", DefaultPageSize},
	}

	for _, tt := range tests {
		if got := ParseLimit(tt.input); got != tt.want {
			t.Errorf("ParseLimit(%q) = %d, 期待値 %d", tt.input, got, tt.want)
		}
	}
}
