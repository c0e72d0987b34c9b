package dto

import "time"

// StoreCategoryResponse fila de magasin_category.
type StoreCategoryResponse struct {
	StoreID        int64     `json:"magasin_id"`
	CategoryID     int64     `json:"category_id"`
	SubcategoryID  *int64    `json:"subcategory_id"`
	MainCategoryID *int64    `json:"main_category_id"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StoreCategoryListResponse lista paginada de categorías de un magasin.
type StoreCategoryListResponse struct {
	Items []StoreCategoryResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
