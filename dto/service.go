package dto

import "decor/models"

// ServiceResponse là DTO cho dịch vụ trang trí trên trang danh sách
type ServiceResponse struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Style            string   `json:"style"`
	ShortDescription string   `json:"shortDescription"`
	Province         string   `json:"province"`
	District         string   `json:"district"`
	Price            int      `json:"price"`
	Images           []string `json:"images"`
	Status           int      `json:"status"`
	Star             float64  `json:"star"`
	Provider         UserInfo `json:"provider"`
}

// ScoredService là dịch vụ kèm điểm phù hợp khi tìm kiếm gợi ý
type ScoredService struct {
	Service models.DecorService `json:"service"`
	Score   int                 `json:"score"`
}

// CreateServiceRequest là DTO cho request đăng dịch vụ mới
type CreateServiceRequest struct {
	Name             string   `json:"name" binding:"required"`
	Style            string   `json:"style"`
	ShortDescription string   `json:"shortDescription"`
	Description      string   `json:"description"`
	Province         string   `json:"province"`
	District         string   `json:"district"`
	Price            int      `json:"price" binding:"required"`
	Images           []string `json:"images"`
}
