package dto

type CreateProgressRequest struct {
	Title      string `json:"title" validate:"required,safe"`
	TotalItems int    `json:"totalItems" validate:"required,min=1"`
}

type ProgressResponse struct {
	IDProgress     string `json:"idProgress"`
	Title          string `json:"title"`
	TotalItems     int    `json:"totalItems"`
	CompletedItems int    `json:"completedItems"`
}

type ProgressStatisticsResponse struct {
	IDUser         string  `json:"idUser"`
	Tracks         int     `json:"tracks"`
	TotalItems     int     `json:"totalItems"`
	CompletedItems int     `json:"completedItems"`
	CompletionRate float64 `json:"completionRate"`
}
