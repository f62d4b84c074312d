package dto

// ListQuery is the paging part of every list endpoint's query string.
type ListQuery struct {
	Page  int `json:"page" validate:"gte=0"`
	Limit int `json:"limit" validate:"gte=0,lte=100"`
}
