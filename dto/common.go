package dto

import "stayhub/response"

// PaginatedResponse wraps list payloads with paging info.
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}
