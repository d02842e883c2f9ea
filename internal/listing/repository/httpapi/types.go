package httpapi

import (
	"fmt"

	"marketplace-browser/internal/listing"
	"marketplace-browser/internal/model"
)

// ---- Request/Response types scoped to this package ----

// ListProductsRequest is the query of GET /products.
type ListProductsRequest struct {
	Page    int
	Limit   int
	Filters map[string]string // filter name -> canonical value
}

// ListProductsResponse is the body of GET /products.
type ListProductsResponse struct {
	Success    bool            `json:"success"`
	Products   []model.Product `json:"products"`
	Pagination Pagination      `json:"pagination"`
}

// Pagination is the backend's page metadata.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalProducts int  `json:"totalProducts"`
	HasNextPage   bool `json:"hasNextPage"`
	HasPrevPage   bool `json:"hasPrevPage"`
	Limit         int  `json:"limit"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	Token string `json:"token"`
}

// RefreshResponse is the body returned by POST /auth/refresh.
type RefreshResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
	Message     string `json:"message,omitempty"`
}

type errorBody struct {
	Message string `json:"message"`
}

// FetchError describes a failed product fetch. It matches
// listing.ErrFetchFailed and, for 401s, listing.ErrUnauthorized.
type FetchError struct {
	StatusCode int // 0 when no response was received
	Message    string
	Err        error

	refresh bool // raised by the token refresh, not the products endpoint
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("product API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("product API unreachable: %s", e.Message)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{listing.ErrFetchFailed}
	}
	return []error{listing.ErrFetchFailed, e.Err}
}
