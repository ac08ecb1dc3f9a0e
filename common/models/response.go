package models

import (
	trg "github.com/siamlex/gazette-search-service/crawlers/thai-royal-gazette"
)

// SearchResponse is the success payload of both search operations.
type SearchResponse struct {
	Status    int                `json:"status"`
	TotalItem int                `json:"totalItem"`
	Records   []trg.ResultRecord `json:"rkjs"`
}

// ErrorResponse is the error payload of every non-2xx response. Detail
// carries the underlying cause text for unexpected failures.
type ErrorResponse struct {
	Status int    `json:"status,omitempty"`
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
