package utils

import (
	"github.com/gin-gonic/gin"
)

// Machine-stable error kinds carried on every non-2xx response body.
const (
	KindValidation     = "validation"
	KindAuthentication = "authentication"
	KindAuthorization  = "authorization"
	KindNotFound       = "not_found"
	KindStorage        = "storage"
	KindRateLimited    = "rate_limited"
)

type ErrorBody struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// AbortWithError writes the standard error envelope and stops the
// handler chain. Detail is a human-readable message; internal error
// values never go into it.
func AbortWithError(c *gin.Context, status int, kind, detail string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{Kind: kind, Detail: detail}})
}
