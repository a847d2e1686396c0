package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

type PageResponse[T any] struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	CurrentPageNo int    `json:"currentPageNo"`
	Limit         int    `json:"limit"`
	Total         int64  `json:"total"`
	Data          []T    `json:"data"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, body gin.H) {
	body["success"] = true
	c.JSON(http.StatusCreated, body)
}

func Page[T any](c *gin.Context, message string, page, limit int, total int64, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, PageResponse[T]{
		Success:       true,
		Message:       message,
		CurrentPageNo: page,
		Limit:         limit,
		Total:         total,
		Data:          data,
	})
}
