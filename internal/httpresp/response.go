package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// WithWarning é a resposta da aprovação/rejeição; warning vazio é omitido.
type WithWarning[T any] struct {
	Asesoria T      `json:"asesoria"`
	Warning  string `json:"warning,omitempty"`
}

func Warned[T any](c *gin.Context, data T, warning string) {
	c.JSON(http.StatusOK, WithWarning[T]{Asesoria: data, Warning: warning})
}
