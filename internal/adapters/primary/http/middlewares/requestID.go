package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID присваивает каждому запросу уникальный идентификатор.
// Идентификатор попадает в логи и в заголовок ответа X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}

// GetRequestID возвращает идентификатор текущего запроса
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
