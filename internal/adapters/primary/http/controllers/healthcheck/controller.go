package healthcheckController

import (
	"log/slog"

	"github.com/Luciacosmos/astrorailway/internal/adapters/secondary/storage/chartdir"
	"github.com/gin-gonic/gin"
)

type HealthCheckController struct {
	store *chartdir.Store
	log   *slog.Logger
}

func New(store *chartdir.Store, log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		store: store,
		log:   log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/ready", c.ready)
}

// health базовая проверка (всегда возвращает 200)
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status":  "ok",
		"service": "chart-web",
	})
}

// ready проверка готовности (проверяет, что выходная директория доступна на запись)
func (c *HealthCheckController) ready(ctx *gin.Context) {
	if err := c.store.CheckWritable(); err != nil {
		c.log.Error("Chart directory not ready", "error", err)
		ctx.JSON(503, gin.H{
			"status": "not ready",
			"error":  "chart directory unavailable",
		})
		return
	}

	ctx.JSON(200, gin.H{
		"status": "ready",
	})
}
