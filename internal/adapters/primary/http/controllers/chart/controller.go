package chartController

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"log/slog"

	"github.com/Luciacosmos/astrorailway/internal/adapters/primary/http/middlewares"
	"github.com/Luciacosmos/astrorailway/internal/domain"
	chartService "github.com/Luciacosmos/astrorailway/internal/usecases/chart"
	"github.com/gin-gonic/gin"
)

const (
	msgFillAllFields  = "Please fill out all fields."
	msgChartGenerated = "Chart generated!"
	msgGenerateFailed = "Failed to generate chart: %v"
)

type Controller struct {
	ChartService *chartService.Service
	Log          *slog.Logger
}

func New(chartService *chartService.Service, log *slog.Logger) *Controller {
	return &Controller{
		ChartService: chartService,
		Log:          log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(pageTemplate)
	router.GET("/", c.showForm)
	router.POST("/", c.generateChart)
}

// showForm отображает пустую форму: без сообщений и без карты
func (c *Controller) showForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index", pageData{})
}

// generateChart обрабатывает отправку формы.
// Любой исход - валидация, ошибка генерации, успех - рендерится той же
// страницей со статусом 200, отличаются только сообщения и наличие SVG.
func (c *Controller) generateChart(ctx *gin.Context) {
	req := domain.ChartRequest{
		Name:   strings.TrimSpace(ctx.PostForm("name")),
		Year:   strings.TrimSpace(ctx.PostForm("year")),
		Month:  strings.TrimSpace(ctx.PostForm("month")),
		Day:    strings.TrimSpace(ctx.PostForm("day")),
		Hour:   strings.TrimSpace(ctx.PostForm("hour")),
		Minute: strings.TrimSpace(ctx.PostForm("minute")),
		City:   strings.TrimSpace(ctx.PostForm("city")),
		Nation: strings.TrimSpace(ctx.PostForm("nation")),
	}

	var data pageData

	if !req.IsComplete() {
		data.Messages = append(data.Messages, msgFillAllFields)
		ctx.HTML(http.StatusOK, "index", data)
		return
	}

	path, err := c.ChartService.Generate(ctx.Request.Context(), req)
	if err != nil {
		// Ошибки генерации ожидаемы (плохая дата, неизвестный город) - Warn,
		// всё остальное - Error
		logLevel := c.Log.Error
		if domain.IsGenerationError(err) {
			logLevel = c.Log.Warn
		}
		logLevel("failed to generate natal chart",
			"error", err,
			"name", req.Name,
			"request_id", middlewares.GetRequestID(ctx),
		)
		middlewares.CountChartGeneration("error")
		data.Messages = append(data.Messages, fmt.Sprintf(msgGenerateFailed, err))
		ctx.HTML(http.StatusOK, "index", data)
		return
	}

	// Читаем сгенерированный файл обратно, чтобы встроить SVG в страницу
	svg, err := c.ChartService.ReadChart(path)
	if err != nil {
		c.Log.Error("failed to read generated chart",
			"error", err,
			"path", path,
			"request_id", middlewares.GetRequestID(ctx),
		)
		middlewares.CountChartGeneration("error")
		data.Messages = append(data.Messages, fmt.Sprintf(msgGenerateFailed, err))
		ctx.HTML(http.StatusOK, "index", data)
		return
	}

	middlewares.CountChartGeneration("success")
	data.Messages = append(data.Messages, msgChartGenerated)
	data.SVGContent = template.HTML(svg)
	ctx.HTML(http.StatusOK, "index", data)
}
