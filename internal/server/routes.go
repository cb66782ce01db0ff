package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/mealscope/mealscope/pkg/menu"
	"github.com/mealscope/mealscope/pkg/scoring"
)

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(recovery(s.logger))
	r.Use(requestLogger(s.logger))
	r.Use(requestid.New())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/healthz", s.handleHealthz)
	r.GET("/api/report", s.handleReport)
	r.GET("/api/dishes", s.handleDishes)
	r.GET("/chart", s.handleChart)
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/chart")
	})
	return r
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleReport(c *gin.Context) {
	snap := s.snapshot()
	if snap == nil {
		notReady(c)
		return
	}
	c.JSON(http.StatusOK, snap.report)
}

// handleDishes lists scored dishes, optionally narrowed by the category
// and min_popularity query parameters.
func (s *Server) handleDishes(c *gin.Context) {
	snap := s.snapshot()
	if snap == nil {
		notReady(c)
		return
	}

	f := menu.Filter{Category: c.Query("category")}
	if v := c.Query("min_popularity"); v != "" {
		mp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_popularity: " + v})
			return
		}
		f.MinPopularity = mp
	}

	// Scores are in catalog order, so the filter can walk both in step.
	scores := snap.analyzer.Scores()
	out := make([]scoring.DishScore, 0, len(scores))
	for i, d := range snap.catalog.Dishes {
		if f.Matches(d) {
			out = append(out, scores[i])
		}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "dishes": out})
}

func (s *Server) handleChart(c *gin.Context) {
	snap := s.snapshot()
	if snap == nil {
		notReady(c)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", snap.chartHTML)
}

func notReady(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not loaded yet"})
}
