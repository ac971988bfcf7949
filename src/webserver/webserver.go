package webserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/claimlens/claimlens/src/cache"
	"github.com/claimlens/claimlens/src/components/extractor"
	"github.com/claimlens/claimlens/src/components/textclean"
	"github.com/claimlens/claimlens/src/components/verifier"
)

// Deps carries the pipeline components shared by the handlers.
type Deps struct {
	Cleaner   *textclean.Cleaner
	Extractor *extractor.Extractor
	Verifier  *verifier.Verifier
	Store     *cache.VerificationStore
	Redis     *redis.Client
}

func New(deps Deps) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	attachRoutes(g, deps)
	return g
}

func attachRoutes(r *gin.Engine, deps Deps) {
	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	textH := NewText(deps.Cleaner, deps.Extractor, deps.Store)
	verifyH := NewVerify(deps.Verifier, deps.Store, deps.Redis)

	r.GET("/health", health)

	api := r.Group("/api")
	{
		api.POST("/clean-text", textH.Clean)
		api.POST("/extract-claims", textH.Extract)
		api.POST("/analyze", textH.Analyze)
		api.GET("/claims", textH.Latest)
		api.POST("/verify", verifyH.Run)
		api.GET("/verified", verifyH.Latest)
	}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "claim verification API is running",
	})
}
