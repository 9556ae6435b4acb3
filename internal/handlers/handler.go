package handlers

import (
	"net/http"
	"reflect"
	"strings"

	"expensetrack/internal/config"
	"expensetrack/internal/logger"
	"expensetrack/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services, configuration and logging.
type Handler struct {
	services *service.Service
	cfg      *config.Config
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, cfg *config.Config, log *logger.Logger) *Handler {
	registerTagNames()
	return &Handler{services: services, cfg: cfg, log: log}
}

// registerTagNames makes the validator report fields by their json/form tag
// so validation details match the wire names clients actually sent.
func registerTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			if name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]; name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.errorMiddleware)
	router.Use(cors.New(h.corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerExpenseRoutes(router)

	return router
}

func (h *Handler) corsConfig() cors.Config {
	origin := "http://localhost:5173"
	if h.cfg != nil && h.cfg.ClientOrigin != "" {
		origin = h.cfg.ClientOrigin
	}
	c := cors.DefaultConfig()
	c.AllowOrigins = []string{origin}
	// Credentials are required: the session rides in a cookie.
	c.AllowCredentials = true
	c.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Content-Type"}
	return c
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/logout", h.logout)
		auth.GET("/me", h.sessionMiddleware, h.me)
	}
}

func (h *Handler) registerExpenseRoutes(r *gin.Engine) {
	expenses := r.Group("/expenses", h.sessionMiddleware)
	{
		expenses.GET("/get", h.listExpenses)
		expenses.POST("/create", h.createExpense)
		expenses.GET("/:id", h.getExpense)
		expenses.PATCH("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
