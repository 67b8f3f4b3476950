package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Suj93s/campus-cafe-craft/internal/auth"
	"github.com/Suj93s/campus-cafe-craft/internal/db"
	"github.com/Suj93s/campus-cafe-craft/internal/menu"
	"github.com/Suj93s/campus-cafe-craft/internal/middleware"
	"github.com/Suj93s/campus-cafe-craft/internal/order"
	"github.com/Suj93s/campus-cafe-craft/internal/recommend"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	orderService := order.NewService(menuRepo, orderRepo)
	recommendService := recommend.NewService(menuRepo, orderRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	menuHandler := menu.NewHandler(menuRepo)
	orderHandler := order.NewHandler(orderService)
	recommendHandler := recommend.NewHandler(recommendService)

	// ───────────────────────── AUTH ROUTES ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/menu", menuHandler.ListMenu)

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", orderHandler.PlaceOrder)
		orders.GET("/me", orderHandler.ListMyOrders)
	}

	// ───────────────────────── RECOMMENDATIONS ─────────────────────────
	recs := r.Group("/recommendations")
	recs.Use(middleware.AuthMiddleware())
	{
		recs.GET("", recommendHandler.GetRecommendations)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
