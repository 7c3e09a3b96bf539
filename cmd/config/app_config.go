package config

import (
	"os"
	"time"

	"cafeteria-backend/internal/api/handlers"
	"cafeteria-backend/internal/api/routes"
	"cafeteria-backend/internal/middleware"
	"cafeteria-backend/internal/utils"
	"cafeteria-backend/internal/utils/storage"
	"cafeteria-backend/pkg/credit"
	"cafeteria-backend/pkg/jwt"
	"cafeteria-backend/pkg/menu"
	"cafeteria-backend/pkg/order"
	"cafeteria-backend/pkg/topup"
	"cafeteria-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	ledger := credit.NewLedger()

	// Repository
	userRepository := user.NewUserRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	orderRepository := order.NewOrderRepository(db, ledger)
	topupRepository := topup.NewTopupRepository(db, ledger)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	menuService := menu.NewMenuService(menuRepository, s3)
	orderService := order.NewOrderService(orderRepository)
	topupService := topup.NewTopupService(topupRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	topupHandler := handlers.NewTopupHandler(topupService, validator)

	// routes
	routesConfig := routes.Config{
		App:          app,
		UserHandler:  userHandler,
		MenuHandler:  menuHandler,
		OrderHandler: orderHandler,
		TopupHandler: topupHandler,
		Middleware:   middlewares,
		JWTService:   jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
