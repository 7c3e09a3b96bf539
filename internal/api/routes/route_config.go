package routes

import (
	"cafeteria-backend/internal/api/handlers"
	"cafeteria-backend/internal/middleware"
	"cafeteria-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App          *fiber.App
	UserHandler  handlers.UserHandler
	MenuHandler  handlers.MenuHandler
	OrderHandler handlers.OrderHandler
	TopupHandler handlers.TopupHandler
	Middleware   middleware.Middleware
	JWTService   jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Menu()
	c.Orders()
	c.Topups()
	c.Kitchen()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) Auth() {
	api := c.App.Group("/api")
	{
		api.Post("/register", c.UserHandler.Register)
		api.Post("/login", c.UserHandler.Login)
		api.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Menu() {
	api := c.App.Group("/api", c.Middleware.AuthMiddleware(c.JWTService))
	{
		api.Get("/foods", c.MenuHandler.GetFoods)
		api.Get("/menu", c.MenuHandler.GetMenu)
	}
}

func (c *Config) Orders() {
	api := c.App.Group("/api", c.Middleware.AuthMiddleware(c.JWTService))
	{
		api.Post("/order", c.OrderHandler.PlaceOrder)
		api.Get("/orders/history", c.OrderHandler.GetOrderHistory)
		api.Post("/orders/cancel", c.OrderHandler.CancelOrder)
		api.Post("/orders/:id/show", c.OrderHandler.ShowOrder)
	}
}

func (c *Config) Topups() {
	api := c.App.Group("/api", c.Middleware.AuthMiddleware(c.JWTService))
	{
		api.Post("/topup", c.TopupHandler.RequestTopup)
		api.Get("/topup/status", c.TopupHandler.TopupStatus)
	}
}

func (c *Config) Kitchen() {
	kitchen := c.App.Group(
		"/api/kitchen",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.StaffMiddleware(),
	)
	{
		kitchen.Get("/orders", c.OrderHandler.GetKitchenQueue)
		kitchen.Post("/orders/:id/issue", c.OrderHandler.IssueOrder)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group(
		"/api/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.StaffMiddleware(),
	)
	{
		admin.Get("/menu", c.MenuHandler.GetAdminMenu)
		admin.Post("/menu/add", c.MenuHandler.AddMenuEntry)
		admin.Post("/menu/update", c.MenuHandler.UpdateMenuEntry)
		admin.Post("/menu/delete", c.MenuHandler.DeleteMenuEntry)
		admin.Post("/foods", c.MenuHandler.AddFood)
		admin.Post("/foods/seed", c.MenuHandler.SeedFoods)
		admin.Post("/topup/:id/confirm", c.TopupHandler.ConfirmTopup)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
