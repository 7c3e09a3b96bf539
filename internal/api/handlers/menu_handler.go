package handlers

import (
	"cafeteria-backend/domain"
	"cafeteria-backend/internal/api/presenters"
	"cafeteria-backend/pkg/menu"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetMenu(c *fiber.Ctx) error
		GetFoods(c *fiber.Ctx) error
		GetAdminMenu(c *fiber.Ctx) error
		AddFood(c *fiber.Ctx) error
		SeedFoods(c *fiber.Ctx) error
		AddMenuEntry(c *fiber.Ctx) error
		UpdateMenuEntry(c *fiber.Ctx) error
		DeleteMenuEntry(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) GetMenu(c *fiber.Ctx) error {
	resp, err := h.menuService.GetMenu(c.Context(), c.Query("date"))
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *menuHandler) GetFoods(c *fiber.Ctx) error {
	resp, err := h.menuService.GetFoods(c.Context())
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *menuHandler) GetAdminMenu(c *fiber.Ctx) error {
	resp, err := h.menuService.GetAdminMenu(c.Context(), c.Query("date"))
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetMenu, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetMenu)
}

func (h *menuHandler) AddFood(c *fiber.Ctx) error {
	req := new(domain.AddFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	resp, err := h.menuService.AddFood(c.Context(), *req)
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedAddFood, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessAddFood)
}

func (h *menuHandler) SeedFoods(c *fiber.Ctx) error {
	if err := h.menuService.SeedFoods(c.Context()); err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedSeedFoods, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSeedFoods)
}

func (h *menuHandler) AddMenuEntry(c *fiber.Ctx) error {
	req := new(domain.AddMenuEntryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMenuEntry, err)
	}

	resp, err := h.menuService.AddMenuEntry(c.Context(), *req)
	if err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedAddMenuEntry, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": resp}, fiber.StatusOK, domain.MessageSuccessAddMenuEntry)
}

func (h *menuHandler) UpdateMenuEntry(c *fiber.Ctx) error {
	req := new(domain.UpdateMenuEntryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuEntry, err)
	}

	if err := h.menuService.UpdateMenuEntry(c.Context(), *req); err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateMenuEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateMenuEntry)
}

func (h *menuHandler) DeleteMenuEntry(c *fiber.Ctx) error {
	req := new(domain.DeleteMenuEntryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMenuEntry, err)
	}

	if err := h.menuService.DeleteMenuEntry(c.Context(), *req); err != nil {
		status, err := errorStatus(err)
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteMenuEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMenuEntry)
}
