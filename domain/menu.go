package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessGetMenu         = "menu retrieved successfully"
	MessageSuccessGetFoods        = "foods retrieved successfully"
	MessageSuccessAddFood         = "food added successfully"
	MessageSuccessSeedFoods       = "foods seeded successfully"
	MessageSuccessAddMenuEntry    = "menu entry added successfully"
	MessageSuccessUpdateMenuEntry = "menu entry updated successfully"
	MessageSuccessDeleteMenuEntry = "menu entry deleted successfully"

	MessageFailedGetMenu         = "failed to retrieve menu"
	MessageFailedGetFoods        = "failed to retrieve foods"
	MessageFailedAddFood         = "failed to add food"
	MessageFailedSeedFoods       = "failed to seed foods"
	MessageFailedAddMenuEntry    = "failed to add menu entry"
	MessageFailedUpdateMenuEntry = "failed to update menu entry"
	MessageFailedDeleteMenuEntry = "failed to delete menu entry"

	ErrFoodNotFound      = errors.New("food not found")
	ErrMenuEntryNotFound = errors.New("menu entry not found")
	ErrInvalidPrice      = errors.New("price must be positive")
)

type (
	MenuItemResponse struct {
		Name      string `json:"name"`
		Price     int    `json:"price"`
		MaxCount  int    `json:"maxCount"`
		Remaining int    `json:"remaining"`
	}

	AdminMenuItemResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Price    int    `json:"price"`
		MaxCount int    `json:"maxCount"`
		Ordered  int    `json:"ordered"`
	}

	AddFoodRequest struct {
		Name  string                `json:"name" form:"name" validate:"required"`
		Price int                   `json:"price" form:"price" validate:"required,min=1"`
		Image *multipart.FileHeader `json:"-" form:"image"`
	}

	FoodResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Price    int    `json:"price"`
		ImageURL string `json:"image_url,omitempty"`
	}

	AddMenuEntryRequest struct {
		Date     string `json:"date" validate:"required"`
		FoodID   string `json:"foodId" validate:"required,uuid"`
		MaxCount int    `json:"maxCount" validate:"required,min=1"`
	}

	UpdateMenuEntryRequest struct {
		ID       string `json:"id" validate:"required,uuid"`
		MaxCount int    `json:"maxCount" validate:"required,min=1"`
	}

	DeleteMenuEntryRequest struct {
		ID string `json:"id" validate:"required,uuid"`
	}
)
