package controller

import (
	"noteful-be/internal/dto"
	"noteful-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFolderController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type folderController struct {
	service service.IFolderService
}

func NewFolderController(service service.IFolderService) IFolderController {
	return &folderController{service: service}
}

func (c *folderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/folders")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *folderController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *folderController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *folderController) Create(ctx *fiber.Ctx) error {
	req, err := nameRequest(ctx, "")
	if err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), req)
	if err != nil {
		return err
	}

	return created(ctx, res.Id, res)
}

func (c *folderController) Update(ctx *fiber.Ctx) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	req, err := nameRequest(ctx, id)
	if err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *folderController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func nameRequest(ctx *fiber.Ctx, id string) (*dto.NameRequest, error) {
	body, err := dto.PickBody(ctx.Body(), dto.NamedFields...)
	if err != nil {
		return nil, err
	}
	return dto.NewNameRequest(id, body)
}
