package controller

import (
	"noteful-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITagController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type tagController struct {
	service service.ITagService
}

func NewTagController(service service.ITagService) ITagController {
	return &tagController{service: service}
}

func (c *tagController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tags")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *tagController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *tagController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *tagController) Create(ctx *fiber.Ctx) error {
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

func (c *tagController) Update(ctx *fiber.Ctx) error {
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

func (c *tagController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
