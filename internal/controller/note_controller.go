package controller

import (
	"noteful-be/internal/dto"
	"noteful-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	service service.INoteService
}

func NewNoteController(service service.INoteService) INoteController {
	return &noteController{service: service}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *noteController) GetAll(ctx *fiber.Ctx) error {
	req := dto.ListNotesRequest{
		SearchTerm: ctx.Query("searchTerm"),
		FolderId:   ctx.Query("folderId"),
		TagId:      ctx.Query("tagId"),
	}

	res, err := c.service.GetAll(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	body, err := dto.PickBody(ctx.Body(), dto.CreateNoteFields...)
	if err != nil {
		return err
	}
	req, err := dto.NewCreateNoteRequest(body)
	if err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), req)
	if err != nil {
		return err
	}

	return created(ctx, res.Id, res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	body, err := dto.PickBody(ctx.Body(), dto.UpdateNoteFields...)
	if err != nil {
		return err
	}
	req, err := dto.NewUpdateNoteRequest(id, body)
	if err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	if err := c.service.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
