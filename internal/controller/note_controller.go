package controller

import (
	"fmt"

	"notehub-be/internal/dto"
	"notehub-be/internal/pkg/serverutils"
	"notehub-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":noteId", c.Show)
	h.Put(":noteId", c.Update)
	h.Delete(":noteId", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	user := serverutils.SessionUser(ctx)

	res, err := c.noteService.List(ctx.Context(), user)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(
		fmt.Sprintf("Fetched all notes from %s", user.Name), res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	user := serverutils.SessionUser(ctx)
	noteId := ctx.Params("noteId")

	res, err := c.noteService.Show(ctx.Context(), user, noteId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(
		fmt.Sprintf("Fetched note with id %s from %s", noteId, user.Name), res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	user := serverutils.SessionUser(ctx)

	// Body parsing stays behind the session check so unauthenticated
	// requests always fail 401 first.
	var req dto.CreateNoteRequest
	if user != nil && len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return err
		}
	}

	res, err := c.noteService.Create(ctx.Context(), user, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Note created", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	user := serverutils.SessionUser(ctx)
	noteId := ctx.Params("noteId")

	var req dto.UpdateNoteRequest
	if user != nil && len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := serverutils.ValidateRequest(req); err != nil {
			return err
		}
	}

	res, err := c.noteService.Update(ctx.Context(), user, noteId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(
		fmt.Sprintf("Updated note with id %s", noteId), res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	user := serverutils.SessionUser(ctx)
	noteId := ctx.Params("noteId")

	if err := c.noteService.Delete(ctx.Context(), user, noteId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any](
		fmt.Sprintf("Deleted note with id %s", noteId), nil))
}
