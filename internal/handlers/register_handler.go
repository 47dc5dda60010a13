package handlers

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/khanghh/odin-signup/internal/forms"
	"github.com/khanghh/odin-signup/internal/middlewares/csrf"
	"github.com/khanghh/odin-signup/internal/middlewares/sessions"
	"github.com/khanghh/odin-signup/internal/render"
)

type RegisterHandler struct {
	onSubmit forms.SubmitFunc
}

func NewRegisterHandler(onSubmit forms.SubmitFunc) *RegisterHandler {
	return &RegisterHandler{
		onSubmit: onSubmit,
	}
}

// LogSubmission is the default submission sink, it only echoes the payload.
func LogSubmission(data forms.FormData) {
	slog.Info("IT WORKED", "data", data)
}

func csrfToken(ctx *fiber.Ctx) string {
	session := sessions.Get(ctx)
	if session == nil {
		return ""
	}
	return csrf.Get(session).Token
}

func (h *RegisterHandler) GetRegister(ctx *fiber.Ctx) error {
	return render.RenderRegister(ctx, render.RegisterPageData{
		CSRFToken: csrfToken(ctx),
	})
}

func (h *RegisterHandler) PostRegister(ctx *fiber.Ctx) error {
	var input forms.RawFormFields
	if err := ctx.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Errorf("%w: %v", ErrMalformedForm, err).Error())
	}

	form := forms.NewController(h.onSubmit)
	for _, field := range forms.Fields {
		_, onChange := form.BindField(field)
		onChange(input.Get(field))
	}
	form.Submit()

	values := form.Values()
	values.Password = ""
	values.ConfirmPassword = ""
	return render.RenderRegister(ctx, render.RegisterPageData{
		CSRFToken:  csrfToken(ctx),
		Values:     values,
		FormErrors: form.Errors(),
	})
}
