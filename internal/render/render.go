package render

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/khanghh/odin-signup/internal/forms"
)

//go:embed templates/*.html
var templateFS embed.FS

// siteName is the AppName of the application serving the request.
func siteName(ctx *fiber.Ctx) string {
	return ctx.App().Config().AppName
}

func NewHtmlEngine(templateDir string) fiber.Views {
	if templateDir != "" {
		return html.NewFileSystem(http.Dir(templateDir), ".html")
	}
	renderFS, _ := fs.Sub(templateFS, "templates")
	return html.NewFileSystem(http.FS(renderFS), ".html")
}

// RenderRegister renders the sign-up page. Password values are never written back into the page.
func RenderRegister(ctx *fiber.Ctx, data RegisterPageData) error {
	return ctx.Render("register", fiber.Map{
		"siteName":             siteName(ctx),
		"csrfToken":            data.CSRFToken,
		"firstName":            data.Values.FirstName,
		"lastName":             data.Values.LastName,
		"email":                data.Values.Email,
		"phoneNumber":          data.Values.PhoneNumber,
		"firstNameError":       data.FormErrors[forms.FirstName],
		"lastNameError":        data.FormErrors[forms.LastName],
		"emailError":           data.FormErrors[forms.Email],
		"phoneNumberError":     data.FormErrors[forms.PhoneNumber],
		"passwordError":        data.FormErrors[forms.Password],
		"confirmPasswordError": data.FormErrors[forms.ConfirmPassword],
	})
}

func renderError(ctx *fiber.Ctx, data ErrorPageData) error {
	return ctx.Status(data.Code).Render("error", fiber.Map{
		"siteName": siteName(ctx),
		"code":     data.Code,
		"message":  data.Message,
	})
}

func RenderBadRequestError(ctx *fiber.Ctx) error {
	return renderError(ctx, ErrorPageData{
		Code:    fiber.StatusBadRequest,
		Message: "The request could not be understood.",
	})
}

func RenderForbiddenError(ctx *fiber.Ctx) error {
	return renderError(ctx, ErrorPageData{
		Code:    fiber.StatusForbidden,
		Message: "Your session has expired. Please reload the page and try again.",
	})
}

func RenderNotFoundError(ctx *fiber.Ctx) error {
	return renderError(ctx, ErrorPageData{
		Code:    fiber.StatusNotFound,
		Message: "The page you are looking for does not exist.",
	})
}

func RenderInternalServerError(ctx *fiber.Ctx) error {
	return renderError(ctx, ErrorPageData{
		Code:    fiber.StatusInternalServerError,
		Message: "Something went wrong. Please try again later.",
	})
}
