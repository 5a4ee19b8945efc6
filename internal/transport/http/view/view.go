// Package view renders the HTML pages of the tutorial apps from embedded liquid templates.
package view

import (
	"embed"
	"fmt"
	"html"
	"io/fs"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/osteele/liquid"
)

const (
	layoutName = "layout"
	suffix     = ".liquid"
)

//go:embed templates
var templateFS embed.FS

// Renderer holds parsed page templates keyed by their path without extension, e.g. "todos/index".
type Renderer struct {
	pages map[string]*liquid.Template
}

// New parses every embedded template.
func New() (*Renderer, error) {
	engine := liquid.NewEngine()
	// Absent bindings render as empty text instead of "<nil>".
	engine.RegisterFilter("escape", func(v any) string {
		if v == nil {
			return ""
		}
		return html.EscapeString(fmt.Sprint(v))
	})
	r := &Renderer{pages: make(map[string]*liquid.Template)}

	err := fs.WalkDir(templateFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, suffix) {
			return err
		}
		src, err := templateFS.ReadFile(path)
		if err != nil {
			return err
		}
		tpl, parseErr := engine.ParseString(string(src))
		if parseErr != nil {
			return fmt.Errorf("parse %s: %w", path, parseErr)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), suffix)
		r.pages[name] = tpl
		return nil
	})
	if err != nil {
		return nil, err
	}
	if _, ok := r.pages[layoutName]; !ok {
		return nil, fmt.Errorf("template %q is missing", layoutName)
	}
	return r, nil
}

// Execute renders the named page inside the layout.
func (r *Renderer) Execute(name string, data map[string]any) (string, error) {
	page, ok := r.pages[name]
	if !ok {
		return "", fmt.Errorf("unknown template %q", name)
	}

	bindings := liquid.Bindings{}
	for k, v := range data {
		bindings[k] = v
	}
	body, err := page.RenderString(bindings)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}

	bindings["content"] = body
	out, err := r.pages[layoutName].RenderString(bindings)
	if err != nil {
		return "", fmt.Errorf("render layout: %w", err)
	}
	return out, nil
}

// Render writes the named page as an HTML response.
func (r *Renderer) Render(c *fiber.Ctx, status int, name string, data map[string]any) error {
	out, err := r.Execute(name, data)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).SendString(out)
}
