package stories

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vango-dev/vango-ui/app/components/ui"
)

const tailwindCDN = "https://cdn.tailwindcss.com"

// tailwindTheme maps the semantic colour names used by the components to CSS
// variables, as the Tailwind play CDN expects.
const tailwindTheme = `tailwind.config = {
  theme: {
    extend: {
      colors: {
        border: "hsl(var(--border))",
        input: "hsl(var(--input))",
        ring: "hsl(var(--ring))",
        background: "hsl(var(--background))",
        foreground: "hsl(var(--foreground))",
        primary: { DEFAULT: "hsl(var(--primary))", foreground: "hsl(var(--primary-foreground))" },
        secondary: { DEFAULT: "hsl(var(--secondary))", foreground: "hsl(var(--secondary-foreground))" },
        destructive: { DEFAULT: "hsl(var(--destructive))", foreground: "hsl(var(--destructive-foreground))" },
        muted: { DEFAULT: "hsl(var(--muted))", foreground: "hsl(var(--muted-foreground))" },
        accent: { DEFAULT: "hsl(var(--accent))", foreground: "hsl(var(--accent-foreground))" },
        popover: { DEFAULT: "hsl(var(--popover))", foreground: "hsl(var(--popover-foreground))" },
        card: { DEFAULT: "hsl(var(--card))", foreground: "hsl(var(--card-foreground))" },
      },
    },
  },
}`

const themeVariables = `:root {
  --background: 0 0% 100%;
  --foreground: 222.2 84% 4.9%;
  --card: 0 0% 100%;
  --card-foreground: 222.2 84% 4.9%;
  --popover: 0 0% 100%;
  --popover-foreground: 222.2 84% 4.9%;
  --primary: 222.2 47.4% 11.2%;
  --primary-foreground: 210 40% 98%;
  --secondary: 210 40% 96.1%;
  --secondary-foreground: 222.2 47.4% 11.2%;
  --muted: 210 40% 96.1%;
  --muted-foreground: 215.4 16.3% 46.9%;
  --accent: 210 40% 96.1%;
  --accent-foreground: 222.2 47.4% 11.2%;
  --destructive: 0 84.2% 60.2%;
  --destructive-foreground: 210 40% 98%;
  --border: 214.3 31.8% 91.4%;
  --input: 214.3 31.8% 91.4%;
  --ring: 222.2 84% 4.9%;
}
* { border-color: hsl(var(--border)); }`

// Page wraps body in a complete HTML document with the Tailwind CDN and the
// component theme.
func Page(title string, body templ.Component) templ.Component {
	doc := ui.El("html",
		ui.El("head",
			ui.El("meta").Set("charset", "utf-8"),
			ui.El("meta").Set("name", "viewport").Set("content", "width=device-width, initial-scale=1"),
			ui.El("title", ui.Text(title)),
			ui.El("script").Set("src", tailwindCDN),
			ui.El("script", ui.Text(tailwindTheme)),
			ui.El("style", ui.Text(themeVariables)),
		),
		ui.El("body",
			ui.El("main", body).WithClass("mx-auto max-w-5xl p-8"),
		).WithClass("min-h-screen bg-background font-sans text-foreground antialiased"),
	).Set("lang", "en")

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
		return doc.Render(ctx, w)
	})
}
