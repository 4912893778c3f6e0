package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vango-dev/vango-ui/pkg/variants"
)

type AvatarSize string

const (
	AvatarSizeSm AvatarSize = "sm"
	AvatarSizeMd AvatarSize = "md"
	AvatarSizeLg AvatarSize = "lg"
)

var (
	avatarSizeAxis = variants.NewAxis("size", AvatarSizeMd, map[AvatarSize]string{
		AvatarSizeSm: "h-8 w-8 text-xs",
		AvatarSizeMd: "h-10 w-10 text-sm",
		AvatarSizeLg: "h-14 w-14 text-base",
	})
	avatarVariants = variants.New("relative flex shrink-0 overflow-hidden rounded-full", avatarSizeAxis)
)

type AvatarConfig struct {
	BaseConfig
	Size AvatarSize
	Src  string
	Alt  string
	Name string
}

func (c *AvatarConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type AvatarOption = Option[*AvatarConfig]

func WithAvatarSize(s AvatarSize) AvatarOption {
	return func(c *AvatarConfig) { c.Size = s }
}

func AvatarSrc(src string) AvatarOption {
	return func(c *AvatarConfig) { c.Src = src }
}

func AvatarAlt(alt string) AvatarOption {
	return func(c *AvatarConfig) { c.Alt = alt }
}

// AvatarName is used for the image alt text and, without an image, for the
// initials fallback.
func AvatarName(name string) AvatarOption {
	return func(c *AvatarConfig) { c.Name = name }
}

func Avatar(opts ...AvatarOption) *Node {
	c := apply(&AvatarConfig{Size: AvatarSizeMd}, opts)
	n := El("span").WithClass(avatarVariants.Base(), avatarVariants.Resolve(avatarSizeAxis.Pick(c.Size)))
	n.Set("data-size", string(c.Size))

	switch {
	case c.Src != "":
		alt := c.Alt
		if alt == "" {
			alt = c.Name
		}
		n.Append(AvatarImage(AvatarImageSrc(c.Src), AvatarImageAlt(alt)))
	case c.Name != "":
		n.Append(AvatarFallback(
			Content[*AvatarFallbackConfig](initials(c.Name)),
			Attrs[*AvatarFallbackConfig](map[string]any{"role": "img", "aria-label": c.Name}),
		))
	}
	return c.finish(n)
}

// AvatarImage
type AvatarImageConfig struct {
	BaseConfig
	Src string
	Alt string
}

func (c *AvatarImageConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type AvatarImageOption = Option[*AvatarImageConfig]

func AvatarImageSrc(src string) AvatarImageOption {
	return func(c *AvatarImageConfig) { c.Src = src }
}

func AvatarImageAlt(alt string) AvatarImageOption {
	return func(c *AvatarImageConfig) { c.Alt = alt }
}

func AvatarImage(opts ...AvatarImageOption) *Node {
	c := apply(&AvatarImageConfig{}, opts)
	c.Children = nil
	n := El("img").WithClass("aspect-square h-full w-full object-cover").
		Set("src", c.Src).
		Set("alt", c.Alt)
	return c.finish(n)
}

// AvatarFallback
type AvatarFallbackConfig struct{ BaseConfig }

func (c *AvatarFallbackConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type AvatarFallbackOption = Option[*AvatarFallbackConfig]

func AvatarFallback(opts ...AvatarFallbackOption) *Node {
	c := apply(&AvatarFallbackConfig{}, opts)
	return section("span", "flex h-full w-full items-center justify-center rounded-full bg-muted font-medium", &c.BaseConfig)
}

// initials returns the upper-cased first letters of the first and last words.
func initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}
	first := func(w string) string {
		r, _ := utf8.DecodeRuneInString(w)
		return string(unicode.ToUpper(r))
	}
	out := first(words[0])
	if len(words) > 1 {
		out += first(words[len(words)-1])
	}
	return out
}
