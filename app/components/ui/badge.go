package ui

import "github.com/vango-dev/vango-ui/pkg/variants"

type BadgeVariant string

const (
	BadgeVariantDefault     BadgeVariant = "default"
	BadgeVariantSecondary   BadgeVariant = "secondary"
	BadgeVariantSuccess     BadgeVariant = "success"
	BadgeVariantWarning     BadgeVariant = "warning"
	BadgeVariantDestructive BadgeVariant = "destructive"
	BadgeVariantOutline     BadgeVariant = "outline"
)

var (
	badgeVariantAxis = variants.NewAxis("variant", BadgeVariantDefault, map[BadgeVariant]string{
		BadgeVariantDefault:     "border-transparent bg-primary text-primary-foreground hover:bg-primary/80",
		BadgeVariantSecondary:   "border-transparent bg-secondary text-secondary-foreground hover:bg-secondary/80",
		BadgeVariantSuccess:     "border-transparent bg-green-600 text-white",
		BadgeVariantWarning:     "border-transparent bg-orange-400 text-white",
		BadgeVariantDestructive: "border-transparent bg-destructive text-destructive-foreground hover:bg-destructive/80",
		BadgeVariantOutline:     "text-foreground",
	})
	badgeVariants = variants.New(
		"inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold transition-colors focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2",
		badgeVariantAxis,
	)
)

type BadgeConfig struct {
	BaseConfig
	Variant BadgeVariant
}

func (c *BadgeConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type BadgeOption = Option[*BadgeConfig]

func WithBadgeVariant(v BadgeVariant) BadgeOption {
	return func(c *BadgeConfig) { c.Variant = v }
}

func Badge(opts ...BadgeOption) *Node {
	c := apply(&BadgeConfig{Variant: BadgeVariantDefault}, opts)
	n := El("span").WithClass(badgeVariants.Base(), badgeVariants.Resolve(badgeVariantAxis.Pick(c.Variant)))
	n.Set("data-variant", string(c.Variant))
	return c.finish(n)
}
