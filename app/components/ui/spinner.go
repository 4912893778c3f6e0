package ui

import "github.com/vango-dev/vango-ui/pkg/variants"

type SpinnerSize string

const (
	SpinnerSizeSm SpinnerSize = "sm"
	SpinnerSizeMd SpinnerSize = "md"
	SpinnerSizeLg SpinnerSize = "lg"
)

var (
	spinnerSizeAxis = variants.NewAxis("size", SpinnerSizeMd, map[SpinnerSize]string{
		SpinnerSizeSm: "h-4 w-4",
		SpinnerSizeMd: "h-6 w-6",
		SpinnerSizeLg: "h-8 w-8",
	})
	spinnerVariants = variants.New("animate-spin text-muted-foreground", spinnerSizeAxis)
)

type SpinnerConfig struct {
	BaseConfig
	Size  SpinnerSize
	Label string
}

func (c *SpinnerConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type SpinnerOption = Option[*SpinnerConfig]

func WithSpinnerSize(s SpinnerSize) SpinnerOption {
	return func(c *SpinnerConfig) { c.Size = s }
}

// SpinnerLabel sets the accessible name announced by screen readers.
func SpinnerLabel(s string) SpinnerOption {
	return func(c *SpinnerConfig) { c.Label = s }
}

// Spinner is an indeterminate loading indicator.
func Spinner(opts ...SpinnerOption) *Node {
	c := apply(&SpinnerConfig{Size: SpinnerSizeMd, Label: "Loading"}, opts)

	svg := El("svg",
		El("circle").
			WithClass("opacity-25").
			Set("cx", "12").Set("cy", "12").Set("r", "10").
			Set("stroke", "currentColor").Set("stroke-width", "4"),
		El("path").
			WithClass("opacity-75").
			Set("fill", "currentColor").
			Set("d", "M4 12a8 8 0 018-8V0C5.373 0 0 5.373 0 12h4z"),
	).WithClass(spinnerVariants.Base(), spinnerVariants.Resolve(spinnerSizeAxis.Pick(c.Size)))
	svg.Set("xmlns", "http://www.w3.org/2000/svg")
	svg.Set("viewBox", "0 0 24 24")
	svg.Set("fill", "none")
	svg.Set("role", "status")
	svg.Set("aria-label", c.Label)
	c.Children = nil
	return c.finish(svg)
}

type SkeletonConfig struct{ BaseConfig }

func (c *SkeletonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type SkeletonOption = Option[*SkeletonConfig]

// Skeleton is a pulsing placeholder; size it with Class.
func Skeleton(opts ...SkeletonOption) *Node {
	c := apply(&SkeletonConfig{}, opts)
	n := El("div").WithClass("animate-pulse rounded-md bg-muted").Set("aria-hidden", "true")
	return c.finish(n)
}
