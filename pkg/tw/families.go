package tw

// FamilyID names the CSS property group a utility controls. Two tokens with the
// same family and the same modifiers conflict.
type FamilyID string

// Rule maps utilities to a family. A rule matches either one of its Exact
// tokens or any token made of Prefix followed by a value accepted by Values.
type Rule struct {
	Family FamilyID
	Prefix string
	Exact  []string
	Values ValueKind
}

func exact(f FamilyID, tokens ...string) Rule {
	return Rule{Family: f, Exact: tokens}
}

func prefixed(f FamilyID, p string, v ValueKind) Rule {
	return Rule{Family: f, Prefix: p, Values: v}
}

var sides = []string{"x", "y", "t", "r", "b", "l", "s", "e"}

var corners = []string{"t", "r", "b", "l", "s", "e", "tl", "tr", "br", "bl", "ss", "se", "es", "ee"}

func defaultRules() []Rule {
	var rules []Rule
	add := func(r ...Rule) { rules = append(rules, r...) }

	// Layout
	add(
		exact("display", "block", "inline-block", "inline", "flex", "inline-flex", "grid", "inline-grid",
			"table", "inline-table", "table-row", "table-cell", "contents", "list-item", "hidden", "flow-root"),
		exact("position", "static", "fixed", "absolute", "relative", "sticky"),
		exact("visibility", "visible", "invisible", "collapse"),
		exact("sr", "sr-only", "not-sr-only"),
		exact("isolation", "isolate", "isolation-auto"),
		exact("box-sizing", "box-border", "box-content"),
		prefixed("float", "float-", ValueAny),
		prefixed("clear", "clear-", ValueAny),
		prefixed("aspect", "aspect-", ValueAny),
		exact("object-fit", "object-contain", "object-cover", "object-fill", "object-none", "object-scale-down"),
		prefixed("object-position", "object-", ValueAny),
		prefixed("overflow-x", "overflow-x-", ValueAny),
		prefixed("overflow-y", "overflow-y-", ValueAny),
		prefixed("overflow", "overflow-", ValueAny),
		prefixed("overscroll", "overscroll-", ValueAny),
		exact("z", "z-auto"),
		prefixed("z", "z-", ValueNumber),
		prefixed("inset-x", "inset-x-", ValueLength),
		prefixed("inset-y", "inset-y-", ValueLength),
		prefixed("inset", "inset-", ValueLength),
	)
	for _, p := range []string{"top", "right", "bottom", "left", "start", "end"} {
		add(prefixed(FamilyID(p), p+"-", ValueLength))
	}

	// Flexbox and grid
	add(
		exact("flex-direction", "flex-row", "flex-row-reverse", "flex-col", "flex-col-reverse"),
		exact("flex-wrap", "flex-wrap", "flex-wrap-reverse", "flex-nowrap"),
		prefixed("flex", "flex-", ValueAny),
		exact("grow", "grow"), prefixed("grow", "grow-", ValueAny),
		exact("shrink", "shrink"), prefixed("shrink", "shrink-", ValueAny),
		prefixed("basis", "basis-", ValueAny),
		exact("order", "order-first", "order-last", "order-none"),
		prefixed("order", "order-", ValueNumber),
		prefixed("grid-cols", "grid-cols-", ValueAny),
		prefixed("grid-rows", "grid-rows-", ValueAny),
		prefixed("grid-flow", "grid-flow-", ValueAny),
		prefixed("col-start", "col-start-", ValueAny),
		prefixed("col-end", "col-end-", ValueAny),
		prefixed("col", "col-", ValueAny),
		prefixed("row-start", "row-start-", ValueAny),
		prefixed("row-end", "row-end-", ValueAny),
		prefixed("row", "row-", ValueAny),
		prefixed("auto-cols", "auto-cols-", ValueAny),
		prefixed("auto-rows", "auto-rows-", ValueAny),
		prefixed("gap-x", "gap-x-", ValueAny),
		prefixed("gap-y", "gap-y-", ValueAny),
		prefixed("gap", "gap-", ValueAny),
		prefixed("justify-items", "justify-items-", ValueAny),
		prefixed("justify-self", "justify-self-", ValueAny),
		prefixed("justify", "justify-", ValueAny),
		prefixed("align-content", "content-", ValueAny),
		prefixed("align-items", "items-", ValueAny),
		prefixed("align-self", "self-", ValueAny),
		prefixed("place-content", "place-content-", ValueAny),
		prefixed("place-items", "place-items-", ValueAny),
		prefixed("place-self", "place-self-", ValueAny),
	)

	// Spacing
	for _, p := range []string{"p", "px", "py", "pt", "pr", "pb", "pl", "ps", "pe",
		"m", "mx", "my", "mt", "mr", "mb", "ml", "ms", "me"} {
		add(prefixed(FamilyID(p), p+"-", ValueLength))
	}
	add(
		exact("space-x-reverse", "space-x-reverse"),
		exact("space-y-reverse", "space-y-reverse"),
		prefixed("space-x", "space-x-", ValueLength),
		prefixed("space-y", "space-y-", ValueLength),
	)

	// Sizing
	for _, p := range []string{"w", "h", "size", "min-w", "min-h", "max-w", "max-h"} {
		add(prefixed(FamilyID(p), p+"-", ValueSize))
	}

	// Typography
	add(
		exact("text-align", "text-left", "text-center", "text-right", "text-justify", "text-start", "text-end"),
		exact("text-wrap", "text-wrap", "text-nowrap", "text-balance", "text-pretty"),
		exact("text-overflow", "text-ellipsis", "text-clip"),
		exact("truncate", "truncate"),
		prefixed("text-opacity", "text-opacity-", ValueNumber),
		prefixed("font-size", "text-", ValueTshirt),
		prefixed("text-color", "text-", ValueAny),
		exact("font-weight", "font-thin", "font-extralight", "font-light", "font-normal", "font-medium",
			"font-semibold", "font-bold", "font-extrabold", "font-black"),
		prefixed("font-family", "font-", ValueAny),
		exact("font-style", "italic", "not-italic"),
		exact("font-smoothing", "antialiased", "subpixel-antialiased"),
		exact("text-transform", "uppercase", "lowercase", "capitalize", "normal-case"),
		exact("text-decoration", "underline", "overline", "line-through", "no-underline"),
		prefixed("underline-offset", "underline-offset-", ValueAny),
		exact("decoration-style", "decoration-solid", "decoration-double", "decoration-dotted",
			"decoration-dashed", "decoration-wavy"),
		exact("decoration-thickness", "decoration-auto", "decoration-from-font"),
		prefixed("decoration-thickness", "decoration-", ValueLength),
		prefixed("decoration-color", "decoration-", ValueAny),
		prefixed("leading", "leading-", ValueAny),
		prefixed("tracking", "tracking-", ValueAny),
		prefixed("line-clamp", "line-clamp-", ValueAny),
		prefixed("whitespace", "whitespace-", ValueAny),
		exact("word-break", "break-normal", "break-words", "break-all", "break-keep"),
		prefixed("indent", "indent-", ValueAny),
		exact("list-position", "list-inside", "list-outside"),
		prefixed("list-type", "list-", ValueAny),
	)

	// Backgrounds
	add(
		exact("bg-attachment", "bg-fixed", "bg-local", "bg-scroll"),
		exact("bg-clip", "bg-clip-border", "bg-clip-padding", "bg-clip-content", "bg-clip-text"),
		exact("bg-origin", "bg-origin-border", "bg-origin-padding", "bg-origin-content"),
		exact("bg-repeat", "bg-repeat", "bg-no-repeat", "bg-repeat-x", "bg-repeat-y", "bg-repeat-round", "bg-repeat-space"),
		exact("bg-size", "bg-auto", "bg-cover", "bg-contain"),
		exact("bg-position", "bg-bottom", "bg-center", "bg-left", "bg-left-bottom", "bg-left-top",
			"bg-right", "bg-right-bottom", "bg-right-top", "bg-top"),
		exact("bg-image", "bg-none"),
		prefixed("bg-image", "bg-gradient-to-", ValueAny),
		prefixed("bg-opacity", "bg-opacity-", ValueNumber),
		prefixed("bg-color", "bg-", ValueAny),
		prefixed("gradient-from", "from-", ValueAny),
		prefixed("gradient-via", "via-", ValueAny),
		prefixed("gradient-to", "to-", ValueAny),
	)

	// Borders
	add(
		exact("rounded", "rounded"),
		exact("border-w", "border"),
		exact("border-style", "border-solid", "border-dashed", "border-dotted", "border-double",
			"border-hidden", "border-none"),
		exact("border-collapse", "border-collapse", "border-separate"),
		prefixed("border-spacing", "border-spacing-", ValueAny),
	)
	for _, c := range corners {
		add(exact(FamilyID("rounded-"+c), "rounded-"+c), prefixed(FamilyID("rounded-"+c), "rounded-"+c+"-", ValueAny))
	}
	add(prefixed("rounded", "rounded-", ValueAny))
	for _, s := range sides {
		add(
			exact(FamilyID("border-w-"+s), "border-"+s),
			prefixed(FamilyID("border-w-"+s), "border-"+s+"-", ValueLength),
			prefixed(FamilyID("border-color-"+s), "border-"+s+"-", ValueAny),
		)
	}
	add(
		prefixed("border-w", "border-", ValueLength),
		prefixed("border-opacity", "border-opacity-", ValueNumber),
		prefixed("border-color", "border-", ValueAny),
		exact("divide-x", "divide-x"), prefixed("divide-x", "divide-x-", ValueLength),
		exact("divide-y", "divide-y"), prefixed("divide-y", "divide-y-", ValueLength),
		prefixed("divide-color", "divide-", ValueAny),
		exact("outline-style", "outline", "outline-none", "outline-dashed", "outline-dotted", "outline-double", "outline-hidden"),
		prefixed("outline-offset", "outline-offset-", ValueAny),
		prefixed("outline-w", "outline-", ValueLength),
		prefixed("outline-color", "outline-", ValueAny),
		exact("ring-w", "ring"),
		exact("ring-inset", "ring-inset"),
		prefixed("ring-offset-w", "ring-offset-", ValueLength),
		prefixed("ring-offset-color", "ring-offset-", ValueAny),
		prefixed("ring-opacity", "ring-opacity-", ValueNumber),
		prefixed("ring-w", "ring-", ValueLength),
		prefixed("ring-color", "ring-", ValueAny),
	)

	// Effects and filters
	add(
		exact("shadow", "shadow", "shadow-none", "shadow-inner"),
		prefixed("shadow", "shadow-", ValueTshirt),
		prefixed("shadow", "shadow-", ValueShadow),
		prefixed("shadow-color", "shadow-", ValueAny),
		prefixed("opacity", "opacity-", ValueAny),
		prefixed("mix-blend", "mix-blend-", ValueAny),
		exact("blur", "blur"), prefixed("blur", "blur-", ValueAny),
		exact("backdrop-blur", "backdrop-blur"), prefixed("backdrop-blur", "backdrop-blur-", ValueAny),
		prefixed("brightness", "brightness-", ValueAny),
		exact("grayscale", "grayscale"), prefixed("grayscale", "grayscale-", ValueAny),
	)

	// Transitions, animation and transforms
	add(
		exact("transition", "transition"),
		prefixed("transition", "transition-", ValueAny),
		prefixed("duration", "duration-", ValueAny),
		prefixed("ease", "ease-", ValueAny),
		prefixed("delay", "delay-", ValueAny),
		prefixed("animate", "animate-", ValueAny),
		prefixed("fade-in", "fade-in-", ValueAny),
		prefixed("fade-out", "fade-out-", ValueAny),
		prefixed("zoom-in", "zoom-in-", ValueAny),
		prefixed("zoom-out", "zoom-out-", ValueAny),
		prefixed("slide-in-from-top", "slide-in-from-top-", ValueAny),
		prefixed("slide-in-from-bottom", "slide-in-from-bottom-", ValueAny),
		prefixed("slide-in-from-left", "slide-in-from-left-", ValueAny),
		prefixed("slide-in-from-right", "slide-in-from-right-", ValueAny),
		prefixed("slide-out-to-top", "slide-out-to-top-", ValueAny),
		prefixed("slide-out-to-bottom", "slide-out-to-bottom-", ValueAny),
		prefixed("slide-out-to-left", "slide-out-to-left-", ValueAny),
		prefixed("slide-out-to-right", "slide-out-to-right-", ValueAny),
		prefixed("scale-x", "scale-x-", ValueAny),
		prefixed("scale-y", "scale-y-", ValueAny),
		prefixed("scale", "scale-", ValueAny),
		prefixed("rotate", "rotate-", ValueAny),
		prefixed("translate-x", "translate-x-", ValueAny),
		prefixed("translate-y", "translate-y-", ValueAny),
		prefixed("skew-x", "skew-x-", ValueAny),
		prefixed("skew-y", "skew-y-", ValueAny),
		prefixed("origin", "origin-", ValueAny),
	)

	// Interactivity and SVG
	add(
		prefixed("cursor", "cursor-", ValueAny),
		prefixed("pointer-events", "pointer-events-", ValueAny),
		prefixed("select", "select-", ValueAny),
		exact("resize", "resize"), prefixed("resize", "resize-", ValueAny),
		prefixed("appearance", "appearance-", ValueAny),
		prefixed("touch", "touch-", ValueAny),
		prefixed("scroll-behavior", "scroll-", ValueAny),
		prefixed("will-change", "will-change-", ValueAny),
		prefixed("caret", "caret-", ValueAny),
		prefixed("accent", "accent-", ValueAny),
		prefixed("fill", "fill-", ValueAny),
		prefixed("stroke-w", "stroke-", ValueNumber),
		prefixed("stroke", "stroke-", ValueAny),
	)
	return rules
}

func defaultConflicts() map[FamilyID][]FamilyID {
	conflicts := map[FamilyID][]FamilyID{
		"p":        {"px", "py", "pt", "pr", "pb", "pl", "ps", "pe"},
		"px":       {"pr", "pl"},
		"py":       {"pt", "pb"},
		"m":        {"mx", "my", "mt", "mr", "mb", "ml", "ms", "me"},
		"mx":       {"mr", "ml"},
		"my":       {"mt", "mb"},
		"size":     {"w", "h"},
		"inset":    {"inset-x", "inset-y", "top", "right", "bottom", "left", "start", "end"},
		"inset-x":  {"right", "left"},
		"inset-y":  {"top", "bottom"},
		"gap":      {"gap-x", "gap-y"},
		"overflow": {"overflow-x", "overflow-y"},
		"scale":    {"scale-x", "scale-y"},
		"flex":     {"grow", "shrink", "basis"},
		"truncate": {"text-overflow", "whitespace", "overflow"},
		"rounded": {"rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-s", "rounded-e",
			"rounded-tl", "rounded-tr", "rounded-br", "rounded-bl", "rounded-ss", "rounded-se", "rounded-es", "rounded-ee"},
		"rounded-t": {"rounded-tl", "rounded-tr"},
		"rounded-r": {"rounded-tr", "rounded-br"},
		"rounded-b": {"rounded-br", "rounded-bl"},
		"rounded-l": {"rounded-tl", "rounded-bl"},
		"rounded-s": {"rounded-ss", "rounded-es"},
		"rounded-e": {"rounded-se", "rounded-ee"},
	}
	for _, group := range []string{"border-w", "border-color"} {
		var all []FamilyID
		for _, s := range sides {
			all = append(all, FamilyID(group+"-"+s))
		}
		conflicts[FamilyID(group)] = all
		conflicts[FamilyID(group+"-x")] = []FamilyID{FamilyID(group + "-r"), FamilyID(group + "-l")}
		conflicts[FamilyID(group+"-y")] = []FamilyID{FamilyID(group + "-t"), FamilyID(group + "-b")}
	}
	return conflicts
}
