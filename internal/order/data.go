package order

// defaultClasses is the canonical Tailwind class order. The position of a
// pattern in this list is its rank. Patterns ending in "*" match any class
// sharing the prefix before the star.
var defaultClasses = []string{
	// Container
	"container",

	// Space between
	"space-y-*",
	"space-x-*",
	"space-y-reverse",
	"space-x-reverse",

	// Divide
	"divide-y",
	"divide-y-*",
	"divide-x",
	"divide-x-*",
	"divide-y-reverse",
	"divide-x-reverse",
	"divide-solid",
	"divide-dashed",
	"divide-dotted",
	"divide-double",
	"divide-none",
	"divide-opacity-*",
	"divide-*",

	// Accessibility
	"sr-only",
	"not-sr-only",

	// Appearance
	"appearance-none",

	// Background
	"bg-fixed",
	"bg-local",
	"bg-scroll",
	"bg-clip-*",
	"bg-origin-*",
	"bg-none",
	"bg-gradient-to-*",
	"from-*",
	"via-*",
	"to-*",
	"bg-opacity-*",
	"bg-bottom",
	"bg-center",
	"bg-left",
	"bg-left-bottom",
	"bg-left-top",
	"bg-right",
	"bg-right-bottom",
	"bg-right-top",
	"bg-top",
	"bg-repeat",
	"bg-no-repeat",
	"bg-repeat-x",
	"bg-repeat-y",
	"bg-repeat-round",
	"bg-repeat-space",
	"bg-auto",
	"bg-cover",
	"bg-contain",
	"bg-blend-*",
	"bg-*",

	// Border
	"border-collapse",
	"border-separate",
	"border-opacity-*",
	"rounded",
	"rounded-t",
	"rounded-r",
	"rounded-b",
	"rounded-l",
	"rounded-tl",
	"rounded-tr",
	"rounded-br",
	"rounded-bl",
	"rounded-t-*",
	"rounded-r-*",
	"rounded-b-*",
	"rounded-l-*",
	"rounded-tl-*",
	"rounded-tr-*",
	"rounded-br-*",
	"rounded-bl-*",
	"rounded-*",
	"border-solid",
	"border-dashed",
	"border-dotted",
	"border-double",
	"border-none",
	"border",
	"border-0",
	"border-2",
	"border-4",
	"border-8",
	"border-x",
	"border-x-*",
	"border-y",
	"border-y-*",
	"border-t",
	"border-t-*",
	"border-r",
	"border-r-*",
	"border-b",
	"border-b-*",
	"border-l",
	"border-l-*",
	"border-*",

	// Box sizing
	"box-border",
	"box-content",

	// Cursor
	"cursor-*",

	// Display
	"block",
	"inline-block",
	"inline",
	"flex",
	"inline-flex",
	"table",
	"inline-table",
	"table-caption",
	"table-cell",
	"table-column",
	"table-column-group",
	"table-footer-group",
	"table-header-group",
	"table-row-group",
	"table-row",
	"flow-root",
	"grid",
	"inline-grid",
	"contents",
	"list-item",
	"hidden",

	// Flexbox
	"flex-row",
	"flex-row-reverse",
	"flex-col",
	"flex-col-reverse",
	"flex-wrap",
	"flex-wrap-reverse",
	"flex-nowrap",
	"place-items-*",
	"place-content-*",
	"place-self-*",
	"items-start",
	"items-end",
	"items-center",
	"items-baseline",
	"items-stretch",
	"self-auto",
	"self-start",
	"self-end",
	"self-center",
	"self-stretch",
	"self-baseline",
	"justify-items-*",
	"justify-self-*",
	"content-center",
	"content-start",
	"content-end",
	"content-between",
	"content-around",
	"content-evenly",
	"justify-start",
	"justify-end",
	"justify-center",
	"justify-between",
	"justify-around",
	"justify-evenly",
	"flex-1",
	"flex-auto",
	"flex-initial",
	"flex-none",
	"flex-grow",
	"flex-grow-*",
	"grow",
	"grow-*",
	"flex-shrink",
	"flex-shrink-*",
	"shrink",
	"shrink-*",
	"basis-*",
	"order-*",

	// Float and clear
	"float-*",
	"clear-*",

	// Font family and weight
	"font-sans",
	"font-serif",
	"font-mono",
	"font-thin",
	"font-extralight",
	"font-light",
	"font-normal",
	"font-medium",
	"font-semibold",
	"font-bold",
	"font-extrabold",
	"font-black",
	"font-*",

	// Height
	"h-*",

	// Font size
	"text-xs",
	"text-sm",
	"text-base",
	"text-lg",
	"text-xl",
	"text-2xl",
	"text-3xl",
	"text-4xl",
	"text-5xl",
	"text-6xl",
	"text-7xl",
	"text-8xl",
	"text-9xl",

	// Line height
	"leading-*",

	// List style
	"list-inside",
	"list-outside",
	"list-*",

	// Margin
	"m-*",
	"my-*",
	"mx-*",
	"mt-*",
	"mr-*",
	"mb-*",
	"ml-*",
	"ms-*",
	"me-*",

	// Sizing limits
	"max-h-*",
	"max-w-*",
	"min-h-*",
	"min-w-*",

	// Object fit and position
	"object-contain",
	"object-cover",
	"object-fill",
	"object-none",
	"object-scale-down",
	"object-*",

	// Opacity
	"opacity-*",

	// Outline
	"outline-none",
	"outline",
	"outline-*",

	// Overflow
	"overflow-auto",
	"overflow-hidden",
	"overflow-clip",
	"overflow-visible",
	"overflow-scroll",
	"overflow-x-*",
	"overflow-y-*",
	"overflow-*",
	"overscroll-*",

	// Padding
	"p-*",
	"py-*",
	"px-*",
	"pt-*",
	"pr-*",
	"pb-*",
	"pl-*",
	"ps-*",
	"pe-*",

	// Placeholder
	"placeholder-opacity-*",
	"placeholder-*",

	// Pointer events
	"pointer-events-*",

	// Position
	"static",
	"fixed",
	"absolute",
	"relative",
	"sticky",
	"inset-*",
	"inset-y-*",
	"inset-x-*",
	"top-*",
	"right-*",
	"bottom-*",
	"left-*",
	"start-*",
	"end-*",

	// Resize
	"resize-none",
	"resize-y",
	"resize-x",
	"resize",

	// Box shadow and ring
	"shadow",
	"shadow-*",
	"ring",
	"ring-inset",
	"ring-offset-*",
	"ring-opacity-*",
	"ring-*",

	// SVG
	"fill-*",
	"stroke-*",

	// Table layout
	"table-auto",
	"table-fixed",

	// Text alignment
	"text-left",
	"text-center",
	"text-right",
	"text-justify",
	"text-start",
	"text-end",

	// Text color
	"text-opacity-*",
	"text-*",

	// Font style and text transform
	"italic",
	"not-italic",
	"uppercase",
	"lowercase",
	"capitalize",
	"normal-case",

	// Text decoration
	"underline",
	"overline",
	"line-through",
	"no-underline",
	"decoration-*",
	"underline-offset-*",

	// Font smoothing and numeric variants
	"antialiased",
	"subpixel-antialiased",
	"normal-nums",
	"ordinal",
	"slashed-zero",
	"lining-nums",
	"oldstyle-nums",
	"proportional-nums",
	"tabular-nums",
	"diagonal-fractions",
	"stacked-fractions",

	// Letter spacing
	"tracking-*",

	// User select
	"select-*",

	// Vertical alignment
	"align-*",

	// Visibility
	"visible",
	"invisible",
	"collapse",

	// Whitespace and word break
	"whitespace-*",
	"break-*",
	"truncate",
	"text-ellipsis",
	"text-clip",
	"line-clamp-*",
	"indent-*",

	// Width
	"w-*",
	"size-*",

	// Z-index
	"z-*",

	// Gap
	"gap-*",
	"gap-x-*",
	"gap-y-*",

	// Grid
	"grid-flow-*",
	"grid-cols-*",
	"col-auto",
	"col-span-*",
	"col-start-*",
	"col-end-*",
	"grid-rows-*",
	"row-auto",
	"row-span-*",
	"row-start-*",
	"row-end-*",
	"auto-cols-*",
	"auto-rows-*",
	"columns-*",
	"aspect-*",

	// Transform
	"transform",
	"transform-gpu",
	"transform-none",
	"origin-*",
	"scale-*",
	"scale-x-*",
	"scale-y-*",
	"rotate-*",
	"translate-x-*",
	"translate-y-*",
	"skew-x-*",
	"skew-y-*",

	// Filters
	"filter",
	"filter-none",
	"blur",
	"blur-*",
	"brightness-*",
	"contrast-*",
	"drop-shadow",
	"drop-shadow-*",
	"grayscale",
	"grayscale-*",
	"hue-rotate-*",
	"invert",
	"invert-*",
	"saturate-*",
	"sepia",
	"sepia-*",
	"backdrop-*",

	// Interactivity
	"accent-*",
	"caret-*",
	"scroll-*",
	"snap-*",
	"touch-*",
	"will-change-*",
	"appearance-auto",

	// Transition and animation
	"transition",
	"transition-*",
	"ease-*",
	"duration-*",
	"delay-*",
	"animate-*",
}

// knownVariants are the modifier prefixes stripped before ranking.
var knownVariants = map[string]bool{
	// Responsive
	"sm":  true,
	"md":  true,
	"lg":  true,
	"xl":  true,
	"2xl": true,

	// Color scheme, media and direction
	"dark":          true,
	"light":         true,
	"print":         true,
	"portrait":      true,
	"landscape":     true,
	"motion-safe":   true,
	"motion-reduce": true,
	"contrast-more": true,
	"contrast-less": true,
	"ltr":           true,
	"rtl":           true,
	"forced-colors": true,

	// Interaction state
	"hover":         true,
	"focus":         true,
	"focus-within":  true,
	"focus-visible": true,
	"active":        true,
	"visited":       true,
	"target":        true,
	"disabled":      true,
	"enabled":       true,
	"checked":       true,
	"indeterminate": true,
	"default":       true,
	"required":      true,
	"valid":         true,
	"invalid":       true,
	"in-range":      true,
	"out-of-range":  true,
	"read-only":     true,
	"autofill":      true,
	"open":          true,

	// Structural
	"first":         true,
	"last":          true,
	"only":          true,
	"odd":           true,
	"even":          true,
	"first-of-type": true,
	"last-of-type":  true,
	"only-of-type":  true,
	"empty":         true,

	// Pseudo-elements
	"before":            true,
	"after":             true,
	"placeholder":       true,
	"placeholder-shown": true,
	"file":              true,
	"marker":            true,
	"selection":         true,
	"first-line":        true,
	"first-letter":      true,
	"backdrop":          true,
	"*":                 true,
}

// variantFamilies are variant prefixes that take a parameter, such as
// group-hover, peer-focus, aria-checked or max-md.
var variantFamilies = []string{
	"group-",
	"peer-",
	"aria-",
	"data-",
	"supports-",
	"has-",
	"max-",
	"min-",
	"not-",
}
