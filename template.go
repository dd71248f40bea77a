package invoicepdf

import (
	"fmt"
	"strings"
)

// Template style constants. The set is closed: rendering supports exactly
// these seven visual presentations of the same document content.
const (
	StyleModern     TemplateStyle = "modern"
	StyleClassic    TemplateStyle = "classic"
	StyleMinimal    TemplateStyle = "minimal"
	StyleVibrant    TemplateStyle = "vibrant"
	StyleTealAccent TemplateStyle = "teal"
	StyleGoldTheme  TemplateStyle = "gold"
	StyleBoxed      TemplateStyle = "boxed"
)

// TemplateStyle selects one of the seven visual templates.
type TemplateStyle string

// HeaderShape is the decorative header treatment a style uses.
type HeaderShape int

// Header shape constants.
const (
	HeaderFullRule  HeaderShape = iota // left title, full-width rule
	HeaderSidebar                      // left accent sidebar, rotated title
	HeaderCenterRule                   // centered title over a horizontal rule
	HeaderBanner                       // diagonal accent banner
	HeaderBox                          // bordered, filled title box
	HeaderUnderline                    // left title, short underline
)

// StyleConfig is the immutable per-style configuration bundle. Stripe always
// equals Secondary; both fields exist because they name different uses of
// the same tone.
type StyleConfig struct {
	Accent    Color
	Secondary Color
	Stripe    Color
	Serif     bool
	Shape     HeaderShape

	// ClosingRule draws a rule beneath the recipient block.
	ClosingRule bool
}

// styleConfigs is the static registry keyed by style tag. Secondary tones
// are the accent composited over white unless the style fixes its own tone.
var styleConfigs = map[TemplateStyle]StyleConfig{
	StyleModern:     newStyle(Color{63, 81, 181}, tint(Color{63, 81, 181}), false, HeaderSidebar, false),
	StyleClassic:    newStyle(Color{44, 62, 80}, tint(Color{44, 62, 80}), true, HeaderCenterRule, true),
	StyleMinimal:    newStyle(Color{97, 97, 97}, tint(Color{97, 97, 97}), false, HeaderUnderline, false),
	StyleVibrant:    newStyle(Color{230, 74, 25}, tint(Color{230, 74, 25}), false, HeaderBanner, false),
	StyleTealAccent: newStyle(Color{0, 137, 123}, Color{224, 242, 241}, false, HeaderFullRule, false),
	StyleGoldTheme:  newStyle(Color{181, 143, 40}, Color{249, 243, 224}, true, HeaderFullRule, true),
	StyleBoxed:      newStyle(Color{33, 33, 33}, tint(Color{33, 33, 33}), false, HeaderBox, false),
}

func newStyle(accent, secondary Color, serif bool, shape HeaderShape, closingRule bool) StyleConfig {
	return StyleConfig{
		Accent:      accent,
		Secondary:   secondary,
		Stripe:      secondary,
		Serif:       serif,
		Shape:       shape,
		ClosingRule: closingRule,
	}
}

// secondaryOpacity is the composite factor for derived secondary tones.
const secondaryOpacity = 0.12

// tint composites c over white at secondaryOpacity. The PDF backend paints
// opaque fills, so semi-transparent accents are pre-blended.
func tint(c Color) Color {
	blend := func(v uint8) uint8 {
		return uint8(255 - secondaryOpacity*float64(255-int(v)))
	}
	return Color{blend(c.R), blend(c.G), blend(c.B)}
}

// TemplateStyles returns all supported styles in stable order.
func TemplateStyles() []TemplateStyle {
	return []TemplateStyle{
		StyleModern, StyleClassic, StyleMinimal, StyleVibrant,
		StyleTealAccent, StyleGoldTheme, StyleBoxed,
	}
}

// ParseTemplateStyle resolves a style name case-insensitively, accepting the
// long spellings "tealaccent" and "goldtheme" as aliases.
func ParseTemplateStyle(s string) (TemplateStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StyleModern):
		return StyleModern, nil
	case string(StyleClassic):
		return StyleClassic, nil
	case string(StyleMinimal):
		return StyleMinimal, nil
	case string(StyleVibrant):
		return StyleVibrant, nil
	case string(StyleTealAccent), "tealaccent":
		return StyleTealAccent, nil
	case string(StyleGoldTheme), "goldtheme":
		return StyleGoldTheme, nil
	case string(StyleBoxed):
		return StyleBoxed, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, s)
}

// LookupStyle returns the configuration for a style. Unknown styles fall
// back to Modern so rendering never fails on the style tag alone; reject
// unknown user input earlier with ParseTemplateStyle.
func LookupStyle(s TemplateStyle) StyleConfig {
	if cfg, ok := styleConfigs[s]; ok {
		return cfg
	}
	return styleConfigs[StyleModern]
}

// Font family names understood by the PDF backend.
const (
	fontSans  = "Helvetica"
	fontSerif = "Times"
)

// Font resolves a font handle of the given size, honoring the style's
// serif/sans selection.
func (s StyleConfig) Font(size float64, bold bool) Font {
	family := fontSans
	if s.Serif {
		family = fontSerif
	}
	style := ""
	if bold {
		style = "B"
	}
	return Font{Family: family, Style: style, Size: size}
}
