package domain

import (
	"fmt"
	"strings"
)

const unknownDescription = "Unknown"

// Theme selects the colour palette applied to a rendered chart.
type Theme string

// Available chart themes.
const (
	// ThemeClassic is the default palette.
	ThemeClassic Theme = "classic"

	// ThemeLight uses a bright background with muted accents.
	ThemeLight Theme = "light"

	// ThemeDark uses a dark background.
	ThemeDark Theme = "dark"

	// ThemeStrawberry uses a dark background with pink accents.
	ThemeStrawberry Theme = "strawberry"

	// ThemeDarkHighContrast is a high-contrast variant of the dark palette.
	ThemeDarkHighContrast Theme = "dark-high-contrast"
)

// DefaultTheme is used when no valid theme is supplied.
const DefaultTheme = ThemeClassic

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeClassic, ThemeLight, ThemeDark, ThemeStrawberry, ThemeDarkHighContrast:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// Description returns a human-readable description of the theme.
func (t Theme) Description() string {
	switch t {
	case ThemeClassic:
		return "Classic (default palette)"
	case ThemeLight:
		return "Light (bright background)"
	case ThemeDark:
		return "Dark (dark background)"
	case ThemeStrawberry:
		return "Strawberry (dark with pink accents)"
	case ThemeDarkHighContrast:
		return "Dark High Contrast"
	default:
		return unknownDescription
	}
}

// ParseTheme canonicalises a raw theme value. Matching is case-insensitive.
// Empty input selects the default silently; unknown input selects the
// default and reports coerced=true.
func ParseTheme(raw string) (theme Theme, coerced bool) {
	if raw == "" {
		return DefaultTheme, false
	}
	t := Theme(strings.ToLower(raw))
	if !t.IsValid() {
		return DefaultTheme, true
	}
	return t, false
}

// AllThemes returns all available themes.
func AllThemes() []Theme {
	return []Theme{
		ThemeClassic,
		ThemeLight,
		ThemeDark,
		ThemeStrawberry,
		ThemeDarkHighContrast,
	}
}

// Language selects the language chart labels are drawn in.
type Language string

// Available chart languages.
const (
	LanguageEN Language = "EN"
	LanguageIT Language = "IT"
	LanguageFR Language = "FR"
	LanguageES Language = "ES"
	LanguagePT Language = "PT"
	LanguageCN Language = "CN"
	LanguageRU Language = "RU"
	LanguageTR Language = "TR"
	LanguageDE Language = "DE"
	LanguageHI Language = "HI"
)

// DefaultLanguage is used when no valid language is supplied.
const DefaultLanguage = LanguageEN

// IsValid returns true if the language is recognised.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEN, LanguageIT, LanguageFR, LanguageES, LanguagePT,
		LanguageCN, LanguageRU, LanguageTR, LanguageDE, LanguageHI:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}

// Description returns a human-readable description of the language.
func (l Language) Description() string {
	switch l {
	case LanguageEN:
		return "English"
	case LanguageIT:
		return "Italian"
	case LanguageFR:
		return "French"
	case LanguageES:
		return "Spanish"
	case LanguagePT:
		return "Portuguese"
	case LanguageCN:
		return "Chinese"
	case LanguageRU:
		return "Russian"
	case LanguageTR:
		return "Turkish"
	case LanguageDE:
		return "German"
	case LanguageHI:
		return "Hindi"
	default:
		return unknownDescription
	}
}

// ParseLanguage canonicalises a raw language code. Matching is
// case-insensitive. Empty input selects the default silently; unknown
// input selects the default and reports coerced=true.
func ParseLanguage(raw string) (lang Language, coerced bool) {
	if raw == "" {
		return DefaultLanguage, false
	}
	l := Language(strings.ToUpper(raw))
	if !l.IsValid() {
		return DefaultLanguage, true
	}
	return l, false
}

// AllLanguages returns all available chart languages.
func AllLanguages() []Language {
	return []Language{
		LanguageEN, LanguageIT, LanguageFR, LanguageES, LanguagePT,
		LanguageCN, LanguageRU, LanguageTR, LanguageDE, LanguageHI,
	}
}

// HouseSystem identifies the house division method by its single-letter
// ephemeris identifier.
type HouseSystem string

// Available house systems.
const (
	HouseSystemPlacidus      HouseSystem = "P"
	HouseSystemWholeSign     HouseSystem = "W"
	HouseSystemKoch          HouseSystem = "K"
	HouseSystemEqual         HouseSystem = "A"
	HouseSystemCampanus      HouseSystem = "C"
	HouseSystemRegiomontanus HouseSystem = "R"
)

// DefaultHouseSystem is used when no valid house system is supplied.
const DefaultHouseSystem = HouseSystemPlacidus

// IsValid returns true if the house system is recognised.
func (h HouseSystem) IsValid() bool {
	switch h {
	case HouseSystemPlacidus, HouseSystemWholeSign, HouseSystemKoch,
		HouseSystemEqual, HouseSystemCampanus, HouseSystemRegiomontanus:
		return true
	default:
		return false
	}
}

// String returns the single-letter identifier.
func (h HouseSystem) String() string {
	return string(h)
}

// Description returns the house system's full name.
func (h HouseSystem) Description() string {
	switch h {
	case HouseSystemPlacidus:
		return "Placidus"
	case HouseSystemWholeSign:
		return "Whole Sign"
	case HouseSystemKoch:
		return "Koch"
	case HouseSystemEqual:
		return "Equal"
	case HouseSystemCampanus:
		return "Campanus"
	case HouseSystemRegiomontanus:
		return "Regiomontanus"
	default:
		return unknownDescription
	}
}

// ParseHouseSystem canonicalises a raw house system identifier. Matching
// is case-insensitive. Empty input selects the default silently; unknown
// input selects the default and reports coerced=true.
func ParseHouseSystem(raw string) (hs HouseSystem, coerced bool) {
	if raw == "" {
		return DefaultHouseSystem, false
	}
	h := HouseSystem(strings.ToUpper(raw))
	if !h.IsValid() {
		return DefaultHouseSystem, true
	}
	return h, false
}

// AllHouseSystems returns all available house systems.
func AllHouseSystems() []HouseSystem {
	return []HouseSystem{
		HouseSystemPlacidus,
		HouseSystemWholeSign,
		HouseSystemKoch,
		HouseSystemEqual,
		HouseSystemCampanus,
		HouseSystemRegiomontanus,
	}
}

// ZodiacType selects the zodiac reference frame.
type ZodiacType string

// Available zodiac types.
const (
	// ZodiacTropical is the season-based Western zodiac.
	ZodiacTropical ZodiacType = "Tropical"

	// ZodiacSidereal is the star-based Vedic zodiac.
	ZodiacSidereal ZodiacType = "Sidereal"
)

// DefaultZodiacType is used when no valid zodiac type is supplied.
const DefaultZodiacType = ZodiacTropical

// IsValid returns true if the zodiac type is recognised.
func (z ZodiacType) IsValid() bool {
	switch z {
	case ZodiacTropical, ZodiacSidereal:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (z ZodiacType) String() string {
	return string(z)
}

// Description returns a human-readable description of the zodiac type.
func (z ZodiacType) Description() string {
	switch z {
	case ZodiacTropical:
		return "Tropical (Western)"
	case ZodiacSidereal:
		return "Sidereal (Vedic)"
	default:
		return unknownDescription
	}
}

// ParseZodiacType canonicalises a raw zodiac type. Matching is
// case-insensitive. Empty input selects the default silently; unknown
// input selects the default and reports coerced=true.
func ParseZodiacType(raw string) (zt ZodiacType, coerced bool) {
	if raw == "" {
		return DefaultZodiacType, false
	}
	for _, z := range AllZodiacTypes() {
		if strings.EqualFold(raw, z.String()) {
			return z, false
		}
	}
	return DefaultZodiacType, true
}

// AllZodiacTypes returns all available zodiac types.
func AllZodiacTypes() []ZodiacType {
	return []ZodiacType{ZodiacTropical, ZodiacSidereal}
}

// SiderealMode identifies the ayanamsha used for sidereal charts.
type SiderealMode string

// Available sidereal modes. The zero value means no mode is set, which
// is the correct state for tropical charts.
const (
	SiderealModeNone         SiderealMode = ""
	SiderealModeLahiri       SiderealMode = "LAHIRI"
	SiderealModeRaman        SiderealMode = "RAMAN"
	SiderealModeFaganBradley SiderealMode = "FAGAN_BRADLEY"
	SiderealModeKrishnamurti SiderealMode = "KRISHNAMURTI"
)

// IsValid returns true if the sidereal mode is one of the named modes.
// SiderealModeNone is not valid as a named mode; it stands for absence.
func (m SiderealMode) IsValid() bool {
	switch m {
	case SiderealModeLahiri, SiderealModeRaman, SiderealModeFaganBradley, SiderealModeKrishnamurti:
		return true
	default:
		return false
	}
}

// String returns the string representation; empty for SiderealModeNone.
func (m SiderealMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m SiderealMode) Description() string {
	switch m {
	case SiderealModeNone:
		return "Not set"
	case SiderealModeLahiri:
		return "Lahiri (Chitrapaksha)"
	case SiderealModeRaman:
		return "Raman"
	case SiderealModeFaganBradley:
		return "Fagan-Bradley"
	case SiderealModeKrishnamurti:
		return "Krishnamurti"
	default:
		return unknownDescription
	}
}

// ParseSiderealMode canonicalises a raw sidereal mode. Matching is
// case-insensitive. Empty input means no mode, reported without coercion;
// unknown input falls back to no mode and reports coerced=true.
func ParseSiderealMode(raw string) (mode SiderealMode, coerced bool) {
	if raw == "" {
		return SiderealModeNone, false
	}
	m := SiderealMode(strings.ToUpper(raw))
	if !m.IsValid() {
		return SiderealModeNone, true
	}
	return m, false
}

// AllSiderealModes returns the named sidereal modes.
func AllSiderealModes() []SiderealMode {
	return []SiderealMode{
		SiderealModeLahiri,
		SiderealModeRaman,
		SiderealModeFaganBradley,
		SiderealModeKrishnamurti,
	}
}

// Perspective selects the observer standpoint for planetary positions.
type Perspective string

// Available perspectives.
const (
	PerspectiveApparentGeocentric Perspective = "Apparent Geocentric"
	PerspectiveHeliocentric       Perspective = "Heliocentric"
	PerspectiveTopocentric        Perspective = "Topocentric"
	PerspectiveTrueGeocentric     Perspective = "True Geocentric"
)

// DefaultPerspective is used when no valid perspective is supplied.
const DefaultPerspective = PerspectiveApparentGeocentric

// IsValid returns true if the perspective is recognised.
func (p Perspective) IsValid() bool {
	switch p {
	case PerspectiveApparentGeocentric, PerspectiveHeliocentric,
		PerspectiveTopocentric, PerspectiveTrueGeocentric:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Perspective) String() string {
	return string(p)
}

// Description returns a human-readable description of the perspective.
func (p Perspective) Description() string {
	switch p {
	case PerspectiveApparentGeocentric:
		return "Apparent Geocentric (default)"
	case PerspectiveHeliocentric:
		return "Heliocentric (Sun-centred)"
	case PerspectiveTopocentric:
		return "Topocentric (observer location)"
	case PerspectiveTrueGeocentric:
		return "True Geocentric"
	default:
		return unknownDescription
	}
}

// ParsePerspective canonicalises a raw perspective. Matching is
// case-insensitive. Empty input selects the default silently; unknown
// input selects the default and reports coerced=true.
func ParsePerspective(raw string) (persp Perspective, coerced bool) {
	if raw == "" {
		return DefaultPerspective, false
	}
	for _, p := range AllPerspectives() {
		if strings.EqualFold(raw, p.String()) {
			return p, false
		}
	}
	return DefaultPerspective, true
}

// AllPerspectives returns all available perspectives.
func AllPerspectives() []Perspective {
	return []Perspective{
		PerspectiveApparentGeocentric,
		PerspectiveHeliocentric,
		PerspectiveTopocentric,
		PerspectiveTrueGeocentric,
	}
}

// ChartStyle selects which parts of a chart are drawn.
type ChartStyle string

// Available chart styles.
const (
	// ChartStyleFull draws the wheel plus the aspect grid.
	ChartStyleFull ChartStyle = "full"

	// ChartStyleWheelOnly draws just the wheel.
	ChartStyleWheelOnly ChartStyle = "wheel_only"

	// ChartStyleAspectGrid draws just the aspect table.
	ChartStyleAspectGrid ChartStyle = "aspect_grid"
)

// DefaultChartStyle is used when no valid style is supplied.
const DefaultChartStyle = ChartStyleFull

// IsValid returns true if the chart style is recognised.
func (s ChartStyle) IsValid() bool {
	switch s {
	case ChartStyleFull, ChartStyleWheelOnly, ChartStyleAspectGrid:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ChartStyle) String() string {
	return string(s)
}

// Description returns a human-readable description of the style.
func (s ChartStyle) Description() string {
	switch s {
	case ChartStyleFull:
		return "Full chart (wheel + aspect grid)"
	case ChartStyleWheelOnly:
		return "Wheel only"
	case ChartStyleAspectGrid:
		return "Aspect grid only"
	default:
		return unknownDescription
	}
}

// ParseChartStyle canonicalises a raw chart style. Matching is
// case-insensitive. Empty input selects the default silently; unknown
// input selects the default and reports coerced=true.
func ParseChartStyle(raw string) (style ChartStyle, coerced bool) {
	if raw == "" {
		return DefaultChartStyle, false
	}
	s := ChartStyle(strings.ToLower(raw))
	if !s.IsValid() {
		return DefaultChartStyle, true
	}
	return s, false
}

// AllChartStyles returns all available chart styles.
func AllChartStyles() []ChartStyle {
	return []ChartStyle{ChartStyleFull, ChartStyleWheelOnly, ChartStyleAspectGrid}
}

// RawChartOptions carries caller-supplied option values before
// canonicalisation. Empty fields mean "use the default".
type RawChartOptions struct {
	Theme        string
	Language     string
	HouseSystem  string
	ZodiacType   string
	SiderealMode string
	Perspective  string
	ChartStyle   string
}

// ChartOptions holds a fully canonical option set.
type ChartOptions struct {
	Theme        Theme
	Language     Language
	HouseSystem  HouseSystem
	ZodiacType   ZodiacType
	SiderealMode SiderealMode
	Perspective  Perspective
	ChartStyle   ChartStyle
}

// DefaultChartOptions returns the documented defaults for every option.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Theme:        DefaultTheme,
		Language:     DefaultLanguage,
		HouseSystem:  DefaultHouseSystem,
		ZodiacType:   DefaultZodiacType,
		SiderealMode: SiderealModeNone,
		Perspective:  DefaultPerspective,
		ChartStyle:   DefaultChartStyle,
	}
}

// ParseChartOptions canonicalises every option, substituting documented
// defaults for unknown values. Each substitution is reported as a warning;
// the returned options are always usable. A sidereal mode supplied for a
// tropical chart is dropped, since it would have no effect.
func ParseChartOptions(raw RawChartOptions) (ChartOptions, []string) {
	var warnings []string
	var opts ChartOptions
	var coerced bool

	if opts.Theme, coerced = ParseTheme(raw.Theme); coerced {
		warnings = append(warnings, fmt.Sprintf("unknown theme %q, using %q", raw.Theme, opts.Theme))
	}
	if opts.Language, coerced = ParseLanguage(raw.Language); coerced {
		warnings = append(warnings, fmt.Sprintf("unknown language %q, using %q", raw.Language, opts.Language))
	}
	if opts.HouseSystem, coerced = ParseHouseSystem(raw.HouseSystem); coerced {
		warnings = append(warnings, fmt.Sprintf("unknown house system %q, using %q (%s)",
			raw.HouseSystem, opts.HouseSystem, opts.HouseSystem.Description()))
	}
	if opts.ZodiacType, coerced = ParseZodiacType(raw.ZodiacType); coerced {
		warnings = append(warnings, fmt.Sprintf("unknown zodiac type %q, using %q", raw.ZodiacType, opts.ZodiacType))
	}
	if opts.SiderealMode, coerced = ParseSiderealMode(raw.SiderealMode); coerced {
		warnings = append(warnings, fmt.Sprintf("unknown sidereal mode %q, none set", raw.SiderealMode))
	}
	if opts.Perspective, coerced = ParsePerspective(raw.Perspective); coerced {
		warnings = append(warnings, fmt.Sprintf("unknown perspective %q, using %q", raw.Perspective, opts.Perspective))
	}
	if opts.ChartStyle, coerced = ParseChartStyle(raw.ChartStyle); coerced {
		warnings = append(warnings, fmt.Sprintf("unknown chart style %q, using %q", raw.ChartStyle, opts.ChartStyle))
	}

	if opts.SiderealMode != SiderealModeNone && opts.ZodiacType != ZodiacSidereal {
		warnings = append(warnings, fmt.Sprintf("sidereal mode %q ignored for %s zodiac", opts.SiderealMode, opts.ZodiacType))
		opts.SiderealMode = SiderealModeNone
	}

	return opts, warnings
}
