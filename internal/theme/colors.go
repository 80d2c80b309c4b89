package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Bell colors
const (
	ColorBell  Color = "160" // Red - the bell disc
	ColorLabel Color = "255" // White - prompt label
)

// Bell state colors
const (
	ColorIdle  Color = "8" // Gray - idle
	ColorReady Color = "3" // Yellow - armed
	ColorShame Color = "1" // Red - ringing
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Table colors
const (
	ColorTableBorder Color = "238"
	ColorTableHeader Color = "141" // Purple
)
