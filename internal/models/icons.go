package models

import "fmt"

// Color is a named tint used by presentation code
type Color string

const (
	ColorNone   Color = ""
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

// Icon is a glyph with a tint. The zero Icon means "draw nothing".
type Icon struct {
	Glyph string
	Color Color
}

// IsZero reports whether the icon should be omitted
func (i Icon) IsZero() bool {
	return i.Glyph == ""
}

// Icon maps a media status to its badge
func (s MediaStatus) Icon() Icon {
	switch s {
	case 0, MediaStatusUnknown:
		return Icon{}
	case MediaStatusAvailable:
		return Icon{Glyph: "✔", Color: ColorGreen}
	case MediaStatusPending:
		return Icon{Glyph: "◔", Color: ColorPurple}
	case MediaStatusProcessing:
		return Icon{Glyph: "⏱", Color: ColorPurple}
	case MediaStatusPartiallyAvailable:
		return Icon{Glyph: "◑", Color: ColorYellow}
	}
	panic(fmt.Sprintf("unhandled media status %d", int(s)))
}

// Color maps an issue type to its tag colour
func (t IssueType) Color() Color {
	switch t {
	case IssueTypeVideo:
		return ColorRed
	case IssueTypeAudio:
		return ColorOrange
	case IssueTypeSubtitle:
		return ColorYellow
	case IssueTypeOther:
		return ColorGreen
	}
	panic(fmt.Sprintf("unhandled issue type %d", int(t)))
}
