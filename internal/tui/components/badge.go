package components

import "github.com/charmbracelet/lipgloss"

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
	BadgeVariantMuted
)

var badgeStyles = map[BadgeVariant]lipgloss.Style{
	BadgeVariantDefault: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	BadgeVariantSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	BadgeVariantWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	BadgeVariantError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	BadgeVariantMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// Badge is a small status indicator.
type Badge struct {
	text    string
	variant BadgeVariant
}

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{text: text}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}

// View renders the badge.
func (b *Badge) View() string {
	style, ok := badgeStyles[b.variant]
	if !ok {
		style = badgeStyles[BadgeVariantDefault]
	}
	return style.Render(b.text)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantError)
}

// MutedBadge creates a muted badge.
func MutedBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantMuted)
}
