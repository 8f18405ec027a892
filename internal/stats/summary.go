package stats

import (
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Color is a display hint understood by the site's renderer.
type Color string

const (
	ColorSuccess Color = "success"
	ColorWarning Color = "warning"
	ColorNeutral Color = "neutral"
	ColorDanger  Color = "danger"
	ColorInfo    Color = "info"
)

// Placeholder replaces a number that cannot be computed from empty input.
const Placeholder = "-"

var printer = message.NewPrinter(language.English)

// Item is one labelled value of a Summary.
type Item struct {
	Label   string
	Value   float64
	Display string
	Color   Color
}

// Summary is a small ordered set of display-ready values.
type Summary struct {
	Items []Item
}

// Get looks an item up by label.
func (s Summary) Get(label string) (Item, bool) {
	for _, it := range s.Items {
		if it.Label == label {
			return it, true
		}
	}
	return Item{}, false
}

// AddCount appends an integer count, e.g. "1,204".
func (s *Summary) AddCount(label string, n int, color Color) {
	s.Items = append(s.Items, Item{
		Label:   label,
		Value:   float64(n),
		Display: printer.Sprintf("%d", n),
		Color:   color,
	})
}

// AddScore appends a one-decimal score computed over n rows. With n == 0 the
// display falls back to Placeholder.
func (s *Summary) AddScore(label string, v float64, n int, color Color) {
	display := Placeholder
	if n > 0 {
		display = printer.Sprintf("%.1f", v)
	}
	s.Items = append(s.Items, Item{Label: label, Value: v, Display: display, Color: color})
}

// AddPercentage appends a 0-100 value formatted as "63.5%".
func (s *Summary) AddPercentage(label string, v float64, n int, color Color) {
	display := Placeholder
	if n > 0 {
		display = printer.Sprintf("%.1f%%", v)
	}
	s.Items = append(s.Items, Item{Label: label, Value: v, Display: display, Color: color})
}

// PercentageColor grades a 0-100 value.
func PercentageColor(v float64) Color {
	switch {
	case v >= 60:
		return ColorSuccess
	case v >= 40:
		return ColorWarning
	default:
		return ColorDanger
	}
}

// Relative renders t relative to now ("3 days ago"). Nil yields Placeholder.
func Relative(t *time.Time, now time.Time) string {
	if t == nil {
		return Placeholder
	}
	return humanize.RelTime(*t, now, "ago", "from now")
}
