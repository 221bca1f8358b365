package form

import (
	"fmt"
	"io"
	"strings"

	"travelplanner/internal/models/response_models"
)

// DaySection is one rendered day. Index is the 1-based position in the plan,
// independent of what the label says. Last suppresses the connector drawn
// below every other day.
type DaySection struct {
	Index      int
	Label      string
	Activities []string
	Last       bool
}

// View is the display model of an itinerary.
type View struct {
	Title        string
	Introduction string
	Days         []DaySection
	Tips         []string
}

func Render(it response_models.Itinerary) View {
	v := View{
		Title:        it.Title,
		Introduction: it.Introduction,
		Days:         make([]DaySection, 0, len(it.DayPlan)),
		Tips:         append([]string(nil), it.TravelTips...),
	}
	for i, entry := range it.DayPlan {
		v.Days = append(v.Days, DaySection{
			Index:      i + 1,
			Label:      entry.Label,
			Activities: append([]string(nil), entry.Activities...),
			Last:       i == len(it.DayPlan)-1,
		})
	}
	return v
}

// WriteText prints the view for terminals.
func WriteText(w io.Writer, v View) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n", v.Title, strings.Repeat("=", len([]rune(v.Title))))
	if v.Introduction != "" {
		fmt.Fprintf(&b, "%s\n", v.Introduction)
	}

	b.WriteString("\nDaily Itinerary\n")
	for _, d := range v.Days {
		fmt.Fprintf(&b, "\n[%d] %s\n", d.Index, d.Label)
		for _, a := range d.Activities {
			fmt.Fprintf(&b, "  - %s\n", a)
		}
	}

	if len(v.Tips) > 0 {
		b.WriteString("\nEssential Travel Tips\n")
		for _, tip := range v.Tips {
			fmt.Fprintf(&b, "  * %s\n", tip)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
