// Package badge maps the source an order came through to a short label.
package badge

// DefaultClass is used for sources outside the known table
const DefaultClass = "gray"

// Badge is a short label and the colour class it is drawn with
type Badge struct {
	Label string
	Class string
}

var badges = map[string]Badge{
	"Indiamart":       {Label: "I-M", Class: "blue"},
	"Trade India":     {Label: "T-I", Class: "green"},
	"Self Approach":   {Label: "S-A", Class: "purple"},
	"End Customer":    {Label: "E-C", Class: "orange"},
	"References":      {Label: "REF", Class: "pink"},
	"Re-Seller":       {Label: "RES", Class: "teal"},
	"Client-Reseller": {Label: "C-R", Class: "yellow"},
}

// Lookup returns the badge for an order source. Unknown values are passed
// through as their own label.
func Lookup(value string) Badge {
	if b, ok := badges[value]; ok {
		return b
	}
	return Badge{Label: value, Class: DefaultClass}
}
