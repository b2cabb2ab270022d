package badge

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Badge
	}{
		{name: "indiamart", value: "Indiamart", want: Badge{Label: "I-M", Class: "blue"}},
		{name: "trade india", value: "Trade India", want: Badge{Label: "T-I", Class: "green"}},
		{name: "self approach", value: "Self Approach", want: Badge{Label: "S-A", Class: "purple"}},
		{name: "end customer", value: "End Customer", want: Badge{Label: "E-C", Class: "orange"}},
		{name: "references", value: "References", want: Badge{Label: "REF", Class: "pink"}},
		{name: "re-seller", value: "Re-Seller", want: Badge{Label: "RES", Class: "teal"}},
		{name: "client reseller", value: "Client-Reseller", want: Badge{Label: "C-R", Class: "yellow"}},
		{name: "unknown passes through", value: "Unknown Source", want: Badge{Label: "Unknown Source", Class: DefaultClass}},
		{name: "lookup is case sensitive", value: "indiamart", want: Badge{Label: "indiamart", Class: DefaultClass}},
		{name: "empty", value: "", want: Badge{Label: "", Class: DefaultClass}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.value); got != tt.want {
				t.Errorf("Lookup(%q) = %+v, want %+v", tt.value, got, tt.want)
			}
		})
	}
}
