package modelmgr

// Recommendation is a catalogue entry offered for download
type Recommendation struct {
	Name        string
	Size        string
	Description string
}

// Recommended lists the suggested models in menu order
var Recommended = []Recommendation{
	{Name: "mistral", Size: "4B", Description: "Fast, capable general model (recommended)"},
	{Name: "llama2", Size: "7B", Description: "Thoughtful, multi-step reasoning"},
	{Name: "neural-chat", Size: "7B", Description: "Optimized for conversation"},
	{Name: "dolphin-mixtral", Size: "46B", Description: "Expert reasoning, slower"},
	{Name: "orca-mini", Size: "3B", Description: "Lightweight, fast responses"},
}

// Lookup returns the catalogue entry for name
func Lookup(name string) (Recommendation, bool) {
	for _, r := range Recommended {
		if r.Name == name {
			return r, true
		}
	}
	return Recommendation{}, false
}
