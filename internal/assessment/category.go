package assessment

// Band is the lowest score that earns Label.
type Band struct {
	Min   int
	Label string
}

// Bands is ordered from the highest threshold down.
var Bands = []Band{
	{Min: 80, Label: "Excellent Regulation"},
	{Min: 65, Label: "Good Regulation"},
	{Min: 50, Label: "Moderate Regulation"},
	{Min: 35, Label: "Needs Attention"},
	{Min: 0, Label: "Significant Dysregulation"},
}

// Category returns the label for a score.
func Category(score int) string {
	for _, b := range Bands {
		if score >= b.Min {
			return b.Label
		}
	}
	return Bands[len(Bands)-1].Label
}
