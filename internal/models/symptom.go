package models

type PeriodSymptom struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func DefaultPeriodSymptoms() []PeriodSymptom {
	return []PeriodSymptom{
		{Name: "Cramps", Icon: "🩸", Color: "#FF4444"},
		{Name: "Bloating", Icon: "🎈", Color: "#3498DB"},
		{Name: "Mood swings", Icon: "😢", Color: "#9B59B6"},
		{Name: "Headache", Icon: "🤕", Color: "#FFA500"},
		{Name: "Breast tenderness", Icon: "💔", Color: "#E91E63"},
		{Name: "Fatigue", Icon: "😴", Color: "#95A5A6"},
		{Name: "Back pain", Icon: "🦴", Color: "#8E6E53"},
		{Name: "Nausea", Icon: "🤢", Color: "#7CB342"},
		{Name: "Food cravings", Icon: "🍫", Color: "#A1887F"},
		{Name: "Acne", Icon: "🔴", Color: "#E74C3C"},
		{Name: "Irritability", Icon: "😤", Color: "#FF7043"},
		{Name: "Sleep issues", Icon: "🌙", Color: "#5C6BC0"},
	}
}
