package entities

// Travel expense tags arrive in two naming schemes (Spanish and English) depending on
// which screen created the survey. Both map to the same labels.
var travelExpenseLabels = map[string]string{
	"peajes":              "Peajes",
	"tolls":               "Peajes",
	"estacionamiento":     "Estacionamiento",
	"parking":             "Estacionamiento",
	"alojamiento":         "Alojamiento",
	"lodging":             "Alojamiento",
	"alimentacion":        "Alimentación",
	"food":                "Alimentación",
	"combustible":         "Combustible",
	"fuel":                "Combustible",
	"cuadrilla_adicional": "Cuadrilla adicional",
	"additional_crew":     "Cuadrilla adicional",
	"horas_dia":           "Horas día",
	"day_hours":           "Horas día",
	"horas_extra_festivo": "Horas extra festivo",
	"holiday_overtime":    "Horas extra festivo",
}

// TravelExpenseLabel returns the display label for a tag, or the tag itself when it
// is not part of the vocabulary.
func TravelExpenseLabel(tag string) string {
	if label, ok := travelExpenseLabels[normalizeTag(tag)]; ok {
		return label
	}
	return tag
}

// IsKnownTravelExpense reports whether tag belongs to either naming scheme.
func IsKnownTravelExpense(tag string) bool {
	_, ok := travelExpenseLabels[normalizeTag(tag)]
	return ok
}
