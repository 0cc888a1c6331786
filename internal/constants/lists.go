package constants

var (
	// activities booked under MONTAGE that are really travel
	TravelActivities = map[string]bool{
		"REISTIJD": true,
	}

	OrderStatuses = map[string]bool{
		"In afwachting": true,
		"In uitvoering": true,
		"Voltooid":      true,
		"Geannuleerd":   true,
	}

	// availability types, the planner may add _MORNING or _AFTERNOON
	AvailabilityTypes = map[string]bool{
		"WORK":     true,
		"ABSENT":   true,
		"VACATION": true,
		"SICK":     true,
		"ADV":      true,
	}

	// purchase invoice categories, in display order
	InvoiceCategories = []string{
		"MATERIALI",
		"TRASPORTO",
		"SUBAPPALTO",
		"NOLO",
		"ALTRO",
	}
)
