package scheduling

import "mindwell/models"

// sessionTemplates is the fixed catalogue of bookable windows for a
// therapist's day, ordered chronologically within each duration class.
// Changing the therapist's working hours is a data change here only.
var sessionTemplates = []models.TimeSlotTemplate{
	{Start: "8:59 AM", End: "9:59 AM", Duration: models.DurationLong},
	{Start: "9:59 AM", End: "10:29 AM", Duration: models.DurationShort},
	{Start: "10:29 AM", End: "10:59 AM", Duration: models.DurationShort},
	{Start: "11:59 AM", End: "12:29 PM", Duration: models.DurationShort},
	{Start: "12:59 PM", End: "1:59 PM", Duration: models.DurationLong},
	{Start: "2:59 PM", End: "3:29 PM", Duration: models.DurationShort},
	{Start: "3:29 PM", End: "3:59 PM", Duration: models.DurationShort},
	{Start: "3:59 PM", End: "4:59 PM", Duration: models.DurationLong},
	{Start: "5:59 PM", End: "6:29 PM", Duration: models.DurationShort},
	{Start: "6:29 PM", End: "6:59 PM", Duration: models.DurationShort},
	{Start: "7:59 PM", End: "8:59 PM", Duration: models.DurationLong},
}

// Templates returns a copy of the full slot catalogue.
func Templates() []models.TimeSlotTemplate {
	out := make([]models.TimeSlotTemplate, len(sessionTemplates))
	copy(out, sessionTemplates)
	return out
}
