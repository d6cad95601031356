package scheduling

import (
	"fmt"

	"mindwell/models"
)

// The handoff step is pure assembly: copy the chosen window, look up the
// fee, tag the request class. Once the descriptor leaves for the payment
// collaborator this core neither retries nor polls the outcome.

// DescriptorFromSelection builds the descriptor for a confirmed standard
// booking.
func DescriptorFromSelection(sel *Selection, userID, therapistID, currency string) (*models.BookingDescriptor, error) {
	if sel.State != StateConfirmed || sel.Slot == nil {
		return nil, fmt.Errorf("selection is not confirmed")
	}
	fee, err := Fee(sel.Duration, models.RequestStandard)
	if err != nil {
		return nil, err
	}
	return &models.BookingDescriptor{
		TherapistID: therapistID,
		UserID:      userID,
		Date:        sel.Date,
		Start:       sel.Slot.Start,
		End:         sel.Slot.End,
		Duration:    sel.Duration,
		Request:     models.RequestStandard,
		Fee:         fee,
		Currency:    currency,
	}, nil
}

// DescriptorFromCustomRequest builds the descriptor for an approved custom
// request. The end time is derived from the proposed start plus the
// duration class length.
func DescriptorFromCustomRequest(req *models.CustomRequest, currency string) (*models.BookingDescriptor, error) {
	startMins, err := ParseClock(req.Time)
	if err != nil {
		return nil, err
	}
	fee, err := Fee(req.Duration, models.RequestCustom)
	if err != nil {
		return nil, err
	}
	return &models.BookingDescriptor{
		TherapistID: req.TherapistID,
		UserID:      req.UserID,
		Date:        req.Date,
		Start:       FormatClock(startMins),
		End:         FormatClock(startMins + req.Duration.Minutes()),
		Duration:    req.Duration,
		Request:     models.RequestCustom,
		Fee:         fee,
		Currency:    currency,
	}, nil
}
