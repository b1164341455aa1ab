package order

import "github.com/google/uuid"

// NewFirmID mints an opaque identifier for a submitter that doesn't supply
// its own. OrderID stays a plain integer key — this only backs FirmID, an
// opaque auxiliary field.
func NewFirmID() string {
	return uuid.New().String()
}
