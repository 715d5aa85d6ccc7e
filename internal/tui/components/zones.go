package components

// Zone ids for the home screen's clickable affordances. The marks are
// placed by the view; the controller resolves clicks against them.
const (
	EventZonePrefix = "event:"
	PlayZoneID      = "btn:play"
	AreasZoneID     = "btn:areas"
)
