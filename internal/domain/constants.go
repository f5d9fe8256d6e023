package domain

// SlotCapacity maximum number of non-cancelled appointments permitted within
// a single slot window on a single date. Shared by every slot.
const SlotCapacity = 3

// PhoneLength required length of a normalized (digits-only) phone number
const PhoneLength = 11

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxFullNameLength           = 200
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	// DateParamLength date query/body parameters are cut to this length
	// before parsing
	DateParamLength = 10
)

// SettingNightShift settings table key for the night shift toggle
const SettingNightShift = "night_shift_enabled"
