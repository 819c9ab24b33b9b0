package errors

// User-friendly error messages
const (
	MsgInvalidField            = "One of the property details could not be read. Please check the numbers you entered."
	MsgUnsupportedPropertyType = "Price estimates are only available for land (tanah) and buildings (bangunan)."
	MsgInvalidRequest          = "The request is incomplete or incorrectly formatted."
	MsgPredictionUnavailable   = "We're unable to estimate a price right now. Please try again in a few minutes."
	MsgRateLimited             = "You're requesting estimates too quickly! Please wait a moment and try again."
	MsgInternalError           = "Something went wrong on our end. Please try again later."
)
