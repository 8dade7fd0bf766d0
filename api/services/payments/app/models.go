package app

// Messages returned to callers inside the intent outcome payload. Part of the
// wire contract with existing mobile clients; do not reword.
const (
	CardDeniedMessage = "Your card was denied. Please provide another payment method!"
	FailedMessage     = "Failed"
)

// IntentOutcome is the normalized result of a setup-intent flow. The HTTP
// layer serializes it verbatim; omitempty keeps each branch's payload shape
// identical to what clients already parse.
type IntentOutcome struct {
	ClientSecret  string `json:"clientSecret,omitempty"`
	RequireAction bool   `json:"requireAction,omitempty"`
	Status        string `json:"status,omitempty"`
	Customer      string `json:"customer,omitempty"`
	Error         string `json:"error,omitempty"`
}
