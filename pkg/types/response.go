package types

// SuccessEnvelope wraps mutation responses.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// MessageEnvelope carries a bare human-readable message (lookup 404s).
type MessageEnvelope struct {
	Message string `json:"message"`
}

// FailureEnvelope carries a message on a failed mutation.
type FailureEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Param    string `json:"param"`
	Msg      string `json:"msg"`
	Location string `json:"location,omitempty"`
	Value    any    `json:"value,omitempty"`
}

// ValidationEnvelope carries the accumulated per-field errors for a rejected payload.
type ValidationEnvelope struct {
	Success bool         `json:"success"`
	Errors  []FieldError `json:"errors"`
}
