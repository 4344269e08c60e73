package score

// ValidationError — the submitted price list is unusable: empty, containing a
// non-numeric value, or containing a negative price. Raised before any
// arithmetic runs; the caller can fix the input and retry.
type ValidationError struct {
	message string
}

// Error returns a textual description of the error.
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError creates a new ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

// ConfigurationError — no scoring configuration could be selected for an
// item, typically because the configuration list is empty. Raised before the
// item's arithmetic runs and aborts the whole batch.
type ConfigurationError struct {
	message string
}

// Error returns a textual description of the error.
func (e *ConfigurationError) Error() string {
	return e.message
}

// NewConfigurationError creates a new ConfigurationError with the given message.
func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{message: message}
}

// ArithmeticError — a formula became undefined during scoring, such as a zero
// benchmark price making the deviation ratio incomputable. Fatal for the
// whole call, never retried.
type ArithmeticError struct {
	message string
}

// Error returns a textual description of the error.
func (e *ArithmeticError) Error() string {
	return e.message
}

// NewArithmeticError creates a new ArithmeticError with the given message.
func NewArithmeticError(message string) *ArithmeticError {
	return &ArithmeticError{message: message}
}
