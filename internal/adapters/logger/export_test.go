package logger

// Exported for testing.
var (
	ErrorMessages    = errorMessages
	FormatErrorChain = formatErrorChain
)
