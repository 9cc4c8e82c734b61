package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidType          ErrorCode = 102
	ErrCodeInvalidPeriod        ErrorCode = 103
	ErrCodeMissingParameter     ErrorCode = 104
	ErrCodeInvalidInput         ErrorCode = 105
	ErrCodeInvalidSymbol        ErrorCode = 106

	// Data/Resource errors (200-299)
	ErrCodeNoDataFound      ErrorCode = 200
	ErrCodeEmptySeries      ErrorCode = 201
	ErrCodeFetchFailed      ErrorCode = 202
	ErrCodeParseFailed      ErrorCode = 203
	ErrCodeInvalidProvider  ErrorCode = 204
	ErrCodeProviderRequired ErrorCode = 205

	// Indicator errors (300-399)
	ErrCodeIndicatorCalculation   ErrorCode = 300
	ErrCodeIndicatorNotFound      ErrorCode = 301
	ErrCodeIndicatorAlreadyExists ErrorCode = 302

	// Dashboard/API errors (400-499)
	ErrCodeSymbolNotConfigured ErrorCode = 400
	ErrCodeRefreshFailed       ErrorCode = 401
	ErrCodeServerStartFailed   ErrorCode = 402
)
