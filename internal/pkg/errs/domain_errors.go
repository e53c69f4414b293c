package errs

import "errors"

// Ledger interaction taxonomy shared by the gateway, the snapshot builder and the coordinator.
var (
	// Gateway errors
	ErrGatewayUnavailable = errors.New("ledger gateway unavailable")
	ErrNoSigner           = errors.New("no signing identity configured")

	// Read errors
	ErrPartialRead       = errors.New("partial ledger read failure")
	ErrHistoryOutOfRange = errors.New("ledger history count out of range")

	// Submission errors
	ErrLedgerRejected      = errors.New("ledger rejected submission")
	ErrLedgerIndeterminate = errors.New("ledger submission outcome unknown")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
