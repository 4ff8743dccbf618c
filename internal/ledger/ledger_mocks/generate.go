package ledger_mocks

//go:generate mockgen -source=../ledger.go -destination=ledger_mocks.go -package=ledger_mocks

// This file contains the go:generate directive to generate mocks for the
// Ledger interface. To regenerate the mocks, run:
//   go generate ./internal/ledger/ledger_mocks
