package db

import "fmt"

// InvalidDSNError reports a connection string that could not be parsed into
// host/user/database components.
type InvalidDSNError struct {
	DSN    string
	Reason string
	Err    error
}

func (e *InvalidDSNError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid dsn: %s", e.Reason)
	}
	return fmt.Sprintf("invalid dsn: %v", e.Err)
}

func (e *InvalidDSNError) Unwrap() error { return e.Err }

// ConnectError reports a failure to establish the connection: network,
// authentication, or TLS negotiation.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("cannot connect to database: %v", e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// CatalogError reports a failure while enumerating user tables.
type CatalogError struct {
	Err error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("cannot list tables: %v", e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }

// ExecError reports a statement failure. The message is the database's own
// diagnostic text, passed through unmodified.
type ExecError struct {
	Err error
}

func (e *ExecError) Error() string { return e.Err.Error() }

func (e *ExecError) Unwrap() error { return e.Err }
