package keacfg

// Code identifies the validation stage that stopped rendering early.
type Code string

const (
	// CodeNoInterfaces signals that no listening interfaces were
	// configured
	CodeNoInterfaces Code = "no-interfaces"

	// CodeInvalidLeaseDatabase signals a lease database without a
	// type or name
	CodeInvalidLeaseDatabase Code = "invalid-lease-database"

	// CodeNoSubnets signals that no IPv4 subnets were configured
	CodeNoSubnets Code = "no-subnets"
)

// Diagnostic describes why rendering stopped before the document was
// complete. It is returned alongside the partial document rather than
// raised, so callers decide how to surface it. Diagnostic implements
// the error interface for callers that want to propagate it as one.
type Diagnostic struct {
	Code    Code
	Message string
}

func (d *Diagnostic) Error() string {
	return d.Message
}

func newDiagnostic(code Code, msg string) *Diagnostic {
	return &Diagnostic{Code: code, Message: msg}
}
