package risk

// Reason codes a verification can be rejected with. Upstream-supplied error
// codes are carried verbatim next to these.
const (
	ReasonSecretMissing      = "secret_missing"
	ReasonTokenMissing       = "token_missing"
	ReasonRequestFailed      = "verify_request_failed"
	ReasonTimeout            = "verify_timeout"
	ReasonNotSuccess         = "not_success"
	ReasonUnexpectedAction   = "unexpected_action"
	ReasonLowScore           = "low_score"
	ReasonHostnameNotAllowed = "hostname_not_allowed"
)

// Verification is the classified result of one risk-scoring round trip.
// Reasons is empty exactly when Accepted is true. Score, Action and Hostname
// are set only when the upstream service supplied them.
type Verification struct {
	Accepted bool
	Reasons  []string
	Score    *float64
	Action   string
	Hostname string
}

func Accepted(score *float64, action, hostname string) Verification {
	return Verification{
		Accepted: true,
		Score:    score,
		Action:   action,
		Hostname: hostname,
	}
}

func Rejected(reasons ...string) Verification {
	return Verification{Reasons: reasons}
}
