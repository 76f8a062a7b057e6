package model

// ContactSubmission is the payload of one contact form post. Never persisted.
type ContactSubmission struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Message        string `json:"message"`
	CourseInterest string `json:"courseInterest,omitempty"`
}

// ContactOutcome is the terminal state of a submission.
type ContactOutcome string

const (
	OutcomeDelivered      ContactOutcome = "delivered"
	OutcomeDevSimulated   ContactOutcome = "dev_simulated"
	OutcomeRejected       ContactOutcome = "rejected"
	OutcomeMalformed      ContactOutcome = "malformed_request"
	OutcomeUnconfigured   ContactOutcome = "service_unconfigured"
	OutcomeDeliveryFailed ContactOutcome = "delivery_error"
)

// ContactResult is what the contact service reports back to the handler.
// Message is always safe to show to the submitter.
type ContactResult struct {
	Outcome      ContactOutcome
	Field        string // set for OutcomeRejected
	Message      string
	SubmissionID string
}

// Accepted reports whether the submission counts as a success for the caller.
func (r ContactResult) Accepted() bool {
	return r.Outcome == OutcomeDelivered || r.Outcome == OutcomeDevSimulated
}
