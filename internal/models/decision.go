package models

// DecisionResult is the outcome state of a decision.
type DecisionResult string

const (
	ResultPending  DecisionResult = "pending"
	ResultPositive DecisionResult = "positive"
	ResultNegative DecisionResult = "negative"
	ResultNeutral  DecisionResult = "neutral"
)

// ValidResult reports whether r is one of the four known result values.
func ValidResult(r DecisionResult) bool {
	switch r {
	case ResultPending, ResultPositive, ResultNegative, ResultNeutral:
		return true
	}
	return false
}

// Completed reports whether the decision has been resolved with an outcome.
func (r DecisionResult) Completed() bool {
	return r != ResultPending && r != ""
}

// DecisionMeta is an open mapping of extra per-decision fields.
// For the "invest" category the recognized keys are "action" (buy|sell),
// "entryPrice", "exitPrice" and the derived "returnRate".
type DecisionMeta map[string]any

// Decision is one logged judgment awaiting or having an outcome.
// Timestamps are ISO-8601 strings; resolvedAt is set iff result != pending.
// That invariant is enforced at the store boundary, and consumers still
// fall back to createdAt when resolvedAt is missing or unparseable.
type Decision struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	CategoryID string         `json:"categoryId"`
	Title      string         `json:"title"`
	Notes      string         `json:"notes,omitempty"`
	Tags       []string       `json:"tags"`
	Confidence int            `json:"confidence"`
	Result     DecisionResult `json:"result"`
	Meta       DecisionMeta   `json:"meta,omitempty"`
	CreatedAt  string         `json:"createdAt"`
	ResolvedAt string         `json:"resolvedAt,omitempty"`
}

// CreateDecisionRequest represents the request to log a new decision.
type CreateDecisionRequest struct {
	CategoryID string         `json:"categoryId" binding:"required"`
	Title      string         `json:"title" binding:"required"`
	Notes      string         `json:"notes"`
	Tags       []string       `json:"tags"`
	Confidence *int           `json:"confidence"`
	Result     DecisionResult `json:"result"`
	Meta       DecisionMeta   `json:"meta"`
}

// UpdateDecisionRequest represents a PATCH to an existing decision.
// Two modes are supported: when Result is present the request records an
// outcome (confidence and meta may ride along); otherwise it is a detail
// edit of the mutable fields.
type UpdateDecisionRequest struct {
	Result     *DecisionResult `json:"result"`
	CategoryID *string         `json:"categoryId"`
	Title      *string         `json:"title"`
	Notes      NullableString  `json:"notes"`
	Tags       *[]string       `json:"tags"`
	Confidence *int            `json:"confidence"`
	Meta       NullableMeta    `json:"meta"`
}
