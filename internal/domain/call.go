package domain

import "time"

// CallAction enumerates the outcomes of a contact attempt. The set is
// closed: any other value is rejected before reaching storage, and the
// calls table carries a matching CHECK constraint.
type CallAction string

const (
	ActionCalled         CallAction = "CALLED"
	ActionNoAnswer       CallAction = "NO ANSWER"
	ActionLeftVoicemail  CallAction = "LEFT VOICEMAIL"
	ActionEmailSent      CallAction = "EMAIL SENT"
	ActionFollowUp       CallAction = "FOLLOW UP"
	ActionCallBack       CallAction = "CALL BACK"
	ActionWillCallBack   CallAction = "WILL CALL BACK"
	ActionEstimateBooked CallAction = "ESTIMATE BOOKED"
)

// CallActions lists every legal action value.
var CallActions = []CallAction{
	ActionCalled,
	ActionNoAnswer,
	ActionLeftVoicemail,
	ActionEmailSent,
	ActionFollowUp,
	ActionCallBack,
	ActionWillCallBack,
	ActionEstimateBooked,
}

// ValidCallAction reports whether a is in the closed action set.
func ValidCallAction(a CallAction) bool {
	for _, candidate := range CallActions {
		if a == candidate {
			return true
		}
	}
	return false
}

// Call is a contact-log entry against an Account. Records are independent
// facts: no transition legality is enforced between successive calls for
// the same account.
type Call struct {
	ID            int64
	OccurredAt    time.Time
	ReceiverName  string
	PhoneNumber   string
	Description   string
	Action        CallAction
	FollowUp      bool
	NeverCallBack bool
	EmployeeEmail string
	AccountEmail  string
	CreatedAt     time.Time
}
