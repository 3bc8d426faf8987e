package validate

// Messages maps rejection reasons to the text shown to the user.
type Messages map[Reason]string

// DefaultMessages returns the built-in English messages.
func DefaultMessages() Messages {
	return Messages{
		ReasonHTTPSRequired:   "Only secure https:// links are allowed.",
		ReasonInvalidProtocol: "This link type is not allowed. Use an https:// address.",
	}
}

// For returns the message for err, or "" when err carries no reason
// (nil, or the silent empty-URL signal). Reasons missing from m fall back
// to the default text.
func (m Messages) For(err error) string {
	reason := ReasonOf(err)
	if reason == "" {
		return ""
	}
	if msg, ok := m[reason]; ok && msg != "" {
		return msg
	}
	return DefaultMessages()[reason]
}
