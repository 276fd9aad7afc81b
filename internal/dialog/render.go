package dialog

// Option is a single selectable button: a label shown to the user and
// the selection token delivered back when pressed
type Option struct {
	Label string
	Token string
}

// Render is the instruction handed to the transport adapter. A render
// with only Alert set answers the user in place without changing the
// conversation screen. Text and Alert may be combined: the alert is
// shown as feedback and the screen is updated.
type Render struct {
	Text    string
	Options []Option

	// ReplacePrevious asks the transport to edit the last rendered
	// message instead of sending a new one. A transport-reported
	// "content unchanged" on such an edit is a harmless no-op.
	ReplacePrevious bool

	Alert         string
	BlockingAlert bool
}

// alertRender builds an alert-only render that leaves the screen as is
func alertRender(text string, blocking bool) *Render {
	return &Render{Alert: text, BlockingAlert: blocking}
}
