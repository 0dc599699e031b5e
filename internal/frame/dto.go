package frame

// ActionInput is the untrusted payload of a frame button press.
type ActionInput struct {
	FID         int64
	ButtonIndex int
	InputText   string
}

// Button is one action prompt on a rendered frame.
type Button struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// InputPrompt asks the frame client to show a free-text field.
type InputPrompt struct {
	Text string `json:"text"`
}

// FramePayload is the card a frame client renders after an action.
type FramePayload struct {
	Version string       `json:"version"`
	Image   string       `json:"image"`
	Buttons []Button     `json:"buttons"`
	Input   *InputPrompt `json:"input,omitempty"`
}

// Response wraps the payload in the envelope frame clients expect.
type Response struct {
	Frames FramePayload `json:"frames"`
}

func postButton(label string) Button {
	return Button{Label: label, Action: "post"}
}
