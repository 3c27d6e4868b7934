package models

// FormDescriptor tells a client how to render one of the site's forms.
// Template rendering is left to the client; the server only names the
// fields it will read.
type FormDescriptor struct {
	// Form is a stable identifier such as "login" or "register".
	Form string `json:"form"`

	// Method is the HTTP method the form submits with.
	Method string `json:"method"`

	// Action is the path the form submits to.
	Action string `json:"action"`

	Fields []FormField `json:"fields"`
}

// FormField describes a single input of a FormDescriptor.
type FormField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Input types used by the built-in forms.
const (
	FieldTypeText     = "text"
	FieldTypeEmail    = "email"
	FieldTypePassword = "password"
	FieldTypeURL      = "url"
	FieldTypeTextArea = "textarea"
	FieldTypeSelect   = "select"
)
