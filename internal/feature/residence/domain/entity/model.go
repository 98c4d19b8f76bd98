package entity

// MIME types declared for images sent to the model.
const (
	MIMETypeJPEG = "image/jpeg"
	MIMETypePNG  = "image/png"
)

// ModelInfo describes a hosted generative model returned by the vendor's model listing.
type ModelInfo struct {
	Name    string   // e.g. "models/gemini-2.5-flash"
	Actions []string // supported generation methods, e.g. "generateContent"
}

// ImagePayload is an image attached to a prompt.
type ImagePayload struct {
	MIMEType string
	Data     []byte
}
