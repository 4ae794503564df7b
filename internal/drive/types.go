package drive

import "strings"

// PDFMimeType is the MIME type for PDF documents.
const PDFMimeType = "application/pdf"

// Attachment is a Drive file resolved for summarization: metadata plus
// the raw content encoded as base64 text for transport. Attachments are
// built per request and discarded after use.
type Attachment struct {
	// Name is the file name in Drive
	Name string

	// MimeType is the MIME type of the file
	MimeType string

	// Size is the size of the file in bytes
	Size int64

	// Data is the base64-encoded file content
	Data string
}

// Summarizable reports whether the attachment can be sent through
// vision summarization: images and PDFs only.
func (a *Attachment) Summarizable() bool {
	return strings.HasPrefix(a.MimeType, "image/") || a.MimeType == PDFMimeType
}

// DataURL returns the attachment content as an inline data URL.
func (a *Attachment) DataURL() string {
	return "data:" + a.MimeType + ";base64," + a.Data
}
