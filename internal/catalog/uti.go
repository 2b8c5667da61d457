package catalog

import "strings"

// AttachmentKind is the coarse classification derived from an
// attachment's type identifier.
type AttachmentKind string

const (
	KindImage    AttachmentKind = "image"
	KindVideo    AttachmentKind = "video"
	KindAudio    AttachmentKind = "audio"
	KindDocument AttachmentKind = "document"
	KindOther    AttachmentKind = "other"
)

// utiToMIME maps the store's reverse-DNS type identifiers to MIME types.
// Classification and MIME mapping are pure functions of the identifier,
// kept as static lookup data.
var utiToMIME = map[string]string{
	"com.adobe.pdf":     "application/pdf",
	"public.jpeg":       "image/jpeg",
	"public.png":        "image/png",
	"public.tiff":       "image/tiff",
	"public.heic":       "image/heic",
	"public.mp4":        "video/mp4",
	"public.mov":        "video/quicktime",
	"public.mp3":        "audio/mpeg",
	"public.m4a":        "audio/mp4",
	"public.plain-text": "text/plain",
	"public.rtf":        "text/rtf",
	"com.microsoft.word.doc":                       "application/msword",
	"org.openxmlformats.wordprocessingml.document": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

var (
	imageMarkers    = []string{"jpeg", "png", "tiff", "heic", "gif"}
	videoMarkers    = []string{"mp4", "mov", "avi", "quicktime"}
	audioMarkers    = []string{"mp3", "m4a", "wav", "aiff"}
	documentMarkers = []string{"pdf", "doc", "docx", "rtf", "txt", "pages"}
)

// MIMEType returns the MIME type for the attachment's type identifier,
// or "" when unknown.
func (a *Attachment) MIMEType() string {
	if a.TypeUTI == nil {
		return ""
	}
	return utiToMIME[*a.TypeUTI]
}

// IsImage reports whether the attachment is an image.
func (a *Attachment) IsImage() bool {
	return a.TypeUTI != nil && strings.HasPrefix(*a.TypeUTI, "public.") &&
		containsAny(*a.TypeUTI, imageMarkers)
}

// IsVideo reports whether the attachment is a video.
func (a *Attachment) IsVideo() bool {
	return a.TypeUTI != nil && containsAny(*a.TypeUTI, videoMarkers)
}

// IsAudio reports whether the attachment is audio.
func (a *Attachment) IsAudio() bool {
	return a.TypeUTI != nil && containsAny(*a.TypeUTI, audioMarkers)
}

// IsDocument reports whether the attachment is a document.
func (a *Attachment) IsDocument() bool {
	return a.TypeUTI != nil && containsAny(*a.TypeUTI, documentMarkers)
}

// Kind returns the attachment's coarse classification. Image wins over
// the other checks, mirroring the marker precedence.
func (a *Attachment) Kind() AttachmentKind {
	switch {
	case a.IsImage():
		return KindImage
	case a.IsVideo():
		return KindVideo
	case a.IsAudio():
		return KindAudio
	case a.IsDocument():
		return KindDocument
	default:
		return KindOther
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
