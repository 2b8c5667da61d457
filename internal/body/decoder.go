// Package body decodes the compressed binary blobs that hold a note's
// rich text. A blob is gzip over a protobuf document tree; the decoder
// extracts the plain text, the formatting-run inventory and the inline
// attachment references, and degrades to heuristic text recovery when
// the binary layout is corrupt or unrecognized.
package body

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrDecode is returned for I/O-level failures reading a blob, such as a
// truncated gzip stream. Malformed binary content past decompression
// never errors: the decoder falls back to heuristic recovery instead.
var ErrDecode = errors.New("note body decode failed")

var gzipMagic = []byte{0x1f, 0x8b}

// InlineAttachment is an attachment reference embedded in an attribute run.
type InlineAttachment struct {
	Identifier string
	TypeUTI    string
}

// Document is the decoded form of one note body. A nil or empty blob
// decodes to the zero Document: no content is not an error.
type Document struct {
	// HasDocument reports whether the blob carried a well-formed binary
	// document; false means Text came from heuristic recovery or from an
	// uncompressed legacy body.
	HasDocument bool
	Text        string
	// AttributeRuns is the number of formatting runs in the document.
	AttributeRuns int
	Attachments   []InlineAttachment
	// Best-effort annotations extracted from Text.
	Hashtags []string
	Mentions []string
	Links    []string
}

// Decode turns a raw body blob into a Document.
func Decode(data []byte) (*Document, error) {
	doc := &Document{}
	if len(data) == 0 {
		return doc, nil
	}

	if !isGzipped(data) {
		// Uncompressed legacy content: treat as UTF-8 text, dropping any
		// invalid sequences.
		doc.Text = strings.ToValidUTF8(string(data), "")
		doc.annotate()
		return doc, nil
	}

	decompressed, err := gunzip(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if ok := doc.decodeNoteStore(decompressed); !ok {
		// Corrupt or unrecognized binary layout: recover what text we can.
		doc.HasDocument = false
		doc.AttributeRuns = 0
		doc.Attachments = nil
		doc.Text = recoverText(decompressed)
	}
	doc.annotate()
	return doc, nil
}

func (d *Document) annotate() {
	if d.Text == "" {
		return
	}
	d.Hashtags = Hashtags(d.Text)
	d.Mentions = Mentions(d.Text)
	d.Links = Links(d.Text)
}

func isGzipped(data []byte) bool {
	return len(data) > 2 && bytes.HasPrefix(data, gzipMagic)
}

func gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// The blob's protobuf tree, by field number:
//
//	NoteStoreProto { document = 2 }
//	Document       { version = 2, note = 3 }
//	Note           { note_text = 2, attribute_run = 5 (repeated) }
//	AttributeRun   { length = 1, paragraph_style = 2, font = 3,
//	                 link = 9, attachment_info = 12 }
//	AttachmentInfo { attachment_identifier = 1, type_uti = 2 }
//
// Only the fields needed for text and annotation extraction are decoded;
// everything else is skipped field by field.
const (
	fieldNoteStoreDocument    = 2
	fieldDocumentNote         = 3
	fieldNoteText             = 2
	fieldNoteAttributeRun     = 5
	fieldRunAttachmentInfo    = 12
	fieldAttachmentIdentifier = 1
	fieldAttachmentTypeUTI    = 2
)

// decodeNoteStore attempts a strict decode of the decompressed bytes and
// fills d on success. It reports false on any wire-format violation so
// the caller can fall back.
func (d *Document) decodeNoteStore(data []byte) bool {
	document, ok := messageField(data, fieldNoteStoreDocument)
	if !ok {
		return false
	}
	if document == nil {
		// Well-formed wire data with no document: an empty note, not a
		// decode failure.
		return true
	}
	note, ok := messageField(document, fieldDocumentNote)
	if !ok {
		return false
	}
	if note == nil {
		return true
	}

	b := note
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return false
		}
		b = b[n:]

		switch {
		case num == fieldNoteText && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return false
			}
			d.Text = string(v)
			b = b[m:]
		case num == fieldNoteAttributeRun && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return false
			}
			if !d.decodeAttributeRun(v) {
				return false
			}
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return false
			}
			b = b[m:]
		}
	}

	d.HasDocument = true
	return true
}

func (d *Document) decodeAttributeRun(data []byte) bool {
	d.AttributeRuns++

	b := data
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return false
		}
		b = b[n:]

		if num == fieldRunAttachmentInfo && typ == protowire.BytesType {
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return false
			}
			att, ok := decodeAttachmentInfo(v)
			if !ok {
				return false
			}
			d.Attachments = append(d.Attachments, att)
			b = b[m:]
			continue
		}

		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			return false
		}
		b = b[m:]
	}
	return true
}

func decodeAttachmentInfo(data []byte) (InlineAttachment, bool) {
	var att InlineAttachment

	b := data
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return att, false
		}
		b = b[n:]

		switch {
		case num == fieldAttachmentIdentifier && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return att, false
			}
			att.Identifier = string(v)
			b = b[m:]
		case num == fieldAttachmentTypeUTI && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return att, false
			}
			att.TypeUTI = string(v)
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return att, false
			}
			b = b[m:]
		}
	}
	return att, true
}

// messageField returns the last occurrence of a length-delimited field
// at the top level of data. ok is false on a wire-format violation; a
// missing field is (nil, true).
func messageField(data []byte, field protowire.Number) (value []byte, ok bool) {
	b := data
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, false
		}
		b = b[n:]

		if num == field && typ == protowire.BytesType {
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, false
			}
			value = v
			b = b[m:]
			continue
		}

		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			return nil, false
		}
		b = b[m:]
	}
	return value, true
}

// recoverText is the last-resort path for malformed binary content:
// treat the bytes as text, keep only printable ASCII plus newlines and
// tabs, and collapse whitespace runs. Never fails, only returns
// best-effort or empty text.
func recoverText(data []byte) string {
	s := strings.ToValidUTF8(string(data), "")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 0x20 && r <= 0x7e) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
