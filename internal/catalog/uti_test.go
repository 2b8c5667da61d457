package catalog

import "testing"

func TestAttachmentKind(t *testing.T) {
	tests := []struct {
		uti  *string
		want AttachmentKind
	}{
		{strPtr("public.jpeg"), KindImage},
		{strPtr("public.heic"), KindImage},
		{strPtr("public.mp4"), KindVideo},
		{strPtr("com.apple.quicktime-movie"), KindVideo},
		{strPtr("public.mp3"), KindAudio},
		{strPtr("com.adobe.pdf"), KindDocument},
		{strPtr("org.openxmlformats.wordprocessingml.document"), KindDocument},
		{strPtr("public.url"), KindOther},
		{nil, KindOther},
	}
	for _, tt := range tests {
		a := &Attachment{TypeUTI: tt.uti}
		if got := a.Kind(); got != tt.want {
			t.Errorf("Kind(%v) = %q, want %q", tt.uti, got, tt.want)
		}
	}
}

func TestAttachmentMIMEType(t *testing.T) {
	tests := []struct {
		uti  *string
		want string
	}{
		{strPtr("public.jpeg"), "image/jpeg"},
		{strPtr("com.adobe.pdf"), "application/pdf"},
		{strPtr("public.mov"), "video/quicktime"},
		{strPtr("vendor.unknown"), ""},
		{nil, ""},
	}
	for _, tt := range tests {
		a := &Attachment{TypeUTI: tt.uti}
		if got := a.MIMEType(); got != tt.want {
			t.Errorf("MIMEType(%v) = %q, want %q", tt.uti, got, tt.want)
		}
	}
}

func TestIsImageRequiresPublicPrefix(t *testing.T) {
	a := &Attachment{TypeUTI: strPtr("vendor.jpeg-like")}
	if a.IsImage() {
		t.Error("IsImage() = true for a non-public identifier")
	}
}
