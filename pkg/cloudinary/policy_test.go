package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptable(t *testing.T) {
	cases := []struct {
		name string
		size int64
		mime string
		want bool
	}{
		{"small jpeg", 2 << 20, "image/jpeg", true},
		{"exact limit", MaxUploadBytes, "image/png", true},
		{"oversized png", 6 << 20, "image/png", false},
		{"pdf", 1 << 20, "application/pdf", false},
		{"empty mime", 1 << 20, "", false},
		{"webp", 100, "image/webp", true},
		{"heic", 100, "image/heic", true},
		{"gif", 100, "image/gif", true},
		{"uppercase", 100, "IMAGE/JPEG", true},
		{"with charset param", 100, "image/png; charset=binary", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := Acceptable(tc.size, tc.mime)
			assert.Equal(t, tc.want, ok)
			if !tc.want {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestDetectMimeType(t *testing.T) {
	assert.Equal(t, "image/jpeg", DetectMimeType("image/jpeg", "x.bin"))
	assert.Equal(t, "image/png", DetectMimeType("", "shot.png"))
	assert.Equal(t, "", DetectMimeType("", "noext"))
}
