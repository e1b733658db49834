package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/Althirdy/urbanwatch-api-sub000/pkg/cloudinary"
	"github.com/stretchr/testify/assert"
)

// stubUploader fails uploads by filename; it never opens the file.
type stubUploader struct {
	calls []string
	fail  map[string]bool
}

func (s *stubUploader) UploadFile(ctx context.Context, fh *multipart.FileHeader, folder string) (*cloudinary.UploadResult, error) {
	s.calls = append(s.calls, fh.Filename)
	if s.fail[fh.Filename] {
		return nil, errors.New("provider returned 502")
	}
	return &cloudinary.UploadResult{
		SecureURL: "https://res.cloudinary.com/demo/image/upload/" + fh.Filename,
		PublicID:  "pid_" + fh.Filename,
	}, nil
}

func header(name, mime string, size int64) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Type", mime)
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestUploadBatch_PartitionsEveryFile(t *testing.T) {
	up := &stubUploader{fail: map[string]bool{"b.png": true}}
	svc := NewUploadService(up)

	files := []*multipart.FileHeader{
		header("a.jpg", "image/jpeg", 1024),
		header("b.png", "image/png", 2048),
		header("c.jpg", "image/jpeg", 4096),
	}
	res := svc.UploadBatch(context.Background(), files, "concerns")

	assert.Len(t, res.Successful, 2)
	assert.Len(t, res.Failed, 1)
	assert.Equal(t, len(files), len(res.Successful)+len(res.Failed))

	// Original order preserved within buckets
	assert.Equal(t, 0, res.Successful[0].Index)
	assert.Equal(t, "a.jpg", res.Successful[0].FileName)
	assert.Equal(t, 2, res.Successful[1].Index)
	assert.Equal(t, "c.jpg", res.Successful[1].FileName)

	assert.Equal(t, 1, res.Failed[0].Index)
	assert.Equal(t, "b.png", res.Failed[0].FileName)
	assert.Equal(t, "upload failed", res.Failed[0].Reason)

	// Success records carry the remote identifiers
	assert.Equal(t, "pid_a.jpg", res.Successful[0].PublicID)
	assert.Contains(t, res.Successful[0].SecureURL, "a.jpg")
	assert.EqualValues(t, 1024, res.Successful[0].FileSize)
	assert.Equal(t, "image/jpeg", res.Successful[0].MimeType)
}

func TestUploadBatch_InvalidHandleNeverReachesUploader(t *testing.T) {
	up := &stubUploader{}
	svc := NewUploadService(up)

	files := []*multipart.FileHeader{
		header("a.jpg", "image/jpeg", 10),
		nil,
		header("", "image/jpeg", 10),
	}
	res := svc.UploadBatch(context.Background(), files, "")

	assert.Len(t, res.Successful, 1)
	assert.Len(t, res.Failed, 2)
	assert.Equal(t, []string{"a.jpg"}, up.calls)
	assert.Equal(t, 1, res.Failed[0].Index)
	assert.Equal(t, "invalid file type", res.Failed[0].Reason)
	assert.Equal(t, 2, res.Failed[1].Index)
}

func TestUploadBatch_EmptyInput(t *testing.T) {
	up := &stubUploader{}
	svc := NewUploadService(up)

	res := svc.UploadBatch(context.Background(), nil, "")
	assert.Empty(t, res.Successful)
	assert.Empty(t, res.Failed)
	assert.Empty(t, up.calls)
}
