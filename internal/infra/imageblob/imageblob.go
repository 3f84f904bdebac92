// Package imageblob is the file-to-blob collaborator: it turns an uploaded
// image into a self-contained encoded string embeddable as an image source.
package imageblob

import (
	"encoding/base64"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"tourease/internal/pkg/errs"
)

// Encode reads the uploaded file into a data URI. Files that cannot be
// opened or read fail with errs.ErrUnreadableFile; non-image content is
// rejected the same way.
func Encode(fh *multipart.FileHeader, maxBytes int64) (string, error) {
	if fh == nil {
		return "", errs.ErrUnreadableFile
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return "", errs.Mark(errs.New("upload exceeds size limit"), errs.ErrUnreadableFile)
	}

	f, err := fh.Open()
	if err != nil {
		return "", errs.Mark(err, errs.ErrUnreadableFile)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", errs.Mark(err, errs.ErrUnreadableFile)
	}
	if len(data) == 0 {
		return "", errs.ErrUnreadableFile
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", errs.Mark(errs.New("not an image: "+contentType), errs.ErrUnreadableFile)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
