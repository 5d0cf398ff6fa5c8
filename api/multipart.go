package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
)

// Upload is an optional file part forwarded with a multipart submission.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type formField struct {
	name  string
	value string
}

func encodeMultipart(fields []formField, fileField string, upload *Upload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}

	if upload != nil && upload.Body != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, upload.Filename))
		ct := upload.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create %s part: %w", fileField, err)
		}
		if _, err := io.Copy(part, upload.Body); err != nil {
			return nil, "", fmt.Errorf("copy %s part: %w", fileField, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
