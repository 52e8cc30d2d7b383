// ABOUTME: Multipart image upload against the admin upload endpoint
// ABOUTME: Same auth and normalization rules as other verbs, no timeout race

package gateway

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"barangay-app-client/core/domain"
	coreerrors "barangay-app-client/core/errors"
)

const uploadPath = "/api/admin/upload-image"

// UploadImage posts a file as multipart form data and returns the hosted
// image URL. The field name is "file", matching the server's expectation.
func (g *Gateway) UploadImage(ctx context.Context, filename, contentType string, data []byte) (*domain.UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+escapeQuotes(filename)+`"`)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, coreerrors.FromTransport(err, g.origin)
	}
	if _, err := part.Write(data); err != nil {
		return nil, coreerrors.FromTransport(err, g.origin)
	}
	if err := writer.Close(); err != nil {
		return nil, coreerrors.FromTransport(err, g.origin)
	}

	reqHeader := make(http.Header)
	reqHeader.Set("Content-Type", writer.FormDataContentType())

	raw, err := g.do(ctx, http.MethodPost, uploadPath, reqHeader, &buf)
	if err != nil {
		return nil, err
	}

	var result domain.UploadResult
	if err := decode(raw, &result, g.origin); err != nil {
		return nil, err
	}
	return &result, nil
}

func escapeQuotes(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}
