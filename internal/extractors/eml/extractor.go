// Package eml extracts the subject and body text of RFC 5322 messages.
package eml

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/custodia-labs/comparedocs/internal/core/domain"
	"github.com/custodia-labs/comparedocs/internal/core/ports/driven"
	"github.com/custodia-labs/comparedocs/internal/extractors/html"
	"github.com/custodia-labs/comparedocs/internal/extractors/plaintext"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles EML (email) documents.
type Extractor struct{}

// New creates a new EML extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"message/rfc822",
	}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 50
}

// Extract returns the decoded subject followed by the message body.
// Address and date headers are left out so they do not skew term weights.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	msg, err := mail.ReadMessage(bytes.NewReader(raw.Content))
	if err != nil {
		return "", fmt.Errorf("%w: eml: %v", domain.ErrInvalidInput, err)
	}

	body, err := extractBody(msg.Header, msg.Body)
	if err != nil {
		return "", err
	}

	var content strings.Builder
	if subject := decodeHeader(msg.Header.Get("Subject")); subject != "" {
		content.WriteString(subject)
		content.WriteString("\n\n")
	}
	content.WriteString(body)

	return strings.TrimSpace(content.String()), nil
}

// header is the subset of mail.Header and textproto.MIMEHeader used here.
type header interface {
	Get(key string) string
}

// decodeHeader decodes RFC 2047 encoded words.
func decodeHeader(value string) string {
	if value == "" {
		return ""
	}
	dec := &mime.WordDecoder{CharsetReader: charsetReader}
	decoded, err := dec.DecodeHeader(value)
	if err != nil {
		return value
	}
	return decoded
}

// extractBody returns the text of one entity, descending into multiparts.
func extractBody(h header, body io.Reader) (string, error) {
	contentType := h.Get("Content-Type")
	if contentType == "" {
		contentType = "text/plain"
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, params = "text/plain", nil
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return extractMultipart(body, params["boundary"])
	}

	content, err := io.ReadAll(decodeTransfer(h.Get("Content-Transfer-Encoding"), body))
	if err != nil {
		return "", fmt.Errorf("%w: eml: %v", domain.ErrInvalidInput, err)
	}

	switch mediaType {
	case "text/html":
		decoded, err := decodeCharset(params["charset"], content)
		if err != nil {
			return "", err
		}
		return html.ExtractText(strings.NewReader(decoded))
	case "text/plain", "":
		return decodeCharset(params["charset"], content)
	default:
		// Attachments and other non-text parts.
		return "", nil
	}
}

// extractMultipart prefers text/plain parts, falling back to HTML.
func extractMultipart(r io.Reader, boundary string) (string, error) {
	if boundary == "" {
		return "", nil
	}

	mr := multipart.NewReader(r, boundary)
	var textParts, htmlParts []string

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: eml: %v", domain.ErrInvalidInput, err)
		}

		if isAttachment(part.Header.Get("Content-Disposition")) {
			part.Close()
			continue
		}

		mediaType, _, parseErr := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if parseErr != nil {
			mediaType = "text/plain"
		}

		text, err := extractBody(part.Header, part)
		part.Close()
		if err != nil {
			return "", err
		}
		if text == "" {
			continue
		}

		if mediaType == "text/html" {
			htmlParts = append(htmlParts, text)
		} else {
			textParts = append(textParts, text)
		}
	}

	if len(textParts) > 0 {
		return strings.Join(textParts, "\n"), nil
	}
	return strings.Join(htmlParts, "\n"), nil
}

func isAttachment(disposition string) bool {
	if disposition == "" {
		return false
	}
	d, _, err := mime.ParseMediaType(disposition)
	return err == nil && d == "attachment"
}

// decodeTransfer undoes the Content-Transfer-Encoding.
// multipart.Reader already decodes quoted-printable parts and strips the header.
func decodeTransfer(encoding string, r io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	default:
		return r
	}
}

// decodeCharset converts content to UTF-8 using the declared charset.
// Without a usable charset the plaintext heuristics apply.
func decodeCharset(charset string, content []byte) (string, error) {
	if charset != "" {
		if enc, err := htmlindex.Get(charset); err == nil {
			out, err := enc.NewDecoder().Bytes(content)
			if err == nil {
				return string(out), nil
			}
		}
	}
	return plaintext.Decode(content)
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder().Reader(input), nil
}
