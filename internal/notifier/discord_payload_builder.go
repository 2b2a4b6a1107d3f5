package notifier

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/aleister1102/discordhook/internal/notifier/discord"
)

const (
	contentTypeJSON  = "application/json"
	payloadJSONField = "payload_json"
)

// quoteEscaper also drops CR and LF, which would end the part header.
var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"", "\r", "", "\n", "")

// requestBody is a serialized webhook execution ready to be posted.
type requestBody struct {
	contentType string
	body        *bytes.Buffer
	parts       int
}

// buildRequestBody encodes msg as plain JSON, or as multipart when it carries
// attachments or forceMultipart is set. Multipart bodies hold payload_json
// first, then files[i] in attachment order.
func buildRequestBody(msg discord.Message, forceMultipart bool) (*requestBody, error) {
	payloadJSON, err := msg.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal discord payload: %w", err)
	}

	attachments := msg.Attachments()
	if len(attachments) == 0 && !forceMultipart {
		return &requestBody{
			contentType: contentTypeJSON,
			body:        bytes.NewBuffer(payloadJSON),
			parts:       1,
		}, nil
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	jsonHeader := make(textproto.MIMEHeader)
	jsonHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, payloadJSONField))
	jsonHeader.Set("Content-Type", contentTypeJSON)
	part, err := writer.CreatePart(jsonHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create payload_json part: %w", err)
	}
	if _, err = part.Write(payloadJSON); err != nil {
		return nil, fmt.Errorf("failed to write payload_json to multipart: %w", err)
	}

	for id, attachment := range attachments {
		fileHeader := make(textproto.MIMEHeader)
		fileHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			fileFieldName(id), quoteEscaper.Replace(attachment.Filename)))
		fileHeader.Set("Content-Type", attachment.ContentType())

		part, err := writer.CreatePart(fileHeader)
		if err != nil {
			return nil, fmt.Errorf("failed to create form file %s: %w", fileFieldName(id), err)
		}
		if _, err = part.Write(attachment.Content); err != nil {
			return nil, fmt.Errorf("failed to copy file data to form: %w", err)
		}
	}

	if err = writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return &requestBody{
		contentType: writer.FormDataContentType(),
		body:        body,
		parts:       len(attachments) + 1,
	}, nil
}

func fileFieldName(id int) string {
	return fmt.Sprintf("files[%d]", id)
}
