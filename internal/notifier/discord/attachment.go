package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/discordhook/internal/common/errorwrapper"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

// MaxAttachmentSize is the upload limit for webhooks on servers without boosts.
const MaxAttachmentSize = 25 * 1024 * 1024

var attachmentValidate = validator.New()

// Attachment is a file uploaded alongside a message. Its position in the
// message's attachment list is its wire id.
type Attachment struct {
	Content     []byte `validate:"max=26214400"`
	Filename    string `validate:"required,max=1024"`
	Description string `validate:"max=1024"`
	Filetype    string
}

// NewAttachment creates a new attachment
func NewAttachment(content []byte, filename, description, filetype string) Attachment {
	return Attachment{
		Content:     content,
		Filename:    filename,
		Description: description,
		Filetype:    filetype,
	}
}

// ContentType returns the declared filetype, or one detected from the
// content when none was declared.
func (a Attachment) ContentType() string {
	if strings.TrimSpace(a.Filetype) != "" {
		return a.Filetype
	}
	return mimetype.Detect(a.Content).String()
}

// Validate checks the attachment against Discord's upload constraints.
func (a Attachment) Validate() error {
	err := attachmentValidate.Struct(a)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fe := errs[0]
		value := fe.Value()
		if fe.Field() == "Content" {
			value = fmt.Sprintf("%d bytes", len(a.Content))
		}
		return errorwrapper.NewValidationError(strings.ToLower(fe.Field()), value,
			fmt.Sprintf("attachment %q failed rule '%s'", a.Filename, fe.Tag()))
	}
	return errorwrapper.WrapError(err, "attachment validation error")
}
