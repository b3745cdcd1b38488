// Package validate checks request-derived values before they reach AWS.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kylejryan/family-cloud-backend/internal/models"
	"github.com/kylejryan/family-cloud-backend/internal/s3io"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates any value carrying `validate` tags.
func Struct(s any) error {
	return v.Struct(s)
}

// Video checks a record is complete, and that its key belongs to its id,
// before it is written.
func Video(rec models.Video) error {
	if err := v.Struct(rec); err != nil {
		return fmt.Errorf("invalid video record: %w", err)
	}
	if id, ok := s3io.ParseVideoKey(rec.S3Key); !ok || id != rec.VideoID {
		return fmt.Errorf("invalid video record: key %q does not belong to %s", rec.S3Key, rec.VideoID)
	}
	return nil
}

// VideoID checks a path-supplied video id.
func VideoID(id string) error {
	if err := v.Var(id, "required,uuid4"); err != nil {
		return errors.New("invalid video id")
	}
	return nil
}

// Subject checks the subject claim is present. Subjects are opaque, so
// nothing beyond non-blank is required.
func Subject(sub string) error {
	if err := v.Var(strings.TrimSpace(sub), "required"); err != nil {
		return errors.New("subject claim required")
	}
	return nil
}
