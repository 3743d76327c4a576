package catalog

import (
	"github.com/glyphdict/glyphdict-backend/internal/domain"
)

const (
	maxSemanticLen = 200
	maxIconLen     = 500
)

// EntryInput holds a (semantic, icon) pair for proposals and direct admin
// writes. Normalized reads the way storage sees it: semantic trimmed and
// lower-cased, icon trimmed.
type EntryInput struct {
	Semantic string
	Icon     string
}

// Normalized returns the input in canonical form.
func (i EntryInput) Normalized() EntryInput {
	return EntryInput{
		Semantic: domain.NormalizeSemantic(i.Semantic),
		Icon:     domain.NormalizeIcon(i.Icon),
	}
}

// Validate checks all fields and collects all errors. Runs on the
// normalized form.
func (i EntryInput) Validate() error {
	var errs []domain.FieldError

	n := i.Normalized()
	if n.Semantic == "" {
		errs = append(errs, domain.FieldError{Field: "semantic", Message: "required"})
	}
	if len(n.Semantic) > maxSemanticLen {
		errs = append(errs, domain.FieldError{Field: "semantic", Message: "max 200 characters"})
	}
	if n.Icon == "" {
		errs = append(errs, domain.FieldError{Field: "icon", Message: "required"})
	}
	if len(n.Icon) > maxIconLen {
		errs = append(errs, domain.FieldError{Field: "icon", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds the parameters for an admin icon update.
type UpdateEntryInput struct {
	Semantic string
	Icon     string
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	return EntryInput(i).Validate()
}

// DeleteEntryInput holds the parameters for an admin entry deletion.
type DeleteEntryInput struct {
	Semantic string
}

// Validate checks all fields and collects all errors.
func (i DeleteEntryInput) Validate() error {
	if domain.NormalizeSemantic(i.Semantic) == "" {
		return domain.NewValidationError("semantic", "required")
	}
	return nil
}
