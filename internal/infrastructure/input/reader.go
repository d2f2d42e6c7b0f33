package input

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/cgpa-hub/cgpa-calculator/internal/domain/grading"
	"github.com/cgpa-hub/cgpa-calculator/internal/domain/shared"
)

var validate = validator.New()

// DecodeTranscript decodes a transcript document.
func DecodeTranscript(r io.Reader) (*TranscriptDTO, error) {
	var dto TranscriptDTO
	if err := json.NewDecoder(r).Decode(&dto); err != nil {
		return nil, shared.WrapError("transcript", "Decode", shared.ErrInvalidFormat,
			err.Error(), shared.ErrTranscriptMalformed)
	}
	return &dto, nil
}

// ReadTranscriptFile decodes the transcript document at path.
// The path "-" reads from stdin.
func ReadTranscriptFile(path string) (*TranscriptDTO, error) {
	if path == "-" {
		return DecodeTranscript(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeTranscript(f)
}

// DecodeScale decodes and validates a grading scale document.
func DecodeScale(r io.Reader) (grading.Scale, error) {
	var dto ScaleDTO
	if err := json.NewDecoder(r).Decode(&dto); err != nil {
		return grading.Scale{}, shared.WrapError("grading", "DecodeScale", shared.ErrInvalidFormat,
			"scale document is not valid JSON", err)
	}

	if err := validate.Struct(dto); err != nil {
		return grading.Scale{}, shared.WrapError("grading", "DecodeScale", shared.ErrValidation,
			"scale document failed validation", err)
	}

	scale := dto.ToScale()
	if err := scale.Validate(); err != nil {
		return grading.Scale{}, err
	}
	return scale, nil
}

// ReadScaleFile decodes the grading scale document at path.
func ReadScaleFile(path string) (grading.Scale, error) {
	f, err := os.Open(path)
	if err != nil {
		return grading.Scale{}, fmt.Errorf("open scale: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeScale(f)
}
