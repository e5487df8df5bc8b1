// Package validation checks product upload forms before they reach the catalog store.
package validation

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

const (
	// MaxImageSize is the largest accepted image, 2048 KB.
	MaxImageSize = 2048 * 1024
	// MaxNameLength is the longest accepted product name.
	MaxNameLength = 255

	maxFormMemory = 8 << 20
)

// allowedImageTypes are the MIME types accepted for image slots (jpeg/jpg, png, gif).
var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif"}

var expiryLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

// Errors maps form field names to a human readable message.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = e[f]
	}
	return strings.Join(msgs, " ")
}

// Image is a validated upload destined for one slot.
type Image struct {
	Slot      domain.Slot
	Data      []byte
	MIME      string
	Extension string
}

// ProductForm is the validated content of a product upload or edit request.
type ProductForm struct {
	Category     string `form:"category" validate:"required"`
	Name         string `form:"name" validate:"required,max=255"`
	Price        string `form:"price" validate:"required"`
	Description  string `form:"description" validate:"required"`
	Manufacturer string `form:"manufacturer" validate:"required"`
	NafdacNo     *string
	Expiry       *time.Time
	Images       []Image
}

// Validator parses and validates multipart product forms.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return &Validator{validate: v}
}

// ParseProductForm reads a multipart request and applies the upload rules.
// It returns Errors when any field is missing or malformed.
func (v *Validator) ParseProductForm(r *http.Request) (*ProductForm, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, Errors{"form": "The request could not be read as a multipart form."}
	}

	form := &ProductForm{
		Category:     strings.TrimSpace(r.FormValue("category")),
		Name:         strings.TrimSpace(r.FormValue("name")),
		Price:        strings.TrimSpace(r.FormValue("price")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		Manufacturer: strings.TrimSpace(r.FormValue("manufacturer")),
	}

	errs := Errors{}
	if err := v.validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("failed to validate form: %w", err)
		}
		for _, fe := range fieldErrs {
			errs[fe.Field()] = message(fe)
		}
	}

	if nafdac := strings.TrimSpace(r.FormValue("nafdac_no")); nafdac != "" {
		form.NafdacNo = &nafdac
	}

	if raw := strings.TrimSpace(r.FormValue("expiry")); raw != "" {
		expiry, err := ParseExpiry(raw)
		if err != nil {
			errs["expiry"] = "The expiry is not a valid date."
		} else {
			form.Expiry = &expiry
		}
	}

	for _, slot := range domain.Slots {
		image, msg := readImage(r, slot)
		if msg != "" {
			errs[string(slot)] = msg
			continue
		}
		if image != nil {
			form.Images = append(form.Images, *image)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return form, nil
}

// ParseExpiry accepts a calendar date or an RFC 3339 timestamp.
func ParseExpiry(raw string) (time.Time, error) {
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("The %s field is invalid.", fe.Field())
}

// readImage returns nil and no message for an absent optional slot. image1 is required.
func readImage(r *http.Request, slot domain.Slot) (*Image, string) {
	file, header, err := r.FormFile(string(slot))
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			if slot == domain.SlotImage1 {
				return nil, fmt.Sprintf("The %s field is required.", slot)
			}
			return nil, ""
		}
		return nil, fmt.Sprintf("The %s failed to upload.", slot)
	}
	defer file.Close()

	return CheckImage(slot, header, file)
}

// CheckImage enforces the size and type rules on one uploaded file. A non-empty
// message means the file was rejected.
func CheckImage(slot domain.Slot, header *multipart.FileHeader, file io.Reader) (*Image, string) {
	tooLarge := fmt.Sprintf("The %s may not be greater than 2048 kilobytes.", slot)
	if header != nil && header.Size > MaxImageSize {
		return nil, tooLarge
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Sprintf("The %s failed to upload.", slot)
	}
	if len(data) > MaxImageSize {
		return nil, tooLarge
	}

	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedImageTypes...) {
		return nil, fmt.Sprintf("The %s must be a file of type: jpeg, png, jpg, gif.", slot)
	}

	return &Image{
		Slot:      slot,
		Data:      data,
		MIME:      mt.String(),
		Extension: strings.TrimPrefix(mt.Extension(), "."),
	}, ""
}
