package entry

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Location is where an entry was written. All six fields are required;
// a zero coordinate or a whitespace-only string counts as missing.
type Location struct {
	City      string  `json:"city"      validate:"notblank"`
	Country   string  `json:"country"   validate:"notblank"`
	Locality  string  `json:"locality"  validate:"notblank"`
	Latitude  float64 `json:"latitude"  validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
	Name      string  `json:"name"      validate:"notblank"`
}

var validate = newValidator()

// newValidator reports fields by their json names so errors match the
// CLI flags and MCP inputs.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("registering notblank: %v", err))
	}
	return v
}

// Validate checks that every field is present.
func (l Location) Validate() error {
	err := validate.Struct(l)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating location: %w", err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{
		Fields:  fields,
		Message: "missing required location fields",
	}
}

// ParseLocation builds a Location from string inputs such as flags,
// coercing latitude and longitude to floats, and validates it.
func ParseLocation(city, country, locality, latitude, longitude, name string) (Location, error) {
	var invalid []string
	lat, err := strconv.ParseFloat(strings.TrimSpace(latitude), 64)
	if err != nil && latitude != "" {
		invalid = append(invalid, "latitude")
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(longitude), 64)
	if err != nil && longitude != "" {
		invalid = append(invalid, "longitude")
	}
	if len(invalid) > 0 {
		return Location{}, &ValidationError{
			Fields:  invalid,
			Message: "location coordinates must be numbers",
		}
	}

	loc := Location{
		City:      city,
		Country:   country,
		Locality:  locality,
		Latitude:  lat,
		Longitude: lng,
		Name:      name,
	}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// vars returns the location template values. String fields are escaped
// like entry text so the plist stays well formed.
func (l Location) vars() map[string]string {
	return map[string]string{
		"City":       escapeText(l.City),
		"Country":    escapeText(l.Country),
		"Locality":   escapeText(l.Locality),
		"Latitude":   strconv.FormatFloat(l.Latitude, 'f', -1, 64),
		"Longitude":  strconv.FormatFloat(l.Longitude, 'f', -1, 64),
		"Place_Name": escapeText(l.Name),
	}
}
