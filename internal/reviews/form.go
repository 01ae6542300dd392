package reviews

import (
	"github.com/go-playground/validator/v10"

	"github.com/richxcame/route-reviews/pkg/validation"
)

// FormValues holds the review form fields as typed by the user. Title and
// comment are expected to be trimmed by the caller.
type FormValues struct {
	RouteID    int64  `validate:"required"`
	CommuterID int64  `validate:"required"`
	Rating     int    `validate:"required,gte=1,lte=5"`
	Title      string `validate:"required,max=120"`
	Comment    string `validate:"omitempty,max=2000"`
}

// ValidateForm checks all fields and returns every failure at once, keyed
// by the form field name. An empty map means the values may be submitted.
// It is pure: no I/O, no side effects.
func ValidateForm(values FormValues) map[string]string {
	errs := make(map[string]string)

	err := validation.Validate.Struct(values)
	if err == nil {
		return errs
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid input"
		return errs
	}

	for _, fe := range fieldErrors {
		switch fe.StructField() {
		case "RouteID":
			errs["routeId"] = "Route is required"
		case "CommuterID":
			errs["commuterId"] = "Commuter is required"
		case "Rating":
			errs["rating"] = "Rating must be 1-5"
		case "Title":
			// A present-but-too-long title reports the length message,
			// not the presence one.
			if fe.Tag() == "max" {
				errs["title"] = "Max 120 characters"
			} else {
				errs["title"] = "Title is required"
			}
		case "Comment":
			errs["comment"] = "Max 2000 characters"
		}
	}

	return errs
}
