package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	UserName  string     `json:"user_name" validate:"required,min=3"`
	Email     string     `json:"email" validate:"required,email"`
	Birthdate *time.Time `json:"birthdate,omitempty" validate:"omitempty,lte"`
}

func TestStruct(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name           string
		input          sample
		expectedFields []string
	}{
		{"Valid", sample{UserName: "john", Email: "john@example.com", Birthdate: &past}, nil},
		{"NoBirthdate", sample{UserName: "john", Email: "john@example.com"}, nil},
		{"ShortName", sample{UserName: "jo", Email: "john@example.com"}, []string{"user_name"}},
		{"BadEmail", sample{UserName: "john", Email: "nope"}, []string{"email"}},
		{"FutureBirthdate", sample{UserName: "john", Email: "john@example.com", Birthdate: &future}, []string{"birthdate"}},
		{"Empty", sample{}, []string{"user_name", "email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.input)
			if tt.expectedFields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			assert.ErrorAs(t, err, &verr)
			var fields []string
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.expectedFields, fields)
		})
	}
}

func TestFieldError_Messages(t *testing.T) {
	assert.Equal(t, "user_name must be at least 3 characters", FieldError{Field: "user_name", Tag: "min", Param: "3"}.Error())
	assert.Equal(t, "cat_name is required", FieldError{Field: "cat_name", Tag: "required"}.Error())
	assert.Equal(t, "birthdate must not be in the future", FieldError{Field: "birthdate", Tag: "lte"}.Error())
	assert.Equal(t, "validation failed", (&Error{}).Error())
}
