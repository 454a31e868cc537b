package api

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name  string `validate:"required,max=5"`
	Email string `validate:"required,email"`
	Age   int    `validate:"gte=18"`
}

func TestFieldErrors_ValidatorErrors(t *testing.T) {
	validate := validator.New()
	err := validate.Struct(signupForm{Name: "toolongname", Email: "not-an-email", Age: 10})
	require.Error(t, err)

	fieldErrs := FieldErrors(err)
	require.Len(t, fieldErrs, 3)

	byField := map[string]ValidationError{}
	for _, fe := range fieldErrs {
		byField[fe.Field] = fe
	}

	require.Equal(t, "max", byField["Name"].Tag)
	require.Equal(t, "Name must be at most 5", byField["Name"].Message)
	require.Equal(t, "Email must be a valid email address", byField["Email"].Message)
	require.Equal(t, "Age must be greater than or equal to 18", byField["Age"].Message)
}

func TestFieldErrors_RequiredMessage(t *testing.T) {
	validate := validator.New()
	err := validate.Struct(signupForm{Age: 20})
	require.Error(t, err)

	fieldErrs := FieldErrors(err)
	require.Len(t, fieldErrs, 2)
	require.Equal(t, "Name is required", fieldErrs[0].Message)
}

func TestFieldErrors_NonValidatorError(t *testing.T) {
	fieldErrs := FieldErrors(errors.New("unexpected EOF"))
	require.Len(t, fieldErrs, 1)
	require.Empty(t, fieldErrs[0].Field)
	require.Equal(t, "unexpected EOF", fieldErrs[0].Message)
}

func TestValidateStruct(t *testing.T) {
	require.Nil(t, ValidateStruct(signupForm{Name: "John", Email: "john@example.com", Age: 30}))

	fieldErrs := ValidateStruct(signupForm{Name: "John", Email: "bad", Age: 30})
	require.Len(t, fieldErrs, 1)
	require.Equal(t, "Email", fieldErrs[0].Field)
}
