package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeParams_AllPresent(t *testing.T) {
	params, fieldErrs, err := decodeParams(
		[]byte(`{"email":"a@x.com","password":"pw","name":"Alice"}`),
		[]string{"email", "password"}, "name")

	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, map[string]string{"email": "a@x.com", "password": "pw", "name": "Alice"}, params)
}

func TestDecodeParams_OptionalOmitted(t *testing.T) {
	params, fieldErrs, err := decodeParams(
		[]byte(`{"email":"a@x.com","password":"pw"}`),
		[]string{"email", "password"}, "name")

	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	_, hasName := params["name"]
	assert.False(t, hasName)
}

func TestDecodeParams_MissingRequired(t *testing.T) {
	_, fieldErrs, err := decodeParams([]byte(`{}`), []string{"email", "password"})

	require.NoError(t, err)
	assert.Equal(t, FieldErrors{
		"email":    {"Missing data for required field."},
		"password": {"Missing data for required field."},
	}, fieldErrs)
}

func TestDecodeParams_PartiallyMissing(t *testing.T) {
	_, fieldErrs, err := decodeParams([]byte(`{"password":"test"}`), []string{"email", "password"})

	require.NoError(t, err)
	assert.Equal(t, FieldErrors{
		"email": {"Missing data for required field."},
	}, fieldErrs)
}

func TestDecodeParams_UnknownFields(t *testing.T) {
	_, fieldErrs, err := decodeParams(
		[]byte(`{"email":"test@test.com","password":"pw","id":"test"}`),
		[]string{"email", "password"})

	require.NoError(t, err)
	assert.Equal(t, FieldErrors{
		"id": {"Unknown field."},
	}, fieldErrs)
}

func TestDecodeParams_MultipleUnknownFields(t *testing.T) {
	_, fieldErrs, err := decodeParams(
		[]byte(`{"secret":"bytes","status":"test","email":"test@test.com","password":"pw"}`),
		[]string{"email", "password"})

	require.NoError(t, err)
	assert.Equal(t, FieldErrors{
		"secret": {"Unknown field."},
		"status": {"Unknown field."},
	}, fieldErrs)
}

func TestDecodeParams_NonStringValue(t *testing.T) {
	_, fieldErrs, err := decodeParams(
		[]byte(`{"email":"a@x.com","password":42}`),
		[]string{"email", "password"})

	require.NoError(t, err)
	assert.Equal(t, FieldErrors{
		"password": {"Not a valid string."},
	}, fieldErrs)
}

func TestDecodeParams_EmptyBody(t *testing.T) {
	_, fieldErrs, err := decodeParams(nil, []string{"email"})

	require.NoError(t, err)
	assert.Equal(t, FieldErrors{
		"email": {"Missing data for required field."},
	}, fieldErrs)
}

func TestDecodeParams_NotAnObject(t *testing.T) {
	_, _, err := decodeParams([]byte(`[1,2,3]`), []string{"email"})
	assert.Error(t, err)
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{email: "test@test.com", want: true},
		{email: "a@x.com", want: true},
		{email: "test", want: false},
		{email: "", want: false},
		{email: "Alice <a@x.com>", want: false},
		{email: "a@x.com, b@x.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, validEmail(tt.email))
		})
	}
}
