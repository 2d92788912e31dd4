package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupFormValid(t *testing.T) {
	form := &SignupForm{
		Username: "leo",
		Email:    "leo@example.com",
		Password: "war-and-peace",
		Errors:   Errors{},
	}
	assert.True(t, form.Validate())
	assert.Empty(t, form.Errors)
}

func TestSignupFormInvalid(t *testing.T) {
	tests := []struct {
		name      string
		form      SignupForm
		wantField string
	}{
		{"missing username", SignupForm{Email: "a@b.com", Password: "longenough"}, "username"},
		{"username with symbols", SignupForm{Username: "le o!", Email: "a@b.com", Password: "longenough"}, "username"},
		{"bad email", SignupForm{Username: "leo", Email: "not-an-email", Password: "longenough"}, "email"},
		{"short password", SignupForm{Username: "leo", Email: "a@b.com", Password: "short"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.form.Errors = Errors{}
			assert.False(t, tt.form.Validate())
			assert.True(t, tt.form.Errors.Has(tt.wantField), "expected error on %q, got %v", tt.wantField, tt.form.Errors)
		})
	}
}

func TestLoginFormValidate(t *testing.T) {
	form := &LoginForm{Username: "leo", Password: "pw", Errors: Errors{}}
	assert.True(t, form.Validate())

	empty := &LoginForm{Errors: Errors{}}
	assert.False(t, empty.Validate())
	assert.True(t, empty.Errors.Has("username"))
	assert.True(t, empty.Errors.Has("password"))
}

func TestCommentFormValidate(t *testing.T) {
	form := &CommentForm{Text: "hello", Errors: Errors{}}
	assert.True(t, form.Validate())

	empty := &CommentForm{Errors: Errors{}}
	assert.False(t, empty.Validate())
	assert.True(t, empty.Errors.Has("text"))
}
