package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/signin/internal/client/models"
)

func TestRules_Validate(t *testing.T) {
	r := New()

	tests := []struct {
		name  string
		input models.Credentials
		want  map[Field]Kind
	}{
		{
			name:  "valid",
			input: models.Credentials{Email: "a@x.com", Password: "secret1"},
			want:  map[Field]Kind{},
		},
		{
			name:  "both empty",
			input: models.Credentials{},
			want:  map[Field]Kind{FieldEmail: Required, FieldPassword: Required},
		},
		{
			name:  "malformed email",
			input: models.Credentials{Email: "not-an-email", Password: "secret1"},
			want:  map[Field]Kind{FieldEmail: InvalidFormat},
		},
		{
			name:  "email without domain",
			input: models.Credentials{Email: "a@", Password: "secret1"},
			want:  map[Field]Kind{FieldEmail: InvalidFormat},
		},
		{
			name:  "short password",
			input: models.Credentials{Email: "a@x.com", Password: "12345"},
			want:  map[Field]Kind{FieldPassword: TooShort},
		},
		{
			name:  "exactly six characters",
			input: models.Credentials{Email: "a@x.com", Password: "123456"},
			want:  map[Field]Kind{},
		},
		{
			name:  "six multibyte characters",
			input: models.Credentials{Email: "a@x.com", Password: "пароль"},
			want:  map[Field]Kind{},
		},
		{
			name:  "malformed email and short password",
			input: models.Credentials{Email: "bob", Password: "abc"},
			want:  map[Field]Kind{FieldEmail: InvalidFormat, FieldPassword: TooShort},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Validate(tt.input)
			got := map[Field]Kind{}
			for f, e := range res.Errors {
				got[f] = e.Kind
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) == 0, res.Valid())
		})
	}
}

func TestRules_Messages(t *testing.T) {
	r := New()

	res := r.Validate(models.Credentials{})
	assert.Equal(t, "Email is required", res.Errors[FieldEmail].Message)
	assert.Equal(t, "Password is required", res.Errors[FieldPassword].Message)

	res = r.Validate(models.Credentials{Email: "nope", Password: "123"})
	assert.Equal(t, "Invalid email", res.Errors[FieldEmail].Message)
	assert.Equal(t, "Password must be at least 6 characters", res.Errors[FieldPassword].Message)
}

func TestRules_LongPasswordAccepted(t *testing.T) {
	res := New().Validate(models.Credentials{Email: "a@x.com", Password: strings.Repeat("x", 128)})
	require.True(t, res.Valid())
}

func TestResult_Visible_FiltersByTouched(t *testing.T) {
	res := New().Validate(models.Credentials{})
	require.Len(t, res.Errors, 2)

	assert.Empty(t, res.Visible(nil))
	assert.Empty(t, res.Visible(Touched{}))

	vis := res.Visible(Touched{FieldEmail: true})
	assert.Len(t, vis, 1)
	assert.Equal(t, Required, vis[FieldEmail].Kind)

	assert.Len(t, res.Visible(TouchAll()), 2)
}

func TestResult_Visible_TouchedButValid(t *testing.T) {
	res := New().Validate(models.Credentials{Email: "a@x.com", Password: "1"})

	vis := res.Visible(TouchAll())
	assert.NotContains(t, vis, FieldEmail)
	assert.Equal(t, TooShort, vis[FieldPassword].Kind)
}
