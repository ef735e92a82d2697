package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/onboard/internal/utils/validation"
)

func TestNewProfile_FieldsKeepInsertionOrder(t *testing.T) {
	p, err := NewProfile("Nerd", 30,
		Attribute{Key: "location", Value: Text("Earth")},
		Attribute{Key: "isStudent", Value: Bool(true)},
		Attribute{Key: "skills", Value: List("HTML", "CSS")},
	)
	require.NoError(t, err)

	fields := p.Fields()
	require.Len(t, fields, 5)

	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"name", "age", "location", "isStudent", "skills"}, keys)

	assert.Equal(t, "Nerd", fields[0].Value)
	assert.Equal(t, 30, fields[1].Value)
	assert.Equal(t, "Earth", fields[2].Value)
	assert.Equal(t, true, fields[3].Value)
	assert.Equal(t, []string{"HTML", "CSS"}, fields[4].Value)
}

func TestNewProfile_RequiredOnly(t *testing.T) {
	p, err := NewProfile("Nerd", 0)
	require.NoError(t, err)

	assert.Len(t, p.Fields(), 2)
	_, ok := p.Attr("location")
	assert.False(t, ok)
}

func TestNewProfile_Validation(t *testing.T) {
	tests := []struct {
		name  string
		pName string
		age   int
		attrs []Attribute
		want  string
	}{
		{
			name: "missing name",
			age:  30,
			want: "field name is required",
		},
		{
			name:  "negative age",
			pName: "Nerd",
			age:   -1,
			want:  "field age must be 0 or greater",
		},
		{
			name: "both required fields broken",
			age:  -5,
			want: "field name is required, field age must be 0 or greater",
		},
		{
			name:  "empty attribute key",
			pName: "Nerd",
			attrs: []Attribute{{Key: "", Value: Text("x")}},
			want:  "field attributes[0].key is required",
		},
		{
			name:  "reserved attribute key",
			pName: "Nerd",
			attrs: []Attribute{{Key: "age", Value: Text("x")}},
			want:  `field attributes[0].key must not be "age"`,
		},
		{
			name:  "duplicate attribute key",
			pName: "Nerd",
			attrs: []Attribute{
				{Key: "city", Value: Text("Addis Ababa")},
				{Key: "city", Value: Text("Adama")},
			},
			want: "field attributes must not repeat key",
		},
		{
			name:  "invalid email",
			pName: "Eyob",
			age:   20,
			attrs: []Attribute{{Key: "email", Value: Text("not-an-email")}},
			want:  "field email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProfile(tt.pName, tt.age, tt.attrs...)
			require.Error(t, err)

			var verr *validation.Error
			require.True(t, errors.As(err, &verr), "want *validation.Error, got %T", err)
			assert.Equal(t, tt.want, verr.Error())
		})
	}
}

func TestNewProfile_EmailOnlyCheckedWhenText(t *testing.T) {
	_, err := NewProfile("Eyob", 20, Attribute{Key: "email", Value: List("a", "b")})
	assert.NoError(t, err)

	_, err = NewProfile("Eyob", 20, Attribute{Key: "email", Value: Text("eyob@gmail.com")})
	assert.NoError(t, err)
}

func TestNewProfile_CopiesAttributes(t *testing.T) {
	attrs := []Attribute{{Key: "location", Value: Text("Earth")}}
	p, err := NewProfile("Nerd", 30, attrs...)
	require.NoError(t, err)

	attrs[0].Value = Text("Mars")

	v, ok := p.Attr("location")
	require.True(t, ok)
	s, _ := v.AsText()
	assert.Equal(t, "Earth", s)
}

func TestValue(t *testing.T) {
	items := []string{"HTML", "CSS"}
	v := List(items...)
	items[0] = "changed"

	got, ok := v.AsList()
	require.True(t, ok)
	assert.Equal(t, []string{"HTML", "CSS"}, got)

	got[1] = "changed"
	again, _ := v.AsList()
	assert.Equal(t, "CSS", again[1])

	empty, ok := List().AsList()
	require.True(t, ok)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, ok = Bool(true).AsText()
	assert.False(t, ok)
	assert.Equal(t, KindBool, Bool(false).Kind())
	assert.Equal(t, "list", KindList.String())

	assert.Equal(t, Text("a"), Text("a"))
	assert.NotEqual(t, Text("true"), Bool(true))
	assert.Equal(t, List("a", "b"), List("a", "b"))
	assert.NotEqual(t, List("a", "b"), List("b", "a"))
}
