package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUnmarshal(t *testing.T) {
	type payload struct {
		Phone domain.Optional[string] `json:"phone"`
	}

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantNull  bool
		wantValue string
	}{
		{"absent", `{}`, false, false, ""},
		{"explicit null", `{"phone": null}`, true, true, ""},
		{"empty string", `{"phone": ""}`, true, false, ""},
		{"value", `{"phone": "+1 555 0100"}`, true, false, "+1 555 0100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tc.body), &p))
			assert.Equal(t, tc.wantSet, p.Phone.Set)
			assert.Equal(t, tc.wantNull, p.Phone.Null)
			assert.Equal(t, tc.wantValue, p.Phone.Value)
		})
	}
}

func TestOptionalUnmarshalTypeMismatch(t *testing.T) {
	var o domain.Optional[int]
	err := json.Unmarshal([]byte(`"seven"`), &o)
	assert.Error(t, err)
}

func TestOptionalMarshal(t *testing.T) {
	b, err := json.Marshal(domain.Some("x"))
	require.NoError(t, err)
	assert.JSONEq(t, `"x"`, string(b))

	b, err = json.Marshal(domain.Null[string]())
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(b))

	b, err = json.Marshal(domain.Optional[string]{})
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(b))
}

func TestAssignmentsColumnsAndArgs(t *testing.T) {
	a := domain.Assignments{
		{Column: "name", Value: "Go"},
		{Column: "level", Value: 90},
	}
	assert.Equal(t, []string{"name", "level"}, a.Columns())
	assert.Equal(t, []any{"Go", 90}, a.Args())
}
