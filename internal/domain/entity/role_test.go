package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		tag  string
		want Role
	}{
		{"", RoleNone},
		{"patient", RolePatient},
		{"loggedPatient", RoleLoggedPatient},
		{"doctor", RoleDoctor},
		{"admin", RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseRole(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.tag, got.String())
		})
	}
}

func TestParseRole_Unknown(t *testing.T) {
	_, err := ParseRole("nurse")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRole_Authenticated(t *testing.T) {
	assert.False(t, RoleNone.Authenticated())
	assert.False(t, RolePatient.Authenticated())
	assert.True(t, RoleLoggedPatient.Authenticated())
	assert.True(t, RoleDoctor.Authenticated())
	assert.True(t, RoleAdmin.Authenticated())
}

type countingVisitor struct{ calls map[string]int }

func (v countingVisitor) None() string          { v.calls["none"]++; return "none" }
func (v countingVisitor) Patient() string       { v.calls["patient"]++; return "patient" }
func (v countingVisitor) LoggedPatient() string { v.calls["logged"]++; return "logged" }
func (v countingVisitor) Doctor() string        { v.calls["doctor"]++; return "doctor" }
func (v countingVisitor) Admin() string         { v.calls["admin"]++; return "admin" }

func TestMatchRole_CallsExactlyOneBranch(t *testing.T) {
	v := countingVisitor{calls: map[string]int{}}

	assert.Equal(t, "admin", MatchRole[string](RoleAdmin, v))
	assert.Equal(t, "logged", MatchRole[string](RoleLoggedPatient, v))
	assert.Equal(t, "none", MatchRole[string](Role{}, v))

	assert.Equal(t, map[string]int{"admin": 1, "logged": 1, "none": 1}, v.calls)
}

func TestRole_JSONRoundTripThroughSession(t *testing.T) {
	sess := NewSession("abc")
	sess.SetSession(RoleLoggedPatient, "tok")

	data, err := json.Marshal(sess)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"loggedPatient"`)

	var decoded Session
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, RoleLoggedPatient, decoded.Role)
	assert.Equal(t, "tok", decoded.Token)
}

func TestRole_UnmarshalRejectsUnknownTag(t *testing.T) {
	var sess Session
	err := json.Unmarshal([]byte(`{"id":"x","role":"nurse"}`), &sess)
	assert.Error(t, err)
}
