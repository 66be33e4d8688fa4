package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorFilter_PathSegments(t *testing.T) {
	tests := []struct {
		name   string
		filter DoctorFilter
		want   []string
	}{
		{"empty", DoctorFilter{}, []string{"null", "null", "null"}},
		{"name only", DoctorFilter{Name: "Smith"}, []string{"Smith", "null", "null"}},
		{"all set", DoctorFilter{Name: "Smith", Time: "AM", Specialty: "Dentist"}, []string{"Smith", "AM", "Dentist"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.PathSegments())
		})
	}
}

func TestDoctorFilter_IsEmpty(t *testing.T) {
	assert.True(t, DoctorFilter{}.IsEmpty())
	assert.False(t, DoctorFilter{Time: "PM"}.IsEmpty())
}

func TestDoctor_UnmarshalAcceptsLegacyAvailability(t *testing.T) {
	var d Doctor
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"Lee","availability":["09:00-10:00"]}`), &d))
	assert.Equal(t, int64(3), d.ID)
	assert.Equal(t, []string{"09:00-10:00"}, d.AvailableTimes)
}

func TestDoctor_UnmarshalPrefersAvailableTimes(t *testing.T) {
	var d Doctor
	data := `{"name":"Lee","availableTimes":["10:00-11:00"],"availability":["09:00-10:00"]}`
	require.NoError(t, json.Unmarshal([]byte(data), &d))
	assert.Equal(t, []string{"10:00-11:00"}, d.AvailableTimes)
}

func TestFindDoctor(t *testing.T) {
	doctors := []Doctor{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	d, ok := FindDoctor(doctors, 2)
	require.True(t, ok)
	assert.Equal(t, "B", d.Name)

	_, ok = FindDoctor(doctors, 9)
	assert.False(t, ok)
}
