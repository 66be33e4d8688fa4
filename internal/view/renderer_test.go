package view

import (
	"bytes"
	"strings"
	"testing"

	"hospital-portal/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Page(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	list := BuildDoctorList(DoctorListState{Role: entity.RoleAdmin, Doctors: []entity.Doctor{sampleDoctor()}})
	page := Page{
		Title:   "Admin Dashboard",
		Header:  BuildHeader("/admin/dashboard", entity.RoleAdmin),
		Footer:  BuildFooter(),
		Flash:   "Welcome",
		Modals:  []string{"addDoctor"},
		Content: AdminPage{Doctors: list},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, PageAdmin, page))

	html := buf.String()
	assert.Contains(t, html, "<title>Admin Dashboard | Hospital CMS</title>")
	assert.Contains(t, html, `data-flash="Welcome"`)
	assert.Contains(t, html, `id="doctor-7"`)
	assert.Contains(t, html, `id="modal-addDoctor"`)
	assert.Contains(t, html, `data-url="/admin/doctors/fragment"`)
	assert.Contains(t, html, "bindActions")
	assert.Contains(t, html, `data-list="content"`)
	assert.Contains(t, html, `"X-Requested-With": "XMLHttpRequest"`)
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, r.Page(&buf, "missing", Page{}))
	assert.Zero(t, buf.Len())
}

func TestRenderer_AppointmentTableFragment(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Fragment(&buf, FragmentAppointmentTable, BuildAppointmentTable(AppointmentTableState{})))

	html := buf.String()
	assert.Equal(t, 1, strings.Count(html, "<tr>"))
	assert.Contains(t, html, `colspan="5"`)
	assert.Contains(t, html, MsgNoAppointments)
}

func TestRenderer_DoctorListFragmentEscapes(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	doctor := sampleDoctor()
	doctor.Name = "<script>x</script>"

	var buf bytes.Buffer
	require.NoError(t, r.Fragment(&buf, FragmentDoctorList, BuildDoctorList(DoctorListState{Doctors: []entity.Doctor{doctor}})))
	assert.NotContains(t, buf.String(), "<script>x</script>")
}
