package domain

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

func TestCompareAppointments(t *testing.T) {
	mon := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	tue := mon.AddDate(0, 0, 1)

	list := []Appointment{
		{ID: 1, Date: tue, StartTime: "08:00"},
		{ID: 2, Date: mon, StartTime: "15:00"},
		{ID: 3, Date: mon, StartTime: "09:00"},
		{ID: 4, Date: mon, StartTime: "09:00"},
	}

	slices.SortStableFunc(list, CompareAppointments)

	ids := make([]int64, len(list))
	for i, a := range list {
		ids[i] = a.ID
	}
	assert.Equal(t, []int64{3, 4, 2, 1}, ids)
}

func TestAppointmentDetails_Apply(t *testing.T) {
	a := Appointment{ID: 1, Title: "old", Color: "#000000", StartTime: "10:00"}

	AppointmentDetails{Title: "new", Description: ptr.Ptr("notes"), Color: "#ffffff"}.Apply(&a)

	assert.Equal(t, "new", a.Title)
	assert.Equal(t, "notes", *a.Description)
	assert.Equal(t, "#ffffff", a.Color)
	assert.Equal(t, "10:00", a.StartTime.String())
}

func TestReportFilter_Matches(t *testing.T) {
	day := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	row := &ReportAppointment{
		Appointment:  Appointment{ID: 1, Date: day},
		Client:       ReportClient{ID: 10},
		Professional: ReportProfessional{ID: 20},
	}

	assert.True(t, ReportFilter{}.Matches(row))
	assert.True(t, ReportFilter{ProfessionalID: ptr.Ptr(int64(20)), ClientID: ptr.Ptr(int64(10))}.Matches(row))
	assert.False(t, ReportFilter{ProfessionalID: ptr.Ptr(int64(21))}.Matches(row))
	assert.True(t, ReportFilter{From: ptr.Ptr(day), To: ptr.Ptr(day)}.Matches(row))
	assert.False(t, ReportFilter{From: ptr.Ptr(day.AddDate(0, 0, 1))}.Matches(row))

	row.Cancelled = true
	assert.False(t, ReportFilter{}.Matches(row))
	assert.True(t, ReportFilter{IncludeCancelled: true}.Matches(row))
}

func TestValidColor(t *testing.T) {
	assert.True(t, ValidColor("#3b82f6"))
	assert.True(t, ValidColor("#FFFFFF"))
	assert.False(t, ValidColor("3b82f6"))
	assert.False(t, ValidColor("#fff"))
	assert.False(t, ValidColor("#gggggg"))
}
