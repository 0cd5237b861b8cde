package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-engine/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportRow_ToRecord(t *testing.T) {
	row := ImportRow{EmployeeID: " E1 ", WorkDate: "2024-05-02", CheckInTime: "08:00:00", CheckOutTime: "16:30", DayType: "OVERTIME"}

	// Act
	r, err := row.ToRecord()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "E1", r.EmployeeID)
	assert.Equal(t, DayTypeOvertime, r.DayType)
	assert.Equal(t, time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC), r.CheckIn)
	assert.Equal(t, time.Date(2024, 5, 2, 16, 30, 0, 0, time.UTC), r.CheckOut)
	assert.Equal(t, 8, r.WorkedHours())
}

func TestImportRow_ToRecord_Errors(t *testing.T) {
	cases := map[string]ImportRow{
		"empty employee": {WorkDate: "2024-05-02", DayType: "normal"},
		"bad date":       {EmployeeID: "E1", WorkDate: "2024-02-30", DayType: "normal"},
		"bad day type":   {EmployeeID: "E1", WorkDate: "2024-05-02", DayType: "remote"},
		"bad check-in":   {EmployeeID: "E1", WorkDate: "2024-05-02", DayType: "normal", CheckInTime: "25:00:00"},
		"bad check-out":  {EmployeeID: "E1", WorkDate: "2024-05-02", DayType: "normal", CheckOutTime: "x"},
	}
	for name, row := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := row.ToRecord()
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func TestCreateRecordRequest_Validate(t *testing.T) {
	ok := CreateRecordRequest{EmployeeID: "E1", WorkDate: "2024-05-02", CheckIn: "08:00:00", CheckOut: "16:00:00", DayType: "normal"}
	require.NoError(t, ok.Validate())

	bad := CreateRecordRequest{WorkDate: "02-05-2024", CheckIn: "8", DayType: "sick"}
	err := bad.Validate()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "work_date")
	assert.Contains(t, fields, "day_type")
	assert.Contains(t, fields, "check_in")
	assert.NotContains(t, fields, "check_out")
}

func TestNewRecordResponse(t *testing.T) {
	r, err := (&CreateRecordRequest{EmployeeID: "E1", WorkDate: "2024-05-01", DayType: "holiday"}).ToRecord()
	require.NoError(t, err)

	resp := NewRecordResponse(r, true)

	assert.Equal(t, "2024-05-01", resp.WorkDate)
	assert.Equal(t, "00:00:00", resp.CheckIn)
	assert.True(t, resp.IsHoliday)
}
