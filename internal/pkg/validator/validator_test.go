package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"08:00:00", "17:30:15", "23:59", "00:00"}
	invalid := []string{"24:00:00", "8am", "", "12:60:00"}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	cases := []struct {
		month, year int
		want        bool
	}{
		{1, 2024, true},
		{12, 1, true},
		{0, 2024, false},
		{13, 2024, false},
		{5, 0, false},
		{5, -2024, false},
	}
	for _, c := range cases {
		if got := IsValidPeriod(c.month, c.year); got != c.want {
			t.Errorf("IsValidPeriod(%d, %d) = %v, want %v", c.month, c.year, got, c.want)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"0901234567", "090-123-4567", "090 123 4567", "+84901234567"}
	invalid := []string{"901234567", "09012345678", "abc0901234", "+8490123456", "+8490123456a"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsValidEmployeeID(t *testing.T) {
	valid := []string{"FT001", "ct-12", "IT_7"}
	invalid := []string{"", "FT 001", "FT/001", "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"}
	for _, id := range valid {
		if !IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = true, want false", id)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; phone: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "phone": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
