package errors

import "testing"

func TestValidateColormapName(t *testing.T) {
	valid := []string{
		"fire",
		"linear_kryw_0_100_c71",
		"fire_r",
		"diverging_bwr_40_95_c42",
	}
	for _, name := range valid {
		if err := ValidateColormapName(name); err != nil {
			t.Errorf("ValidateColormapName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{
		"",
		"../etc/passwd",
		"fire/r",
		"fire\\r",
		"fire\x00",
		"fire\n",
	}
	for _, name := range invalid {
		if err := ValidateColormapName(name); err == nil {
			t.Errorf("ValidateColormapName(%q) = nil, want error", name)
		} else if !Is(err, ErrCodeInvalidName) {
			t.Errorf("ValidateColormapName(%q) code = %v, want %v", name, GetCode(err), ErrCodeInvalidName)
		}
	}

	long := make([]byte, 129)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidateColormapName(string(long)); err == nil {
		t.Error("ValidateColormapName(long) = nil, want error")
	}
}

func TestValidateHexColor(t *testing.T) {
	valid := []string{"#000000", "#ffffff", "#a03b77", "#AB12cd"}
	for _, s := range valid {
		if err := ValidateHexColor(s); err != nil {
			t.Errorf("ValidateHexColor(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{"", "#fff", "ffffff", "#gggggg", "#12345", "#1234567"}
	for _, s := range invalid {
		if err := ValidateHexColor(s); err == nil {
			t.Errorf("ValidateHexColor(%q) = nil, want error", s)
		}
	}
}
