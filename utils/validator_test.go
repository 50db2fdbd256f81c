package utils

import "testing"

type loginPayload struct {
	EmployeeCode string `validate:"required,empcode"`
	Pin          string `validate:"required,pin"`
}

func TestValidateStruct_Valid(t *testing.T) {
	p := loginPayload{EmployeeCode: "EMP001", Pin: "1234"}
	if err := ValidateStruct(&p); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidateStruct_RequiredFields(t *testing.T) {
	p := loginPayload{}
	if err := ValidateStruct(&p); err == nil {
		t.Fatal("expected error for missing employee code")
	}
	p = loginPayload{EmployeeCode: "EMP001"}
	if err := ValidateStruct(&p); err == nil {
		t.Fatal("expected error for missing pin")
	}
}

func TestValidateStruct_EmpCodeFormat(t *testing.T) {
	p := loginPayload{EmployeeCode: "EMP 001!", Pin: "1234"}
	if err := ValidateStruct(&p); err == nil {
		t.Fatal("expected error for employee code with invalid characters")
	}
}

func TestValidateStruct_PinFormat(t *testing.T) {
	for _, pin := range []string{"12", "abcd", "123456789"} {
		p := loginPayload{EmployeeCode: "EMP001", Pin: pin}
		if err := ValidateStruct(&p); err == nil {
			t.Fatalf("expected error for pin %q", pin)
		}
	}
}
