package services

import "testing"

func TestValidateInquiry(t *testing.T) {
	valid := Inquiry{PropertyID: 1, Name: "Dana", Email: "dana@example.com", Message: "Is it available?"}

	tests := []struct {
		name   string
		mutate func(*Inquiry)
		fields []string
	}{
		{"valid", func(*Inquiry) {}, nil},
		{"valid phone", func(in *Inquiry) { in.Phone = "+1 (555) 123-4567" }, nil},
		{"missing name", func(in *Inquiry) { in.Name = "  " }, []string{"name"}},
		{"bad email", func(in *Inquiry) { in.Email = "dana@example" }, []string{"email"}},
		{"bad phone", func(in *Inquiry) { in.Phone = "call me" }, []string{"phone"}},
		{"leading zero phone", func(in *Inquiry) { in.Phone = "0555" }, []string{"phone"}},
		{"empty", func(in *Inquiry) { *in = Inquiry{} }, []string{"name", "email", "message"}},
	}

	for _, tt := range tests {
		in := valid
		tt.mutate(&in)
		errs := ValidateInquiry(in)
		if len(errs) != len(tt.fields) {
			t.Errorf("%s: got %v, want errors on %v", tt.name, errs, tt.fields)
			continue
		}
		for _, f := range tt.fields {
			if errs[f] == "" {
				t.Errorf("%s: missing error for %s", tt.name, f)
			}
		}
	}
}

func TestValidateInquiryMessages(t *testing.T) {
	errs := ValidateInquiry(Inquiry{Name: "Dana", Email: "nope", Message: "hi"})
	if errs["email"] != "Please enter a valid email address" {
		t.Errorf("email message: got %q", errs["email"])
	}
	errs = ValidateInquiry(Inquiry{})
	if errs["name"] != "This field is required" {
		t.Errorf("name message: got %q", errs["name"])
	}
}
