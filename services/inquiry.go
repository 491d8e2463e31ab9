package services

import (
	"regexp"
	"strings"
)

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegexp = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	// phoneNoise is stripped before the phone number is checked
	phoneNoise = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// Inquiry is a visitor's enquiry about one property.
type Inquiry struct {
	PropertyID int    `json:"property_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}

// ValidateInquiry returns a message per invalid field, keyed by the field's
// JSON name. An empty map means the inquiry can be sent.
func ValidateInquiry(in Inquiry) map[string]string {
	errs := make(map[string]string)

	required := map[string]string{"name": in.Name, "email": in.Email, "message": in.Message}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			errs[field] = "This field is required"
		}
	}

	if email := strings.TrimSpace(in.Email); email != "" && !emailRegexp.MatchString(email) {
		errs["email"] = "Please enter a valid email address"
	}
	if phone := strings.TrimSpace(in.Phone); phone != "" && !phoneRegexp.MatchString(phoneNoise.Replace(phone)) {
		errs["phone"] = "Please enter a valid phone number"
	}

	return errs
}
