package interview

import (
	"regexp"
	"strings"
	"time"
)

// ExperienceBuckets are the selectable years-of-experience ranges.
var ExperienceBuckets = []string{"0-1", "1-3", "3-5", "5-8", "8-12", "12+"}

// CandidateProfile holds the information collected on the profile form.
// It is immutable once submitted; the session owns the only reference.
type CandidateProfile struct {
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Experience  string    `json:"experience"` // one of ExperienceBuckets
	Position    string    `json:"position"`
	Location    string    `json:"location"`
	TechStack   string    `json:"tech_stack"` // free text, comma-separated skills
	SubmittedAt time.Time `json:"submitted_at"`
}

// FieldError describes one invalid profile field.
type FieldError struct {
	Field   string
	Message string
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var nonPhoneChars = regexp.MustCompile(`[^\d+]`)

// Validate checks all required fields and returns one error per invalid
// field. An empty slice means the profile is acceptable.
func (p *CandidateProfile) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(p.FullName) == "" {
		errs = append(errs, FieldError{"full_name", "Full name is required"})
	}
	if !ValidEmail(p.Email) {
		errs = append(errs, FieldError{"email", "Valid email address is required"})
	}
	if !ValidPhone(p.Phone) {
		errs = append(errs, FieldError{"phone", "Valid phone number is required"})
	}
	if !validExperience(p.Experience) {
		errs = append(errs, FieldError{"experience", "Years of experience is required"})
	}
	if strings.TrimSpace(p.Position) == "" {
		errs = append(errs, FieldError{"position", "Desired position is required"})
	}
	if strings.TrimSpace(p.Location) == "" {
		errs = append(errs, FieldError{"location", "Current location is required"})
	}
	if strings.TrimSpace(p.TechStack) == "" {
		errs = append(errs, FieldError{"tech_stack", "Tech stack is required"})
	}

	return errs
}

// ValidEmail reports whether the address matches the standard
// local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidPhone reports whether the number, after stripping everything but
// digits and a leading plus, is 10 to 15 characters long.
func ValidPhone(phone string) bool {
	cleaned := nonPhoneChars.ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 15
}

func validExperience(bucket string) bool {
	for _, b := range ExperienceBuckets {
		if bucket == b {
			return true
		}
	}
	return false
}

// ExperienceYears returns the numeric prefix of the experience bucket
// ("3" for "3-5", "12" for "12+"), which is what the generation prompt
// receives.
func (p *CandidateProfile) ExperienceYears() string {
	if i := strings.Index(p.Experience, "-"); i >= 0 {
		return p.Experience[:i]
	}
	return strings.TrimSuffix(p.Experience, "+")
}
