package interview

import "testing"

func validProfile() CandidateProfile {
	return CandidateProfile{
		FullName:   "Ana Torres",
		Email:      "ana@x.com",
		Phone:      "+14155550100",
		Experience: "3-5",
		Position:   "Backend Engineer",
		Location:   "Madrid, Spain",
		TechStack:  "Python, SQL",
	}
}

func TestProfileValidate_Valid(t *testing.T) {
	p := validProfile()
	if errs := p.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
}

func TestProfileValidate_CollectsAllErrors(t *testing.T) {
	p := CandidateProfile{}
	errs := p.Validate()
	if len(errs) != 7 {
		t.Fatalf("expected 7 field errors, got %d: %+v", len(errs), errs)
	}

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
		if e.Message == "" {
			t.Errorf("field %q has empty message", e.Field)
		}
	}
	for _, f := range []string{"full_name", "email", "phone", "experience", "position", "location", "tech_stack"} {
		if !fields[f] {
			t.Errorf("missing error for field %q", f)
		}
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@x.com", true},
		{"first.last+tag@sub.example.co", true},
		{"  ana@x.com  ", true},
		{"ana@x", false},
		{"ana.x.com", false},
		{"@x.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+14155550100", true},
		{"(415) 555-0100 x1", true},
		{"415555", false},
		{"+123456789012345678", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestExperienceYears(t *testing.T) {
	tests := []struct {
		bucket string
		want   string
	}{
		{"0-1", "0"},
		{"3-5", "3"},
		{"12+", "12"},
	}
	for _, tt := range tests {
		p := CandidateProfile{Experience: tt.bucket}
		if got := p.ExperienceYears(); got != tt.want {
			t.Errorf("ExperienceYears(%q) = %q, want %q", tt.bucket, got, tt.want)
		}
	}
}
