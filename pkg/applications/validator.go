package applications

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxFileSize is the upload ceiling for pitch decks and business plans.
const MaxFileSize = 5 * 1024 * 1024

const TotalSteps = 4

// AllowedFileTypes lists the accepted document media types: PDF, legacy Word
// and Word-XML.
var AllowedFileTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var Industries = []string{"Technology", "Healthcare", "Fintech", "Energy", "Other"}

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)
	phonePattern = regexp.MustCompile(`^\d{7,}$`)
)

func IsValidIndustry(industry string) bool {
	for _, i := range Industries {
		if industry == i {
			return true
		}
	}
	return false
}

// ValidateStep checks the rules for one wizard step against the accumulated
// record. It returns a map from field name to a human-readable reason, empty
// when the step is valid. Steps outside 1..4 validate nothing.
func ValidateStep(step int, sub Submission) map[string]string {
	errs := make(map[string]string)

	switch step {
	case 1:
		if strings.TrimSpace(sub.FounderName) == "" {
			errs["founderName"] = "full name is required"
		}
		if !emailPattern.MatchString(sub.Email) {
			errs["email"] = "a valid email address is required"
		}
		if sub.Phone != "" && !phonePattern.MatchString(sub.Phone) {
			errs["phone"] = "phone must contain digits only, at least 7"
		}
	case 2:
		if strings.TrimSpace(sub.VentureName) == "" {
			errs["ventureName"] = "venture name is required"
		}
		if sub.Industry != "" && !IsValidIndustry(sub.Industry) {
			errs["industry"] = "industry must be one of: " + strings.Join(Industries, ", ")
		}
	case 3:
		validateFile(errs, "pitchDeck", sub.PitchDeck, true)
		// The business plan is optional but held to the same type/size rules.
		validateFile(errs, "businessPlan", sub.BusinessPlan, false)
	case 4:
		if !sub.GDPRConsent {
			errs["gdprConsent"] = "consent is required for submission"
		}
	}

	return errs
}

// Validate re-runs every step's rules against the complete record. This is
// the authoritative server-side check; the wizard's own step validation is
// never trusted.
func Validate(sub Submission) map[string]string {
	errs := make(map[string]string)
	for step := 1; step <= TotalSteps; step++ {
		for field, reason := range ValidateStep(step, sub) {
			errs[field] = reason
		}
	}
	return errs
}

func validateFile(errs map[string]string, field string, f *FileInput, required bool) {
	if f == nil {
		if required {
			errs[field] = "pitch deck upload is required"
		}
		return
	}
	if !AllowedFileTypes[f.ContentType] {
		errs[field] = "file must be PDF, DOC or DOCX"
		return
	}
	if f.Size > MaxFileSize {
		errs[field] = "file must not exceed 5 MB"
	}
}

// ValidationError carries the per-field reasons a submission was rejected.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}
