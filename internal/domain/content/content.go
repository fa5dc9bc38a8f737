package content

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Section names double as cache keys and event resource types.
const (
	SectionProfile        = "profile"
	SectionProjects       = "projects"
	SectionSkills         = "skills"
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionCertifications = "certifications"
	SectionBlog           = "blog"
	SectionQuotes         = "quotes"
)

var AllSections = []string{
	SectionProfile,
	SectionProjects,
	SectionSkills,
	SectionEducation,
	SectionExperience,
	SectionCertifications,
	SectionBlog,
	SectionQuotes,
}

var (
	ErrDateRange   = errors.New("start date must not be after end date")
	ErrDuplicateID = errors.New("order contains duplicate ids")
	ErrEmptyOrder  = errors.New("order must contain at least one id")
)

func ValidateURL(field string, raw *string) error {
	if raw == nil || *raw == "" {
		return nil
	}
	u, err := url.Parse(*raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) url", field)
	}
	return nil
}

func ValidateDateRange(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return ErrDateRange
	}
	return nil
}

// NormalizeTenure drops the end date of an ongoing entry and checks the range.
func NormalizeTenure(isCurrent bool, start, end *time.Time) (*time.Time, error) {
	if isCurrent {
		return nil, nil
	}
	if err := ValidateDateRange(start, end); err != nil {
		return nil, err
	}
	return end, nil
}

// NilIfBlank maps empty optional strings to NULL.
func NilIfBlank(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
