package md2docx

import "fmt"

// Default brand settings, matching the house letterhead style.
const (
	DefaultFontName           = "Calibri"
	DefaultBodySize           = 11 // points
	DefaultQualificationsSize = 10
	DefaultHeading2Size       = 14
	DefaultHeading3Size       = 12
	DefaultLineSpacing        = 1.2
)

// Line spacing bounds (1.0 = single, 2.0 = double).
const (
	MinLineSpacing = 0.5
	MaxLineSpacing = 3.0
)

// SignOff is the fixed closing identity appended after the letter body.
// It comes from configuration, never from the markdown source.
type SignOff struct {
	Name           string
	Qualifications string
	Title          string
}

// Brand holds the visual identity of generated letters: font, sizes, line
// spacing and the sign-off block. It is immutable once passed to a service.
type Brand struct {
	FontName           string
	BodySize           int     // body text, points
	QualificationsSize int     // smaller size for the qualifications line
	Heading2Size       int     // document title and H2 headings
	Heading3Size       int     // H3 headings
	LineSpacing        float64 // multiplier: 1.0 single, 1.5 one-and-a-half
	SignOff            SignOff
}

// DefaultBrand returns the stock brand profile.
func DefaultBrand() Brand {
	return Brand{
		FontName:           DefaultFontName,
		BodySize:           DefaultBodySize,
		QualificationsSize: DefaultQualificationsSize,
		Heading2Size:       DefaultHeading2Size,
		Heading3Size:       DefaultHeading3Size,
		LineSpacing:        DefaultLineSpacing,
	}
}

// Validate checks that brand settings are renderable.
func (b Brand) Validate() error {
	if b.FontName == "" {
		return fmt.Errorf("%w: font name cannot be empty", ErrInvalidFontName)
	}
	for _, size := range []struct {
		name  string
		value int
	}{
		{"body", b.BodySize},
		{"qualifications", b.QualificationsSize},
		{"heading-2", b.Heading2Size},
		{"heading-3", b.Heading3Size},
	} {
		if size.value <= 0 {
			return fmt.Errorf("%w: %s size %d (must be positive)", ErrInvalidFontSize, size.name, size.value)
		}
	}
	if b.LineSpacing < MinLineSpacing || b.LineSpacing > MaxLineSpacing {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidLineSpacing, b.LineSpacing, MinLineSpacing, MaxLineSpacing)
	}
	return nil
}

// Recipient is the address block at the top of the letter. Name is required
// and always rendered; the remaining fields are skipped when blank.
type Recipient struct {
	Name         string
	Title        string
	Organization string
	Address      string
	City         string
	Country      string
}

// Input contains generation parameters for a single document.
type Input struct {
	Markdown  string    // markdown source (required)
	Template  []byte    // letterhead .docx bytes (required)
	Title     string    // document title, centered on the first page (required)
	Date      string    // already-resolved date line
	Recipient Recipient // recipient address block (name required)
}

// Option configures a Service.
type Option func(*Service)

// WithBrand replaces the default brand profile.
func WithBrand(b Brand) Option {
	return func(s *Service) {
		s.brand = b
	}
}
