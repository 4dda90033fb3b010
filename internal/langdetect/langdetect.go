package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector reports the most likely language of body text. The model set is
// limited to the languages the blogs under analysis realistically use, which
// keeps startup memory reasonable.
type Detector struct {
	inner lingua.LanguageDetector
}

// Unknown is reported when detection fails or input is empty.
const Unknown = "Unknown"

// New builds a detector. Load it once at startup and inject it; building is
// expensive.
func New() *Detector {
	langs := []lingua.Language{
		lingua.English,
		lingua.Spanish,
		lingua.French,
		lingua.German,
		lingua.Portuguese,
		lingua.Italian,
		lingua.Dutch,
	}
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().FromLanguages(langs...).Build(),
	}
}

// Detect returns the display name of the detected language, or Unknown.
func (d *Detector) Detect(text string) string {
	if d == nil || strings.TrimSpace(text) == "" {
		return Unknown
	}
	lang, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return Unknown
	}
	return lang.String()
}
