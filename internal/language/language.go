package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
)

// ToISO2 normalizes a configured language identifier (a BCP-47 tag such
// as "zh-Hans", an ISO code, or a close misspelling) to its base
// ISO 639 code for the transcription engine. Values the tag parser
// cannot place are returned trimmed so the engine can still try them.
func ToISO2(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	tag, err := xlanguage.Parse(value)
	if err != nil {
		return value
	}
	base, confidence := tag.Base()
	if confidence == xlanguage.No {
		return value
	}
	return base.String()
}
