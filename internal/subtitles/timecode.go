package subtitles

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrMalformedTimestamp reports a cue timestamp that does not follow the
// HH:MM:SS,mmm layout (SRT standard uses a comma before the milliseconds).
var ErrMalformedTimestamp = errors.New("malformed timestamp")

var timestampPattern = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2}),(\d{3})$`)

// ParseTimestamp parses an SRT cue timestamp into a duration with
// millisecond precision. The value must match the pattern exactly;
// callers strip surrounding whitespace before handing it over.
func ParseTimestamp(value string) (time.Duration, error) {
	match := timestampPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, value)
	}
	hours, errH := strconv.Atoi(match[1])
	minutes, errM := strconv.Atoi(match[2])
	seconds, errS := strconv.Atoi(match[3])
	millis, errMS := strconv.Atoi(match[4])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, value)
	}
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

// Seconds converts a cue time to floating-point seconds.
func Seconds(d time.Duration) float64 {
	return d.Seconds()
}

// LyricTag formats elapsed seconds as a lyric start tag: [MM:SS.ss].
// Minutes are zero-padded to two digits; the remaining seconds render
// with two decimals via fmt, so the last digit rounds half-to-even over
// the binary float value (83.456 becomes [01:23.46]).
func LyricTag(seconds float64) string {
	minutes := int(seconds / 60)
	remainder := seconds - float64(minutes)*60
	return fmt.Sprintf("[%02d:%05.2f]", minutes, remainder)
}
