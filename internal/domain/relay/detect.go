package relay

import (
	"regexp"
	"strings"
)

var linkMarkers = []string{
	"youtu.be/",
	"youtube.com/watch",
	"youtube.com/live/",
	"youtube.com/shorts/",
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/watch\?(?:.*&)?v=([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/live/([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]+)`),
}

// ContainsLink reports whether text carries one of the recognised YouTube URL shapes.
func ContainsLink(text string) bool {
	for _, marker := range linkMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// VideoID extracts the first video id found in text. It is only used for
// log correlation; detection itself stays on substring matching.
func VideoID(text string) string {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(text); len(match) == 2 {
			return match[1]
		}
	}
	return ""
}

func roomAllowed(rooms []string, room string) bool {
	if len(rooms) == 0 {
		return true
	}
	room = strings.TrimSpace(room)
	for _, candidate := range rooms {
		if strings.TrimSpace(candidate) == room {
			return true
		}
	}
	return false
}
