package domain

import (
	"net/url"
	"strings"
)

type ShareLinks struct {
	EventURL  string
	Text      string
	Facebook  string
	Twitter   string
	WhatsApp  string
	Clipboard string // Instagram has no share intent; the client copies this.
}

// BuildShareLinks formats the social share intents for an event.
// baseURL is the public origin, e.g. https://events.example.com.
func BuildShareLinks(baseURL string, e Event) ShareLinks {
	eventURL := strings.TrimRight(baseURL, "/") + "/events?event=" + url.QueryEscape(e.ID)
	text := "Check out this event: " + e.Title

	return ShareLinks{
		EventURL:  eventURL,
		Text:      text,
		Facebook:  "https://www.facebook.com/sharer/sharer.php?u=" + encodeComponent(eventURL),
		Twitter:   "https://twitter.com/intent/tweet?text=" + encodeComponent(text) + "&url=" + encodeComponent(eventURL),
		WhatsApp:  "https://wa.me/?text=" + encodeComponent(text+" "+eventURL),
		Clipboard: text + " " + eventURL,
	}
}

// componentUnescaper restores the marks that encodeURIComponent leaves as-is
// after url.QueryEscape has escaped them.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes like encodeURIComponent: spaces become %20 and
// the marks !'()* stay literal.
func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
