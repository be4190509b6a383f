package drop

import "strings"

// ParseURIList parses a text/uri-list body: one URI per CRLF or LF
// terminated line, with '#' lines as comments.
func ParseURIList(data []byte) []string {
	var uris []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r\x00"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		uris = append(uris, line)
	}
	return uris
}

// PayloadFromTarget builds a Payload from drag data received for a URI
// list target or a text target.
func PayloadFromTarget(uriList bool, data []byte) Payload {
	if uriList {
		if uris := ParseURIList(data); len(uris) > 0 {
			return Payload{URIs: uris}
		}
		return Payload{}
	}
	return Payload{Text: strings.TrimRight(string(data), "\x00")}
}
