package request

import "strings"

// ClientInfo is where a waiver acceptance came from.
type ClientInfo struct {
	IP      string
	Device  string
	Browser string
	OS      string
}

// NewClientInfo classifies a User-Agent coarsely. Unknown agents yield
// "other" rather than an empty value.
func NewClientInfo(ip, userAgent string) ClientInfo {
	ua := strings.ToLower(userAgent)
	return ClientInfo{
		IP:      ip,
		Device:  device(ua),
		Browser: browser(ua),
		OS:      operatingSystem(ua),
	}
}

func device(ua string) string {
	switch {
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		return "tablet"
	case strings.Contains(ua, "mobi") || strings.Contains(ua, "iphone") || strings.Contains(ua, "android"):
		return "mobile"
	case ua == "":
		return "other"
	default:
		return "desktop"
	}
}

// Order matters: Edge and Opera also announce Chrome, Chrome announces Safari.
func browser(ua string) string {
	switch {
	case strings.Contains(ua, "edg/"):
		return "edge"
	case strings.Contains(ua, "opr/") || strings.Contains(ua, "opera"):
		return "opera"
	case strings.Contains(ua, "firefox/"):
		return "firefox"
	case strings.Contains(ua, "chrome/") || strings.Contains(ua, "crios/"):
		return "chrome"
	case strings.Contains(ua, "safari/"):
		return "safari"
	default:
		return "other"
	}
}

func operatingSystem(ua string) string {
	switch {
	case strings.Contains(ua, "android"):
		return "android"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad") || strings.Contains(ua, "ios"):
		return "ios"
	case strings.Contains(ua, "windows"):
		return "windows"
	case strings.Contains(ua, "mac os") || strings.Contains(ua, "macintosh"):
		return "macos"
	case strings.Contains(ua, "linux"):
		return "linux"
	default:
		return "other"
	}
}
