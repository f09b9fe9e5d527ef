package converter

import "strings"

// AbsoluteImageURL turns a stored image path into an absolute URL under the
// media base. Empty paths map to "" (never null in responses) and values that
// are already absolute pass through untouched.
func AbsoluteImageURL(baseURL, image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	if baseURL == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(image, "/")
}
