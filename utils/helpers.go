package utils

import (
	"regexp"
	"strings"
)

var youtubeIDSplit = regexp.MustCompile(`(vi/|v=|/v/|youtu\.be/|/embed/)`)
var youtubeIDChars = regexp.MustCompile(`[^0-9a-zA-Z_\-]`)

// ValidateYouTubeURL kiểm tra link có phải YouTube không
func ValidateYouTubeURL(url string) bool {
	return strings.Contains(url, "www.youtube.com")
}

// YouTubeGetID lấy video id từ các dạng URL YouTube khác nhau
func YouTubeGetID(url string) string {
	url = strings.NewReplacer(">", "", "<", "").Replace(url)

	parts := youtubeIDSplit.Split(url, 2)
	if len(parts) < 2 {
		return ""
	}
	id := parts[1]
	if idx := youtubeIDChars.FindStringIndex(id); idx != nil {
		id = id[:idx[0]]
	}
	return id
}
