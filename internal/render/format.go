// Package render presents checker results as text.
package render

import (
	"fmt"
	"strings"
	"time"
)

// MaskEmail hides the middle of the local part of an address.
// Short local parts and strings without "@" are returned as they are.
// Lengths are counted in characters, not bytes.
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) < 2 {
		return email
	}
	local, domain := []rune(parts[0]), parts[1]
	if len(local) <= 2 {
		return email
	}
	return string(local[:2]) + "***" + string(local[len(local)-1:]) + "@" + domain
}

const day = 24 * time.Hour

// TimeAgo describes how long ago t was, counted in whole days.
func TimeAgo(now, t time.Time) string {
	days := int(now.Sub(t) / day)
	switch {
	case days <= 0:
		return "今天"
	case days == 1:
		return "1天前"
	case days < 30:
		return fmt.Sprintf("%d天前", days)
	case days < 365:
		return fmt.Sprintf("%d个月前", days/30)
	default:
		return fmt.Sprintf("%d年前", days/365)
	}
}

// FormatDate writes a date the way it is written in Chinese.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "未知"
	}
	return t.Format("2006年1月2日")
}

// RepoURL is the web page of the repository.
func RepoURL(owner, repo string) string {
	return fmt.Sprintf("https://github.com/%s/%s", owner, repo)
}

// ConfigURL is the web page of the registration file of name.
func ConfigURL(owner, repo, zoneName, name string) string {
	return fmt.Sprintf("%s/blob/main/domains/%s/%s.json", RepoURL(owner, repo), zoneName, name)
}

// ProfileURL is the web page of a GitHub account.
func ProfileURL(login string) string {
	return "https://github.com/" + login
}
