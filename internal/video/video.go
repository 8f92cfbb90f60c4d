// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package video extracts embeddable video ids from the links editors paste
// into reviews.
package video

import (
	"net/url"
	"regexp"
	"strings"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// YouTubeID returns the video id of a YouTube link. It understands watch
// URLs, youtu.be short links, shorts, live and embed paths. ok is false for
// anything else.
func YouTubeID(raw string) (id string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	switch host {
	case "youtu.be":
		id = segments[0]
	case "youtube.com", "youtube-nocookie.com", "music.youtube.com":
		switch {
		case segments[0] == "watch":
			id = u.Query().Get("v")
		case len(segments) >= 2 && (segments[0] == "embed" || segments[0] == "shorts" ||
			segments[0] == "live" || segments[0] == "v"):
			id = segments[1]
		}
	}

	if !idPattern.MatchString(id) {
		return "", false
	}
	return id, true
}

// EmbedURL returns the privacy-enhanced player URL for a video id.
func EmbedURL(id string) string {
	return "https://www.youtube-nocookie.com/embed/" + id
}

// ThumbnailURL returns the default high quality thumbnail of a video id.
func ThumbnailURL(id string) string {
	return "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg"
}
