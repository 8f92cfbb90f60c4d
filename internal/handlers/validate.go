// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Validation limits for admin forms.
const (
	maxNameLen        = 100
	maxSlugLen        = 120
	maxPageTitleLen   = 300
	maxEmailLen       = 254
	minPasswordLen    = 8
	maxPasswordLen    = 72 // bcrypt rejects longer input
	maxDisplayNameLen = 100
)

// validateMenuEntry checks a category name and its slug.
func validateMenuEntry(name, slug string) string {
	if name == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 100 characters)."
	}
	if slug == "" {
		return "Name must contain letters or digits."
	}
	if len(slug) > maxSlugLen {
		return "Slug is too long (max 120 characters)."
	}
	return ""
}

// validateMenuItem checks a menu item; imageURL is optional.
func validateMenuItem(name, slug, imageURL string) string {
	if msg := validateMenuEntry(name, slug); msg != "" {
		return msg
	}
	if imageURL != "" && !isHTTPURL(imageURL) {
		return "Image must be an http(s) URL."
	}
	return ""
}

// validatePage checks a landing page. A subcategory page needs its category.
func validatePage(title string, categoryID, itemID *uuid.UUID) string {
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxPageTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if itemID != nil && categoryID == nil {
		return "Choose a category before choosing a subcategory."
	}
	return ""
}

// validateRegistration checks the sign-up form.
func validateRegistration(email, displayName, password string) string {
	if email == "" {
		return "Email is required."
	}
	if len(email) > maxEmailLen {
		return "Email is too long."
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return "Email address is not valid."
	}
	if displayName == "" {
		return "Name is required."
	}
	if utf8.RuneCountInString(displayName) > maxDisplayNameLen {
		return "Name is too long (max 100 characters)."
	}
	return validatePassword(password)
}

// validatePasswordChange checks a new password and its confirmation.
func validatePasswordChange(next, confirm string) string {
	if msg := validatePassword(next); msg != "" {
		return msg
	}
	if next != confirm {
		return "Passwords do not match."
	}
	return ""
}

func validatePassword(pw string) string {
	if utf8.RuneCountInString(pw) < minPasswordLen {
		return "Password must be at least 8 characters."
	}
	if len(pw) > maxPasswordLen {
		return "Password is too long (max 72 bytes)."
	}
	return ""
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
