package forms

import (
	"log/slog"
	"strings"
)

const redacted = "[REDACTED]"

func maskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	user := parts[0]
	domainParts := strings.SplitN(parts[1], ".", 2)
	if len(domainParts) != 2 {
		return email
	}

	domain, tld := domainParts[0], domainParts[1]
	maskPart := func(s string) string {
		if len(s) <= 1 {
			return s
		} else if len(s) == 2 {
			return string(s[0]) + "*"
		}
		return string(s[0]) + strings.Repeat("*", len(s)-2) + string(s[len(s)-1])
	}
	return maskPart(user) + "@" + maskPart(domain) + "." + tld
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// maskPhone hides all but the first two and last two digits, keeping separators in place.
func maskPhone(phone string) string {
	var digitsOnly strings.Builder
	for _, ch := range phone {
		if isDigit(ch) {
			digitsOnly.WriteRune(ch)
		}
	}
	dStr := digitsOnly.String()
	n := len(dStr)
	if n == 0 {
		return phone
	}

	var maskedDigits string
	if n <= 4 {
		maskedDigits = dStr[:1] + strings.Repeat("*", n-1)
	} else {
		maskedDigits = dStr[:2] + strings.Repeat("*", n-4) + dStr[n-2:]
	}

	var result strings.Builder
	idx := 0
	for _, ch := range phone {
		if isDigit(ch) {
			result.WriteByte(maskedDigits[idx])
			idx++
		} else {
			result.WriteRune(ch)
		}
	}
	return result.String()
}

// LogValue keeps passwords and contact details out of logs.
func (d FormData) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String(string(FirstName), d.FirstName),
		slog.String(string(LastName), d.LastName),
		slog.String(string(Email), maskEmail(d.Email)),
		slog.String(string(PhoneNumber), maskPhone(d.PhoneNumber)),
		slog.String(string(Password), redacted),
		slog.String(string(ConfirmPassword), redacted),
	)
}
