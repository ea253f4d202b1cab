package service

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/Skotchmaster/boutiquechat/internal/models"
)

const chatBaseURL = "https://wa.me/"

// PhoneDigits keeps only the digits of a phone number ("+7 (999) 000" -> "7999000").
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func ProductMessage(p models.Product) string {
	return fmt.Sprintf("Hello! I'm interested in \"%s\", price %s.", p.Name, p.Price.String())
}

// ChatLink builds a prefilled WhatsApp deep link for p.
func ChatLink(phone string, p models.Product) (string, error) {
	digits := PhoneDigits(phone)
	if digits == "" {
		return "", fmt.Errorf("chat phone number: %w", ErrNotConfigured)
	}
	text := strings.ReplaceAll(url.QueryEscape(ProductMessage(p)), "+", "%20")
	return chatBaseURL + digits + "?text=" + text, nil
}
