package directory

import (
	"strings"

	"github.com/google/uuid"
)

// PlaceholderDomain recebe os logins gerados para perfis criados sem email.
const PlaceholderDomain = "sistema.com"

func PlaceholderEmail() string {
	return "temp_" + uuid.NewString() + "@" + PlaceholderDomain
}

func IsPlaceholderEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(email[at+1:]), PlaceholderDomain)
}
