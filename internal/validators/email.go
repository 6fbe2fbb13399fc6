package validators

import (
	"net"
	"strings"

	"github.com/BruksfildServices01/mentor-scheduler/internal/domain/directory"
)

// lookups trocáveis nos testes
var (
	lookupMX = net.LookupMX
	lookupIP = net.LookupIP
)

// IsEmailDomainValid valida o email usado no registro de contas: o domínio
// reservado dos perfis sem login fica de fora, o resto precisa de MX ou A.
func IsEmailDomainValid(email string) bool {
	email = strings.TrimSpace(email)

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	if directory.IsPlaceholderEmail(email) {
		return false
	}

	domain := strings.ToLower(email[at+1:])

	if mx, err := lookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := lookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
