package validators

import "strings"

func IsEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	return instance().Var(email, "email") == nil
}
