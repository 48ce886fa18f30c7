package tools

import "regexp"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail confere o formato do e-mail informado no cadastro de usuário.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// CheckPassword devolve o nome do campo inválido, ou "" quando a senha serve.
func CheckPassword(password string) string {
	if len(password) < 6 {
		return "senha"
	}
	return ""
}
