package tools

import "golang.org/x/crypto/bcrypt"

// HashPassword gera o hash bcrypt (com salt) da senha.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ComparePassword devolve true quando a senha confere com o hash.
// Hash que não é bcrypt (ex.: senha legada em texto puro) nunca confere.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
