package db

import (
	"context"
	"errors"

	"oficios/models"
)

// ErrNotFound é devolvido quando o registro (ou credencial) endereçado não existe.
var ErrNotFound = errors.New("registro não encontrado")

// RecordStore guarda os ofícios.
type RecordStore interface {
	Insert(ctx context.Context, o models.Oficio) (models.Oficio, error)
	// List devolve todos os ofícios ordenados por numero decrescente,
	// segundo a regra de ordenação do backend.
	List(ctx context.Context) ([]models.Oficio, error)
	Get(ctx context.Context, id string) (models.Oficio, error)
	// Update grava o ofício inteiro sobre o registro de mesmo ID.
	Update(ctx context.Context, o models.Oficio) error
	Delete(ctx context.Context, id string) error
}

// CredentialStore guarda as credenciais de login.
type CredentialStore interface {
	FindLogin(ctx context.Context, email string) (models.Login, error)
	CreateLogin(ctx context.Context, l models.Login) error
}

// Backend é um banco completo: ofícios, credenciais e ciclo de vida da conexão.
type Backend interface {
	RecordStore
	CredentialStore
	Ping(ctx context.Context) error
	Close() error
}
