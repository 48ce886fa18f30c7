package models

import (
	"strings"
	"time"
)

// Oficio representa um ofício emitido.
// ID é gerado pelo backend (inteiro no relacional, ObjectID hex no de documentos).
type Oficio struct {
	ID          string     `json:"id" form:"id"`
	Nome        string     `json:"nome" form:"nome"`
	Numero      string     `json:"numero" form:"numero"`
	DataEmissao string     `json:"data_emissao" form:"data_emissao"`
	Descricao   string     `json:"descricao" form:"descricao"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// OficioForm é o corpo enviado pelos formulários de cadastro e edição.
type OficioForm struct {
	Nome        string `form:"nome"`
	Numero      string `form:"numero"`
	DataEmissao string `form:"data_emissao"`
	Descricao   string `form:"descricao"`
}

// Oficio converte o formulário num ofício novo (sem ID).
func (f OficioForm) Oficio() Oficio {
	return Oficio{
		Nome:        f.Nome,
		Numero:      f.Numero,
		DataEmissao: f.DataEmissao,
		Descricao:   f.Descricao,
	}
}

// Merge aplica o formulário sobre o ofício atual: campo vazio (ou só espaços)
// mantém o valor armazenado.
func (f OficioForm) Merge(atual Oficio) Oficio {
	atual.Nome = pick(f.Nome, atual.Nome)
	atual.Numero = pick(f.Numero, atual.Numero)
	atual.DataEmissao = pick(f.DataEmissao, atual.DataEmissao)
	atual.Descricao = pick(f.Descricao, atual.Descricao)
	return atual
}

func pick(novo, antigo string) string {
	if strings.TrimSpace(novo) == "" {
		return antigo
	}
	return novo
}
