package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOficioFormMergeKeepsBlankFields(t *testing.T) {
	atual := Oficio{ID: "7", Nome: "Ofício A", Numero: "2", DataEmissao: "2024-01-01", Descricao: "original"}

	got := OficioForm{Nome: "  ", Numero: "", DataEmissao: "2024-02-02"}.Merge(atual)

	assert.Equal(t, "7", got.ID)
	assert.Equal(t, "Ofício A", got.Nome)
	assert.Equal(t, "2", got.Numero)
	assert.Equal(t, "2024-02-02", got.DataEmissao)
	assert.Equal(t, "original", got.Descricao)
}

func TestOficioFormMergeReplacesFilledFields(t *testing.T) {
	atual := Oficio{ID: "7", Nome: "Ofício A", Numero: "2", DataEmissao: "2024-01-01"}

	got := OficioForm{Nome: "Ofício B", Numero: "10", DataEmissao: "2024-03-03", Descricao: "nova"}.Merge(atual)

	assert.Equal(t, Oficio{ID: "7", Nome: "Ofício B", Numero: "10", DataEmissao: "2024-03-03", Descricao: "nova"}, got)
}

func TestOficioFormMergeEmptyFormIsNoop(t *testing.T) {
	atual := Oficio{ID: "1", Nome: "X", Numero: "3", DataEmissao: "2024-01-01", Descricao: "d"}
	assert.Equal(t, atual, OficioForm{}.Merge(atual))
}

func TestLoginTableName(t *testing.T) {
	assert.Equal(t, "login", Login{}.TableName())
}
