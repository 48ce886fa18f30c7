package controllers

import (
	"errors"
	"net/http"

	dbpkg "oficios/db"
	"oficios/models"

	"github.com/gin-gonic/gin"
)

// GET /home
func Home(c *gin.Context) {
	RespondPage(c, "home.html", gin.H{})
}

// GET /cadastro
func Cadastro(c *gin.Context) {
	RespondPage(c, "cadastro.html", gin.H{})
}

// POST /salvar
func SalvarOficio(c *gin.Context) {
	var form models.OficioForm
	if err := c.ShouldBind(&form); err != nil {
		RespondError(c, "formulário inválido", http.StatusBadRequest)
		return
	}

	b, ok := backend(c)
	if !ok {
		return
	}

	if _, err := b.Insert(c.Request.Context(), form.Oficio()); err != nil {
		RespondStoreFailure(c, "Erro ao salvar oficio", err)
		return
	}
	c.Redirect(http.StatusFound, "/lister")
}

// GET /lister
func ListarOficios(c *gin.Context) {
	b, ok := backend(c)
	if !ok {
		return
	}

	oficios, err := b.List(c.Request.Context())
	if err != nil {
		RespondStoreFailure(c, "Erro ao buscar oficios", err)
		return
	}
	RespondPage(c, "lister.html", gin.H{"oficios": oficios})
}

// GET /oficio/:id
// No backend de documentos um id inexistente também redireciona.
func DeletarOficio(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	b, ok := backend(c)
	if !ok {
		return
	}

	err := b.Delete(c.Request.Context(), id)
	if errors.Is(err, dbpkg.ErrNotFound) {
		RespondError(c, "Oficio não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		RespondStoreFailure(c, "Erro interno do servidor", err)
		return
	}
	c.Redirect(http.StatusFound, "/lister")
}

// GET /oficio/editar/:id
func CarregarEdicao(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	b, ok := backend(c)
	if !ok {
		return
	}

	oficio, err := b.Get(c.Request.Context(), id)
	if errors.Is(err, dbpkg.ErrNotFound) {
		RespondError(c, "Ofício não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		RespondStoreFailure(c, "Erro ao carregar edição", err)
		return
	}
	RespondPage(c, "editar.html", gin.H{"oficio": oficio})
}

// POST /oficio/editar/:id
// Campos em branco mantêm o valor gravado. Leitura e escrita não são atômicas.
func EditarOficio(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var form models.OficioForm
	if err := c.ShouldBind(&form); err != nil {
		RespondError(c, "formulário inválido", http.StatusBadRequest)
		return
	}

	b, ok := backend(c)
	if !ok {
		return
	}

	atual, err := b.Get(c.Request.Context(), id)
	if errors.Is(err, dbpkg.ErrNotFound) {
		RespondError(c, "Ofício não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		RespondStoreFailure(c, "Erro ao atualizar", err)
		return
	}

	err = b.Update(c.Request.Context(), form.Merge(atual))
	if errors.Is(err, dbpkg.ErrNotFound) {
		RespondError(c, "Ofício não encontrado", http.StatusNotFound)
		return
	}
	if err != nil {
		RespondStoreFailure(c, "Erro ao atualizar", err)
		return
	}
	c.Redirect(http.StatusFound, "/lister")
}
