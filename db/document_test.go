package db

import (
	"context"
	"testing"

	"oficios/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDocument(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("insert devolve o ObjectID gerado", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		o, err := NewDocument(mt.DB).Insert(ctx, models.Oficio{Nome: "Ofício A", Numero: "2", Descricao: "d"})
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(o.ID)
		assert.NoError(mt, err)
		assert.Equal(mt, "d", o.Descricao)
		assert.NotNil(mt, o.CreatedAt)
	})

	mt.Run("insert propaga erro de escrita", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		_, err := NewDocument(mt.DB).Insert(ctx, models.Oficio{Nome: "Ofício A"})
		assert.Error(mt, err)
	})

	mt.Run("list pede ordenação por numero decrescente", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + oficiosCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewDocument(mt.DB).List(ctx)
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)

		sortDoc, ok := started.Command.Lookup("sort").DocumentOK()
		require.True(mt, ok, "find sem sort")
		elems, err := sortDoc.Elements()
		require.NoError(mt, err)
		require.Len(mt, elems, 1)
		assert.Equal(mt, "numero", elems[0].Key())
		assert.Equal(mt, int64(-1), rawInt(mt, elems[0].Value()))
	})

	mt.Run("list devolve os documentos na ordem do banco", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + oficiosCollection
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		// numero é string: em ordem decrescente "2" vem antes de "10"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: a}, {Key: "nome", Value: "Ofício A"}, {Key: "numero", Value: "2"}},
			bson.D{{Key: "_id", Value: b}, {Key: "nome", Value: "Ofício B"}, {Key: "numero", Value: "10"}},
		))

		list, err := NewDocument(mt.DB).List(ctx)
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.Equal(mt, []string{"2", "10"}, []string{list[0].Numero, list[1].Numero})
		assert.Equal(mt, a.Hex(), list[0].ID)
		assert.Equal(mt, "Ofício B", list[1].Nome)
	})

	mt.Run("list propaga erro do comando", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom"}))

		_, err := NewDocument(mt.DB).List(ctx)
		assert.Error(mt, err)
	})

	mt.Run("get inexistente", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + oficiosCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewDocument(mt.DB).Get(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("get com id malformado", func(mt *mtest.T) {
		_, err := NewDocument(mt.DB).Get(ctx, "nao-e-objectid")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("get encontrado", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + oficiosCollection
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: oid}, {Key: "nome", Value: "Ofício A"}, {Key: "data_emissao", Value: "2024-01-01"}},
		))

		o, err := NewDocument(mt.DB).Get(ctx, oid.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), o.ID)
		assert.Equal(mt, "2024-01-01", o.DataEmissao)
	})

	mt.Run("update sem documento casado", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := NewDocument(mt.DB).Update(ctx, models.Oficio{ID: primitive.NewObjectID().Hex(), Nome: "x"})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("update casado", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		err := NewDocument(mt.DB).Update(ctx, models.Oficio{ID: primitive.NewObjectID().Hex(), Nome: "x"})
		assert.NoError(mt, err)
	})

	mt.Run("delete de id inexistente não é erro", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		assert.NoError(mt, NewDocument(mt.DB).Delete(ctx, primitive.NewObjectID().Hex()))
		assert.NoError(mt, NewDocument(mt.DB).Delete(ctx, "malformado"))
	})

	mt.Run("login inexistente", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + usuariosCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewDocument(mt.DB).FindLogin(ctx, "a@b.com")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("login encontrado", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + usuariosCollection
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "a@b.com"}, {Key: "senha", Value: "hash"}},
		))

		l, err := NewDocument(mt.DB).FindLogin(ctx, "a@b.com")
		require.NoError(mt, err)
		assert.Equal(mt, "hash", l.Senha)
	})
}

func rawInt(t require.TestingT, v bson.RawValue) int64 {
	if i, ok := v.Int32OK(); ok {
		return int64(i)
	}
	if i, ok := v.Int64OK(); ok {
		return i
	}
	if f, ok := v.DoubleOK(); ok {
		return int64(f)
	}
	require.Fail(t, "valor não numérico", "%v", v)
	return 0
}
