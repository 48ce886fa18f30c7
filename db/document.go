package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oficios/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	oficiosCollection  = "oficios"
	usuariosCollection = "usuarios"
)

type oficioDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Nome        string             `bson:"nome"`
	Numero      string             `bson:"numero"`
	DataEmissao string             `bson:"data_emissao"`
	Descricao   string             `bson:"descricao"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d oficioDoc) model() models.Oficio {
	o := models.Oficio{
		ID:          d.ID.Hex(),
		Nome:        d.Nome,
		Numero:      d.Numero,
		DataEmissao: d.DataEmissao,
		Descricao:   d.Descricao,
	}
	if !d.CreatedAt.IsZero() {
		created := d.CreatedAt
		o.CreatedAt = &created
	}
	if !d.UpdatedAt.IsZero() {
		updated := d.UpdatedAt
		o.UpdatedAt = &updated
	}
	return o
}

// Document é o backend MongoDB: coleções "oficios" e "usuarios".
type Document struct {
	client   *mongo.Client
	database *mongo.Database
	oficios  *mongo.Collection
	usuarios *mongo.Collection
}

func NewDocument(database *mongo.Database) *Document {
	return &Document{
		database: database,
		oficios:  database.Collection(oficiosCollection),
		usuarios: database.Collection(usuariosCollection),
	}
}

func (d *Document) Insert(ctx context.Context, o models.Oficio) (models.Oficio, error) {
	now := time.Now().UTC()
	doc := oficioDoc{
		Nome:        o.Nome,
		Numero:      o.Numero,
		DataEmissao: o.DataEmissao,
		Descricao:   o.Descricao,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	res, err := d.oficios.InsertOne(ctx, doc)
	if err != nil {
		return models.Oficio{}, fmt.Errorf("insert oficio: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.model(), nil
}

// List ordena pelo valor armazenado em numero; como é string, a ordem é
// lexicográfica ("2" vem antes de "10").
func (d *Document) List(ctx context.Context) ([]models.Oficio, error) {
	opts := options.Find().SetSort(bson.D{{Key: "numero", Value: -1}})
	cur, err := d.oficios.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list oficios: %w", err)
	}
	var docs []oficioDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode oficios: %w", err)
	}
	out := make([]models.Oficio, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.model())
	}
	return out, nil
}

func (d *Document) Get(ctx context.Context, id string) (models.Oficio, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Oficio{}, ErrNotFound
	}
	var doc oficioDoc
	err = d.oficios.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Oficio{}, ErrNotFound
	}
	if err != nil {
		return models.Oficio{}, fmt.Errorf("get oficio %s: %w", id, err)
	}
	return doc.model(), nil
}

func (d *Document) Update(ctx context.Context, o models.Oficio) error {
	oid, err := primitive.ObjectIDFromHex(o.ID)
	if err != nil {
		return ErrNotFound
	}
	res, err := d.oficios.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"nome":         o.Nome,
		"numero":       o.Numero,
		"data_emissao": o.DataEmissao,
		"descricao":    o.Descricao,
		"updated_at":   time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update oficio %s: %w", o.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete não verifica existência: ID desconhecido ou malformado não é erro.
func (d *Document) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := d.oficios.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete oficio %s: %w", id, err)
	}
	return nil
}

func (d *Document) FindLogin(ctx context.Context, email string) (models.Login, error) {
	var l models.Login
	err := d.usuarios.FindOne(ctx, bson.M{"email": email}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Login{}, ErrNotFound
	}
	if err != nil {
		return models.Login{}, fmt.Errorf("find login: %w", err)
	}
	return l, nil
}

func (d *Document) CreateLogin(ctx context.Context, l models.Login) error {
	if l.CreatedAt == nil {
		now := time.Now().UTC()
		l.CreatedAt = &now
	}
	if _, err := d.usuarios.InsertOne(ctx, l); err != nil {
		return fmt.Errorf("create login: %w", err)
	}
	return nil
}

func (d *Document) Ping(ctx context.Context) error {
	return d.database.Client().Ping(ctx, readpref.Primary())
}

func (d *Document) Close() error {
	if d.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}
