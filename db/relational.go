package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"oficios/models"

	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

// oficioRow é a linha da tabela "oficio".
type oficioRow struct {
	ID          int64  `gorm:"primary_key;AUTO_INCREMENT"`
	Nome        string `gorm:"not null;default:''"`
	Numero      string `gorm:"not null;default:''"`
	DataEmissao string `gorm:"column:data_emissao;not null;default:''"`
	Descricao   string `gorm:"type:text;default:''"`
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

func (oficioRow) TableName() string {
	return "oficio"
}

func (r oficioRow) model() models.Oficio {
	return models.Oficio{
		ID:          strconv.FormatInt(r.ID, 10),
		Nome:        r.Nome,
		Numero:      r.Numero,
		DataEmissao: r.DataEmissao,
		Descricao:   r.Descricao,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Relational é o backend SQL (postgres ou sqlite3) via gorm.
// O contexto é aceito por conformidade com a interface; o gorm v1 não o propaga.
type Relational struct {
	db *gorm.DB
}

func NewRelational(database *gorm.DB) *Relational {
	return &Relational{db: database}
}

// Migrate cria/atualiza as tabelas "oficio" e "login".
func (r *Relational) Migrate() error {
	if err := r.db.AutoMigrate(&oficioRow{}, &models.Login{}).Error; err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// EnsureSchema roda Migrate só quando falta tabela ou coluna, como numa tabela
// "oficio" antiga sem descricao, created_at e updated_at.
// O AutoMigrate do gorm apenas acrescenta o que falta.
func (r *Relational) EnsureSchema() error {
	missing := r.missingColumns()
	if len(missing) == 0 {
		return nil
	}
	zap.L().Info("Esquema incompleto, executando automigrate", zap.Strings("faltando", missing))
	return r.Migrate()
}

func (r *Relational) missingColumns() []string {
	var missing []string
	dialect := r.db.Dialect()
	for _, m := range []interface{}{&oficioRow{}, &models.Login{}} {
		scope := r.db.NewScope(m)
		table := scope.TableName()
		if !dialect.HasTable(table) {
			missing = append(missing, table)
			continue
		}
		for _, f := range scope.GetModelStruct().StructFields {
			if f.IsIgnored || f.Relationship != nil || f.DBName == "" {
				continue
			}
			if !dialect.HasColumn(table, f.DBName) {
				missing = append(missing, table+"."+f.DBName)
			}
		}
	}
	return missing
}

func (r *Relational) Insert(_ context.Context, o models.Oficio) (models.Oficio, error) {
	row := oficioRow{
		Nome:        o.Nome,
		Numero:      o.Numero,
		DataEmissao: o.DataEmissao,
		Descricao:   o.Descricao,
	}
	if err := r.db.Create(&row).Error; err != nil {
		return models.Oficio{}, fmt.Errorf("insert oficio: %w", err)
	}
	return row.model(), nil
}

// List ordena por CAST(numero AS INTEGER): "10" vem antes de "2".
func (r *Relational) List(_ context.Context) ([]models.Oficio, error) {
	var rows []oficioRow
	if err := r.db.Order("CAST(numero AS INTEGER) DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list oficios: %w", err)
	}
	out := make([]models.Oficio, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.model())
	}
	return out, nil
}

func (r *Relational) Get(_ context.Context, id string) (models.Oficio, error) {
	pk, ok := parseRowID(id)
	if !ok {
		return models.Oficio{}, ErrNotFound
	}
	var row oficioRow
	err := r.db.Where("id = ?", pk).First(&row).Error
	if gorm.IsRecordNotFoundError(err) {
		return models.Oficio{}, ErrNotFound
	}
	if err != nil {
		return models.Oficio{}, fmt.Errorf("get oficio %d: %w", pk, err)
	}
	return row.model(), nil
}

func (r *Relational) Update(_ context.Context, o models.Oficio) error {
	pk, ok := parseRowID(o.ID)
	if !ok {
		return ErrNotFound
	}
	// Table em vez de Model: com Model o gorm descarta campos iguais ao zero value.
	res := r.db.Table(oficioRow{}.TableName()).Where("id = ?", pk).Updates(map[string]interface{}{
		"nome":         o.Nome,
		"numero":       o.Numero,
		"data_emissao": o.DataEmissao,
		"descricao":    o.Descricao,
		"updated_at":   time.Now(),
	})
	if res.Error != nil {
		return fmt.Errorf("update oficio %d: %w", pk, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete devolve ErrNotFound quando nenhuma linha foi removida.
func (r *Relational) Delete(_ context.Context, id string) error {
	pk, ok := parseRowID(id)
	if !ok {
		return ErrNotFound
	}
	res := r.db.Where("id = ?", pk).Delete(&oficioRow{})
	if res.Error != nil {
		return fmt.Errorf("delete oficio %d: %w", pk, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Relational) FindLogin(_ context.Context, email string) (models.Login, error) {
	var l models.Login
	err := r.db.Where("email = ?", email).First(&l).Error
	if gorm.IsRecordNotFoundError(err) {
		return models.Login{}, ErrNotFound
	}
	if err != nil {
		return models.Login{}, fmt.Errorf("find login: %w", err)
	}
	return l, nil
}

func (r *Relational) CreateLogin(_ context.Context, l models.Login) error {
	if err := r.db.Create(&l).Error; err != nil {
		return fmt.Errorf("create login: %w", err)
	}
	return nil
}

func (r *Relational) Ping(ctx context.Context) error {
	return r.db.DB().PingContext(ctx)
}

func (r *Relational) Close() error {
	return r.db.Close()
}

func parseRowID(id string) (int64, bool) {
	pk, err := strconv.ParseInt(id, 10, 64)
	if err != nil || pk <= 0 {
		return 0, false
	}
	return pk, true
}
