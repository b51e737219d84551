package partner

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=partner_repo.go -destination=mock/partner_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Partner) error
	FindAll(ctx context.Context) ([]Partner, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	ExistsByUniqueCode(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, p *Partner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, p *Partner) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Partner, error) {
	var partners []Partner
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&partners).Error
	return partners, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Partner, error) {
	var p Partner
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) ExistsByUniqueCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Partner{}).
		Where("unique_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, p *Partner) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Partner{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
