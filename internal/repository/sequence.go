package repository

import (
	"context"

	"github.com/Top-Technologies/downtime/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SequenceRepository allocates references from the sequences table
type SequenceRepository struct {
	db *gorm.DB
}

var _ SequenceRepositoryInterface = (*SequenceRepository)(nil)

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// NextByCode locks the sequence row, returns its next formatted value and
// advances the counter. Concurrent callers are serialized by the row lock.
func (r *SequenceRepository) NextByCode(ctx context.Context, code string) (string, error) {
	var value string
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var seq models.Sequence
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&seq, "code = ?", code).Error; err != nil {
			return err
		}
		value = seq.Advance()
		return tx.Model(&seq).Update("number_next", seq.NumberNext).Error
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

// GetByCode retrieves a sequence by code
func (r *SequenceRepository) GetByCode(ctx context.Context, code string) (*models.Sequence, error) {
	var seq models.Sequence
	err := conn(ctx, r.db).First(&seq, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &seq, nil
}
