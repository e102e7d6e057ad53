package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/recognizer/internal/domain"
	"github.com/totegamma/recognizer/internal/infra/database/models"
)

var tracer = otel.Tracer("repository")

type StatRepository struct {
	db *gorm.DB
}

func NewStatRepository(db *gorm.DB) *StatRepository {
	return &StatRepository{db: db}
}

// Increment bumps the accepted or rejected counter of entity, creating the row if needed.
func (r *StatRepository) Increment(ctx context.Context, entity string, accepted bool) error {
	ctx, span := tracer.Start(ctx, "Repository.Stat.Increment")
	defer span.End()

	row := models.VerdictStat{Entity: entity}
	column := "rejected"
	if accepted {
		row.Accepted = 1
		column = "accepted"
	} else {
		row.Rejected = 1
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "entity"}},
		DoUpdates: clause.Assignments(map[string]any{
			column:   gorm.Expr("verdict_stats."+column+" + ?", 1),
			"m_date": gorm.Expr("now()"),
		}),
	}).Create(&row).Error
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "increment verdict stat")
	}
	return nil
}

func (r *StatRepository) List(ctx context.Context) ([]domain.VerdictStat, error) {
	ctx, span := tracer.Start(ctx, "Repository.Stat.List")
	defer span.End()

	var rows []models.VerdictStat
	err := r.db.WithContext(ctx).Order("entity").Find(&rows).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "list verdict stats")
	}

	stats := make([]domain.VerdictStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, domain.VerdictStat{
			Entity:   row.Entity,
			Accepted: row.Accepted,
			Rejected: row.Rejected,
		})
	}
	return stats, nil
}
