package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/database/postgres"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
)

const (
	performanceTable   = "performance_records pr"
	performanceColumns = "pr.id, pr.campaign_id, pr.ad_group_id, pr.ad_id, pr.platform, pr.date, pr.impressions, pr.clicks, pr.conversions, pr.cost, pr.revenue, pr.created_at"
)

type PerformanceRepository interface {
	GetByCampaignAndDateRange(campaignID string, startDate, endDate time.Time) ([]*domain.PerformanceRecord, error)
	SaveOrUpdate(record *domain.PerformanceRecord) error
	DeleteOlderThan(days int) (int64, error)
}

type performanceRepository struct {
	conn *postgres.Connection
}

func NewPerformanceRepository(conn *postgres.Connection) PerformanceRepository {
	return &performanceRepository{
		conn: conn,
	}
}

func (r *performanceRepository) GetByCampaignAndDateRange(campaignID string, startDate, endDate time.Time) ([]*domain.PerformanceRecord, error) {
	query, args, err := squirrel.
		Select(performanceColumns).
		From(performanceTable).
		Where(squirrel.Eq{"pr.campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"pr.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"pr.date": endDate.Format("2006-01-02")}).
		OrderBy("pr.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.PerformanceRecord, 0)
	for rows.Next() {
		record := &domain.PerformanceRecord{}
		err := rows.Scan(
			&record.ID,
			&record.CampaignID,
			&record.AdGroupID,
			&record.AdID,
			&record.Platform,
			&record.Date,
			&record.Impressions,
			&record.Clicks,
			&record.Conversions,
			&record.Cost,
			&record.Revenue,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de performance: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *performanceRepository) SaveOrUpdate(record *domain.PerformanceRecord) error {
	query := squirrel.StatementBuilder.
		Insert("performance_records").
		Columns("campaign_id", "ad_group_id", "ad_id", "platform", "date", "impressions", "clicks", "conversions", "cost", "revenue").
		Values(
			record.CampaignID,
			record.AdGroupID,
			record.AdID,
			record.Platform,
			record.Date.Format("2006-01-02"),
			record.Impressions,
			record.Clicks,
			record.Conversions,
			record.Cost,
			record.Revenue,
		).
		Suffix(`
			ON CONFLICT (campaign_id, date, platform) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				conversions = EXCLUDED.conversions,
				cost = EXCLUDED.cost,
				revenue = EXCLUDED.revenue
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return wrapPqError(err)
	}

	return nil
}

func (r *performanceRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("performance_records").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
