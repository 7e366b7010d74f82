package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/database/postgres"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
)

const (
	recommendationsTable   = "recommendations rc"
	recommendationsColumns = "rc.campaign_id, rc.campaign_name, rc.type, rc.priority, rc.current_value, rc.benchmark, rc.message, rc.suggested_actions, rc.created_at"
)

type RecommendationRepository interface {
	Save(recommendations []*domain.Recommendation) error
	ListByCampaignID(campaignID string, limit uint64) ([]*domain.Recommendation, error)
	DeleteOlderThan(days int) (int64, error)
}

type recommendationRepository struct {
	conn *postgres.Connection
}

func NewRecommendationRepository(conn *postgres.Connection) RecommendationRepository {
	return &recommendationRepository{
		conn: conn,
	}
}

func (r *recommendationRepository) Save(recommendations []*domain.Recommendation) error {
	if len(recommendations) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert("recommendations").
		Columns("campaign_id", "campaign_name", "type", "priority", "current_value", "benchmark", "message", "suggested_actions").
		PlaceholderFormat(squirrel.Dollar)

	for _, rec := range recommendations {
		actionsJSON, err := json.Marshal(rec.SuggestedActions)
		if err != nil {
			return fmt.Errorf("erro ao serializar ações sugeridas para JSON: %w", err)
		}

		builder = builder.Values(
			rec.CampaignID,
			rec.CampaignName,
			rec.Type,
			rec.Priority,
			rec.CurrentValue,
			rec.Benchmark,
			rec.Message,
			actionsJSON,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return wrapPqError(err)
	}

	return nil
}

func (r *recommendationRepository) ListByCampaignID(campaignID string, limit uint64) ([]*domain.Recommendation, error) {
	builder := squirrel.
		Select(recommendationsColumns).
		From(recommendationsTable).
		Where(squirrel.Eq{"rc.campaign_id": campaignID}).
		OrderBy("rc.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
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

	recommendations := make([]*domain.Recommendation, 0)
	for rows.Next() {
		rec := &domain.Recommendation{}
		var actionsJSON []byte

		err := rows.Scan(
			&rec.CampaignID,
			&rec.CampaignName,
			&rec.Type,
			&rec.Priority,
			&rec.CurrentValue,
			&rec.Benchmark,
			&rec.Message,
			&actionsJSON,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
		}

		if actionsJSON != nil {
			if err := json.Unmarshal(actionsJSON, &rec.SuggestedActions); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de ações sugeridas: %w", err)
			}
		}

		recommendations = append(recommendations, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return recommendations, nil
}

func (r *recommendationRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("recommendations").
		Where(squirrel.Lt{"created_at": cutoff}).
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
