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
	campaignsTable   = "campaigns c"
	campaignsColumns = "c.id, c.user_id, c.name, c.objective, c.platform, c.external_id, c.status, c.budget, c.created_at, c.updated_at"
)

type CampaignRepository interface {
	GetByID(campaignID string) (*domain.Campaign, error)
	ListByUserID(userID int) ([]*domain.Campaign, error)
	ListByStatus(status domain.CampaignStatus, userID int) ([]*domain.Campaign, error)
	Create(campaign *domain.Campaign) error
	Update(campaign *domain.Campaign) error
	UpdateStatus(campaignID string, status domain.CampaignStatus) error
	UpdateBudget(campaignID string, budget float64) error
	Delete(campaignID string) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByID(campaignID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	campaign, err := scanCampaign(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListByUserID(userID int) ([]*domain.Campaign, error) {
	builder := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		OrderBy("c.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if userID > 0 {
		builder = builder.Where(squirrel.Eq{"c.user_id": userID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryCampaigns(query, args...)
}

func (r *campaignRepository) ListByStatus(status domain.CampaignStatus, userID int) ([]*domain.Campaign, error) {
	builder := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.status": status}).
		OrderBy("c.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	// userID zero significa "todas as campanhas", usado pelas execuções agendadas
	if userID > 0 {
		builder = builder.Where(squirrel.Eq{"c.user_id": userID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryCampaigns(query, args...)
}

func (r *campaignRepository) Create(campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Insert("campaigns").
		Columns("id", "user_id", "name", "objective", "platform", "external_id", "status", "budget").
		Values(
			campaign.ID,
			campaign.UserID,
			campaign.Name,
			campaign.Objective,
			campaign.Platform,
			campaign.ExternalID,
			campaign.Status,
			campaign.Budget,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return wrapPqError(err)
	}

	return nil
}

func (r *campaignRepository) Update(campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("name", campaign.Name).
		Set("objective", campaign.Objective).
		Set("status", campaign.Status).
		Set("budget", campaign.Budget).
		Set("external_id", campaign.ExternalID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": campaign.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return wrapPqError(err)
	}

	return nil
}

func (r *campaignRepository) UpdateStatus(campaignID string, status domain.CampaignStatus) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return wrapPqError(err)
	}

	return nil
}

func (r *campaignRepository) UpdateBudget(campaignID string, budget float64) error {
	query, args, err := squirrel.
		Update("campaigns").
		Set("budget", budget).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return wrapPqError(err)
	}

	return nil
}

func (r *campaignRepository) Delete(campaignID string) error {
	// Os grupos de anúncios e regras são removidos pelo ON DELETE CASCADE do banco
	query, args, err := squirrel.
		Delete("campaigns").
		Where(squirrel.Eq{"id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return wrapPqError(err)
	}

	return nil
}

func (r *campaignRepository) queryCampaigns(query string, args ...interface{}) ([]*domain.Campaign, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	err := row.Scan(
		&campaign.ID,
		&campaign.UserID,
		&campaign.Name,
		&campaign.Objective,
		&campaign.Platform,
		&campaign.ExternalID,
		&campaign.Status,
		&campaign.Budget,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return campaign, nil
}
