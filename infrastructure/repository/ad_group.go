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
	adGroupsTable   = "ad_groups ag"
	adGroupsColumns = "ag.id, ag.campaign_id, ag.name, ag.external_id, ag.status, ag.bid_amount, ag.created_at, ag.updated_at"
)

type AdGroupRepository interface {
	GetByID(adGroupID string) (*domain.AdGroup, error)
	ListByCampaignID(campaignID string) ([]*domain.AdGroup, error)
	Create(adGroup *domain.AdGroup) error
	UpdateBid(adGroupID string, bid float64) error
	Delete(adGroupID string) error
}

type adGroupRepository struct {
	conn *postgres.Connection
}

func NewAdGroupRepository(conn *postgres.Connection) AdGroupRepository {
	return &adGroupRepository{
		conn: conn,
	}
}

func (r *adGroupRepository) GetByID(adGroupID string) (*domain.AdGroup, error) {
	query, args, err := squirrel.
		Select(adGroupsColumns).
		From(adGroupsTable).
		Where(squirrel.Eq{"ag.id": adGroupID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	adGroup, err := scanAdGroup(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear grupo de anúncios: %w", err)
	}

	return adGroup, nil
}

func (r *adGroupRepository) ListByCampaignID(campaignID string) ([]*domain.AdGroup, error) {
	query, args, err := squirrel.
		Select(adGroupsColumns).
		From(adGroupsTable).
		Where(squirrel.Eq{"ag.campaign_id": campaignID}).
		OrderBy("ag.created_at ASC").
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

	adGroups := make([]*domain.AdGroup, 0)
	for rows.Next() {
		adGroup, err := scanAdGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear grupo de anúncios: %w", err)
		}
		adGroups = append(adGroups, adGroup)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return adGroups, nil
}

func (r *adGroupRepository) Create(adGroup *domain.AdGroup) error {
	query, args, err := squirrel.
		Insert("ad_groups").
		Columns("id", "campaign_id", "name", "external_id", "status", "bid_amount").
		Values(
			adGroup.ID,
			adGroup.CampaignID,
			adGroup.Name,
			adGroup.ExternalID,
			adGroup.Status,
			adGroup.BidAmount,
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

func (r *adGroupRepository) UpdateBid(adGroupID string, bid float64) error {
	query, args, err := squirrel.
		Update("ad_groups").
		Set("bid_amount", bid).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": adGroupID}).
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

func (r *adGroupRepository) Delete(adGroupID string) error {
	query, args, err := squirrel.
		Delete("ad_groups").
		Where(squirrel.Eq{"id": adGroupID}).
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

func scanAdGroup(row rowScanner) (*domain.AdGroup, error) {
	adGroup := &domain.AdGroup{}

	err := row.Scan(
		&adGroup.ID,
		&adGroup.CampaignID,
		&adGroup.Name,
		&adGroup.ExternalID,
		&adGroup.Status,
		&adGroup.BidAmount,
		&adGroup.CreatedAt,
		&adGroup.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return adGroup, nil
}
