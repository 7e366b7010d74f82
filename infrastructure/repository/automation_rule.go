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
	automationRulesTable   = "automation_rules ar"
	automationRulesColumns = "ar.id, ar.campaign_id, ar.name, ar.is_active, ar.conditions, ar.actions, ar.created_at, ar.updated_at"
)

type AutomationRuleRepository interface {
	GetByID(ruleID string) (*domain.AutomationRule, error)
	ListByCampaignID(campaignID string) ([]*domain.AutomationRule, error)
	ListActive(userID int) ([]*domain.AutomationRule, error)
	Create(rule *domain.AutomationRule) error
	Update(rule *domain.AutomationRule) error
	SetActive(ruleID string, active bool) error
	Delete(ruleID string) error
}

type automationRuleRepository struct {
	conn *postgres.Connection
}

func NewAutomationRuleRepository(conn *postgres.Connection) AutomationRuleRepository {
	return &automationRuleRepository{
		conn: conn,
	}
}

func (r *automationRuleRepository) GetByID(ruleID string) (*domain.AutomationRule, error) {
	query, args, err := squirrel.
		Select(automationRulesColumns).
		From(automationRulesTable).
		Where(squirrel.Eq{"ar.id": ruleID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	rule, err := scanAutomationRule(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear regra de automação: %w", err)
	}

	return rule, nil
}

func (r *automationRuleRepository) ListByCampaignID(campaignID string) ([]*domain.AutomationRule, error) {
	query, args, err := squirrel.
		Select(automationRulesColumns).
		From(automationRulesTable).
		Where(squirrel.Eq{"ar.campaign_id": campaignID}).
		OrderBy("ar.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRules(query, args...)
}

// ListActive retorna as regras ativas; userID maior que zero restringe às campanhas do usuário
func (r *automationRuleRepository) ListActive(userID int) ([]*domain.AutomationRule, error) {
	builder := squirrel.
		Select(automationRulesColumns).
		From(automationRulesTable).
		Where(squirrel.Eq{"ar.is_active": true}).
		OrderBy("ar.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if userID > 0 {
		builder = builder.
			Join("campaigns c ON c.id = ar.campaign_id").
			Where(squirrel.Eq{"c.user_id": userID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRules(query, args...)
}

func (r *automationRuleRepository) Create(rule *domain.AutomationRule) error {
	conditionsJSON, actionsJSON, err := marshalRulePayload(rule)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Insert("automation_rules").
		Columns("id", "campaign_id", "name", "is_active", "conditions", "actions").
		Values(
			rule.ID,
			rule.CampaignID,
			rule.Name,
			rule.IsActive,
			conditionsJSON,
			actionsJSON,
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

func (r *automationRuleRepository) Update(rule *domain.AutomationRule) error {
	conditionsJSON, actionsJSON, err := marshalRulePayload(rule)
	if err != nil {
		return err
	}

	query, args, err := squirrel.
		Update("automation_rules").
		Set("name", rule.Name).
		Set("is_active", rule.IsActive).
		Set("conditions", conditionsJSON).
		Set("actions", actionsJSON).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": rule.ID}).
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

func (r *automationRuleRepository) SetActive(ruleID string, active bool) error {
	query, args, err := squirrel.
		Update("automation_rules").
		Set("is_active", active).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": ruleID}).
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

func (r *automationRuleRepository) Delete(ruleID string) error {
	query, args, err := squirrel.
		Delete("automation_rules").
		Where(squirrel.Eq{"id": ruleID}).
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

func (r *automationRuleRepository) queryRules(query string, args ...interface{}) ([]*domain.AutomationRule, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rules := make([]*domain.AutomationRule, 0)
	for rows.Next() {
		rule, err := scanAutomationRule(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear regra de automação: %w", err)
		}
		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rules, nil
}

// marshalRulePayload valida e serializa condições e ações para as colunas JSONB.
// A validação acontece aqui, na fronteira de persistência, para que nenhuma
// variante desconhecida chegue ao motor de automação.
func marshalRulePayload(rule *domain.AutomationRule) ([]byte, []byte, error) {
	if err := rule.Validate(); err != nil {
		return nil, nil, fmt.Errorf("regra inválida: %w", err)
	}

	conditionsJSON, err := json.Marshal(rule.Conditions)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao serializar condições para JSON: %w", err)
	}

	actionsJSON, err := json.Marshal(rule.Actions)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao serializar ações para JSON: %w", err)
	}

	return conditionsJSON, actionsJSON, nil
}

func scanAutomationRule(row rowScanner) (*domain.AutomationRule, error) {
	rule := &domain.AutomationRule{}
	var conditionsJSON, actionsJSON []byte

	err := row.Scan(
		&rule.ID,
		&rule.CampaignID,
		&rule.Name,
		&rule.IsActive,
		&conditionsJSON,
		&actionsJSON,
		&rule.CreatedAt,
		&rule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if conditionsJSON != nil {
		if err := json.Unmarshal(conditionsJSON, &rule.Conditions); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de condições: %w", err)
		}
	}

	if actionsJSON != nil {
		if err := json.Unmarshal(actionsJSON, &rule.Actions); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de ações: %w", err)
		}
	}

	return rule, nil
}
