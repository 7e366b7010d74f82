package domain

import (
	"fmt"
	"time"

	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/utils"
)

// Limites padrão aplicados aos ajustes de orçamento e lance quando a ação não define os seus
const (
	DefaultBudgetMin = 10.0
	DefaultBudgetMax = 50000.0
	DefaultBidMin    = 0.10
	DefaultBidMax    = 50.0

	DefaultLookbackDays = 7
)

type MetricName string

const (
	MetricCTR         MetricName = "ctr"
	MetricCPC         MetricName = "cpc"
	MetricROAS        MetricName = "roas"
	MetricConversions MetricName = "conversions"
	MetricCost        MetricName = "cost"
	MetricImpressions MetricName = "impressions"
	MetricClicks      MetricName = "clicks"
)

func (m MetricName) Valid() bool {
	switch m {
	case MetricCTR, MetricCPC, MetricROAS, MetricConversions, MetricCost, MetricImpressions, MetricClicks:
		return true
	}
	return false
}

type ComparisonOperator string

const (
	OperatorLessThan           ComparisonOperator = "less_than"
	OperatorGreaterThan        ComparisonOperator = "greater_than"
	OperatorEquals             ComparisonOperator = "equals"
	OperatorLessThanOrEqual    ComparisonOperator = "less_than_or_equal"
	OperatorGreaterThanOrEqual ComparisonOperator = "greater_than_or_equal"
)

func (o ComparisonOperator) Valid() bool {
	switch o {
	case OperatorLessThan, OperatorGreaterThan, OperatorEquals, OperatorLessThanOrEqual, OperatorGreaterThanOrEqual:
		return true
	}
	return false
}

// Condition é uma condição de limiar avaliada sobre as métricas agregadas da campanha.
// LookbackDays define a janela retroativa da agregação (padrão 7 dias).
type Condition struct {
	Metric       MetricName         `json:"metric"`
	Operator     ComparisonOperator `json:"operator"`
	Value        float64            `json:"value"`
	LookbackDays int                `json:"lookback_days,omitempty"`
}

// Validate valida a condição na fronteira de deserialização.
// Métrica desconhecida não é erro: a condição é ignorada na avaliação (comportamento permissivo
// herdado da origem, mantido deliberadamente).
func (c *Condition) Validate() error {
	if c.Metric == "" {
		return fmt.Errorf("condição sem métrica")
	}

	if !c.Operator.Valid() {
		return fmt.Errorf("operador de comparação desconhecido: %q", c.Operator)
	}

	if c.LookbackDays < 0 {
		return fmt.Errorf("lookback_days não pode ser negativo: %d", c.LookbackDays)
	}

	return nil
}

// Lookback retorna a janela retroativa em dias, aplicando o padrão quando não definida
func (c *Condition) Lookback() int {
	if c.LookbackDays > 0 {
		return c.LookbackDays
	}
	return DefaultLookbackDays
}

type ActionType string

const (
	ActionPause        ActionType = "pause"
	ActionResume       ActionType = "resume"
	ActionAdjustBudget ActionType = "adjust_budget"
	ActionAdjustBid    ActionType = "adjust_bid"
	ActionNotify       ActionType = "notify"
)

type AdjustmentType string

const (
	AdjustmentPercentage AdjustmentType = "percentage"
	AdjustmentFixed      AdjustmentType = "fixed"
)

// Adjustment descreve a aritmética de um ajuste de orçamento ou lance.
// Min e Max limitam o valor resultante; zero significa "usar o padrão do tipo de ação".
type Adjustment struct {
	Type  AdjustmentType `json:"type"`
	Value float64        `json:"value"`
	Min   float64        `json:"min,omitempty"`
	Max   float64        `json:"max,omitempty"`
}

// Apply aplica a aritmética do ajuste sobre o valor atual e retorna o resultado
// já limitado ao intervalo [min, max]
func (a *Adjustment) Apply(current, defaultMin, defaultMax float64) float64 {
	var value float64

	switch a.Type {
	case AdjustmentFixed:
		value = current + a.Value
	default:
		// percentage é o tipo padrão
		value = current * (1 + a.Value/100)
	}

	min := a.Min
	if min == 0 {
		min = defaultMin
	}

	max := a.Max
	if max == 0 {
		max = defaultMax
	}

	return utils.Clamp(value, min, max)
}

// Action é uma variante etiquetada: o campo Type determina quais campos adicionais se aplicam
type Action struct {
	Type       ActionType  `json:"type"`
	Adjustment *Adjustment `json:"adjustment,omitempty"`
	Message    string      `json:"message,omitempty"`
}

// Validate valida a ação na fronteira de deserialização
func (a *Action) Validate() error {
	switch a.Type {
	case ActionPause, ActionResume, ActionNotify:
		return nil
	case ActionAdjustBudget, ActionAdjustBid:
		if a.Adjustment == nil {
			return fmt.Errorf("ação %s exige o bloco adjustment", a.Type)
		}
		if a.Adjustment.Type != AdjustmentPercentage && a.Adjustment.Type != AdjustmentFixed {
			return fmt.Errorf("tipo de ajuste desconhecido: %q", a.Adjustment.Type)
		}
		if a.Adjustment.Min < 0 || a.Adjustment.Max < 0 {
			return fmt.Errorf("limites de ajuste não podem ser negativos")
		}
		if a.Adjustment.Min > 0 && a.Adjustment.Max > 0 && a.Adjustment.Min > a.Adjustment.Max {
			return fmt.Errorf("limite mínimo maior que o máximo")
		}
		return nil
	default:
		return fmt.Errorf("tipo de ação desconhecido: %q", a.Type)
	}
}

// AutomationRule pertence a exatamente uma campanha: as condições formam um AND lógico
// e as ações são executadas em ordem quando todas as condições passam
type AutomationRule struct {
	ID         string      `json:"id"`
	CampaignID string      `json:"campaign_id"`
	Name       string      `json:"name"`
	IsActive   bool        `json:"is_active"`
	Conditions []Condition `json:"conditions"`
	Actions    []Action    `json:"actions"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Validate valida condições e ações da regra
func (r *AutomationRule) Validate() error {
	if r.CampaignID == "" {
		return fmt.Errorf("regra sem campanha associada")
	}

	if r.Name == "" {
		return fmt.Errorf("regra sem nome")
	}

	for i := range r.Conditions {
		if err := r.Conditions[i].Validate(); err != nil {
			return fmt.Errorf("condição %d inválida: %w", i, err)
		}
	}

	for i := range r.Actions {
		if err := r.Actions[i].Validate(); err != nil {
			return fmt.Errorf("ação %d inválida: %w", i, err)
		}
	}

	return nil
}

// ActionResult é o resultado da execução de uma única ação
type ActionResult struct {
	Success     bool   `json:"success"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
}

// RuleResult é o registro de resultado de uma regra dentro de uma execução de automação
type RuleResult struct {
	RuleID       string   `json:"rule_id"`
	RuleName     string   `json:"rule_name"`
	CampaignID   string   `json:"campaign_id"`
	Success      bool     `json:"success"`
	ActionsTaken []string `json:"actions_taken"`
	Error        string   `json:"error,omitempty"`
}
