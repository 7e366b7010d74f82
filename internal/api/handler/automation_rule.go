package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/campaigning"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/apiErrors"
)

// CreateRule cria uma regra de automação para uma campanha
func CreateRule(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateRule")

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		var rule domain.AutomationRule
		if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// A campanha da URL é a dona da regra
		rule.CampaignID = campaignID

		created, err := service.CreateRule(&rule)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
		}
	}
}

// ListRules lista as regras de automação de uma campanha
func ListRules(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		rules, err := service.ListRules(campaignID)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rules); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetRule retorna uma regra de automação por ID
func GetRule(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ruleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if ruleID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da regra não fornecido", nil)
			return
		}

		rule, err := service.GetRule(ruleID)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rule); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateRule atualiza uma regra de automação existente
func UpdateRule(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateRule")

		ruleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if ruleID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da regra não fornecido", nil)
			return
		}

		var rule domain.AutomationRule
		if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// O ID da URL prevalece sobre o corpo
		rule.ID = ruleID

		updated, err := service.UpdateRule(&rule)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// ActivateRule habilita uma regra de automação
func ActivateRule(service campaigning.CampaignService) http.HandlerFunc {
	return setRuleActive(service, true)
}

// DeactivateRule desabilita uma regra de automação
func DeactivateRule(service campaigning.CampaignService) http.HandlerFunc {
	return setRuleActive(service, false)
}

func setRuleActive(service campaigning.CampaignService, active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ruleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if ruleID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da regra não fornecido", nil)
			return
		}

		if err := service.SetRuleActive(ruleID, active); err != nil {
			handleCampaignError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"rule_id":   ruleID,
			"is_active": active,
		})
	}
}

// DeleteRule remove uma regra de automação
func DeleteRule(service campaigning.CampaignService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteRule")

		ruleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if ruleID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da regra não fornecido", nil)
			return
		}

		if err := service.DeleteRule(ruleID); err != nil {
			handleCampaignError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
