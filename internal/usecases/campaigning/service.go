package campaigning

import (
	"github.com/sirupsen/logrus"
	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/repository"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/apiErrors"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/utils"
)

type CampaignService interface {
	CreateCampaign(userID int, request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	GetCampaign(campaignID string) (*domain.Campaign, error)
	ListCampaigns(userID int) ([]*domain.Campaign, error)
	UpdateCampaign(request *domain.UpdateCampaignRequest) (*domain.Campaign, error)
	DeleteCampaign(campaignID string) error

	CreateAdGroup(campaignID string, request *domain.CreateAdGroupRequest) (*domain.AdGroup, error)
	ListAdGroups(campaignID string) ([]*domain.AdGroup, error)

	CreateRule(rule *domain.AutomationRule) (*domain.AutomationRule, error)
	GetRule(ruleID string) (*domain.AutomationRule, error)
	ListRules(campaignID string) ([]*domain.AutomationRule, error)
	UpdateRule(rule *domain.AutomationRule) (*domain.AutomationRule, error)
	SetRuleActive(ruleID string, active bool) error
	DeleteRule(ruleID string) error
}

type Service struct {
	campaignRepository repository.CampaignRepository
	adGroupRepository  repository.AdGroupRepository
	ruleRepository     repository.AutomationRuleRepository
}

func NewService(
	campaignRepository repository.CampaignRepository,
	adGroupRepository repository.AdGroupRepository,
	ruleRepository repository.AutomationRuleRepository,
) CampaignService {
	return &Service{
		campaignRepository: campaignRepository,
		adGroupRepository:  adGroupRepository,
		ruleRepository:     ruleRepository,
	}
}

func (s *Service) CreateCampaign(userID int, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if request.Name == "" {
		return nil, NewCampaignError(ErrCampaignNameRequired, apiErrors.ErrMissingRequiredData, "O nome da campanha é obrigatório")
	}

	if request.Budget < 0 {
		return nil, NewCampaignError(ErrInvalidBudget, apiErrors.ErrInvalidRequest, "O orçamento não pode ser negativo")
	}

	campaignID, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para campanha")
	}

	campaign := &domain.Campaign{
		ID:        campaignID,
		UserID:    userID,
		Name:      request.Name,
		Objective: request.Objective,
		Platform:  request.Platform,
		Status:    domain.CampaignStatusDraft,
		Budget:    request.Budget,
	}

	if err := s.campaignRepository.Create(campaign); err != nil {
		logrus.WithField("error", err).Error("Erro ao criar campanha no banco de dados")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar campanha no banco de dados")
	}

	return campaign, nil
}

func (s *Service) GetCampaign(campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepository.GetByID(campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao buscar campanha no banco de dados")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "Campanha não encontrada")
	}

	return campaign, nil
}

func (s *Service) ListCampaigns(userID int) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepository.ListByUserID(userID)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas no banco de dados")
	}

	return campaigns, nil
}

func (s *Service) UpdateCampaign(request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	campaign, err := s.GetCampaign(request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil && *request.Name != "" {
		campaign.Name = *request.Name
	}

	if request.Objective != nil {
		campaign.Objective = *request.Objective
	}

	if request.Status != nil {
		status := domain.CampaignStatus(*request.Status)
		if !status.Valid() {
			return nil, NewCampaignErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidRequest, campaign.ID, "Status de campanha inválido")
		}
		campaign.Status = status
	}

	if request.Budget != nil {
		if *request.Budget < 0 {
			return nil, NewCampaignErrorWithID(ErrInvalidBudget, apiErrors.ErrInvalidRequest, campaign.ID, "O orçamento não pode ser negativo")
		}
		campaign.Budget = *request.Budget
	}

	if err := s.campaignRepository.Update(campaign); err != nil {
		logrus.WithField("error", err).Error("Erro ao atualizar campanha no banco de dados")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaign.ID, "Falha ao atualizar campanha no banco de dados")
	}

	return campaign, nil
}

func (s *Service) DeleteCampaign(campaignID string) error {
	if _, err := s.GetCampaign(campaignID); err != nil {
		return err
	}

	if err := s.campaignRepository.Delete(campaignID); err != nil {
		return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao remover campanha no banco de dados")
	}

	return nil
}

func (s *Service) CreateAdGroup(campaignID string, request *domain.CreateAdGroupRequest) (*domain.AdGroup, error) {
	campaign, err := s.GetCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	if request.Name == "" {
		return nil, NewCampaignErrorWithID(ErrCampaignNameRequired, apiErrors.ErrMissingRequiredData, campaign.ID, "O nome do grupo de anúncios é obrigatório")
	}

	adGroupID, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para grupo de anúncios")
	}

	adGroup := &domain.AdGroup{
		ID:         adGroupID,
		CampaignID: campaign.ID,
		Name:       request.Name,
		Status:     domain.CampaignStatusActive,
		BidAmount:  request.BidAmount,
	}

	if err := s.adGroupRepository.Create(adGroup); err != nil {
		logrus.WithField("error", err).Error("Erro ao criar grupo de anúncios no banco de dados")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaign.ID, "Falha ao criar grupo de anúncios no banco de dados")
	}

	return adGroup, nil
}

func (s *Service) ListAdGroups(campaignID string) ([]*domain.AdGroup, error) {
	if _, err := s.GetCampaign(campaignID); err != nil {
		return nil, err
	}

	adGroups, err := s.adGroupRepository.ListByCampaignID(campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao listar grupos de anúncios no banco de dados")
	}

	return adGroups, nil
}

func (s *Service) CreateRule(rule *domain.AutomationRule) (*domain.AutomationRule, error) {
	if _, err := s.GetCampaign(rule.CampaignID); err != nil {
		return nil, err
	}

	if err := rule.Validate(); err != nil {
		return nil, NewCampaignErrorWithID(ErrInvalidRule, apiErrors.ErrInvalidRuleConfig, rule.CampaignID, err.Error())
	}

	ruleID, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para regra")
	}

	rule.ID = ruleID

	if err := s.ruleRepository.Create(rule); err != nil {
		logrus.WithField("error", err).Error("Erro ao criar regra de automação no banco de dados")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, rule.CampaignID, "Falha ao criar regra de automação no banco de dados")
	}

	return rule, nil
}

func (s *Service) GetRule(ruleID string) (*domain.AutomationRule, error) {
	rule, err := s.ruleRepository.GetByID(ruleID)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar regra de automação no banco de dados")
	}

	if rule == nil {
		return nil, NewCampaignError(ErrRuleNotFound, apiErrors.ErrRuleNotFound, "Regra de automação não encontrada")
	}

	return rule, nil
}

func (s *Service) ListRules(campaignID string) ([]*domain.AutomationRule, error) {
	if _, err := s.GetCampaign(campaignID); err != nil {
		return nil, err
	}

	rules, err := s.ruleRepository.ListByCampaignID(campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao listar regras de automação no banco de dados")
	}

	return rules, nil
}

func (s *Service) UpdateRule(rule *domain.AutomationRule) (*domain.AutomationRule, error) {
	existing, err := s.GetRule(rule.ID)
	if err != nil {
		return nil, err
	}

	// A campanha dona da regra nunca muda
	rule.CampaignID = existing.CampaignID

	if err := rule.Validate(); err != nil {
		return nil, NewCampaignErrorWithID(ErrInvalidRule, apiErrors.ErrInvalidRuleConfig, rule.CampaignID, err.Error())
	}

	if err := s.ruleRepository.Update(rule); err != nil {
		logrus.WithField("error", err).Error("Erro ao atualizar regra de automação no banco de dados")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, rule.CampaignID, "Falha ao atualizar regra de automação no banco de dados")
	}

	return rule, nil
}

func (s *Service) SetRuleActive(ruleID string, active bool) error {
	if _, err := s.GetRule(ruleID); err != nil {
		return err
	}

	if err := s.ruleRepository.SetActive(ruleID, active); err != nil {
		return NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao alterar estado da regra no banco de dados")
	}

	return nil
}

func (s *Service) DeleteRule(ruleID string) error {
	if _, err := s.GetRule(ruleID); err != nil {
		return err
	}

	if err := s.ruleRepository.Delete(ruleID); err != nil {
		return NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao remover regra no banco de dados")
	}

	return nil
}
