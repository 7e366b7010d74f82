package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	metadomain "github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/integrator/meta/domain"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/config"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Intervalo de renovação menor que as 24h de folga do token para renovar antes de expirar
const (
	refreshInterval      = 23 * time.Hour
	refreshRetryInterval = 1 * time.Hour
)

// TokenManager mantém o token de longa duração da API do Meta válido,
// renovando-o periodicamente e sob demanda quando a API acusa expiração
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex
	stopRefresh       chan struct{}
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		stopRefresh: make(chan struct{}),
	}
}

// StartAutoRefresh inicializa o token e o renova em ciclo até StopAutoRefresh.
// Falha na renovação encurta o próximo ciclo para tentar de novo mais cedo.
func (tm *TokenManager) StartAutoRefresh() {
	if err := tm.bootstrapToken(); err != nil {
		logrus.Errorf("Erro ao iniciar o token: %v", err)
		logrus.Warn("A API Meta pode ter funcionalidade limitada até que o token seja configurado corretamente")
	}

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logrus.Info("Iniciando renovação periódica do token da Meta")
			if err := tm.RefreshToken(); err != nil {
				logrus.Errorf("Erro na renovação periódica do token: %v", err)
				ticker.Reset(refreshRetryInterval)
				continue
			}

			logrus.Info("Renovação periódica do token concluída com sucesso")
			ticker.Reset(refreshInterval)
		case <-tm.stopRefresh:
			logrus.Info("Encerrando goroutine de renovação periódica do token")
			return
		}
	}
}

// StopAutoRefresh encerra a goroutine de renovação
func (tm *TokenManager) StopAutoRefresh() {
	close(tm.stopRefresh)
}

// bootstrapToken garante um token de longa duração válido na inicialização:
// troca o token de curta duração quando não há um, ou valida o existente
func (tm *TokenManager) bootstrapToken() error {
	if tm.cfg.Meta.LongLivedToken == "" {
		logrus.Info("Token de longa duração não encontrado. Iniciando troca do token de curta duração")
		return tm.exchangeToken()
	}

	if tm.cfg.Meta.TokenExpiresAt.IsZero() {
		logrus.Info("Validando token de longa duração existente")
		if err := tm.validateExistingToken(); err != nil {
			logrus.Errorf("Falha ao validar token existente: %v", err)
			return tm.RefreshToken()
		}
		return nil
	}

	return tm.EnsureValidToken()
}

func (tm *TokenManager) exchangeToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	// Outra goroutine pode ter inicializado o token enquanto aguardávamos o mutex
	if tm.cfg.Meta.LongLivedToken != "" {
		return nil
	}

	tokenResponse, err := GetLongLivedToken(
		tm.cfg.Meta.AccessToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.BaseURL,
		tm.cfg.Meta.Version,
	)
	if err != nil {
		return fmt.Errorf("erro ao obter token de longa duração: %w", err)
	}

	tm.adoptToken(tokenResponse)

	logrus.Infof("Token de longa duração inicializado com sucesso. Expira em: %s",
		tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// validateExistingToken consulta a API para confirmar a validade do token
// carregado da configuração e descobrir quando ele expira
func (tm *TokenManager) validateExistingToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	isValid, err := CheckTokenValidity(tm.cfg.Meta.LongLivedToken, tm.cfg.Meta.URL)
	if err != nil {
		return fmt.Errorf("erro ao verificar validade do token de longa duração: %w", err)
	}

	if !isValid {
		return tm.refreshTokenLocked()
	}

	debugInfo, err := GetDebugTokenInfo(
		tm.cfg.Meta.LongLivedToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.BaseURL,
		tm.cfg.Meta.Version,
	)
	if err != nil {
		return fmt.Errorf("erro ao obter informações do token: %w", err)
	}

	logrus.Debugf("Informações do token: %s", utils.PrettyJson(debugInfo))

	data, ok := debugInfo["data"].(map[string]any)
	if !ok {
		return fmt.Errorf("não foi possível determinar quando o token expira")
	}

	expiresAt, ok := data["expires_at"].(float64)
	if !ok {
		return fmt.Errorf("não foi possível determinar quando o token expira")
	}

	// Um dia de folga para renovar antes da expiração real
	tm.cfg.Meta.TokenExpiresAt = time.Unix(int64(expiresAt), 0).Add(-24 * time.Hour)
	tm.cfg.Meta.AccessToken = tm.cfg.Meta.LongLivedToken

	logrus.Infof("Token de longa duração é válido. Expira em: %s",
		tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// RefreshToken obtém um novo token de longa duração
func (tm *TokenManager) RefreshToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	return tm.refreshTokenLocked()
}

func (tm *TokenManager) refreshTokenLocked() error {
	if !tm.cfg.Meta.TokenExpiresAt.IsZero() && time.Until(tm.cfg.Meta.TokenExpiresAt) < time.Hour {
		logrus.Warn("Token está muito próximo da expiração ou já expirou - pode ser necessária reautorização manual")
	}

	logrus.Info("Iniciando renovação do token")
	tokenResponse, err := GetLongLivedToken(
		tm.cfg.Meta.AccessToken,
		tm.cfg.Meta.AppID,
		tm.cfg.Meta.AppSecret,
		tm.cfg.Meta.BaseURL,
		tm.cfg.Meta.Version,
	)
	if err != nil {
		if containsTokenExpirationMessage(err.Error()) {
			logrus.Error("O token de acesso expirou e não pode ser renovado automaticamente. É necessário reautorizar")
			return fmt.Errorf("o token de acesso expirou e não pode ser renovado automaticamente. "+
				"É necessário reautorizar o aplicativo através do processo de autenticação OAuth: %w", err)
		}

		logrus.Errorf("Erro ao renovar token: %v", err)
		return fmt.Errorf("erro ao obter novo token de longa duração: %w", err)
	}

	oldToken := tm.cfg.Meta.LongLivedToken
	tm.adoptToken(tokenResponse)

	if oldToken == tm.cfg.Meta.LongLivedToken {
		logrus.Info("Token renovado, mas não mudou. Isso pode indicar um problema na API da Meta")
		return nil
	}

	logrus.Infof("Token de longa duração atualizado com sucesso. Expira em: %s",
		tm.cfg.Meta.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

func (tm *TokenManager) adoptToken(tokenResponse *TokenResponse) {
	tm.cfg.Meta.LongLivedToken = tokenResponse.AccessToken
	tm.cfg.Meta.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)
	tm.cfg.Meta.AccessToken = tm.cfg.Meta.LongLivedToken
}

// EnsureValidToken renova o token proativamente quando ele está perto de expirar
func (tm *TokenManager) EnsureValidToken() error {
	if tm.cfg.Meta.AccessToken == "" {
		logrus.Info("Token não inicializado. Inicializando")
		return tm.exchangeToken()
	}

	if time.Until(tm.cfg.Meta.TokenExpiresAt) < 24*time.Hour {
		logrus.Info("Token expira em menos de 24 horas. Renovando proativamente")
		return tm.RefreshToken()
	}

	return nil
}

// HandleResponse lê a resposta HTTP e converte erros de token expirado em
// renovação automática seguida de erro de retry
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return tm.handleErrorResponse(body)
}

func (tm *TokenManager) handleErrorResponse(body []byte) ([]byte, error) {
	var errorResp metadomain.ErrorResponse
	parseErr := json.Unmarshal(body, &errorResp)

	expired := (parseErr == nil && errorResp.IsTokenExpired()) ||
		containsTokenExpirationMessage(string(body))
	if expired {
		return tm.handleExpiredToken(body)
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", http.StatusBadRequest, string(body))
}

// handleExpiredToken renova o token e sinaliza ao chamador que repita a operação
func (tm *TokenManager) handleExpiredToken(body []byte) ([]byte, error) {
	logrus.Warnf("Token expirado detectado pela API Meta: %s", string(body))

	if refreshErr := tm.RefreshToken(); refreshErr != nil {
		if strings.Contains(refreshErr.Error(), "necessário reautorizar") {
			return nil, fmt.Errorf("token expirou permanentemente e requer reautorização manual: %w", refreshErr)
		}
		return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
	}

	return nil, fmt.Errorf("token expirado e renovado, por favor tente novamente")
}

func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
