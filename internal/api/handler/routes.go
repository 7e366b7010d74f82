package handler

import (
	"net/http"

	"github.com/contaanunciostake/ads-automation-platform-sub000/infrastructure/repository"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/api/handler/router"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/authenticating"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/automating"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/campaigning"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/copywriting"
	"github.com/contaanunciostake/ads-automation-platform-sub000/internal/usecases/optimizing"
	"github.com/contaanunciostake/ads-automation-platform-sub000/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/campaigns/:id/adgroups",
			Method:      http.MethodPost,
			Handler:     CreateAdGroup(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/adgroups",
			Method:      http.MethodGet,
			Handler:     ListAdGroups(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AutomationRules(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/rules",
			Method:      http.MethodPost,
			Handler:     CreateRule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/rules",
			Method:      http.MethodGet,
			Handler:     ListRules(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rules/:id",
			Method:      http.MethodGet,
			Handler:     GetRule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rules/:id",
			Method:      http.MethodPut,
			Handler:     UpdateRule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rules/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteRule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rules/:id/activate",
			Method:      http.MethodPost,
			Handler:     ActivateRule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rules/:id/deactivate",
			Method:      http.MethodPost,
			Handler:     DeactivateRule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Automation(engine automating.Engine) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/automation/run",
			Method:      http.MethodPost,
			Handler:     RunAutomation(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Optimization(optimizer optimizing.Optimizer, recommendationRepo repository.RecommendationRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/optimization/run",
			Method:      http.MethodPost,
			Handler:     RunOptimization(optimizer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/recommendations",
			Method:      http.MethodGet,
			Handler:     ListRecommendations(recommendationRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Performance(performanceRepo repository.PerformanceRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/performance",
			Method:      http.MethodPost,
			Handler:     IngestPerformance(performanceRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func AdCopy(service copywriting.Copywriter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/adcopy",
			Method:      http.MethodPost,
			Handler:     GenerateAdCopy(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
