package usecase

import (
	"time"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/service/idp"
	"github.com/lensworks/crewdesk/pkg/service/scriptgen"
	"github.com/lensworks/crewdesk/pkg/service/slack"
)

type UseCases struct {
	repo interfaces.Repository

	verifier     idp.Verifier
	tokenSecret  []byte
	tokenTTL     time.Duration
	slackService slack.Service
	generator    scriptgen.Generator

	Auth         *AuthUseCase
	User         *UserUseCase
	Task         *TaskUseCase
	Shoot        *ShootUseCase
	Lead         *LeadUseCase
	Invoice      *InvoiceUseCase
	Notification *NotificationUseCase
	Analytics    *AnalyticsUseCase
	Script       *ScriptUseCase
}

type Option func(*UseCases)

// WithVerifier sets the identity-provider token verifier used at login
func WithVerifier(v idp.Verifier) Option {
	return func(uc *UseCases) {
		uc.verifier = v
	}
}

// WithTokenSecret sets the HS256 signing secret for session tokens
func WithTokenSecret(secret []byte) Option {
	return func(uc *UseCases) {
		uc.tokenSecret = secret
	}
}

// WithTokenTTL overrides the session token lifetime
func WithTokenTTL(ttl time.Duration) Option {
	return func(uc *UseCases) {
		uc.tokenTTL = ttl
	}
}

// WithSlackService enables Slack announcements for new leads
func WithSlackService(s slack.Service) Option {
	return func(uc *UseCases) {
		uc.slackService = s
	}
}

// WithScriptGenerator overrides the script draft generator
func WithScriptGenerator(g scriptgen.Generator) Option {
	return func(uc *UseCases) {
		uc.generator = g
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:      repo,
		tokenTTL:  DefaultTokenTTL,
		generator: scriptgen.NewTemplate(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Auth = NewAuthUseCase(repo, uc.verifier, uc.tokenSecret, uc.tokenTTL)
	uc.User = NewUserUseCase(repo)
	uc.Task = NewTaskUseCase(repo)
	uc.Shoot = NewShootUseCase(repo)
	uc.Notification = NewNotificationUseCase(repo)
	uc.Lead = NewLeadUseCase(repo, uc.slackService)
	uc.Invoice = NewInvoiceUseCase(repo)
	uc.Analytics = NewAnalyticsUseCase(repo)
	uc.Script = NewScriptUseCase(repo, uc.generator)

	return uc
}
