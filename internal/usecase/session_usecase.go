// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// SessionUsecase is the auth gate: the only writer of the session credential.
type SessionUsecase interface {
	service.CredentialProvider

	// Restore loads the durable credential and resolves the user once at startup.
	// IsLoading stays true until it returns.
	Restore(ctx context.Context) entity.Session
	// Session returns a copy of the current session.
	Session() entity.Session
	// SetCredential stores a credential and resolves the user behind it.
	// An empty credential clears the session without a network call.
	SetCredential(ctx context.Context, credential string) (entity.Session, error)
	Login(ctx context.Context, input *service.LoginInput) (entity.Session, error)
	Register(ctx context.Context, input *service.RegisterInput) error
	// Logout clears credential and user and empties the cart. No network call.
	Logout(ctx context.Context)
	// Guard decides what a route with the given requirements may show.
	Guard(flags GuardFlags) GuardDecision
	// OnCredentialChange registers l to run after every resolved credential change.
	OnCredentialChange(l CredentialListener) (unsubscribe func())
}

// CredentialListener observes the credential after each resolution ("" when cleared).
type CredentialListener func(ctx context.Context, credential string)

// GuardFlags are a route's access requirements.
type GuardFlags struct {
	RequireAdmin    bool `json:"requireAdmin" query:"requireAdmin"`
	RequireNonAdmin bool `json:"requireNonAdmin" query:"requireNonAdmin"`
}

// GuardOutcome is what a guarded route does.
type GuardOutcome string

const (
	GuardLoading  GuardOutcome = "loading"
	GuardRedirect GuardOutcome = "redirect"
	GuardRender   GuardOutcome = "render"
)

// GuardDecision is the result of evaluating a route guard.
type GuardDecision struct {
	Outcome  GuardOutcome `json:"outcome"`
	Redirect entity.Route `json:"redirect,omitempty"`
}

// EvaluateGuard applies the route guard rules to a session.
func EvaluateGuard(session entity.Session, flags GuardFlags) GuardDecision {
	switch {
	case session.IsLoading:
		return GuardDecision{Outcome: GuardLoading}
	case !session.IsAuthenticated():
		return GuardDecision{Outcome: GuardRedirect, Redirect: entity.RouteLogin}
	case flags.RequireAdmin && !session.User.IsAdmin():
		return GuardDecision{Outcome: GuardRedirect, Redirect: entity.RouteHome}
	case flags.RequireNonAdmin && session.User.IsAdmin():
		return GuardDecision{Outcome: GuardRedirect, Redirect: entity.RouteAdmin}
	default:
		return GuardDecision{Outcome: GuardRender}
	}
}
