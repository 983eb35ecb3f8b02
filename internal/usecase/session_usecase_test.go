package usecase

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateGuard(t *testing.T) {
	customer := &entity.User{ID: "c", Role: entity.RoleCustomer}
	admin := &entity.User{ID: "a", Role: entity.RoleAdmin}

	tests := []struct {
		name    string
		session entity.Session
		flags   GuardFlags
		want    GuardDecision
	}{
		{
			name:    "loading wins over everything",
			session: entity.Session{IsLoading: true, Credential: "tok", User: admin},
			flags:   GuardFlags{RequireNonAdmin: true},
			want:    GuardDecision{Outcome: GuardLoading},
		},
		{
			name:    "anonymous goes to login",
			session: entity.Session{},
			want:    GuardDecision{Outcome: GuardRedirect, Redirect: entity.RouteLogin},
		},
		{
			name:    "customer on admin route goes home",
			session: entity.Session{Credential: "tok", User: customer},
			flags:   GuardFlags{RequireAdmin: true},
			want:    GuardDecision{Outcome: GuardRedirect, Redirect: entity.RouteHome},
		},
		{
			name:    "unresolved user on admin route goes home",
			session: entity.Session{Credential: "tok"},
			flags:   GuardFlags{RequireAdmin: true},
			want:    GuardDecision{Outcome: GuardRedirect, Redirect: entity.RouteHome},
		},
		{
			name:    "admin on customer route goes to admin",
			session: entity.Session{Credential: "tok", User: admin},
			flags:   GuardFlags{RequireNonAdmin: true},
			want:    GuardDecision{Outcome: GuardRedirect, Redirect: entity.RouteAdmin},
		},
		{
			name:    "admin on admin route renders",
			session: entity.Session{Credential: "tok", User: admin},
			flags:   GuardFlags{RequireAdmin: true},
			want:    GuardDecision{Outcome: GuardRender},
		},
		{
			name:    "customer on customer route renders",
			session: entity.Session{Credential: "tok", User: customer},
			flags:   GuardFlags{RequireNonAdmin: true},
			want:    GuardDecision{Outcome: GuardRender},
		},
		{
			name:    "unresolved user on open route renders",
			session: entity.Session{Credential: "tok"},
			want:    GuardDecision{Outcome: GuardRender},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateGuard(tt.session, tt.flags))
		})
	}
}
