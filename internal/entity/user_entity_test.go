package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveAccountStatus(t *testing.T) {
	tests := []struct {
		name string
		subs []*Subscription
		want AccountStatus
	}{
		{
			name: "no subscriptions is free",
			subs: nil,
			want: AccountStatusFree,
		},
		{
			name: "one active subscription is active",
			subs: []*Subscription{{Status: SubscriptionStatusActive}},
			want: AccountStatusActive,
		},
		{
			name: "active among expired still wins",
			subs: []*Subscription{
				{Status: SubscriptionStatusExpired},
				{Status: SubscriptionStatusActive},
			},
			want: AccountStatusActive,
		},
		{
			name: "only lapsed subscriptions is churned",
			subs: []*Subscription{
				{Status: SubscriptionStatusCancelled},
				{Status: SubscriptionStatusExpired},
			},
			want: AccountStatusChurned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveAccountStatus(tt.subs))
		})
	}
}
