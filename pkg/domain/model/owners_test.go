package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/oskaripessinen/vps-container-orchestrator/pkg/domain/model"
)

func TestOwnerSet(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		owners := model.NewOwnerSet("alice", "zeta-org", "acme")
		gt.V(t, owners.Logins()).Equal([]string{"alice", "zeta-org", "acme"})
		gt.V(t, owners.Len()).Equal(3)
	})

	t.Run("first occurrence wins on duplicates", func(t *testing.T) {
		owners := model.NewOwnerSet("alice", "acme")
		owners.Add("alice")
		owners.Add("acme")
		gt.V(t, owners.Logins()).Equal([]string{"alice", "acme"})
	})

	t.Run("empty login is ignored", func(t *testing.T) {
		owners := model.NewOwnerSet("", "alice", "")
		gt.V(t, owners.Logins()).Equal([]string{"alice"})
	})

	t.Run("contains is exact match", func(t *testing.T) {
		owners := model.NewOwnerSet("alice", "acme")
		gt.True(t, owners.Contains("acme"))
		gt.False(t, owners.Contains("Acme"))
		gt.False(t, owners.Contains(""))
	})
}
