package main

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prypal/backend/internal/pkg/pperr"
	"github.com/prypal/backend/internal/pkg/testentry"
	"github.com/prypal/backend/internal/service"
)

func TestCatalog(t *testing.T) {
	if os.Getenv("PRYPAL_TEST_PG_DSN") == "" {
		t.Skip("PRYPAL_TEST_PG_DSN not set; skipping infra-backed suite")
	}
	os.Setenv("PRYPAL_POSTGRES_DSN", os.Getenv("PRYPAL_TEST_PG_DSN"))

	var s *service.Material
	testentry.Populate(t, &s)

	t.Run("UnknownMaterialIsNotFound", func(t *testing.T) {
		ctx := context.Background()

		_, err := s.GetMaterialByCode(ctx, "NO_SUCH_MATERIAL")
		require.Error(t, err)
		assert.Equal(t, pperr.ErrNotFound, err)
	})

	t.Run("ActiveMaterialsOnly", func(t *testing.T) {
		ctx := context.Background()

		materials, err := s.GetActiveMaterials(ctx)
		require.NoError(t, err)
		for _, m := range materials {
			assert.True(t, m.Active, "expect material %s to be active", m.MaterialCode)
		}
	})
}
