package cache

import (
	"github.com/redis/go-redis/v9"

	"github.com/prypal/backend/internal/model"
	"github.com/prypal/backend/internal/pkg/cache"
)

var (
	// ActiveMaterials caches the catalog list shown on the material-select
	// screen. Materials are immutable during a packing session, so a generous
	// TTL is safe; admin edits purge it explicitly.
	ActiveMaterials *cache.Singular[[]*model.Material]

	// MaterialByCode caches single catalog lookups, shared across instances.
	MaterialByCode *cache.Set[model.Material]

	// ActiveDrumCounts caches the per-material ACTIVE drum counts backing the
	// status pills on the material list. Short TTL: it only has to absorb the
	// polling of idle operator screens.
	ActiveDrumCounts *cache.Singular[map[string]int]
)

func Initialize(client *redis.Client) {
	ActiveMaterials = cache.NewSingular[[]*model.Material]("activeMaterials")
	MaterialByCode = cache.NewSet[model.Material](client, "materialByCode")
	ActiveDrumCounts = cache.NewSingular[map[string]int]("activeDrumCounts")
}

// PurgeMaterial drops every cache entry the given material could be served
// from. Called after admin upserts and after operations that change the
// active set.
func PurgeMaterial(materialCode string) {
	_ = ActiveMaterials.Delete()
	_ = ActiveDrumCounts.Delete()
	if materialCode != "" {
		_ = MaterialByCode.Delete(materialCode)
	}
}
