package memory_test

import (
	"testing"

	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/internal/onboard/store/drivers/memory"
	"github.com/aussiebroadwan/onboard/internal/onboard/store/storetest"
)

func TestMemoryStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return memory.NewStore()
	})
}
