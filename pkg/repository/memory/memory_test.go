package memory_test

import (
	"testing"

	"github.com/m-mizutani/gitminer/pkg/domain/interfaces"
	"github.com/m-mizutani/gitminer/pkg/repository/memory"
	"github.com/m-mizutani/gitminer/pkg/repository/testhelper"
)

func TestMemoryCatalogRepository(t *testing.T) {
	testhelper.TestAll(t, func(t *testing.T) interfaces.CatalogRepository {
		return memory.New()
	})
}
