package tests

import (
	"testing"

	"github.com/aretw0/fsa/pkg/domain"
	"github.com/aretw0/fsa/pkg/ports"
)

// SourceLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.SourceLoader.
// want is the source the loader is expected to produce.
func SourceLoaderContractTest(t *testing.T, loader ports.SourceLoader, want *domain.Source) {
	t.Helper()

	t.Run("Load_Success", func(t *testing.T) {
		src, err := loader.Load()
		if err != nil {
			t.Fatalf("unexpected error loading %s: %v", loader.Name(), err)
		}
		if src.Initial != want.Initial {
			t.Errorf("initial mismatch. got %q, want %q", src.Initial, want.Initial)
		}
		if len(src.Records) != len(want.Records) {
			t.Fatalf("expected %d records, got %d", len(want.Records), len(src.Records))
		}
		for i, rec := range want.Records {
			if src.Records[i] != rec {
				t.Errorf("record %d mismatch. got %+v, want %+v", i, src.Records[i], rec)
			}
		}
	})

	t.Run("Load_Repeatable", func(t *testing.T) {
		first, err := loader.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := loader.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first.Records) != len(second.Records) || first.Initial != second.Initial {
			t.Error("loading twice produced different sources")
		}
	})

	t.Run("Name", func(t *testing.T) {
		if loader.Name() == "" {
			t.Error("loader name must not be empty")
		}
	})
}
