package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridacisneros/panorama-sub001/pkg/models/domain"
)

func TestLookup(t *testing.T) {
	t.Run("known report", func(t *testing.T) {
		spec, ok := Lookup("captura-anual")
		require.True(t, ok)
		assert.Equal(t, []string{"anio_corte"}, spec.Dimensions)
	})

	t.Run("unknown report", func(t *testing.T) {
		_, ok := Lookup("captura-lunar")
		assert.False(t, ok)
	})
}

func TestCatalogConsistency(t *testing.T) {
	entries := CatalogEntries()
	require.GreaterOrEqual(t, len(entries), 40)

	for _, spec := range entries {
		t.Run(spec.ID, func(t *testing.T) {
			assert.NotEmpty(t, spec.Group)
			require.NotEmpty(t, spec.Metrics)

			if spec.Post == domain.PostHeatmapTop {
				require.NotNil(t, spec.Heatmap)
				assert.GreaterOrEqual(t, spec.Heatmap.TopN, 5)
				assert.LessOrEqual(t, spec.Heatmap.TopN, 8)
				return
			}

			require.NotEmpty(t, spec.Dimensions)
			require.NotEmpty(t, spec.OrderBy)

			// The default sort must reference an output column: either a
			// grouping dimension or a metric alias.
			valid := map[string]bool{}
			for _, d := range spec.Dimensions {
				valid[d] = true
			}
			for _, m := range spec.Metrics {
				valid[m.Alias] = true
			}
			assert.True(t, valid[spec.OrderBy], "order by %q not an output column", spec.OrderBy)

			if spec.Post == domain.PostRatio {
				require.NotNil(t, spec.Ratio)
				assert.True(t, valid[spec.Ratio.Numerator])
				assert.True(t, valid[spec.Ratio.Denominator])
			}
		})
	}
}

func TestCatalogGuards(t *testing.T) {
	for _, id := range []string{"especies-region", "valor-region"} {
		spec, ok := Lookup(id)
		require.True(t, ok, id)
		assert.True(t, spec.RequiresRegion, id)
	}
}

func TestCatalogAveragesAreNotCoalesced(t *testing.T) {
	for _, spec := range CatalogEntries() {
		for _, m := range spec.Metrics {
			if m.Agg == domain.AggAvg {
				assert.False(t, m.CoalesceZero, "%s/%s", spec.ID, m.Alias)
			}
		}
	}
}
