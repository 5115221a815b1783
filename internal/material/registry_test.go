package material

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestGet(t *testing.T) {
	tests := []struct {
		id      ID
		name    string
		density float64
		young   float64
		poisson float64
	}{
		{Steel, "Mild Steel", 7850, 210000, 0.3},
		{Aluminum, "Aluminum Alloys", 2700, 69000, 0.33},
		{Timber, "Timber", 600, 11000, 0.3},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			m, err := Get(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.id, m.ID)
			assert.Equal(t, tt.name, m.Name)
			assert.Equal(t, tt.density, m.Density)
			assert.Equal(t, tt.young, m.Young)
			assert.Equal(t, tt.poisson, m.Poisson)
			assert.NotEmpty(t, m.Color)
		})
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("titanium")
	require.Error(t, err)

	var unknown *UnknownMaterialError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "titanium", unknown.ID)
	assert.Contains(t, err.Error(), "steel, aluminum, timber")
}

func TestRegistryInvariants(t *testing.T) {
	for _, m := range All() {
		assert.Greater(t, m.Density, 0.0, m.ID)
		assert.Greater(t, m.Young, 0.0, m.ID)
		assert.Greater(t, m.Poisson, 0.0, m.ID)
		assert.Less(t, m.Poisson, 0.5, m.ID)
	}
}

func TestList(t *testing.T) {
	want := []ID{Steel, Aluminum, Timber}
	if diff := cmp.Diff(want, List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	// callers cannot reorder the registry
	ids := List()
	ids[0] = "titanium"
	assert.Equal(t, Steel, List()[0])
}

func TestLookup(t *testing.T) {
	m, err := Lookup("  Steel ")
	require.NoError(t, err)
	assert.Equal(t, Steel, m.ID)

	_, err = Lookup("")
	var unknown *UnknownMaterialError
	assert.ErrorAs(t, err, &unknown)
}

func TestShearModulus(t *testing.T) {
	m, err := Get(Steel)
	require.NoError(t, err)
	assert.InDelta(t, 80769.23, m.ShearModulus(), 0.01)
}

func TestConcurrentReaders(t *testing.T) {
	defer goleak.VerifyNone(t)

	var g errgroup.Group
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			for _, id := range List() {
				if _, err := Get(id); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
