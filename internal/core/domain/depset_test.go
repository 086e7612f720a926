package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/repin/internal/core/domain"
)

func TestParseDeps(t *testing.T) {
	deps := []domain.Declaration{
		domain.Plain("numpy=1.2"),
		domain.Plain("conda-forge::pandas=1.0"),
		domain.Plain("numpy=1.2"), // duplicate collapses into the set
		domain.PipBlock([]string{"foo==1.0", "bar[extra]>=2"}),
	}

	s := domain.ParseDeps(deps)

	assert.Equal(t, map[string]bool{"numpy": true, "pandas": true}, s.Conda)
	assert.Equal(t, map[string]bool{"foo": true, "bar": true}, s.Pip)
}

func TestParseDeps_ChannelsAreIndependent(t *testing.T) {
	deps := []domain.Declaration{
		domain.Plain("requests=2.31"),
		domain.PipBlock([]string{"requests==2.31.0"}),
	}

	s := domain.ParseDeps(deps)

	assert.True(t, s.Conda["requests"])
	assert.True(t, s.Pip["requests"])
}

func TestParseDeps_MultiplePipBlocksMerge(t *testing.T) {
	deps := []domain.Declaration{
		domain.PipBlock([]string{"foo==1.0"}),
		domain.Plain("numpy"),
		domain.PipBlock([]string{"bar==2.0"}),
	}

	s := domain.ParseDeps(deps)

	assert.Equal(t, map[string]bool{"foo": true, "bar": true}, s.Pip)
	assert.Equal(t, map[string]bool{"numpy": true}, s.Conda)
}

func TestParseDeps_Empty(t *testing.T) {
	s := domain.ParseDeps(nil)
	assert.Empty(t, s.Conda)
	assert.Empty(t, s.Pip)
}

func TestDepSet_Union(t *testing.T) {
	a := domain.ParseDeps([]domain.Declaration{
		domain.Plain("numpy"),
		domain.PipBlock([]string{"foo"}),
	})
	b := domain.ParseDeps([]domain.Declaration{
		domain.Plain("pandas"),
		domain.Plain("numpy"),
		domain.PipBlock([]string{"bar"}),
	})

	u := a.Union(b)

	assert.Equal(t, map[string]bool{"numpy": true, "pandas": true}, u.Conda)
	assert.Equal(t, map[string]bool{"foo": true, "bar": true}, u.Pip)

	// Inputs must not alias the result.
	u.Conda["scipy"] = true
	assert.False(t, a.Conda["scipy"])
	assert.False(t, b.Conda["scipy"])
}
