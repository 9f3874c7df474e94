package numbering_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizaciones-api/internal/domain/numbering"
)

type fakeLookup struct {
	number   string
	found    bool
	err      error
	prefixes []string
}

func (f *fakeLookup) LatestNumberWithPrefix(_ context.Context, prefix string) (string, bool, error) {
	f.prefixes = append(f.prefixes, prefix)
	return f.number, f.found, f.err
}

func date(y int, m time.Month) time.Time {
	return time.Date(y, m, 15, 10, 0, 0, 0, time.UTC)
}

func TestNext_IncrementaSecuenciaDelMes(t *testing.T) {
	lk := &fakeLookup{number: "QUO-202501-007", found: true}
	g := numbering.NewGenerator("", lk)

	n := g.Next(context.Background(), date(2025, time.January))

	assert.Equal(t, "QUO-202501-008", n.Value)
	assert.False(t, n.Offline)
	assert.Equal(t, []string{"QUO-202501-"}, lk.prefixes)
}

func TestNext_MesSinCotizacionesEmpiezaEnUno(t *testing.T) {
	g := numbering.NewGenerator("QUO", &fakeLookup{})

	n := g.Next(context.Background(), date(2025, time.February))

	assert.Equal(t, "QUO-202502-001", n.Value)
	assert.False(t, n.Offline)
}

func TestNext_SecuenciaMayorA999(t *testing.T) {
	g := numbering.NewGenerator("QUO", &fakeLookup{number: "QUO-202503-999", found: true})
	assert.Equal(t, "QUO-202503-1000", g.Next(context.Background(), date(2025, time.March)).Value)

	g = numbering.NewGenerator("QUO", &fakeLookup{number: "QUO-202503-1000", found: true})
	assert.Equal(t, "QUO-202503-1001", g.Next(context.Background(), date(2025, time.March)).Value)
}

func TestNext_SinConexionDevuelveMarcador(t *testing.T) {
	g := numbering.NewGenerator("QUO", &fakeLookup{err: errors.New("timeout")})

	n := g.Next(context.Background(), date(2025, time.April))

	assert.Equal(t, "QUO-202504-000", n.Value)
	assert.True(t, n.Offline)
}

func TestNext_NumeroAlmacenadoIlegible(t *testing.T) {
	g := numbering.NewGenerator("QUO", &fakeLookup{number: "QUO-202504-abc", found: true})

	n := g.Next(context.Background(), date(2025, time.April))

	assert.True(t, n.Offline)
	assert.Equal(t, "QUO-202504-000", n.Value)
}

func TestNext_PrefijoPersonalizado(t *testing.T) {
	lk := numbering.LookupFunc(func(_ context.Context, prefix string) (string, bool, error) {
		assert.Equal(t, "COT-202512-", prefix)
		return "COT-202512-041", true, nil
	})
	g := numbering.NewGenerator("COT", lk)

	assert.Equal(t, "COT-202512-042", g.Next(context.Background(), date(2025, time.December)).Value)
}

func TestParseSequence(t *testing.T) {
	seq, err := numbering.ParseSequence("QUO-202501-007")
	require.NoError(t, err)
	assert.Equal(t, 7, seq)

	for _, bad := range []string{"", "QUO", "QUO-202501-", "QUO-202501-x1"} {
		_, err := numbering.ParseSequence(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatYPeriodo(t *testing.T) {
	now := date(2025, time.July)
	assert.Equal(t, "202507", numbering.Period(now))
	assert.Equal(t, "QUO-202507-", numbering.Prefix("QUO", now))
	assert.Equal(t, "QUO-202507-003", numbering.Format("QUO", now, 3))
}
