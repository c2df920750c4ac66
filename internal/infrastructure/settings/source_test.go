// internal/infrastructure/settings/source_test.go
package settings

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() *Source {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	s := NewSource(nil, logger)
	s.latency = time.Millisecond
	return s
}

func TestStock(t *testing.T) {
	s := testSource()

	stock, err := s.Stock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stock.LowStockThreshold)
	assert.Equal(t, 30, stock.MaxStockForVisualizaton)
	assert.Equal(t, 0, stock.OutOfStockThreshold)
}

func TestTax_Regional(t *testing.T) {
	s := testSource()
	ctx := context.Background()

	es, err := s.Tax(ctx, "ES")
	require.NoError(t, err)
	assert.Equal(t, 0.21, es.DefaultTaxRate)
	assert.Equal(t, "IVA", es.TaxName)

	fr, err := s.Tax(ctx, "FR")
	require.NoError(t, err)
	assert.Equal(t, 0.20, fr.DefaultTaxRate)
	assert.Equal(t, "TVA", fr.TaxName)

	us, err := s.Tax(ctx, "US")
	require.NoError(t, err)
	assert.Equal(t, 0.08, us.DefaultTaxRate)

	// Unknown regions fall back to the default table.
	other, err := s.Tax(ctx, "DE")
	require.NoError(t, err)
	assert.Equal(t, taxData, other)
}

func TestPricing_Regional(t *testing.T) {
	s := testSource()
	ctx := context.Background()

	us, err := s.Pricing(ctx, "US")
	require.NoError(t, err)
	assert.Equal(t, "USD", us.Currency)
	assert.Equal(t, "$", us.CurrencySymbol)

	def, err := s.Pricing(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "EUR", def.Currency)
	assert.Equal(t, 150.0, def.PremiumThreshold)
}

func TestUI_SeasonalColors(t *testing.T) {
	s := testSource()
	ctx := context.Background()

	summer, err := s.UI(ctx, "summer")
	require.NoError(t, err)
	assert.Equal(t, "text-blue-600", summer.StockColors.High)

	def, err := s.UI(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "text-green-600", def.StockColors.High)
	assert.Equal(t, uiData.StockGradients, def.StockGradients)
}

func TestStoreType(t *testing.T) {
	s := testSource()
	ctx := context.Background()

	wholesale, err := s.StoreType(ctx, "wholesale")
	require.NoError(t, err)
	assert.Equal(t, 20, wholesale.Stock.LowStockThreshold)
	assert.Equal(t, 500.0, wholesale.PremiumThreshold)

	_, err = s.StoreType(ctx, "popup")
	assert.ErrorIs(t, err, ErrUnknownStoreType)
}

func TestSeason(t *testing.T) {
	s := testSource()

	summer, ok := s.Season("summer")
	assert.True(t, ok)
	assert.Equal(t, 120.0, summer.PremiumThreshold)

	_, ok = s.Season("spring")
	assert.False(t, ok)
}

func TestLookup_ServesFromLocalCache(t *testing.T) {
	s := testSource()
	ctx := context.Background()

	_, err := s.Stock(ctx)
	require.NoError(t, err)

	// The second read must not pay the simulated latency again.
	s.latency = time.Minute
	start := time.Now()
	_, err = s.Stock(ctx)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLookup_HonorsContextCancellation(t *testing.T) {
	s := testSource()
	s.latency = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	_, err := s.Stock(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestInvalidate_DropsLocalCache(t *testing.T) {
	s := testSource()
	ctx := context.Background()

	_, err := s.Stock(ctx)
	require.NoError(t, err)

	s.Invalidate(ctx)

	// The next read goes back to the tables.
	s.latency = time.Minute
	fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	_, err = s.Stock(fetchCtx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
