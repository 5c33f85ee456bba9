package mcp

import (
	"context"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
)

// mockRenderService is a mock implementation of driving.RenderService.
type mockRenderService struct {
	artifact    *domain.ArtifactResult
	chartResult *domain.ChartRenderResult
	lastRequest domain.ChartRenderRequest
	err         error
}

func (m *mockRenderService) Render(
	_ context.Context,
	_ domain.RenderRequest,
) (*domain.ArtifactResult, error) {
	return m.artifact, m.err
}

func (m *mockRenderService) RenderChart(
	_ context.Context,
	req domain.ChartRenderRequest,
) (*domain.ChartRenderResult, error) {
	m.lastRequest = req
	return m.chartResult, m.err
}

// mockResolver is a mock implementation of driving.MarkupResolver.
type mockResolver struct {
	resolved   string
	properties map[string]string
}

func (m *mockResolver) Resolve(markup string) string {
	if m.resolved != "" {
		return m.resolved
	}
	return markup
}

func (m *mockResolver) Properties(_ string) map[string]string {
	return m.properties
}

func (m *mockResolver) ApplyOverrides(markup string, _ domain.Palette) string {
	return markup
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	records []domain.ChartRecord
	record  *domain.ChartRecord
	err     error
}

func (m *mockCatalogService) Recent(_ context.Context, _ int) ([]domain.ChartRecord, error) {
	return m.records, m.err
}

func (m *mockCatalogService) Get(_ context.Context, _ string) (*domain.ChartRecord, error) {
	return m.record, m.err
}

func (m *mockCatalogService) Delete(_ context.Context, _ string) error {
	return m.err
}
