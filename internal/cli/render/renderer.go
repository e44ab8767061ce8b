package render

import "github.com/trebuchet-org/chainconf/internal/usecase"

// Renderer renders the result of a use case
type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*usecase.ShowConfigResult]     = (*ConfigRenderer)(nil)
	_ Renderer[*usecase.ListNetworksResult]   = (*NetworksRenderer)(nil)
	_ Renderer[*usecase.ValidateConfigResult] = (*ValidateRenderer)(nil)
	_ Renderer[*usecase.ListAccountsResult]   = (*AccountsRenderer)(nil)
	_ Renderer[*usecase.StartNodeResult]      = (*NodeRenderer)(nil)
)
