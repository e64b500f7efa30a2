package catalog

import "context"

// Filter narrows the public catalog listing. Zero values mean "no filter".
type Filter struct {
	Category string
	Origin   string
	Query    string
	Page     int
	Size     int
}

type ToolRepository interface {
	Create(ctx context.Context, t *Tool) error
	Save(ctx context.Context, t *Tool) error

	// GetByID loads the tool with its categories.
	GetByID(ctx context.Context, id uint64) (*Tool, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)

	// Approval-time upsert lookups (exact match).
	FindByName(ctx context.Context, name string) (*Tool, error)
	FindByURL(ctx context.Context, url string) (*Tool, error)

	// List returns one page (newest update first) and the total row count.
	List(ctx context.Context, f Filter) ([]Tool, int64, error)
	ListByIDs(ctx context.Context, ids []uint64) ([]Tool, error)

	// AddCategory links a category to a tool with set semantics: adding an
	// already-linked pair is a no-op.
	AddCategory(ctx context.Context, toolID, categoryID uint64) error
}

type CategoryRepository interface {
	FindByName(ctx context.Context, name string) (*Category, error)

	// GetOrCreate resolves a category name to a row, creating it when
	// absent. A duplicate-key race on insert is resolved by re-fetching;
	// the unique index is the final arbiter.
	GetOrCreate(ctx context.Context, name string) (*Category, error)

	NamesForApplication(ctx context.Context, applicationID uint64) ([]string, error)
}
