package invoke

import (
	"context"

	"github.com/juju/errors"

	"github.com/peeky-app/peeky-service/internal/app"
	catDTO "github.com/peeky-app/peeky-service/internal/category/dto"
	itemDTO "github.com/peeky-app/peeky-service/internal/item/dto"
)

// Args is the argument object sent by the GUI shell. Top-level keys are
// camelCase and nested inputs snake_case, matching what the shell sends.
type Args struct {
	Input      *Input  `json:"input"`
	ID         *int64  `json:"id"`
	IDs        []int64 `json:"ids"`
	CategoryID *int64  `json:"categoryId"`
}

// Input is the union of the create/update payloads; each command reads the
// fields it needs.
type Input struct {
	ID         int64   `json:"id"`
	CategoryID int64   `json:"category_id"`
	Name       *string `json:"name"`
	Label      *string `json:"label"`
	Value      *string `json:"value"`
	SortOrder  *int64  `json:"sort_order"`
}

type commandFunc func(ctx context.Context, args *Args) (any, error)

func (h *Handler) registerCommands() {
	h.commands = map[string]commandFunc{
		"ping":               h.ping,
		"get_app_info":       h.getAppInfo,
		"get_categories":     h.getCategories,
		"create_category":    h.createCategory,
		"update_category":    h.updateCategory,
		"delete_category":    h.deleteCategory,
		"reorder_categories": h.reorderCategories,
		"get_items":          h.getItems,
		"get_all_items":      h.getAllItems,
		"create_item":        h.createItem,
		"update_item":        h.updateItem,
		"delete_item":        h.deleteItem,
		"reorder_items":      h.reorderItems,
	}
}

func missing(name string) error {
	return errors.BadRequestf("missing argument %q", name)
}

func (h *Handler) ping(context.Context, *Args) (any, error) {
	return "pong", nil
}

func (h *Handler) getAppInfo(context.Context, *Args) (any, error) {
	return app.CurrentInfo(), nil
}

func (h *Handler) getCategories(ctx context.Context, _ *Args) (any, error) {
	return h.categories.ListCategories(ctx)
}

func (h *Handler) createCategory(ctx context.Context, args *Args) (any, error) {
	if args.Input == nil || args.Input.Name == nil {
		return nil, missing("input.name")
	}
	return h.categories.CreateCategory(ctx, &catDTO.CreateCategoryInput{Name: *args.Input.Name})
}

func (h *Handler) updateCategory(ctx context.Context, args *Args) (any, error) {
	if args.Input == nil {
		return nil, missing("input")
	}
	return h.categories.UpdateCategory(ctx, &catDTO.UpdateCategoryInput{
		ID:        args.Input.ID,
		Name:      args.Input.Name,
		SortOrder: args.Input.SortOrder,
	})
}

func (h *Handler) deleteCategory(ctx context.Context, args *Args) (any, error) {
	if args.ID == nil {
		return nil, missing("id")
	}
	return nil, h.categories.DeleteCategory(ctx, *args.ID)
}

func (h *Handler) reorderCategories(ctx context.Context, args *Args) (any, error) {
	if args.IDs == nil {
		return nil, missing("ids")
	}
	return nil, h.categories.ReorderCategories(ctx, args.IDs)
}

func (h *Handler) getItems(ctx context.Context, args *Args) (any, error) {
	if args.CategoryID == nil {
		return nil, missing("categoryId")
	}
	return h.items.ListItems(ctx, *args.CategoryID)
}

func (h *Handler) getAllItems(ctx context.Context, _ *Args) (any, error) {
	return h.items.ListAllItems(ctx)
}

func (h *Handler) createItem(ctx context.Context, args *Args) (any, error) {
	if args.Input == nil || args.Input.Label == nil {
		return nil, missing("input.label")
	}
	return h.items.CreateItem(ctx, &itemDTO.CreateItemInput{
		CategoryID: args.Input.CategoryID,
		Label:      *args.Input.Label,
		Value:      args.Input.Value,
	})
}

func (h *Handler) updateItem(ctx context.Context, args *Args) (any, error) {
	if args.Input == nil {
		return nil, missing("input")
	}
	return h.items.UpdateItem(ctx, &itemDTO.UpdateItemInput{
		ID:        args.Input.ID,
		Label:     args.Input.Label,
		Value:     args.Input.Value,
		SortOrder: args.Input.SortOrder,
	})
}

func (h *Handler) deleteItem(ctx context.Context, args *Args) (any, error) {
	if args.ID == nil {
		return nil, missing("id")
	}
	return nil, h.items.DeleteItem(ctx, *args.ID)
}

func (h *Handler) reorderItems(ctx context.Context, args *Args) (any, error) {
	if args.CategoryID == nil {
		return nil, missing("categoryId")
	}
	if args.IDs == nil {
		return nil, missing("ids")
	}
	return nil, h.items.ReorderItems(ctx, *args.CategoryID, args.IDs)
}
