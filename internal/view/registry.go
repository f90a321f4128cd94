package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notebook/internal/notebook"
)

// Registry holds the registered views in tab order and the shared
// context they render through.
type Registry struct {
	ctx   *Context
	views []View
}

// NewRegistry creates a registry bound to ctx.
func NewRegistry(ctx *Context) *Registry {
	return &Registry{ctx: ctx}
}

// Register initializes a view and appends it to the tab order.
func (r *Registry) Register(v View) error {
	if err := v.Init(r.ctx); err != nil {
		return fmt.Errorf("init view %s: %w", v.ID(), err)
	}
	r.views = append(r.views, v)
	return nil
}

// Views returns the registered views in tab order.
func (r *Registry) Views() []View {
	return r.views
}

// Start collects the initial commands of all views.
func (r *Registry) Start() []tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range r.views {
		if cmd := v.Start(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// Stop tears down all views, cancelling their pending timers.
func (r *Registry) Stop() {
	for _, v := range r.views {
		v.Stop()
	}
}

// Reinit replaces the notebook and rebuilds every view's state. Views
// are stopped first so no timer from the old session outlives it, then
// re-initialized and restarted against the new bundle.
func (r *Registry) Reinit(nb *notebook.Notebook) ([]tea.Cmd, error) {
	r.Stop()
	r.ctx.Notebook = nb

	var cmds []tea.Cmd
	for _, v := range r.views {
		if err := v.Init(r.ctx); err != nil {
			return nil, fmt.Errorf("reinit view %s: %w", v.ID(), err)
		}
		if cmd := v.Start(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds, nil
}
