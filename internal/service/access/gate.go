package access

import (
	"context"
	"errors"
	"fmt"
)

type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

var (
	ErrWrongPassword = errors.New("wrong password")
	ErrNoPrompt      = errors.New("no pending action")
	ErrUnknownAction = errors.New("unknown action")
	ErrNoMutator     = errors.New("no log mutator")
)

// LogMutator performs the actual change once the gate is passed.
type LogMutator interface {
	DeleteWorkLog(ctx context.Context, orderID, logID string) error
	UpdateWorkLog(ctx context.Context, orderID, logID string, hours float64, note string) error
}

// Gate checks the admin password before a log may be edited or deleted.
// BypassCode is accepted regardless of AdminPassword. Attempts are not
// counted or limited.
type Gate struct {
	AdminPassword string
	BypassCode    string
}

func NewGate(adminPassword, bypassCode string) *Gate {
	return &Gate{AdminPassword: adminPassword, BypassCode: bypassCode}
}

// Verify accepts the bypass code or the admin password. An unset admin
// password never matches, not even an empty input.
func (g *Gate) Verify(input string) bool {
	if g.BypassCode != "" && input == g.BypassCode {
		return true
	}
	return g.AdminPassword != "" && input == g.AdminPassword
}

// Prompt is a pending edit or delete waiting for the password.
type Prompt struct {
	gate *Gate

	Action  Action
	OrderID string
	LogID   string
	open    bool
}

type Result struct {
	Action Action
	// EditingLogID is set when an edit was unlocked.
	EditingLogID string
}

func (g *Gate) Request(action Action, orderID, logID string) (*Prompt, error) {
	if action != ActionEdit && action != ActionDelete {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	return &Prompt{gate: g, Action: action, OrderID: orderID, LogID: logID, open: true}, nil
}

func (p *Prompt) Open() bool {
	return p != nil && p.open
}

// Submit checks input. A wrong password leaves the prompt open for another
// try. On success a delete is dispatched to m, an edit only unlocks the log
// for editing. The prompt is closed in both cases.
func (p *Prompt) Submit(ctx context.Context, input string, m LogMutator) (Result, error) {
	const op = "service.access.Submit"

	if !p.Open() {
		return Result{}, ErrNoPrompt
	}

	if !p.gate.Verify(input) {
		return Result{}, ErrWrongPassword
	}

	p.open = false
	res := Result{Action: p.Action}

	switch p.Action {
	case ActionDelete:
		if m == nil {
			return res, nil
		}
		if err := m.DeleteWorkLog(ctx, p.OrderID, p.LogID); err != nil {
			return res, fmt.Errorf("%s: delete log %s: %w", op, p.LogID, err)
		}
	case ActionEdit:
		res.EditingLogID = p.LogID
	}

	return res, nil
}

// Edit is the one-shot form used by the HTTP layer: unlock the log and
// write the new hours and note. m must not be nil.
func (g *Gate) Edit(ctx context.Context, input, orderID, logID string, hours float64, note string, m LogMutator) error {
	const op = "service.access.Edit"

	if m == nil {
		return fmt.Errorf("%s: %w", op, ErrNoMutator)
	}

	p, err := g.Request(ActionEdit, orderID, logID)
	if err != nil {
		return err
	}

	res, err := p.Submit(ctx, input, m)
	if err != nil {
		return err
	}

	if err := m.UpdateWorkLog(ctx, orderID, res.EditingLogID, hours, note); err != nil {
		return fmt.Errorf("%s: update log %s: %w", op, logID, err)
	}

	return nil
}

// Delete is the one-shot delete. m must not be nil.
func (g *Gate) Delete(ctx context.Context, input, orderID, logID string, m LogMutator) error {
	const op = "service.access.Delete"

	if m == nil {
		return fmt.Errorf("%s: %w", op, ErrNoMutator)
	}

	p, err := g.Request(ActionDelete, orderID, logID)
	if err != nil {
		return err
	}

	_, err = p.Submit(ctx, input, m)
	return err
}
