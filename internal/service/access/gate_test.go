package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLogMutator struct {
	mock.Mock
}

func (m *MockLogMutator) DeleteWorkLog(ctx context.Context, orderID, logID string) error {
	args := m.Called(ctx, orderID, logID)
	return args.Error(0)
}

func (m *MockLogMutator) UpdateWorkLog(ctx context.Context, orderID, logID string, hours float64, note string) error {
	args := m.Called(ctx, orderID, logID, hours, note)
	return args.Error(0)
}

func TestGate_Verify(t *testing.T) {
	tests := []struct {
		name  string
		admin string
		input string
		ok    bool
	}{
		{"bypass code", "geheim", "1111", true},
		{"bypass code without admin password", "", "1111", true},
		{"admin password", "geheim", "geheim", true},
		{"wrong password", "geheim", "gehiem", false},
		{"empty input", "geheim", "", false},
		{"empty input and empty admin password", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(tt.admin, "1111")
			assert.Equal(t, tt.ok, g.Verify(tt.input))
		})
	}
}

func TestPrompt_DeleteDispatchesAndCloses(t *testing.T) {
	m := new(MockLogMutator)
	m.On("DeleteWorkLog", mock.Anything, "o1", "l1").Return(nil).Once()

	p, err := NewGate("geheim", "1111").Request(ActionDelete, "o1", "l1")
	require.NoError(t, err)
	require.True(t, p.Open())

	res, err := p.Submit(context.Background(), "geheim", m)
	require.NoError(t, err)
	assert.Equal(t, ActionDelete, res.Action)
	assert.Empty(t, res.EditingLogID)
	assert.False(t, p.Open())

	_, err = p.Submit(context.Background(), "geheim", m)
	assert.ErrorIs(t, err, ErrNoPrompt)

	m.AssertExpectations(t)
}

func TestPrompt_WrongPasswordKeepsPromptOpen(t *testing.T) {
	m := new(MockLogMutator)
	m.On("DeleteWorkLog", mock.Anything, "o1", "l1").Return(nil).Once()

	p, err := NewGate("geheim", "1111").Request(ActionDelete, "o1", "l1")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := p.Submit(context.Background(), "fout", m)
		assert.ErrorIs(t, err, ErrWrongPassword)
		assert.True(t, p.Open())
	}
	m.AssertNotCalled(t, "DeleteWorkLog", mock.Anything, mock.Anything, mock.Anything)

	_, err = p.Submit(context.Background(), "1111", m)
	require.NoError(t, err)
	m.AssertExpectations(t)
}

func TestPrompt_EditUnlocksWithoutMutation(t *testing.T) {
	m := new(MockLogMutator)

	p, err := NewGate("geheim", "1111").Request(ActionEdit, "o1", "l7")
	require.NoError(t, err)

	res, err := p.Submit(context.Background(), "1111", m)
	require.NoError(t, err)
	assert.Equal(t, "l7", res.EditingLogID)
	assert.False(t, p.Open())

	m.AssertNotCalled(t, "UpdateWorkLog", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.AssertNotCalled(t, "DeleteWorkLog", mock.Anything, mock.Anything, mock.Anything)
}

func TestPrompt_DeleteError(t *testing.T) {
	m := new(MockLogMutator)
	m.On("DeleteWorkLog", mock.Anything, "o1", "l1").Return(errors.New("db down"))

	p, _ := NewGate("geheim", "1111").Request(ActionDelete, "o1", "l1")
	_, err := p.Submit(context.Background(), "geheim", m)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.False(t, p.Open())
}

func TestGate_RequestUnknownAction(t *testing.T) {
	_, err := NewGate("geheim", "1111").Request("archive", "o1", "l1")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestGate_Edit(t *testing.T) {
	m := new(MockLogMutator)
	m.On("UpdateWorkLog", mock.Anything, "o1", "l1", 6.5, "na controle").Return(nil).Once()

	g := NewGate("geheim", "1111")

	err := g.Edit(context.Background(), "fout", "o1", "l1", 6.5, "na controle", m)
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = g.Edit(context.Background(), "geheim", "o1", "l1", 6.5, "na controle", m)
	require.NoError(t, err)

	m.AssertExpectations(t)
}

func TestGate_Delete(t *testing.T) {
	m := new(MockLogMutator)
	m.On("DeleteWorkLog", mock.Anything, "o2", "l9").Return(nil).Once()

	g := NewGate("", "1111")

	assert.ErrorIs(t, g.Delete(context.Background(), "", "o2", "l9", m), ErrWrongPassword)
	require.NoError(t, g.Delete(context.Background(), "1111", "o2", "l9", m))

	m.AssertExpectations(t)
}

func TestGate_NilMutator(t *testing.T) {
	g := NewGate("geheim", "1111")

	assert.NotPanics(t, func() {
		err := g.Edit(context.Background(), "geheim", "o1", "l1", 4, "", nil)
		assert.ErrorIs(t, err, ErrNoMutator)
	})
	assert.NotPanics(t, func() {
		err := g.Delete(context.Background(), "geheim", "o1", "l1", nil)
		assert.ErrorIs(t, err, ErrNoMutator)
	})
}

// An unset admin password would accept an empty input if compared
// literally. Only the bypass code opens the gate until one is configured.
func TestGate_EmptyAdminPasswordRejectsEmptyInput(t *testing.T) {
	g := NewGate("", "1111")

	assert.False(t, g.Verify(""))

	p, err := g.Request(ActionDelete, "o1", "l1")
	require.NoError(t, err)

	m := new(MockLogMutator)
	_, err = p.Submit(context.Background(), "", m)
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.True(t, p.Open())
	m.AssertNotCalled(t, "DeleteWorkLog", mock.Anything, mock.Anything, mock.Anything)

	_, err = p.Submit(context.Background(), "1111", nil)
	assert.NoError(t, err)
	assert.False(t, p.Open())
}
