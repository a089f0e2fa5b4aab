package bubbletea_test

import (
	"bytes"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/shirinlakhani/codejudge"
	"github.com/shirinlakhani/codejudge/bubbletea"
	"github.com/shirinlakhani/codejudge/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewCase(id string, score float64, code string) codejudge.ReviewCase {
	return codejudge.ReviewCase{
		Result: codejudge.Result{"score": score, codejudge.InputIDKey: id},
		Code:   code,
	}
}

func TestReviewModel_Init(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewReviewModel([]codejudge.ReviewCase{reviewCase("a", 5, "x = 1")})
	cmd := m.Init()

	assert.Nil(t, cmd, "Init should return nil command")
}

func TestReviewModel_ViewBeforeReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewReviewModel(nil)
	view := m.View()

	assert.Contains(t, view, "Loading", "View should show loading state before WindowSizeMsg")
}

func TestReviewModel_ViewAfterReady(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewReviewModel([]codejudge.ReviewCase{
		reviewCase("sample_one", 5, "x = 1"),
	})
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 40),
	)

	// Wait for the code and the verdict to appear
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("x = 1")) && bytes.Contains(out, []byte("sample_one"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestReviewModel_QuitOnQ(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewReviewModel(nil)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 40),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestReviewModel_Navigation(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewReviewModel([]codejudge.ReviewCase{
		reviewCase("first_case", 5, "first code"),
		reviewCase("second_case", 3, "second code"),
	})
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 40),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("first code"))
	})

	// Navigate to the next case with 'n'
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("second code"))
	})

	// Navigate back with 'N'
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'N'}})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("first code"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}

func TestReviewModel_PassPersistsJudgment(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var saved []codejudge.Judgment
	store := &mock.JudgmentStore{
		SaveFn: func(path string, judgments []codejudge.Judgment) error {
			mu.Lock()
			defer mu.Unlock()
			saved = judgments
			return nil
		},
	}

	m := bubbletea.NewReviewModel(
		[]codejudge.ReviewCase{reviewCase("case_a", 5, "x = 1")},
		bubbletea.WithJudgmentStore(store, "judgments.jsonl"),
	)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 40),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("x = 1"))
	})

	// Mark pass and wait for the judgment bar to reflect it
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("● Pass"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, saved, 1)
	assert.Equal(t, "case_a", saved[0].InputID)
	assert.True(t, saved[0].Judged)
	assert.True(t, saved[0].Pass)
}

func TestReviewModel_ExistingJudgmentsShownInStatusBar(t *testing.T) {
	t.Parallel()

	m := bubbletea.NewReviewModel(
		[]codejudge.ReviewCase{
			reviewCase("a", 5, "code a"),
			reviewCase("b", 1, "code b"),
		},
		bubbletea.WithExistingJudgments([]codejudge.Judgment{
			{InputID: "a", Index: 0, Judged: true, Pass: true},
		}),
	)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 40),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("1/2 reviewed"))
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(0))
}
