package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/richxcame/route-reviews/internal/reviews"
	"github.com/richxcame/route-reviews/internal/theme"
	apperrors "github.com/richxcame/route-reviews/pkg/errors"
	"github.com/richxcame/route-reviews/pkg/logger"
)

// Update is the single event handler: every keypress, timer and network
// result flows through here on the program goroutine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loadedMsg:
		return m.applyLoaded(msg)

	case submittedMsg:
		return m.applySubmitted(msg)

	case deletedMsg:
		return m.applyDeleted(msg)

	case toastTimeoutMsg:
		// A replaced toast leaves a stale timer behind; only the latest
		// sequence number may dismiss.
		if msg.seq == m.toastSeq {
			m.toast.visible = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) applyLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		apperrors.CaptureError(msg.err)
		toastCmd := m.showToast(requestFailureMessage(msg.err), true)
		return m, toastCmd
	}

	// No generation token: whichever load settles last wins, even if the
	// user already asked for a different route. Known race, kept as-is.
	m.loadedRoute = msg.routeID
	m.list.SetItems(msg.items)
	m.summary = msg.summary
	m.selected = 0
	return m, nil
}

func (m Model) applySubmitted(msg submittedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		// Keep the mode and every field value so the user can retry.
		apperrors.CaptureError(msg.err)
		toastCmd := m.showToast(requestFailureMessage(msg.err), true)
		return m, toastCmd
	}

	var toastCmd tea.Cmd
	if msg.updated {
		m.resetEdit()
		toastCmd = m.showToast("Review updated", false)
	} else {
		toastCmd = m.showToast("Review added", false)
	}
	m.clearDraft()
	m.formErrs = map[string]string{}

	routeID := m.routeIDValue()
	if routeID == 0 {
		return m, toastCmd
	}
	m.loading = true
	return m, tea.Batch(toastCmd, m.loadCmd(routeID))
}

func (m Model) applyDeleted(msg deletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		apperrors.CaptureError(msg.err)
		toastCmd := m.showToast("Delete failed", true)
		return m, toastCmd
	}

	toastCmd := m.showToast("Review deleted", false)
	routeID := m.routeIDValue()
	if routeID == 0 {
		return m, toastCmd
	}
	m.loading = true
	return m, tea.Batch(toastCmd, m.loadCmd(routeID))
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.zone == zoneForm {
		return m.handleFormKey(msg)
	}
	return m.handleListKey(msg)
}

// handleConfirmKey resolves the delete confirmation modal. Cancelling
// issues no request at all.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		pending := *m.confirm
		m.confirm = nil
		return m, m.deleteCmd(pending.id, pending.commuterID)
	case "n", "esc", "q", "ctrl+c":
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return m.moveFocus(1)

	case "shift+tab", "up":
		return m.moveFocus(-1)

	case "enter":
		return m.submit()

	case "esc":
		if m.inEditMode() {
			m.resetEdit()
			m.clearDraft()
			return m, nil
		}
		m.inputs[m.focus].Blur()
		m.zone = zoneList
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// moveFocus cycles the focused input. Leaving the route field with a
// changed value triggers a reload, the terminal analog of reloading on
// route input changes.
func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	leavingRoute := m.focus == idxRouteID

	next := (m.focus + delta + inputCount) % inputCount
	m.setFocus(next)

	if leavingRoute {
		if routeID := m.routeIDValue(); routeID > 0 && routeID != m.loadedRoute {
			m.loading = true
			return m, m.loadCmd(routeID)
		}
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	// The submit control is disabled for the duration of one request
	if m.submitting {
		return m, nil
	}

	values := m.formValues()
	errs := reviews.ValidateForm(values)
	m.formErrs = errs
	if len(errs) > 0 {
		return m, nil
	}

	m.submitting = true
	return m, m.submitCmd(values)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down", "j":
		if m.selected < len(m.list.View().Items)-1 {
			m.selected++
		}
		return m, nil

	case "e":
		if item, ok := m.selectedReview(); ok {
			m.startEdit(item)
			return m, textinput.Blink
		}
		return m, nil

	case "x":
		if item, ok := m.selectedReview(); ok {
			m.confirm = &confirmState{id: item.ID, commuterID: item.CommuterID}
		}
		return m, nil

	case "left", "h", "[":
		if m.list.CanPrev() {
			m.list.Prev()
			m.selected = 0
		}
		return m, nil

	case "right", "l", "]":
		// The control enforces the bound; Next itself never clamps
		if m.list.CanNext() {
			m.list.Next()
			m.selected = 0
		}
		return m, nil

	case "s":
		m.list.SetSort(m.list.Sort().Cycle())
		m.selected = 0
		return m, nil

	case "z":
		m.list.SetPageSize(nextPageSize(m.list.PageSize()))
		m.selected = 0
		return m, nil

	case "t":
		return m.toggleTheme()

	case "r":
		if routeID := m.routeIDValue(); routeID > 0 {
			m.loading = true
			return m, m.loadCmd(routeID)
		}
		return m, nil

	case "tab", "enter", "i", "esc":
		m.zone = zoneForm
		m.setFocus(m.focus)
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.dark = !m.dark
	if m.themes != nil {
		value := theme.Light
		if m.dark {
			value = theme.Dark
		}
		if err := m.themes.Save(value); err != nil {
			logger.Warn("failed to persist theme preference", zap.Error(err))
		}
	}
	return m, nil
}

// nextPageSize cycles through the page size presets
func nextPageSize(current int) int {
	switch current {
	case 10:
		return 20
	case 20:
		return 50
	case 50:
		return 5
	default:
		return 10
	}
}

// requestFailureMessage extracts the server's message when there is one
func requestFailureMessage(err error) string {
	if msg := reviews.ErrorMessage(err); msg != "" {
		return msg
	}
	return "Request failed"
}
