// Package tui implements the terminal user interface for browsing and
// writing route reviews. It follows the Model-Update-View pattern: all
// state lives on the Model, events arrive as messages, and network calls
// run as commands so the event loop never blocks.
package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/richxcame/route-reviews/internal/listview"
	"github.com/richxcame/route-reviews/internal/reviews"
	"github.com/richxcame/route-reviews/internal/theme"
)

const (
	idxRouteID = iota
	idxCommuterID
	idxRating
	idxTitle
	idxComment
	inputCount
)

// toastDuration matches the reference client's 2.2s auto-dismiss.
// A variable so tests can shorten it.
var toastDuration = 2200 * time.Millisecond

// zone tracks which part of the screen owns the keyboard
type zone int

const (
	zoneForm zone = iota
	zoneList
)

type toastState struct {
	message string
	isError bool
	visible bool
}

// confirmState is the pending delete awaiting the modal decision
type confirmState struct {
	id         int64
	commuterID int64
}

// Model is the complete UI state: form inputs, list cursor, edit mode,
// toast, confirm modal and theme.
type Model struct {
	client *reviews.Client
	themes *theme.Store

	inputs   []textinput.Model
	focus    int
	zone     zone
	formErrs map[string]string

	list     *listview.State
	summary  *reviews.RatingSummary
	selected int

	// editID and editCommuterID are both nil in create mode and both set
	// in edit mode, never mixed.
	editID         *int64
	editCommuterID *int64

	// loadedRoute is the route currently shown; zero means nothing loaded
	loadedRoute int64

	loading    bool
	submitting bool
	spin       spinner.Model

	toast    toastState
	toastSeq int

	confirm *confirmState

	dark bool

	width  int
	height int
}

// Options configures the initial model
type Options struct {
	Client          *reviews.Client
	ThemeStore      *theme.Store
	DefaultRouteID  int64
	DefaultPageSize int
}

// New creates the initial model
func New(opts Options) Model {
	inputs := make([]textinput.Model, inputCount)

	routeID := textinput.New()
	routeID.Placeholder = "route id"
	routeID.CharLimit = 10
	routeID.Width = 12
	if opts.DefaultRouteID > 0 {
		routeID.SetValue(strconv.FormatInt(opts.DefaultRouteID, 10))
	}
	routeID.Focus()
	inputs[idxRouteID] = routeID

	commuterID := textinput.New()
	commuterID.Placeholder = "commuter id"
	commuterID.CharLimit = 10
	commuterID.Width = 12
	inputs[idxCommuterID] = commuterID

	rating := textinput.New()
	rating.Placeholder = "1-5"
	rating.CharLimit = 1
	rating.Width = 5
	rating.SetValue("5")
	inputs[idxRating] = rating

	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 48
	inputs[idxTitle] = title

	comment := textinput.New()
	comment.Placeholder = "comment (optional)"
	comment.CharLimit = 2100
	comment.Width = 48
	inputs[idxComment] = comment

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	dark := false
	if opts.ThemeStore != nil {
		dark = opts.ThemeStore.Load() == theme.Dark
	}

	return Model{
		client:   opts.Client,
		themes:   opts.ThemeStore,
		inputs:   inputs,
		focus:    idxRouteID,
		zone:     zoneForm,
		formErrs: map[string]string{},
		list:     listview.New(opts.DefaultPageSize),
		spin:     spin,
		dark:     dark,
	}
}

// Init starts the cursor blink, the spinner and, when a default route is
// configured, the first load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spin.Tick}
	if routeID := m.routeIDValue(); routeID > 0 {
		cmds = append(cmds, m.loadCmd(routeID))
	}
	return tea.Batch(cmds...)
}

// inEditMode reports whether a previously selected review is being edited
func (m Model) inEditMode() bool {
	return m.editID != nil && m.editCommuterID != nil
}

func (m Model) routeIDValue() int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(m.inputs[idxRouteID].Value()), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func (m Model) commuterIDValue() int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(m.inputs[idxCommuterID].Value()), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func (m Model) ratingValue() int {
	v, err := strconv.Atoi(strings.TrimSpace(m.inputs[idxRating].Value()))
	if err != nil {
		return 0
	}
	return v
}

// formValues collects the current form fields, trimming free text the way
// the reference client does before validation.
func (m Model) formValues() reviews.FormValues {
	return reviews.FormValues{
		RouteID:    m.routeIDValue(),
		CommuterID: m.commuterIDValue(),
		Rating:     m.ratingValue(),
		Title:      strings.TrimSpace(m.inputs[idxTitle].Value()),
		Comment:    strings.TrimSpace(m.inputs[idxComment].Value()),
	}
}

// startEdit seeds the form from a list item and flips to edit mode
func (m *Model) startEdit(item reviews.Review) {
	id := item.ID
	commuterID := item.CommuterID
	m.editID = &id
	m.editCommuterID = &commuterID

	m.inputs[idxTitle].SetValue(item.Title)
	m.inputs[idxComment].SetValue(item.Comment)
	m.inputs[idxRating].SetValue(strconv.Itoa(item.Rating))

	m.zone = zoneForm
	m.setFocus(idxTitle)
}

// resetEdit returns to create mode. The title and comment fields are left
// to clearDraft; rating and the id fields keep their values.
func (m *Model) resetEdit() {
	m.editID = nil
	m.editCommuterID = nil
}

// clearDraft empties the free-text fields after a successful submit or an
// explicit cancel.
func (m *Model) clearDraft() {
	m.inputs[idxTitle].SetValue("")
	m.inputs[idxComment].SetValue("")
}

func (m *Model) setFocus(idx int) {
	m.focus = idx
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// selectedReview returns the highlighted card on the visible page
func (m Model) selectedReview() (reviews.Review, bool) {
	page := m.list.View()
	if len(page.Items) == 0 {
		return reviews.Review{}, false
	}
	idx := m.selected
	if idx < 0 || idx >= len(page.Items) {
		idx = 0
	}
	return page.Items[idx], true
}

// submitLabel mirrors the submit button text of the reference client
func (m Model) submitLabel() string {
	if m.submitting {
		if m.inEditMode() {
			return "Updating…"
		}
		return "Submitting…"
	}
	if m.inEditMode() {
		return "Update Review"
	}
	return "Submit Review"
}
