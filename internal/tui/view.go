package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/richxcame/route-reviews/internal/reviews"
)

type styles struct {
	title         lipgloss.Style
	summary       lipgloss.Style
	label         lipgloss.Style
	fieldError    lipgloss.Style
	submit        lipgloss.Style
	submitBusy    lipgloss.Style
	card          lipgloss.Style
	cardSelected  lipgloss.Style
	cardTitle     lipgloss.Style
	muted         lipgloss.Style
	pager         lipgloss.Style
	pagerDisabled lipgloss.Style
	toast         lipgloss.Style
	toastError    lipgloss.Style
	modal         lipgloss.Style
	help          lipgloss.Style
}

func newStyles(dark bool) styles {
	var (
		text   = lipgloss.Color("#111827")
		subtle = lipgloss.Color("#6b7280")
		accent = lipgloss.Color("#2563eb")
		danger = lipgloss.Color("#b91c1c")
		border = lipgloss.Color("#d1d5db")
	)
	if dark {
		text = lipgloss.Color("#e5e7eb")
		subtle = lipgloss.Color("#9ca3af")
		accent = lipgloss.Color("#60a5fa")
		danger = lipgloss.Color("#f87171")
		border = lipgloss.Color("#374151")
	}

	base := lipgloss.NewStyle().Foreground(text)
	cardBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return styles{
		title:         base.Bold(true).Foreground(accent),
		summary:       base,
		label:         lipgloss.NewStyle().Foreground(subtle),
		fieldError:    lipgloss.NewStyle().Foreground(danger),
		submit:        base.Bold(true).Foreground(accent),
		submitBusy:    lipgloss.NewStyle().Foreground(subtle),
		card:          cardBox,
		cardSelected:  cardBox.BorderForeground(accent),
		cardTitle:     base.Bold(true),
		muted:         lipgloss.NewStyle().Foreground(subtle),
		pager:         base,
		pagerDisabled: lipgloss.NewStyle().Foreground(subtle),
		toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f9fafb")).
			Background(lipgloss.Color("#111827")).
			Padding(0, 1),
		toastError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f9fafb")).
			Background(danger).
			Padding(0, 1),
		modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(danger).
			Padding(1, 2),
		help: lipgloss.NewStyle().Foreground(subtle),
	}
}

// View renders the whole screen from the current model state
func (m Model) View() string {
	st := newStyles(m.dark)

	sections := []string{
		m.viewHeader(st),
		m.viewForm(st),
		m.viewList(st),
		m.viewPager(st),
		m.viewHelp(st),
	}

	if m.confirm != nil {
		sections = append(sections, m.viewConfirm(st))
	}
	if m.toast.visible {
		style := st.toast
		if m.toast.isError {
			style = st.toastError
		}
		sections = append(sections, style.Render(m.toast.message))
	}

	return strings.Join(sections, "\n") + "\n"
}

func (m Model) viewHeader(st styles) string {
	mode := "light"
	if m.dark {
		mode = "dark"
	}
	header := st.title.Render("Route Reviews") + " " + st.muted.Render("("+mode+")")

	summary := st.muted.Render("No summary yet")
	if m.summary != nil {
		summary = st.summary.Render(fmt.Sprintf("Average: %.1f (%d reviews)",
			m.summary.AverageRating, m.summary.TotalReviews))
	}
	if m.loading {
		summary += " " + m.spin.View() + st.muted.Render("loading")
	}

	return header + "\n" + summary
}

func (m Model) viewForm(st styles) string {
	labels := [inputCount]string{"Route", "Commuter", "Rating", "Title", "Comment"}
	fieldKeys := [inputCount]string{"routeId", "commuterId", "rating", "title", "comment"}

	var rows []string
	for i := 0; i < inputCount; i++ {
		row := st.label.Render(fmt.Sprintf("%-9s", labels[i])) + m.inputs[i].View()
		if msg, ok := m.formErrs[fieldKeys[i]]; ok {
			row += "  " + st.fieldError.Render(msg)
		}
		rows = append(rows, row)
	}

	submit := st.submit.Render("[ " + m.submitLabel() + " ]")
	if m.submitting {
		submit = st.submitBusy.Render("[ " + m.submitLabel() + " ]")
	}
	if m.inEditMode() {
		submit += "  " + st.muted.Render("esc: cancel edit")
	}
	rows = append(rows, submit)

	return strings.Join(rows, "\n")
}

func (m Model) viewList(st styles) string {
	page := m.list.View()
	if page.Empty {
		return st.muted.Render("No reviews yet.")
	}

	var cards []string
	for i, item := range page.Items {
		style := st.card
		if m.zone == zoneList && i == m.selected {
			style = st.cardSelected
		}
		cards = append(cards, style.Render(m.renderCard(st, item)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) renderCard(st styles, item reviews.Review) string {
	lines := []string{
		st.cardTitle.Render(fmt.Sprintf("%d* - %s", item.Rating, item.Title)),
	}
	if item.Comment != "" {
		lines = append(lines, item.Comment)
	}
	lines = append(lines, st.muted.Render(fmt.Sprintf("Route %d | Commuter %d | %s",
		item.RouteID, item.CommuterID, item.CreatedAt.Local().Format("2006-01-02 15:04"))))
	return strings.Join(lines, "\n")
}

func (m Model) viewPager(st styles) string {
	page := m.list.View()

	prev := st.pagerDisabled.Render("<- prev")
	if m.list.CanPrev() {
		prev = st.pager.Render("<- prev")
	}
	next := st.pagerDisabled.Render("next ->")
	if m.list.CanNext() {
		next = st.pager.Render("next ->")
	}

	info := st.pager.Render(fmt.Sprintf(" %d / %d ", page.PageNumber, page.TotalPages))
	sorted := st.muted.Render(fmt.Sprintf("  sort: %s  size: %d", m.list.Sort().Label(), m.list.PageSize()))

	return prev + info + next + sorted
}

func (m Model) viewHelp(st styles) string {
	if m.zone == zoneForm {
		return st.help.Render("tab: next field  enter: submit  esc: list  ctrl+c: quit")
	}
	return st.help.Render("j/k: select  e: edit  x: delete  [/]: page  s: sort  z: size  t: theme  r: reload  i: form  q: quit")
}

func (m Model) viewConfirm(st styles) string {
	return st.modal.Render("Delete this review?\n\ny: delete    n: keep")
}
