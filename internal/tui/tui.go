// Package tui provides the Bubble Tea interface for the colorimetry client:
// a history browser with preview and download, and a capture results view.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jakditstudio/coloGAMA/internal/api"
	"github.com/jakditstudio/coloGAMA/internal/config"
	"github.com/jakditstudio/coloGAMA/internal/download"
	"github.com/jakditstudio/coloGAMA/internal/history"
	"github.com/jakditstudio/coloGAMA/internal/imgview"
	"github.com/jakditstudio/coloGAMA/internal/lastcapture"
	"github.com/jakditstudio/coloGAMA/internal/pdfview"
	"github.com/jakditstudio/coloGAMA/internal/view"
)

// ── Styles ────────────

var (
	// Title bar at the very top
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	// Active filter tab: bright
	activeFilterStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	// Inactive filter tab: muted
	inactiveFilterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	// Separator between filter tabs
	filterSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Background(lipgloss.Color("235"))

	// Section heading inside a view
	sectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	typePDFStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	typeImageStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	typeHistogramStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)

	channelRedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	channelGreenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	channelBlueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	// Selected row in the record list
	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("237"))
)

// ── Screens ─────────────────

type screenID int

const (
	screenBrowser screenID = iota
	screenResults
)

// ── Messages ───────────────────

type historyLoadedMsg struct{ records []history.Record }

type historyFailedMsg struct{ err error }

type captureDoneMsg struct{ session *api.CaptureSession }

type captureFailedMsg struct{ err error }

// recordID ties a preview load back to the selection that requested it so a
// completion can never overwrite state belonging to a newer selection.
type pdfLoadedMsg struct {
	recordID string
	doc      *pdfview.Document
}

type pdfFailedMsg struct {
	recordID string
	err      error
}

type imageLoadedMsg struct {
	recordID string
	rendered string
}

type imageFailedMsg struct {
	recordID string
	err      error
}

// sessionID ties a capture image load to the session that requested it, the
// same stale-completion guard the record previews use.
type captureImageLoadedMsg struct {
	sessionID string
	index     int
	rendered  string
}

type captureImageFailedMsg struct {
	sessionID string
	index     int
	err       error
}

type downloadDoneMsg struct{ path string }

type downloadFailedMsg struct{ err error }

type openedExternalMsg struct{ err error }

// ── Model ────────────────────

// Model is the root Bubble Tea model.
type Model struct {
	client *api.Client
	cfg    config.Config
	store  lastcapture.Store

	width  int
	height int
	ready  bool

	screen screenID

	// History browser state. records is the normalized collection, written
	// only by history load completions.
	records        []history.Record
	loadingHistory bool
	historyErr     string

	view    *view.State
	preview *view.Preview
	cursor  int

	// Preview resources for the currently selected record.
	doc        *pdfview.Document
	imageANSI  string
	previewErr string

	// Capture state, written only by capture completions.
	session         *api.CaptureSession
	capturing       bool
	captureErr      string
	selectedCapture int

	// Rendered capture image previews keyed by capture index, replaced
	// together with the session they belong to.
	captureImages    map[int]string
	captureImageErrs map[int]string

	status string // transient status line (downloads, external viewer)

	viewport viewport.Model
}

// New creates the root model. If a stored capture session exists it is made
// available to the results view immediately.
func New(client *api.Client, cfg config.Config, store lastcapture.Store, initial screenID) Model {
	m := Model{
		client:           client,
		cfg:              cfg,
		store:            store,
		screen:           initial,
		view:             view.NewState(),
		preview:          view.NewPreview(),
		loadingHistory:   true, // Init always kicks off a fetch
		captureImages:    make(map[int]string),
		captureImageErrs: make(map[int]string),
	}
	if store != nil {
		if s, err := store.Load(); err == nil {
			m.session = s
		}
	}
	return m
}

// ── Commands ───────────────

func loadHistoryCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		listing, err := client.History(context.Background())
		if err != nil {
			return historyFailedMsg{err: err}
		}
		return historyLoadedMsg{records: history.Normalize(*listing, time.Now())}
	}
}

func captureCmd(client *api.Client, store lastcapture.Store) tea.Cmd {
	return func() tea.Msg {
		session, err := client.Capture(context.Background())
		if err != nil {
			return captureFailedMsg{err: err}
		}
		if store != nil {
			// Persistence is best-effort; the in-memory session is the result.
			_ = store.Save(session)
		}
		return captureDoneMsg{session: session}
	}
}

func loadPDFCmd(client *api.Client, rec history.Record) tea.Cmd {
	return func() tea.Msg {
		data, err := client.Fetch(context.Background(), rec.URL)
		if err != nil {
			return pdfFailedMsg{recordID: rec.ID, err: err}
		}
		doc, err := pdfview.Load(data)
		if err != nil {
			return pdfFailedMsg{recordID: rec.ID, err: err}
		}
		return pdfLoadedMsg{recordID: rec.ID, doc: doc}
	}
}

func loadImageCmd(client *api.Client, rec history.Record, cols, rows int) tea.Cmd {
	return func() tea.Msg {
		data, err := client.Fetch(context.Background(), rec.URL)
		if err != nil {
			return imageFailedMsg{recordID: rec.ID, err: err}
		}
		rendered, err := imgview.Render(data, cols, rows)
		if err != nil {
			return imageFailedMsg{recordID: rec.ID, err: err}
		}
		return imageLoadedMsg{recordID: rec.ID, rendered: rendered}
	}
}

func loadCaptureImageCmd(client *api.Client, session *api.CaptureSession, index, cols, rows int) tea.Cmd {
	url := session.Captures[index].ImageURL
	return func() tea.Msg {
		data, err := client.Fetch(context.Background(), url)
		if err != nil {
			return captureImageFailedMsg{sessionID: session.ID, index: index, err: err}
		}
		rendered, err := imgview.Render(data, cols, rows)
		if err != nil {
			return captureImageFailedMsg{sessionID: session.ID, index: index, err: err}
		}
		return captureImageLoadedMsg{sessionID: session.ID, index: index, rendered: rendered}
	}
}

func downloadCmd(client *api.Client, rec history.Record, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := download.Save(context.Background(), client, rec, dir)
		if err != nil {
			return downloadFailedMsg{err: err}
		}
		return downloadDoneMsg{path: path}
	}
}

func openExternalCmd(url string) tea.Cmd {
	return func() tea.Msg {
		return openedExternalMsg{err: openExternal(url)}
	}
}

// ── Bubble Tea interface ───────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadHistoryCmd(m.client), m.captureImageCmd())
}

// captureImageCmd kicks off a preview load for the selected capture unless
// it is already rendered, already failed, or has no image.
func (m Model) captureImageCmd() tea.Cmd {
	if m.client == nil || m.session == nil {
		return nil
	}
	i := m.selectedCapture
	if i >= len(m.session.Captures) || m.session.Captures[i].ImageURL == "" {
		return nil
	}
	if _, ok := m.captureImages[i]; ok {
		return nil
	}
	if _, ok := m.captureImageErrs[i]; ok {
		return nil
	}
	cols := m.width - 12
	if cols < 4 {
		cols = 4
	}
	if cols > 48 {
		cols = 48
	}
	return loadCaptureImageCmd(m.client, m.session, i, cols, 8)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.initViewport()
		return m, nil

	case historyLoadedMsg:
		m.loadingHistory = false
		m.historyErr = ""
		m.records = msg.records
		// A fresh collection invalidates any selection into the old one.
		m.clearPreview()
		m.cursor = 0
		m.rebuildContent()
		return m, nil

	case historyFailedMsg:
		m.loadingHistory = false
		m.records = nil
		m.historyErr = "Failed to load history"
		m.clearPreview()
		m.cursor = 0
		m.rebuildContent()
		return m, nil

	case captureDoneMsg:
		m.capturing = false
		m.captureErr = ""
		m.session = msg.session
		m.selectedCapture = 0
		m.captureImages = make(map[int]string)
		m.captureImageErrs = make(map[int]string)
		m.screen = screenResults
		m.rebuildContent()
		return m, m.captureImageCmd()

	case captureFailedMsg:
		// Busy flag clears on every completion path; the prior session, if
		// any, stays untouched.
		m.capturing = false
		m.captureErr = "Capture failed: " + msg.err.Error()
		m.rebuildContent()
		return m, nil

	case pdfLoadedMsg:
		if sel := m.view.Selected(); sel == nil || sel.ID != msg.recordID {
			return m, nil // stale completion for a cleared selection
		}
		m.doc = msg.doc
		m.preview.PrimaryLoaded(msg.doc.PageCount)
		m.rebuildContent()
		return m, nil

	case pdfFailedMsg:
		if sel := m.view.Selected(); sel == nil || sel.ID != msg.recordID {
			return m, nil
		}
		// Automatic graceful degradation: the document stays viewable in
		// the external viewer even when the primary renderer cannot parse it.
		m.preview.PrimaryFailed()
		m.rebuildContent()
		if sel := m.view.Selected(); sel != nil {
			return m, openExternalCmd(m.client.Resolve(sel.URL))
		}
		return m, nil

	case imageLoadedMsg:
		if sel := m.view.Selected(); sel == nil || sel.ID != msg.recordID {
			return m, nil
		}
		m.imageANSI = msg.rendered
		m.rebuildContent()
		return m, nil

	case imageFailedMsg:
		if sel := m.view.Selected(); sel == nil || sel.ID != msg.recordID {
			return m, nil
		}
		m.previewErr = msg.err.Error()
		m.rebuildContent()
		return m, nil

	case captureImageLoadedMsg:
		if m.session == nil || m.session.ID != msg.sessionID {
			return m, nil
		}
		m.captureImages[msg.index] = msg.rendered
		m.rebuildContent()
		return m, nil

	case captureImageFailedMsg:
		if m.session == nil || m.session.ID != msg.sessionID {
			return m, nil
		}
		m.captureImageErrs[msg.index] = msg.err.Error()
		m.rebuildContent()
		return m, nil

	case downloadDoneMsg:
		m.status = "Saved " + msg.path
		m.rebuildContent()
		return m, nil

	case downloadFailedMsg:
		m.status = "Download failed: " + msg.err.Error()
		m.rebuildContent()
		return m, nil

	case openedExternalMsg:
		if msg.err != nil {
			m.status = "Could not open system viewer: " + msg.err.Error()
		} else {
			m.status = "Opened in system viewer"
		}
		m.rebuildContent()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "c":
		if m.capturing {
			return m, nil
		}
		m.capturing = true
		m.captureErr = ""
		m.rebuildContent()
		return m, captureCmd(m.client, m.store)
	}

	if m.screen == screenResults {
		return m.handleResultsKey(msg)
	}
	return m.handleBrowserKey(msg)
}

func (m Model) handleBrowserKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.view.Visible(m.records)

	switch msg.String() {
	case "r":
		if !m.loadingHistory {
			m.loadingHistory = true
			m.status = ""
			m.rebuildContent()
			return m, loadHistoryCmd(m.client)
		}

	case "tab", "f":
		m.view.CycleFilter()
		m.closePreviewResources()
		m.cursor = 0
		m.rebuildContent()

	case "1", "2", "3", "4":
		m.view.SetFilter(view.Filters[msg.String()[0]-'1'])
		m.closePreviewResources()
		m.cursor = 0
		m.rebuildContent()

	case "up", "k":
		if m.preview.Mode() == view.Closed && m.cursor > 0 {
			m.cursor--
			m.rebuildContent()
			return m, nil
		}

	case "down", "j":
		if m.preview.Mode() == view.Closed && m.cursor < len(visible)-1 {
			m.cursor++
			m.rebuildContent()
			return m, nil
		}

	case "enter", " ":
		if m.preview.Mode() == view.Closed && m.cursor < len(visible) {
			return m.openPreview(visible[m.cursor])
		}

	case "esc":
		if m.preview.Mode() != view.Closed {
			m.clearPreview()
			m.rebuildContent()
			return m, nil
		}

	case "v":
		if m.preview.Mode() == view.PreviewingPdfPrimary || m.preview.Mode() == view.PreviewingPdfFallback {
			m.preview.ToggleViewer()
			m.rebuildContent()
			if m.preview.Mode() == view.PreviewingPdfFallback {
				if sel := m.view.Selected(); sel != nil {
					return m, openExternalCmd(m.client.Resolve(sel.URL))
				}
			} else if sel := m.view.Selected(); sel != nil {
				// Back to the primary renderer: reload unless still cached.
				if m.doc != nil {
					m.preview.PrimaryLoaded(m.doc.PageCount)
					m.rebuildContent()
					return m, nil
				}
				return m, loadPDFCmd(m.client, *sel)
			}
		}

	case "left", "h":
		m.preview.PrevPage()
		m.rebuildContent()

	case "right", "l":
		m.preview.NextPage()
		m.rebuildContent()

	case "d":
		if m.cursor < len(visible) {
			rec := visible[m.cursor]
			m.status = "Downloading " + rec.Name + "…"
			m.rebuildContent()
			return m, downloadCmd(m.client, rec, m.cfg.DownloadDir)
		}

	case "x":
		if m.session != nil {
			m.screen = screenResults
			m.rebuildContent()
			return m, m.captureImageCmd()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "x":
		m.screen = screenBrowser
		m.rebuildContent()
		return m, nil

	case "left", "h":
		if m.selectedCapture > 0 {
			m.selectedCapture--
			m.rebuildContent()
			return m, m.captureImageCmd()
		}
		return m, nil

	case "right", "l":
		if m.session != nil && m.selectedCapture < len(m.session.Captures)-1 {
			m.selectedCapture++
			m.rebuildContent()
			return m, m.captureImageCmd()
		}
		return m, nil

	case "d":
		if m.session != nil && m.session.PDFURL != "" {
			rec := history.Record{
				ID:   "capture-pdf",
				Type: history.TypePDF,
				Name: baseName(m.session.PDFURL),
				URL:  m.session.PDFURL,
			}
			m.status = "Downloading " + rec.Name + "…"
			m.rebuildContent()
			return m, downloadCmd(m.client, rec, m.cfg.DownloadDir)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// openPreview selects a record and kicks off the matching preview load.
func (m Model) openPreview(rec history.Record) (tea.Model, tea.Cmd) {
	m.view.Select(rec)
	m.preview.Open(rec)
	m.doc = nil
	m.imageANSI = ""
	m.previewErr = ""
	m.rebuildContent()

	if rec.Type == history.TypePDF {
		return m, loadPDFCmd(m.client, rec)
	}
	cols := m.width - 8
	rows := m.contentHeight() - 6
	if cols < 4 {
		cols = 4
	}
	if rows < 2 {
		rows = 2
	}
	return m, loadImageCmd(m.client, rec, cols, rows)
}

// clearPreview closes the preview and drops its selection and resources.
func (m *Model) clearPreview() {
	m.view.ClearSelection()
	m.closePreviewResources()
}

// closePreviewResources resets the preview controller and loaded renderer
// output. The selection itself is managed by the view state (filter changes
// clear it there).
func (m *Model) closePreviewResources() {
	m.preview.Close()
	m.doc = nil
	m.imageANSI = ""
	m.previewErr = ""
}

// ── View ───────────────

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	title := titleStyle.Width(m.width).Render("  coloGAMA  colorimetry client")

	filterRow := m.renderFilterRow()

	content := m.viewport.View()

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, title, filterRow, content, statusBar)
}

func (m Model) renderFilterRow() string {
	labels := map[view.Filter]string{
		view.FilterAll:       "All",
		view.FilterPDF:       "PDF",
		view.FilterImage:     "Images",
		view.FilterHistogram: "Histograms",
	}
	var parts []string
	for i, f := range view.Filters {
		label := fmt.Sprintf(" %d %s ", i+1, labels[f])
		if m.screen == screenBrowser && f == m.view.Filter() {
			parts = append(parts, activeFilterStyle.Render(label))
		} else {
			parts = append(parts, inactiveFilterStyle.Render(label))
		}
		if i < len(view.Filters)-1 {
			parts = append(parts, filterSepStyle.Render("│"))
		}
	}
	if m.screen == screenResults {
		parts = append(parts, filterSepStyle.Render("│"))
		parts = append(parts, activeFilterStyle.Render(" Results "))
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Width(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func (m Model) renderStatusBar() string {
	var hint string
	switch {
	case m.screen == screenResults:
		hint = "  ←/→ capture  d save pdf  c recapture  esc history  q quit"
	case m.preview.Mode() == view.PreviewingPdfPrimary:
		hint = "  ←/→ page  v viewer mode  esc close  q quit"
	case m.preview.Mode() == view.PreviewingPdfFallback:
		hint = "  v viewer mode  esc close  q quit"
	case m.preview.Mode() == view.PreviewingImage:
		hint = "  esc close  d download  q quit"
	default:
		hint = "  ↑/↓ select  enter preview  d download  f filter  c capture  r refresh  q quit"
	}

	right := m.status
	switch {
	case m.capturing:
		right = "capturing…"
	case m.loadingHistory:
		right = "loading…"
	}

	pad := m.width - lipgloss.Width(hint) - lipgloss.Width(right) - 2
	if pad < 1 {
		pad = 1
	}
	return statusBarStyle.Width(m.width).Render(hint + strings.Repeat(" ", pad) + right)
}

// ── Viewport management ───────────────────────────────────────────────────────

func (m Model) contentHeight() int {
	// title(1) + filterRow(1) + statusBar(1) = 3 fixed rows
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) initViewport() {
	vp := viewport.New(m.width, m.contentHeight())
	vp.SetContent(m.renderContent())
	m.viewport = vp
}

func (m *Model) rebuildContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderContent())
}

// ── Content renderers ─────────────────────────────────────────────────────────

func (m *Model) renderContent() string {
	if m.screen == screenResults {
		return m.renderResults()
	}
	if m.preview.Mode() != view.Closed {
		return m.renderPreview()
	}
	return m.renderList()
}

func heading(s string) string {
	return "\n" + sectionHeader.Render("  "+s) + "\n\n"
}

func typeBadge(t history.Type) string {
	switch t {
	case history.TypePDF:
		return typePDFStyle.Render("[PDF ]")
	case history.TypeImage:
		return typeImageStyle.Render("[IMG ]")
	default:
		return typeHistogramStyle.Render("[HIST]")
	}
}

func (m *Model) renderList() string {
	var sb strings.Builder
	visible := m.view.Visible(m.records)
	sb.WriteString(heading(fmt.Sprintf("Saved Reports (%d)", len(visible))))

	if m.historyErr != "" {
		sb.WriteString(errorStyle.Render("  "+m.historyErr) + "\n")
		return sb.String()
	}
	if m.loadingHistory && len(m.records) == 0 {
		sb.WriteString(dimStyle.Render("  loading history…") + "\n")
		return sb.String()
	}
	if len(visible) == 0 {
		// Empty result for the active filter is a display state, not an error.
		sb.WriteString(dimStyle.Render("  No files found") + "\n")
		return sb.String()
	}

	now := time.Now()
	for i, rec := range visible {
		when := timeStyle.Render(fmt.Sprintf("%-12s", history.RelativeDate(rec.Timestamp, now)))
		row := fmt.Sprintf("  %s  %s  %s", typeBadge(rec.Type), when, rec.Name)
		if i == m.cursor {
			row = selectedRowStyle.Width(m.width - 2).Render(row)
		}
		sb.WriteString(row + "\n")
	}
	return sb.String()
}

func (m *Model) renderPreview() string {
	sel := m.view.Selected()
	if sel == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(heading(sel.Name))

	switch m.preview.Mode() {
	case view.PreviewingImage:
		switch {
		case m.previewErr != "":
			sb.WriteString(errorStyle.Render("  Preview failed: "+m.previewErr) + "\n")
		case m.imageANSI == "":
			sb.WriteString(dimStyle.Render("  loading image…") + "\n")
		default:
			sb.WriteString(indent(m.imageANSI, "    ") + "\n")
		}

	case view.PreviewingPdfPrimary:
		if m.doc == nil {
			sb.WriteString(dimStyle.Render("  loading document…") + "\n")
			break
		}
		sb.WriteString(labelStyle.Render(fmt.Sprintf("  Page %d of %d", m.preview.Page(), m.preview.TotalPages())) + "\n\n")
		text := m.doc.PageText(m.preview.Page())
		if text == "" {
			sb.WriteString(dimStyle.Render("  (no text on this page)") + "\n")
		} else {
			sb.WriteString(indent(text, "    ") + "\n")
		}

	case view.PreviewingPdfFallback:
		sb.WriteString(dimStyle.Render("  Document opened in the system viewer.") + "\n")
		sb.WriteString(dimStyle.Render("  Press v to retry the built-in renderer.") + "\n")
	}
	return sb.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}

func baseName(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}

// ── Entry points ──────────────────────────────────────────────────────────────

// Run opens the history browser.
func Run(client *api.Client, cfg config.Config, store lastcapture.Store) error {
	p := tea.NewProgram(New(client, cfg, store, screenBrowser), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunResults opens the results view for an already-completed capture.
func RunResults(client *api.Client, cfg config.Config, store lastcapture.Store, session *api.CaptureSession) error {
	m := New(client, cfg, store, screenResults)
	m.session = session
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
