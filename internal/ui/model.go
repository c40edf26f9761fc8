package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"galleria/internal/catalog"
	"galleria/internal/config"
	"galleria/internal/domain"
	"galleria/internal/eventbus"
	"galleria/internal/ui/input"
	"galleria/internal/ui/services/selection"
	"galleria/internal/ui/state"
	"galleria/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	cfg     *config.Config
	fetcher catalog.Fetcher
	state   *state.AppState

	selection    *selection.Service
	inputHandler *input.Handler
	renderer     *views.Renderer

	pager  paginator.Model
	help   help.Model
	width  int
	height int
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, fetcher catalog.Fetcher, bus eventbus.EventBus) *Model {
	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = cfg.API.PageSize

	return &Model{
		bus:          bus,
		cfg:          cfg,
		fetcher:      fetcher,
		state:        state.NewAppState(cfg.API.PageSize),
		selection:    selection.NewService(),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		pager:        pager,
		help:         help.New(),
	}
}

// Selection exposes the selection service for wiring and tests.
func (m *Model) Selection() *selection.Service { return m.selection }

// State exposes the application state for tests.
func (m *Model) State() *state.AppState { return m.state }

// Init fetches the first catalog page.
func (m *Model) Init() tea.Cmd {
	m.state.Loading = true
	m.publish(eventbus.PageRequestedEvent{Page: 1, Rows: m.state.Window.Rows})
	return tea.Batch(m.fetchPageCmd(1), tickCmd())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		// The help popup swallows keys until dismissed.
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg)
		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tickMsg:
		// Keep the spinner moving only while something is in flight.
		if m.state.Loading || m.state.BulkActive {
			return m, tickCmd()
		}

	case pageLoadedMsg:
		m.state.Loading = false
		m.state.SetPage(msg.page, msg.result.Artworks, msg.result.Total)
		m.state.Cursor = 0
		m.syncPager()
		m.publish(eventbus.PageLoadedEvent{
			Page:  msg.page,
			Count: len(msg.result.Artworks),
			Total: msg.result.Total,
		})

	case pageFailedMsg:
		// The previously displayed page stays untouched.
		m.state.Loading = false
		m.state.SetStatus(views.StatusError, fmt.Sprintf("Couldn't load page %d", msg.page))
		m.publish(eventbus.PageLoadFailedEvent{Page: msg.page, Err: msg.err})
		return m, clearStatusCmd()

	case bulkPageLoadedMsg:
		return m, m.absorbBulkPage(msg)

	case bulkPageFailedMsg:
		collected := m.selection.Count()
		target := m.state.BulkTarget
		m.state.ResetBulk()
		m.state.SetStatus(views.StatusError,
			fmt.Sprintf("Selection stopped at %d of %d: page %d failed", collected, target, msg.page))
		m.publish(eventbus.BulkFailedEvent{Target: target, Selected: collected, Err: msg.err})
		m.publish(eventbus.SelectionChangedEvent{Total: collected})
		return m, clearStatusCmd()

	case clearStatusMsg:
		m.state.ClearStatus()

	default:
		// Cursor blink for the bulk overlay input.
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action input.Action) tea.Cmd {
	switch a := action.(type) {
	case input.NavigateAction:
		switch a.Direction {
		case "up":
			if m.state.Cursor > 0 {
				m.state.Cursor--
			}
		case "down":
			if m.state.Cursor < len(m.state.Artworks)-1 {
				m.state.Cursor++
			}
		case "home":
			m.state.Cursor = 0
		case "end":
			m.state.Cursor = len(m.state.Artworks) - 1
			m.state.ClampCursor()
		}

	case input.PageAction:
		return m.navigatePage(a.Direction)

	case input.ToggleSelectAction:
		current, ok := m.state.ArtworkAt(m.state.Cursor)
		if !ok {
			return nil
		}
		checked := m.checkedOnPage()
		if m.selection.IsSelected(current.ID) {
			checked = removeRecord(checked, current.ID)
		} else {
			checked = append(checked, current)
		}
		m.applyChecked(checked)

	case input.SelectPageAction:
		m.applyChecked(append([]domain.Artwork(nil), m.state.Artworks...))

	case input.ClearPageAction:
		m.applyChecked(nil)

	case input.ClearAllAction:
		change := m.selection.Clear()
		if !change.Empty() {
			m.publish(eventbus.SelectionChangedEvent{
				Removed: change.Removed,
				Total:   change.Total,
			})
		}
		m.state.SetStatus(views.StatusInfo, "Selection cleared")
		return clearStatusCmd()

	case input.OpenBulkAction:
		if m.state.BulkActive {
			return m.rejectBusy()
		}
		if m.state.Window.Total == 0 {
			m.state.SetStatus(views.StatusInfo, "Catalog not loaded yet")
			return clearStatusCmd()
		}
		m.state.ShowBulkPanel = true
		return m.inputHandler.OpenBulk(m.state.Window.Total)

	case input.DismissBulkAction:
		m.state.ShowBulkPanel = false

	case input.SubmitBulkAction:
		m.state.ShowBulkPanel = false
		return m.applyTargetCount(a.Target)

	case input.RefreshAction:
		if m.state.BulkActive || m.state.Loading {
			return m.rejectBusy()
		}
		m.state.Loading = true
		page := m.state.Window.Page()
		m.publish(eventbus.PageRequestedEvent{Page: page, Rows: m.state.Window.Rows})
		return tea.Batch(m.fetchPageCmd(page), tickCmd())

	case input.ResizePageAction:
		return m.resizePage(a.Delta)

	case input.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case input.QuitAction:
		return tea.Quit
	}

	return nil
}

// navigatePage moves the page window while keeping First a multiple of
// Rows. Navigation is rejected while a bulk sweep is running.
func (m *Model) navigatePage(direction string) tea.Cmd {
	if m.state.BulkActive {
		return m.rejectBusy()
	}
	if m.state.Loading {
		return nil
	}

	page := m.state.Window.Page()
	switch direction {
	case "next":
		if !m.state.Window.HasNext() {
			return nil
		}
		page++
	case "prev":
		if !m.state.Window.HasPrev() {
			return nil
		}
		page--
	default:
		return nil
	}

	m.state.Loading = true
	m.publish(eventbus.PageRequestedEvent{Page: page, Rows: m.state.Window.Rows})
	return tea.Batch(m.fetchPageCmd(page), tickCmd())
}

// applyChecked reports the page's new checked set to the selection
// manager. Rows on other pages are untouched by the reconciliation.
func (m *Model) applyChecked(checked []domain.Artwork) {
	change := m.selection.Reconcile(m.state.PageIDs(), checked)
	if !change.Empty() {
		m.publish(eventbus.SelectionChangedEvent{
			Added:   change.Added,
			Removed: change.Removed,
			Total:   change.Total,
		})
	}
}

// applyTargetCount resizes the selection to exactly target records:
// trim to the lowest identifiers when shrinking, sweep forward across
// following pages when growing.
func (m *Model) applyTargetCount(target int) tea.Cmd {
	count := m.selection.Count()

	if target <= count {
		change := m.selection.Shrink(target)
		m.publish(eventbus.SelectionChangedEvent{Removed: change.Removed, Total: change.Total})
		m.publish(eventbus.BulkCompletedEvent{Target: target, Selected: change.Total})
		m.state.SetStatus(views.StatusSuccess, fmt.Sprintf("Selection trimmed to %d", target))
		return clearStatusCmd()
	}

	if !m.state.Window.HasNext() {
		// Nothing after the current window to sweep.
		m.publish(eventbus.BulkCompletedEvent{Target: target, Selected: count})
		m.state.SetStatus(views.StatusInfo,
			fmt.Sprintf("No pages left to sweep, selection stays at %d", count))
		return clearStatusCmd()
	}

	needed := target - count
	m.state.BulkActive = true
	m.state.BulkTarget = target
	m.state.BulkNeeded = needed
	m.state.BulkNextPage = m.state.Window.Page() + 1
	m.publish(eventbus.BulkStartedEvent{Target: target, Needed: needed})
	return tea.Batch(m.bulkFetchCmd(m.state.BulkNextPage), tickCmd())
}

// absorbBulkPage consumes one fetched page of a bulk sweep and decides
// whether to fetch the next one.
func (m *Model) absorbBulkPage(msg bulkPageLoadedMsg) tea.Cmd {
	if !m.state.BulkActive {
		return nil
	}

	taken := m.selection.Absorb(msg.result.Artworks, m.state.BulkNeeded)
	m.state.BulkNeeded -= taken
	m.state.Window.Total = msg.result.Total
	if taken > 0 {
		m.publish(eventbus.SelectionChangedEvent{Total: m.selection.Count()})
	}

	pagesLeft := msg.page < m.state.Window.PageCount() && len(msg.result.Artworks) > 0
	if m.state.BulkNeeded > 0 && pagesLeft {
		m.state.BulkNextPage = msg.page + 1
		return m.bulkFetchCmd(m.state.BulkNextPage)
	}

	target := m.state.BulkTarget
	selected := m.selection.Count()
	m.state.ResetBulk()
	m.publish(eventbus.BulkCompletedEvent{Target: target, Selected: selected})
	if selected >= target {
		m.state.SetStatus(views.StatusSuccess, fmt.Sprintf("Selected first %d artworks", target))
	} else {
		m.state.SetStatus(views.StatusInfo,
			fmt.Sprintf("Catalog exhausted, %d of %d selected", selected, target))
	}
	return clearStatusCmd()
}

// resizePage changes the page size within bounds and refetches from
// the first page so the offset stays a multiple of the row count.
func (m *Model) resizePage(delta int) tea.Cmd {
	if m.state.BulkActive || m.state.Loading {
		return m.rejectBusy()
	}

	rows := m.state.Window.Rows + delta
	if rows < config.MinPageSize || rows > config.MaxPageSize {
		m.state.SetStatus(views.StatusInfo,
			fmt.Sprintf("Page size stays between %d and %d", config.MinPageSize, config.MaxPageSize))
		return clearStatusCmd()
	}

	m.state.Window.Rows = rows
	m.state.Window.First = 0
	m.cfg.API.PageSize = rows
	m.pager.PerPage = rows
	m.state.Loading = true
	m.publish(eventbus.ConfigChangedEvent{PageSize: rows})
	m.publish(eventbus.PageRequestedEvent{Page: 1, Rows: rows})
	return tea.Batch(m.fetchPageCmd(1), tickCmd())
}

// rejectBusy notifies that an operation is already in flight.
func (m *Model) rejectBusy() tea.Cmd {
	m.state.SetStatus(views.StatusInfo, "Busy, wait for the current operation to finish")
	return clearStatusCmd()
}

// checkedOnPage returns the currently checked records of the visible
// page.
func (m *Model) checkedOnPage() []domain.Artwork {
	var checked []domain.Artwork
	for _, a := range m.state.Artworks {
		if m.selection.IsSelected(a.ID) {
			checked = append(checked, a)
		}
	}
	return checked
}

// syncPager aligns the paginator widget with the page window.
func (m *Model) syncPager() {
	m.pager.PerPage = m.state.Window.Rows
	m.pager.SetTotalPages(m.state.Window.Total)
	m.pager.Page = m.state.Window.Page() - 1
}

// buildViewState assembles the render snapshot.
func (m *Model) buildViewState() views.ViewState {
	selected := make(map[int]bool, len(m.state.Artworks))
	for _, a := range m.state.Artworks {
		if m.selection.IsSelected(a.ID) {
			selected[a.ID] = true
		}
	}

	return views.ViewState{
		Width:            m.width,
		Height:           m.height,
		Artworks:         m.state.Artworks,
		Window:           m.state.Window,
		Cursor:           m.state.Cursor,
		SelectedIDs:      selected,
		SelectionCount:   m.selection.Count(),
		Loading:          m.state.Loading,
		Loaded:           m.state.Loaded,
		BulkActive:       m.state.BulkActive,
		BulkTarget:       m.state.BulkTarget,
		StatusMessage:    m.state.StatusMessage,
		StatusKind:       m.state.StatusKind,
		ShowBulkPanel:    m.state.ShowBulkPanel,
		BulkInput:        m.inputHandler.InputView(),
		BulkMax:          m.inputHandler.MaxTarget(),
		ShowHelp:         m.state.ShowHelp,
		HelpModel:        m.help,
		Keys:             m.inputHandler.Keys(),
		PagerView:        m.pager.View(),
		ShowInscriptions: m.cfg.UI.ShowInscriptions,
		CompactDates:     m.cfg.UI.CompactDates,
	}
}

// publish sends a domain event when a bus is wired.
func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// removeRecord drops one record from a checked set by identifier.
func removeRecord(records []domain.Artwork, id int) []domain.Artwork {
	out := records[:0]
	for _, a := range records {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
