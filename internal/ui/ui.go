package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/resources"
	"github.com/videotube/vtx/internal/routes"
	"github.com/videotube/vtx/internal/session"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoginView ViewState = iota
	FeedView
	ProfileView
)

// visibility returns the guard class each view declares.
func (v ViewState) visibility() routes.Visibility {
	switch v {
	case LoginView:
		return routes.PublicOnly
	case FeedView, ProfileView:
		return routes.PrivateOnly
	default:
		return routes.Any
	}
}

// viewForRoute maps a guard redirect target back to a view.
func viewForRoute(target string) ViewState {
	if target == routes.LoginRoute {
		return LoginView
	}
	return FeedView
}

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	view   ViewState
	svc    *session.Service
	boot   *session.Initializer
	coord  *session.Coordinator
	videos *resources.VideoService
	likes  *resources.LikeService

	session   session.State
	sessionCh <-chan session.State

	width     int
	height    int
	videoList list.Model
	listReady bool
	inputs    []textinput.Model
	focused   int
	notice    string
	err       error
	help      help.Model
	keys      keyMap
}

type sessionChangedMsg session.State

type redirectMsg string

type noticeMsg session.Notice

type videosFetchedMsg struct {
	videos []models.Video
	err    error
}

type loginResultMsg struct {
	err error
}

type likeToggledMsg struct {
	status *models.LikeStatus
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, svc *session.Service, boot *session.Initializer, coord *session.Coordinator, videos *resources.VideoService, likes *resources.LikeService) *Model {
	identifier := textinput.New()
	identifier.Placeholder = "username or email"
	identifier.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	return &Model{
		ctx:       ctx,
		view:      LoginView,
		svc:       svc,
		boot:      boot,
		coord:     coord,
		videos:    videos,
		likes:     likes,
		sessionCh: svc.Store().Watch(),
		inputs:    []textinput.Model{identifier, password},
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init starts the silent session restore and the channel pumps.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.bootstrap(),
		m.waitForSession(),
		m.waitForRedirect(),
		m.waitForNotice(),
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.videoList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LoginView:
			return m.handleLoginKeys(msg)
		case FeedView:
			return m.handleFeedKeys(msg)
		case ProfileView:
			return m.handleProfileKeys(msg)
		}

	case sessionChangedMsg:
		m.session = session.State(msg)
		cmd := m.applyGuard()
		return m, tea.Batch(cmd, m.waitForSession())

	case redirectMsg:
		m.view = viewForRoute(string(msg))
		return m, m.waitForRedirect()

	case noticeMsg:
		m.notice = msg.Message
		return m, m.waitForNotice()

	case videosFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		items := make([]list.Item, len(msg.videos))
		for i, v := range msg.videos {
			items[i] = videoItem{video: v}
		}
		m.videoList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.videoList.Title = "Videos"
		m.videoList.SetSize(m.width-4, m.height-8)
		m.listReady = true
		return m, nil

	case loginResultMsg:
		// the session watcher moves the view; only the failure needs handling
		if msg.err != nil {
			m.err = msg.err
		}
		return m, nil

	case likeToggledMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.status != nil {
			m.notice = fmt.Sprintf("likes: %d", msg.status.TotalLikes)
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if !m.session.Initialized {
		return styles.help.Render("Resolving session...")
	}

	switch m.view {
	case LoginView:
		return m.renderLogin()
	case FeedView:
		return m.renderFeed()
	case ProfileView:
		return m.renderProfile()
	default:
		return ""
	}
}

// applyGuard re-evaluates the current view's guard against the latest
// session snapshot and follows any redirect it produces.
func (m *Model) applyGuard() tea.Cmd {
	decision := routes.Decide(m.view.visibility(), routes.Session{
		Initialized:   m.session.Initialized,
		Authenticated: m.session.Authenticated(),
	})

	switch decision.Action {
	case routes.Redirect:
		previous := m.view
		m.view = viewForRoute(decision.Target)
		if m.view == FeedView && previous == LoginView {
			return m.fetchVideos()
		}
	case routes.RenderLoading:
		// pre-initialization placeholder handled in View
	}
	return nil
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab":
		m.focused = (m.focused + 1) % len(m.inputs)
		for i := range m.inputs {
			if i == m.focused {
				m.inputs[i].Focus()
			} else {
				m.inputs[i].Blur()
			}
		}
		return m, nil
	case "enter":
		identifier := m.inputs[0].Value()
		password := m.inputs[1].Value()
		return m, m.submitLogin(identifier, password)
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) handleFeedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		return m, m.fetchVideos()
	case "p":
		m.view = ProfileView
		return m, nil
	case "l":
		if m.listReady {
			if selected, ok := m.videoList.SelectedItem().(videoItem); ok {
				return m, m.toggleLike(selected.video.ID)
			}
		}
		return m, nil
	case "ctrl+d":
		return m, m.logout()
	}

	if !m.listReady {
		return m, nil
	}
	var cmd tea.Cmd
	m.videoList, cmd = m.videoList.Update(msg)
	return m, cmd
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = FeedView
		return m, nil
	case "ctrl+d":
		return m, m.logout()
	}
	return m, nil
}

func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case LoginView:
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	case FeedView:
		if m.listReady {
			m.videoList, cmd = m.videoList.Update(msg)
		}
	}
	return m, cmd
}

func (m *Model) bootstrap() tea.Cmd {
	return func() tea.Msg {
		_ = m.boot.Ensure(m.ctx)
		return sessionChangedMsg(m.svc.Store().State())
	}
}

func (m *Model) waitForSession() tea.Cmd {
	return func() tea.Msg {
		state, ok := <-m.sessionCh
		if !ok {
			return nil
		}
		return sessionChangedMsg(state)
	}
}

func (m *Model) waitForRedirect() tea.Cmd {
	return func() tea.Msg {
		target, ok := <-m.coord.Redirects()
		if !ok {
			return nil
		}
		return redirectMsg(target)
	}
}

func (m *Model) waitForNotice() tea.Cmd {
	return func() tea.Msg {
		notice, ok := <-m.coord.Notices()
		if !ok {
			return nil
		}
		return noticeMsg(notice)
	}
}

func (m *Model) fetchVideos() tea.Cmd {
	return func() tea.Msg {
		videos, err := m.videos.ListAll(m.ctx)
		return videosFetchedMsg{videos: videos, err: err}
	}
}

func (m *Model) submitLogin(identifier, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.Login(m.ctx, identifier, password)
		return loginResultMsg{err: err}
	}
}

func (m *Model) toggleLike(videoID string) tea.Cmd {
	return func() tea.Msg {
		status, err := m.likes.ToggleVideo(m.ctx, videoID)
		return likeToggledMsg{status: status, err: err}
	}
}

func (m *Model) logout() tea.Cmd {
	return func() tea.Msg {
		err := m.svc.Logout(m.ctx)
		return loginResultMsg{err: err}
	}
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Sign in")
	form := fmt.Sprintf("%s\n%s", m.inputs[0].View(), m.inputs[1].View())

	var status string
	if m.session.Loading {
		status = styles.help.Render("Signing in...")
	} else if m.err != nil {
		status = styles.err.Render(m.err.Error())
	} else if m.notice != "" {
		status = styles.warn.Render(m.notice)
	}

	submitKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in"))
	helpView := m.help.ShortHelpView([]key.Binding{submitKey, m.keys.tab, m.keys.quit})

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, form, status, helpView)
}

func (m *Model) renderFeed() string {
	var body string
	if m.listReady {
		body = m.videoList.View()
	} else {
		body = styles.help.Render("Loading videos...")
	}

	var banner string
	if m.notice != "" {
		banner = styles.warn.Render(m.notice) + "\n"
	}
	if m.session.TokenRefreshing {
		banner += styles.help.Render("refreshing session") + "\n"
	}

	helpKeys := []key.Binding{m.keys.like, m.keys.reload, m.keys.profile, m.keys.logout, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s%s\n\n%s", banner, body, helpView)
}

func (m *Model) renderProfile() string {
	identity := m.session.Identity
	if identity == nil {
		return styles.err.Render("No session")
	}

	title := styles.title.Render(identity.FullName)
	info := fmt.Sprintf("Username: @%s\nEmail: %s\nWatched: %d videos", identity.Username, identity.Email, len(identity.WatchHistory))

	helpKeys := []key.Binding{m.keys.back, m.keys.logout, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", title, info, helpView)
}
