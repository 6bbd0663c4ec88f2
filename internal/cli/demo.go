package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tk"
	"github.com/grindlemire/go-tk/internal/config"
	"github.com/grindlemire/go-tk/pkg/easing"
)

const frameInterval = time.Second / 30

// demoFile is the layout shown when demo gets no file.
func demoFile() *config.File {
	return &config.File{
		Height:  5,
		Border:  "rounded",
		Title:   "tk demo",
		Spacing: 1,
		Widgets: []config.Widget{
			{Kind: "button", Text: "Start"},
			{Kind: "progress", Percent: true},
			{Kind: "spacer"},
			{Kind: "label", Text: "ratio"},
			{Kind: "progress", Value: 0.5},
			{Kind: "button", Text: "Quit"},
		},
	}
}

func (c *CLI) demoCommand() *cobra.Command {
	var (
		easeName string
		period   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "demo [layout.toml]",
		Short: "Show a layout interactively; resize the terminal to re-tile it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ease, err := easing.Lookup(easeName)
			if err != nil {
				return err
			}

			f := demoFile()
			if len(args) == 1 {
				if f, err = config.Load(args[0]); err != nil {
					return err
				}
			}
			root, err := buildLayout(f)
			if err != nil {
				return err
			}

			m := newDemoModel(root, f.Height, ease, period, c.Logger)
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&easeName, "ease", "e", "in-out-cubic", "easing used by progress bars")
	cmd.Flags().DurationVarP(&period, "period", "p", 2*time.Second, "time a progress bar takes to fill")
	return cmd
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// demoModel runs a tiled layout under bubbletea. Progress bars swing
// between empty and full.
type demoModel struct {
	root   *tk.Container
	height int // 0 follows the window
	bars   []*tk.ProgressBar
	ease   easing.Func
	period time.Duration
	logger *log.Logger
}

func newDemoModel(root *tk.Container, height int, ease easing.Func, period time.Duration, logger *log.Logger) *demoModel {
	return &demoModel{
		root:   root,
		height: height,
		bars:   progressBars(root),
		ease:   ease,
		period: period,
		logger: logger,
	}
}

// progressBars collects every progress bar under c.
func progressBars(c *tk.Container) []*tk.ProgressBar {
	var bars []*tk.ProgressBar
	for _, ctl := range c.Children() {
		switch ctl := ctl.(type) {
		case *tk.ProgressBar:
			bars = append(bars, ctl)
		case *tk.Container:
			bars = append(bars, progressBars(ctl)...)
		}
	}
	return bars
}

func (m *demoModel) Init() tea.Cmd {
	m.restart(time.Now())
	return tick()
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.restart(time.Now())
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tickMsg:
		m.step(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m *demoModel) View() string {
	return paint(m.root).String()
}

// resize fits the row to the window and re-tiles it.
func (m *demoModel) resize(width, height int) {
	if m.height > 0 {
		height = min(height, m.height)
	}
	m.root.Resize(width, height)
	if m.root.Update() {
		m.logger.Debug("re-tiled", "width", width, "height", height)
	}
}

// restart empties every bar and starts filling it again.
func (m *demoModel) restart(now time.Time) {
	for _, b := range m.bars {
		b.SetValue(0)
		b.AnimateTo(1, m.period, m.ease, now)
	}
}

// step advances the animations, turning each bar around at either end.
func (m *demoModel) step(now time.Time) {
	for _, b := range m.bars {
		b.Tick(now)
		if b.Animating() {
			continue
		}
		target := 1.0
		if b.Value() >= 0.5 {
			target = 0
		}
		b.AnimateTo(target, m.period, m.ease, now)
	}
}
