package explore

import (
	"fmt"
	"math"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fermatics/raybend/anim"
	"github.com/fermatics/raybend/refract"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type item struct {
	x        float64
	time     float64
	excess   float64
	residual float64
}

func (i item) Title() string {
	return fmt.Sprintf("x = %.4f  (%.6g s)", i.x, i.time)
}

func (i item) Description() string {
	return fmt.Sprintf("+%.3g s over optimum, refraction-law residual %.2g", i.excess, i.residual)
}

func (i item) FilterValue() string {
	return i.Title()
}

type model struct {
	list    list.Model
	finder  *refract.PathFinder
	widthPx int
	outFile string
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				if err := m.saveCrossing(it.x); err != nil {
					cmds = append(cmds, m.list.NewStatusMessage("render failed: "+err.Error()))
				} else {
					cmds = append(cmds, m.list.NewStatusMessage("saved "+m.outFile))
				}
			}
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// saveCrossing renders the path forced through x, ignoring where the
// true optimum lies, so a crossing can be compared against it visually.
func (m model) saveCrossing(x float64) error {
	path := m.finder.PathThrough(x)
	title := fmt.Sprintf("Crossing forced to x = %.4f", x)
	scene := anim.NewScene(path, m.finder.Params().PlaneSize, m.widthPx, title)

	f, err := os.Create(m.outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return scene.WritePNG(f)
}

// snellResidual measures how far a crossing sits from satisfying the
// refraction law; it is zero at the least-time crossing away from
// degenerate geometry.
func snellResidual(p refract.Params, x float64) float64 {
	crossing := refract.P(x, p.InterfaceY)
	d1 := p.A.Distance(crossing)
	d2 := p.B.Distance(crossing)
	if d1 == 0 || d2 == 0 {
		return 0
	}
	sin1 := math.Abs(x-p.A.X) / d1
	sin2 := math.Abs(p.B.X-x) / d2
	return math.Abs(sin1/p.Medium1.Speed - sin2/p.Medium2.Speed)
}

// Explore lists sampled crossings of the search bracket next to the
// solved optimum and renders any selected one to outFile on enter.
func Explore(pf *refract.PathFinder, samples, widthPx int, outFile string) error {
	if samples < 2 {
		samples = 2
	}
	bestX, err := pf.FindOptimalCrossing()
	if err != nil {
		return err
	}
	bestT := pf.TravelTime(bestX)

	xs, times := pf.TimeCurve(samples)
	items := make([]list.Item, 0, len(xs)+1)
	items = append(items, item{
		x:        bestX,
		time:     bestT,
		residual: snellResidual(pf.Params(), bestX),
	})
	for i, x := range xs {
		items = append(items, item{
			x:        x,
			time:     times[i],
			excess:   times[i] - bestT,
			residual: snellResidual(pf.Params(), x),
		})
	}

	m := model{
		list:    list.New(items, list.NewDefaultDelegate(), 0, 0),
		finder:  pf,
		widthPx: widthPx,
		outFile: outFile,
	}
	m.list.Title = fmt.Sprintf("Candidate crossings (least time at x = %.6g)", bestX)

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
	return nil
}
