package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Cotizaciones-api/internal/domain/calculator"
)

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc [expresión]",
		Short: "Calculadora: evalúa la expresión o abre el teclado interactivo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				v, err := calculator.Evaluate(strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), calculator.FormatNumber(v))
				return nil
			}
			_, err := tea.NewProgram(newCalcModel(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

const maxHistoryShown = 8

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Width(28).
			Align(lipgloss.Right).
			Bold(true)
	exprStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(30).Align(lipgloss.Right)
	keyStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Width(5).Align(lipgloss.Center)
	historyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginLeft(2)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var keypadLayout = [][]calculator.Key{
	{calculator.KeyClear, calculator.KeyBackspace, calculator.KeyPercent, calculator.KeyDiv},
	{"7", "8", "9", calculator.KeyMul},
	{"4", "5", "6", calculator.KeySub},
	{"1", "2", "3", calculator.KeyAdd},
	{calculator.KeySign, "0", calculator.KeyDecimal, calculator.KeyEquals},
}

// calcModel modelo bubbletea del teclado: cada tecla produce un nuevo estado.
type calcModel struct {
	state calculator.Keypad
}

func newCalcModel() calcModel {
	return calcModel{state: calculator.NewKeypad()}
}

func (m calcModel) Init() tea.Cmd { return nil }

func (m calcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "h":
		m.state = m.state.Press(calculator.KeyClearHistory)
		return m, nil
	case "n":
		m.state = m.state.Press(calculator.KeySign)
		return m, nil
	}
	if key, ok := keyFromMsg(km); ok {
		m.state = m.state.Press(key)
	}
	return m, nil
}

func keyFromMsg(km tea.KeyMsg) (calculator.Key, bool) {
	switch km.Type {
	case tea.KeyEnter:
		return calculator.KeyEquals, true
	case tea.KeyBackspace:
		return calculator.KeyBackspace, true
	case tea.KeyEsc:
		return calculator.KeyClear, true
	}
	k, err := calculator.ParseKey(km.String())
	if err != nil {
		return "", false
	}
	return k, true
}

func (m calcModel) View() string {
	var pad strings.Builder
	for _, row := range keypadLayout {
		cells := make([]string, 0, len(row))
		for _, k := range row {
			cells = append(cells, keyStyle.Render(string(k)))
		}
		pad.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		pad.WriteString("\n")
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		exprStyle.Render(m.state.Expression),
		displayStyle.Render(m.state.Current),
		pad.String(),
	)

	hist := m.state.History
	if len(hist) > maxHistoryShown {
		hist = hist[:maxHistoryShown]
	}
	right := historyStyle.Render("Historial\n" + strings.Join(hist, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" +
		helpStyle.Render("0-9 . + - * / % · enter = · esc C · n ± · h borra historial · q salir") + "\n"
}
