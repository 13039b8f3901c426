package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusCircuit focus = iota
	focusQASM
	focusMenu
	focusSelectTarget
	focusEditGate
	focusEditTarget
	focusEditControl
	focusResults
)

// Model represents the TUI application state.
type Model struct {
	dag           *CircuitDAG // DAG is the single source of truth
	circuit       Circuit     // Circuit view derived from DAG
	cursorQubit   int
	cursorStep    int
	viewStartStep int // First step currently visible in the view
	width         int
	height        int
	qasmEditor    textarea.Model
	focus         focus
	lastQASM      string
	statusMsg     string // transient status message (e.g. save confirmation)

	// Menu state
	menuCat  int
	menuItem int

	// Target-selection state (for two-qubit gates)
	pendingGate string
	targetQubit int

	// Edit gate state
	editGate     *Gate // pointer to the gate being edited
	editMenuIdx  int   // selected option in edit menu
	editOrigStep int   // step of the gate being edited

	// Run results
	measureBias float64
	seed        uint64
	simResult   *SimulationResult
	simErr      error
}

// newModel builds the initial TUI state for a circuit of numQubits
// qubits. seed is forwarded to RunCircuit on every "r" keypress: 0 runs
// nondeterministically, any other value reproduces the same outcome.
func newModel(numQubits int, bias float64, seed uint64) Model {
	ta := textarea.New()
	ta.Placeholder = "Edit circuit assembly here..."
	ta.SetWidth(40)
	ta.SetHeight(20)
	ta.ShowLineNumbers = true
	ta.KeyMap.InsertNewline.SetEnabled(true)

	dag := NewCircuitDAG()
	dag.NumQubits = max(numQubits, 1)

	m := Model{
		dag:           dag,
		circuit:       *dag.ToCircuit(),
		qasmEditor:    ta,
		focus:         focusCircuit,
		viewStartStep: 0,
		measureBias:   bias,
		seed:          seed,
	}

	m.syncFromDAG()
	return m
}

func initialModel() Model {
	return newModel(4, 0.5, 0)
}

func (m *Model) syncFromDAG() {
	m.circuit = *m.dag.ToCircuit()

	qasm := m.dag.ToQASM()
	m.qasmEditor.SetValue(qasm)
	m.lastQASM = qasm
}

func (m *Model) parseQASMInput() {
	qasm := m.qasmEditor.Value()
	if qasm != m.lastQASM {
		dag := NewCircuitDAG()
		dag.ParseQASM(qasm)
		m.dag = dag

		m.circuit = *m.dag.ToCircuit()
		m.lastQASM = qasm
	}
}

// placeGate places a gate on the circuit at the cursor position. targetQ
// is the second qubit for two-qubit gates (-1 for single-qubit gates,
// MEASURE, and BARRIER). Returns true if placement succeeded, false if
// blocked by a conflict.
func (m *Model) placeGate(gateType string, targetQ int) bool {
	var qubitsNeeded []int
	switch gateType {
	case "BARRIER":
		qubitsNeeded = nil
	default:
		if targetQ >= 0 {
			qubitsNeeded = []int{m.cursorQubit, targetQ}
		} else {
			qubitsNeeded = []int{m.cursorQubit}
		}
	}

	if len(qubitsNeeded) > 0 && !m.dag.CanPlaceGateAt(m.cursorStep, qubitsNeeded) {
		m.statusMsg = "Cannot place: qubit already used by another gate at this step"
		m.pendingGate = ""
		return false
	}

	for _, q := range qubitsNeeded {
		m.dag.RemoveNodeAt(m.cursorStep, q)
	}

	switch {
	case gateType == "BARRIER":
		m.dag.AddBarrier(m.cursorStep)
	case gateType == "MEASURE":
		m.dag.AddGate("MEASURE", m.cursorQubit, m.cursorStep)
	case targetQ >= 0:
		m.dag.AddTwoQubitGate(gateType, m.cursorQubit, targetQ, m.cursorStep)
	default:
		m.dag.AddGate(gateType, m.cursorQubit, m.cursorStep)
	}

	m.pendingGate = ""
	m.cursorStep++
	m.circuit.MaxSteps = max(m.circuit.MaxSteps, m.cursorStep)
	m.syncFromDAG()
	return true
}

// runCircuit drives the current circuit through chpsim and records the
// outcome for display.
func (m *Model) runCircuit() {
	m.simResult, m.simErr = RunCircuit(&m.circuit, m.measureBias, m.seed)
	m.focus = focusResults
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		qasmW := max(msg.Width/3-6, 20)
		m.qasmEditor.SetWidth(qasmW)
		ctrlH := 6
		circH := msg.Height - ctrlH - 4
		editorH := max(circH-8, 4)
		m.qasmEditor.SetHeight(editorH)

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusCircuit:
			switch key {
			case "q":
				return m, tea.Quit
			case "tab":
				m.focus = focusQASM
				m.qasmEditor.Focus()
			case "ctrl+r":
				m.dag = NewCircuitDAG()
				m.dag.NumQubits = m.circuit.NumQubits
				m.viewStartStep = 0
				m.cursorStep = 0
				m.syncFromDAG()
			case "ctrl+s":
				qasm := m.dag.ToQASM()
				if err := os.WriteFile("circuit.qasm", []byte(qasm), 0644); err != nil {
					m.statusMsg = fmt.Sprintf("Save error: %v", err)
				} else {
					m.statusMsg = "Saved circuit.qasm"
				}
			case "r":
				m.runCircuit()
			case "[":
				if m.measureBias > 0 {
					m.measureBias = max(0, m.measureBias-0.1)
				}
			case "]":
				if m.measureBias < 1 {
					m.measureBias = min(1, m.measureBias+0.1)
				}
			case "up", "k":
				if m.cursorQubit > 0 {
					m.cursorQubit--
				}
			case "down", "j":
				if m.cursorQubit < m.dag.NumQubits-1 {
					m.cursorQubit++
				}
			case "left", "h":
				if m.cursorStep > 0 {
					m.cursorStep--
					if m.cursorStep < m.viewStartStep {
						m.viewStartStep = m.cursorStep
					}
				}
			case "right", "l":
				m.cursorStep++
				m.circuit.MaxSteps = max(m.circuit.MaxSteps, m.cursorStep)
			case "+", "=":
				m.dag.NumQubits++
				m.syncFromDAG()
			case "-":
				if m.dag.NumQubits > 1 {
					m.dag.NumQubits--
					m.cursorQubit = min(m.cursorQubit, m.dag.NumQubits-1)
					m.dag.RemoveNodesOnQubit(m.dag.NumQubits)
					m.syncFromDAG()
				}
			case "a":
				m.focus = focusMenu
				m.menuCat = 0
				m.menuItem = 0
			case "backspace", "delete":
				m.dag.RemoveNodeAt(m.cursorStep, m.cursorQubit)
				m.syncFromDAG()
			case "e":
				node := m.dag.GetNodeAt(m.cursorStep, m.cursorQubit)
				if node != nil {
					gate := Gate{
						Type:    node.Type,
						Target:  node.Target,
						Control: node.Control,
						Step:    node.Step,
					}
					m.editGate = &gate
					m.editMenuIdx = 0
					m.editOrigStep = m.cursorStep
					m.focus = focusEditGate
				}
			}

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusCircuit
			case "up", "k":
				if m.menuItem > 0 {
					m.menuItem--
				}
			case "down", "j":
				cat := gateMenu[m.menuCat]
				if m.menuItem < len(cat.items)-1 {
					m.menuItem++
				}
			case "left", "h":
				if m.menuCat > 0 {
					m.menuCat--
					m.menuItem = 0
				}
			case "right", "l":
				if m.menuCat < len(gateMenu)-1 {
					m.menuCat++
					m.menuItem = 0
				}
			case "enter":
				item := gateMenu[m.menuCat].items[m.menuItem]
				m.pendingGate = item.gateType

				if item.needsTarget {
					if m.dag.NumQubits < 2 {
						break
					}
					m.focus = focusSelectTarget
					m.targetQubit = m.cursorQubit + 1
					if m.targetQubit >= m.dag.NumQubits {
						m.targetQubit = m.cursorQubit - 1
					}
				} else {
					if m.placeGate(item.gateType, -1) {
						m.focus = focusCircuit
					}
				}
			}

		case focusSelectTarget:
			switch key {
			case "esc":
				m.focus = focusCircuit
				m.pendingGate = ""
			case "up", "k":
				for next := m.targetQubit - 1; next >= 0; next-- {
					if next != m.cursorQubit {
						m.targetQubit = next
						break
					}
				}
			case "down", "j":
				for next := m.targetQubit + 1; next < m.dag.NumQubits; next++ {
					if next != m.cursorQubit {
						m.targetQubit = next
						break
					}
				}
			case "enter":
				if m.placeGate(m.pendingGate, m.targetQubit) {
					m.focus = focusCircuit
				}
			}

		case focusEditGate:
			if m.editGate == nil {
				m.focus = focusCircuit
				break
			}
			editOptions := m.getEditOptions()
			switch key {
			case "esc":
				m.focus = focusCircuit
				m.editGate = nil
			case "up", "k":
				if m.editMenuIdx > 0 {
					m.editMenuIdx--
				}
			case "down", "j":
				if m.editMenuIdx < len(editOptions)-1 {
					m.editMenuIdx++
				}
			case "enter":
				if m.editMenuIdx < len(editOptions) {
					opt := editOptions[m.editMenuIdx]
					switch opt.action {
					case "edit_target":
						m.targetQubit = m.editGate.Target
						m.focus = focusEditTarget
					case "edit_control":
						m.targetQubit = m.editGate.Control
						m.focus = focusEditControl
					case "delete":
						m.dag.RemoveNodeAt(m.editOrigStep, m.editGate.Target)
						m.editGate = nil
						m.focus = focusCircuit
						m.syncFromDAG()
					}
				}
			}

		case focusEditTarget:
			switch key {
			case "esc":
				m.focus = focusEditGate
			case "up", "k":
				for next := m.targetQubit - 1; next >= 0; next-- {
					if next != m.editGate.Control {
						m.targetQubit = next
						break
					}
				}
			case "down", "j":
				for next := m.targetQubit + 1; next < m.dag.NumQubits; next++ {
					if next != m.editGate.Control {
						m.targetQubit = next
						break
					}
				}
			case "enter":
				if m.editGate != nil {
					m.editGate.Target = m.targetQubit
					m.syncFromDAG()
				}
				m.focus = focusEditGate
			}

		case focusEditControl:
			switch key {
			case "esc":
				m.focus = focusEditGate
			case "up", "k":
				for next := m.targetQubit - 1; next >= 0; next-- {
					if next != m.editGate.Target {
						m.targetQubit = next
						break
					}
				}
			case "down", "j":
				for next := m.targetQubit + 1; next < m.dag.NumQubits; next++ {
					if next != m.editGate.Target {
						m.targetQubit = next
						break
					}
				}
			case "enter":
				if m.editGate != nil {
					m.editGate.Control = m.targetQubit
					m.syncFromDAG()
				}
				m.focus = focusEditGate
			}

		case focusResults:
			switch key {
			case "esc", "enter", "r":
				m.focus = focusCircuit
			}

		case focusQASM:
			switch key {
			case "tab":
				m.focus = focusCircuit
				m.qasmEditor.Blur()
			default:
				var cmd tea.Cmd
				m.qasmEditor, cmd = m.qasmEditor.Update(msg)
				cmds = append(cmds, cmd)
				m.parseQASMInput()
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// editOption represents an option in the edit gate menu.
type editOption struct {
	label  string
	action string
}

// getEditOptions returns available edit options for the current gate.
func (m *Model) getEditOptions() []editOption {
	if m.editGate == nil {
		return nil
	}
	var opts []editOption

	opts = append(opts, editOption{
		label:  fmt.Sprintf("Target: q[%d]", m.editGate.Target),
		action: "edit_target",
	})

	if m.editGate.Control >= 0 {
		opts = append(opts, editOption{
			label:  fmt.Sprintf("Control: q[%d]", m.editGate.Control),
			action: "edit_control",
		})
	}

	opts = append(opts, editOption{
		label:  "Delete gate",
		action: "delete",
	})

	return opts
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	qasmWidth := m.width / 3
	circuitWidth := m.width - qasmWidth - 4
	controlsHeight := 6
	circuitHeight := max(m.height-controlsHeight-2, 6)

	circuitPanel := m.renderCircuitPanel(circuitWidth, circuitHeight)
	qasmPanel := m.renderQASMPanel(qasmWidth, circuitHeight)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, qasmPanel)
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)

	if m.focus == focusMenu {
		menuBox := m.renderMenu()
		frame = overlayAt(frame, menuBox, 2, 2)
	}

	if m.focus == focusEditGate {
		editBox := m.renderEditGateMenu()
		frame = overlayAt(frame, editBox, 2, 2)
	}

	if m.focus == focusResults {
		resultsBox := m.renderResults()
		frame = overlayAt(frame, resultsBox, 2, 2)
	}

	return frame
}

// renderEditGateMenu renders the edit gate menu overlay.
func (m Model) renderEditGateMenu() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Edit Gate"))
	sb.WriteString("\n\n")
	opts := m.getEditOptions()
	for i, opt := range opts {
		if i == m.editMenuIdx {
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("▸ %s", opt.label)))
		} else {
			sb.WriteString(fmt.Sprintf("  %s", opt.label))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("↑↓ Select  ⏎ Ok  Esc ✕"))
	return menuBorderStyle.Render(sb.String())
}

// renderResults renders the outcome of the last run: the resulting
// stabilizer generators and, in circuit order, every measurement.
func (m Model) renderResults() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Run Result"))
	sb.WriteString("\n\n")

	if m.simErr != nil {
		sb.WriteString(fmt.Sprintf("Error: %v", m.simErr))
		sb.WriteString("\n\n")
		sb.WriteString(dimStyle.Render("Esc/⏎ Close"))
		return menuBorderStyle.Render(sb.String())
	}

	sb.WriteString(dimStyle.Render(fmt.Sprintf("bias=%.1f", m.measureBias)))
	sb.WriteString("\n")
	sb.WriteString("Stabilizer generators:\n")
	for q, gen := range m.simResult.Generators {
		fmt.Fprintf(&sb, "  q[%d]: %s\n", q, gen)
	}

	if len(m.simResult.Measured) > 0 {
		sb.WriteString("\nMeasurements:\n")
		for _, rec := range m.simResult.Measured {
			bit := 0
			if rec.Result {
				bit = 1
			}
			fmt.Fprintf(&sb, "  step %d, q[%d] -> %d\n", rec.Step, rec.Qubit, bit)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("Esc/⏎ Close  [ ] bias"))
	return menuBorderStyle.Render(sb.String())
}
