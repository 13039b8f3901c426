package main

import (
	"fmt"
	"strings"
)

// menuItem represents a single gate choice in the menu.
type menuItem struct {
	name        string
	gateType    string
	symbol      string
	needsTarget bool // true for two-qubit gates: picking the item asks for a second qubit
}

// menuCategory groups related menu items under a tab.
type menuCategory struct {
	name  string
	items []menuItem
}

// gateMenu defines the gate picker categories and items, restricted to
// the Clifford gates chpsim recognizes (see chpsim/gates.go) plus
// measurement and the barrier annotation.
var gateMenu = []menuCategory{
	{
		name: "Pauli & Hadamard",
		items: []menuItem{
			{name: "Identity", gateType: "I", symbol: "I"},
			{name: "Pauli-X", gateType: "X", symbol: "X"},
			{name: "Pauli-Y", gateType: "Y", symbol: "Y"},
			{name: "Pauli-Z", gateType: "Z", symbol: "Z"},
			{name: "Hadamard", gateType: "H", symbol: "H"},
			{name: "Hadamard X<->Y", gateType: "H_XY", symbol: "HXY"},
			{name: "Hadamard Y<->Z", gateType: "H_YZ", symbol: "HYZ"},
		},
	},
	{
		name: "Square Roots & Phase",
		items: []menuItem{
			{name: "sqrt(X)", gateType: "SQRT_X", symbol: "√X"},
			{name: "sqrt(X) Dagger", gateType: "SQRT_X_DAG", symbol: "√X†"},
			{name: "sqrt(Y)", gateType: "SQRT_Y", symbol: "√Y"},
			{name: "sqrt(Y) Dagger", gateType: "SQRT_Y_DAG", symbol: "√Y†"},
			{name: "Phase (S)", gateType: "S", symbol: "S"},
			{name: "Phase Dagger (S†)", gateType: "S_DAG", symbol: "S†"},
		},
	},
	{
		name: "Two Qubit",
		items: []menuItem{
			{name: "CNOT", gateType: "CX", symbol: "●─⊕", needsTarget: true},
			{name: "Controlled-Y", gateType: "CY", symbol: "●─Y", needsTarget: true},
			{name: "Controlled-Z", gateType: "CZ", symbol: "●─●", needsTarget: true},
			{name: "SWAP", gateType: "SWAP", symbol: "×─×", needsTarget: true},
			{name: "iSWAP", gateType: "ISWAP", symbol: "i×─×", needsTarget: true},
			{name: "iSWAP Dagger", gateType: "ISWAP_DAG", symbol: "i×†", needsTarget: true},
		},
	},
	{
		name: "Basis-Controlled",
		items: []menuItem{
			{name: "X-controlled X", gateType: "XCX", symbol: "X─X", needsTarget: true},
			{name: "X-controlled Y", gateType: "XCY", symbol: "X─Y", needsTarget: true},
			{name: "X-controlled Z", gateType: "XCZ", symbol: "X─Z", needsTarget: true},
			{name: "Y-controlled X", gateType: "YCX", symbol: "Y─X", needsTarget: true},
			{name: "Y-controlled Y", gateType: "YCY", symbol: "Y─Y", needsTarget: true},
			{name: "Y-controlled Z", gateType: "YCZ", symbol: "Y─Z", needsTarget: true},
		},
	},
	{
		name: "Measurement",
		items: []menuItem{
			{name: "Measure (Z basis)", gateType: "MEASURE", symbol: "M"},
		},
	},
	{
		name: "Special",
		items: []menuItem{
			{name: "Barrier", gateType: "BARRIER", symbol: "┃"},
		},
	},
}

// renderMenu renders the floating gate-picker popup.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Add Gate"))
	sb.WriteString("\n")

	for i, cat := range gateMenu {
		name := " " + cat.name + " "
		if i == m.menuCat {
			sb.WriteString(activeGateStyle.Render(name))
		} else {
			sb.WriteString(dimStyle.Render(name))
		}
		if i < len(gateMenu)-1 {
			sb.WriteString(dimStyle.Render("│"))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", 42)))
	sb.WriteString("\n")

	cat := gateMenu[m.menuCat]
	for i, item := range cat.items {
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render(" ▸ "))
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("%-20s", item.name)))
			sb.WriteString(gateStyle.Render(item.symbol))
		} else {
			sb.WriteString("   ")
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("%-20s", item.name)))
			sb.WriteString(dimStyle.Render(item.symbol))
		}
		if item.needsTarget {
			sb.WriteString(dimStyle.Render(" →target"))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ←→ Cat  ⏎ Ok  Esc ✕"))

	return menuBorderStyle.Render(sb.String())
}
